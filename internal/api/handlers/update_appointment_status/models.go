package update_appointment_status

// UpdateStatusRequest is the HTTP request model.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
