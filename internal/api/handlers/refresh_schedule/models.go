package refresh_schedule

// RefreshResponse reports the outcome of a manual working-set reload.
// Warning carries a dismissible format-error message when a backend
// collection was coerced to empty; the reload still took effect.
type RefreshResponse struct {
	Warning string `json:"warning,omitempty"`
}
