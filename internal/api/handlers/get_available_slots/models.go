package get_available_slots

import (
	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/types"
)

// SlotResponse is one bookable window as shown in the booking form.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"` // clock time, e.g. "10:30"
}

// SlotsResponse wraps the slot list. Warning carries a dismissible
// format-error message when the backend's slot list was coerced to empty;
// the form still renders.
type SlotsResponse struct {
	Slots   []SlotResponse `json:"slots"`
	Warning string         `json:"warning,omitempty"`
}

// FromDomainSlots converts backend slots into the form's display model.
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			StartTime: s.StartTime.Format(types.DateTimeLayout),
			EndTime:   s.EndTime.Format(types.DateTimeLayout),
			Label:     s.StartTime.ClockString(),
		}
	}
	return out
}
