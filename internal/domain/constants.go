package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// UnknownLabel is the sentinel shown when a lookup by id misses.
const UnknownLabel = "Bilinmeyen"

// SystemTenantName is the administrative pseudo-tenant that must not be
// offered as a bookable salon.
const SystemTenantName = "Sistem Yönetimi"

// DefaultCurrency is assumed when an appointment carries no currency code.
const DefaultCurrency = "TRY"

// Localized status labels shown by the admin screens.
var StatusLabels = map[AppointmentStatus]string{
	StatusPending:   "Beklemede",
	StatusConfirmed: "Onaylandı",
	StatusCompleted: "Tamamlandı",
	StatusCancelled: "İptal Edildi",
}

// StatusLabel returns the localized label, falling back to the raw status.
func StatusLabel(s AppointmentStatus) string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return string(s)
}
