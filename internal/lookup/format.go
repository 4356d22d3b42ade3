package lookup

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/types"
)

// The admin screens are Turkish; amounts and dates follow tr-TR rules.
var trPrinter = message.NewPrinter(language.Turkish)

// Dates render as day.month.year, matching the original screens.
const displayDateLayout = "02.01.2006"

// FormatCurrency formats a monetary amount with locale-correct grouping and
// decimal rules for the given ISO 4217 code. Unknown codes fall back to TRY.
func FormatCurrency(amount float64, code string) string {
	if code == "" {
		code = domain.DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO(domain.DefaultCurrency)
	}
	return trPrinter.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}

// FormatDate renders the calendar-date component of a timestamp.
func FormatDate(t types.LocalDateTime) string {
	return t.Format(displayDateLayout)
}

// FormatTime renders the clock component of a timestamp.
func FormatTime(t types.LocalDateTime) string {
	return t.Format(domain.TimeFormat)
}

// FormatDay renders a plain calendar date.
func FormatDay(t time.Time) string {
	return t.Format(displayDateLayout)
}

// Short Turkish weekday names, Sunday first.
var weekdayShort = [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}

// WeekdayShort renders the abbreviated Turkish weekday name.
func WeekdayShort(t time.Time) string {
	return weekdayShort[int(t.Weekday())]
}
