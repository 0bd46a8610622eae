package domain

import (
	"fmt"
	"regexp"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking number format: фиксированный префикс + монотонный номер с нулями
const (
	BookingNumberPrefix = "NB"
	BookingNumberDigits = 5
)

// Default configuration values
const (
	DefaultReleaseMaxAgeMinutes = 30 // Сколько минут живет неподтвержденный черновик
	DefaultSweeperIntervalMin   = 5  // Интервал запуска фонового sweeper'а
)

// Business validation constants
const (
	MaxNoteLength               = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
	MaxCustomerPhoneLength      = 32
	MaxBlockReasonLength        = 500
)

// BookingNumberPattern матчит корректные номера бронирований ("NB00042").
// Legacy-номера другой длины или формата под шаблон не попадают
var BookingNumberPattern = regexp.MustCompile(fmt.Sprintf(`^%s(\d{%d})$`, BookingNumberPrefix, BookingNumberDigits))

// FormatBookingNumber formats a sequence number as a human-facing booking number
func FormatBookingNumber(n int64) string {
	return fmt.Sprintf("%s%0*d", BookingNumberPrefix, BookingNumberDigits, n)
}

// ParseBookingNumber extracts the numeric suffix from a booking number.
// Второе значение false для legacy или некорректных номеров
func ParseBookingNumber(s string) (int64, bool) {
	m := BookingNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var n int64
	if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}
