package domain

import "github.com/velmark/NST-BookingService/pkg/types"

// StartTimeGrid каноническая упорядоченная сетка допустимых времен начала слота.
// Слоты существуют только на этих временах; "следующим" считается
// следующий элемент сетки, после последнего элемента следующего нет
var StartTimeGrid = []types.TimeString{
	"10:00",
	"11:30",
	"13:00",
	"14:30",
	"16:00",
	"17:30",
	"19:00",
}

// IsValidStartTime returns true if t belongs to the canonical grid
func IsValidStartTime(t types.TimeString) bool {
	for _, g := range StartTimeGrid {
		if g == t {
			return true
		}
	}
	return false
}

// NextStartTime returns the grid entry immediately after t.
// Второе значение false, если t - последний элемент сетки или не из сетки
func NextStartTime(t types.TimeString) (types.TimeString, bool) {
	for i, g := range StartTimeGrid {
		if g == t {
			if i+1 >= len(StartTimeGrid) {
				return "", false
			}
			return StartTimeGrid[i+1], true
		}
	}
	return "", false
}
