package domain

import (
	"time"

	"github.com/velmark/NST-BookingService/pkg/types"
)

// SlotStatus represents the status of a calendar slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusPending   SlotStatus = "pending"
	SlotStatusConfirmed SlotStatus = "confirmed"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// Slot represents a bookable time slot in the studio calendar
// На одну тройку (date, start_time, resource_id) существует не более одного слота
type Slot struct {
	ID         int64
	Date       time.Time        // Календарный день (без времени)
	StartTime  types.TimeString // Время начала из канонической сетки
	Status     SlotStatus
	ResourceID *int64  // ID мастера, nil - слот без привязки к мастеру
	Note       *string // Примечание администратора

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be reserved
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsPending returns true if the slot is provisionally held by a booking
func (s *Slot) IsPending() bool {
	return s.Status == SlotStatusPending
}

// IsConfirmed returns true if the slot belongs to a confirmed booking
func (s *Slot) IsConfirmed() bool {
	return s.Status == SlotStatusConfirmed
}

// IsBlocked returns true if the slot was explicitly blocked by an administrator
func (s *Slot) IsBlocked() bool {
	return s.Status == SlotStatusBlocked
}

// SameResource returns true if both slots belong to the same technician
// Слоты без мастера (nil) считаются одним ресурсом
func (s *Slot) SameResource(other *Slot) bool {
	if s.ResourceID == nil && other.ResourceID == nil {
		return true
	}
	if s.ResourceID == nil || other.ResourceID == nil {
		return false
	}
	return *s.ResourceID == *other.ResourceID
}

// SameDate returns true if both slots are on the same calendar day
func (s *Slot) SameDate(other *Slot) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SlotsFilter фильтр для выборки слотов календаря
type SlotsFilter struct {
	Date       *time.Time  // Конкретный день (опционально)
	ResourceID *int64      // Фильтр по мастеру (опционально)
	Status     *SlotStatus // Фильтр по статусу (опционально)
}
