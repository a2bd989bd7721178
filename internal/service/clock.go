package service

import (
	"sync"
	"time"

	"hostel-management-backend/internal/models"
)

// Clock supplies the current time to every service
type Clock func() time.Time

// Today returns the current calendar day
func (c Clock) Today() models.Date {
	return models.NewDate(c())
}

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// writeMu serializes every mutation. Records are read, changed and written
// back whole, and occupancy and revenue counters on rooms and hostels are
// changed by tenant and invoice operations.
var writeMu sync.Mutex
