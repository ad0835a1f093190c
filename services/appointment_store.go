package services

import (
	"sync"

	"therapist-chatbot-backend/models"
)

// AppointmentStore holds the most recently booked appointment. It is a
// single shared record: each booking overwrites the previous one, last
// writer wins. The lock is held only for the duration of a read or
// write, never across a completion call.
type AppointmentStore struct {
	mu          sync.Mutex
	appointment models.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{}
}

// Book overwrites the record atomically. A time without a date is never
// stored; callers must pass an empty time when only a date was given.
func (as *AppointmentStore) Book(date, timeOfDay string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appointment = models.Appointment{Date: date, Time: timeOfDay}
}

// Read returns a consistent snapshot of the record. Both fields are
// empty when nothing has been booked.
func (as *AppointmentStore) Read() models.Appointment {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.appointment
}
