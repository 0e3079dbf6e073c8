package models

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the execution status of an appointment.
// Appointments are created Scheduled and complete exactly once; there is
// no cancellation in this workflow.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus converts a stored string into an
// AppointmentStatus, rejecting anything outside the closed set.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case AppointmentScheduled, AppointmentCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("unrecognized appointment status %q", s)
	}
}

// CanAdvanceTo reports whether next is a legal successor of s.
func (s AppointmentStatus) CanAdvanceTo(next AppointmentStatus) bool {
	return s == AppointmentScheduled && next == AppointmentCompleted
}

// Terminal reports whether no further transition exists from s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted
}

// DefaultAppointmentType is used when a scheduling request omits the
// visit type.
const DefaultAppointmentType = "Dental Consultation"

// Appointment represents a scheduled visit between a student and a patient.
type Appointment struct {
	BaseModel
	StudentID   string            `gorm:"size:36;index;not null" json:"studentId"`
	PatientID   string            `gorm:"size:36;index;not null" json:"patientId"`
	ScheduledAt time.Time         `gorm:"index" json:"scheduledAt"`
	Type        string            `gorm:"size:100;not null" json:"type"`
	Status      AppointmentStatus `gorm:"size:20;default:'scheduled';index" json:"status"`

	// Filled in when procedures are registered and the visit completes.
	ProceduresPerformed string     `gorm:"type:text" json:"proceduresPerformed,omitempty"`
	PostVisitNotes      string     `gorm:"type:text" json:"postVisitNotes,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`

	// Relations
	Student User    `gorm:"foreignKey:StudentID" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
