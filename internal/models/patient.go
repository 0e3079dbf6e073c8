package models

import (
	"fmt"
	"time"
)

// CareStatus tracks a patient's progress through the clinic workflow.
// The lifecycle is strictly forward; there is no transition back or
// around any stage, and Completed is terminal.
type CareStatus string

const (
	CareAwaitingTriage CareStatus = "awaiting_triage"
	CareTriaged        CareStatus = "triaged"
	CareScheduled      CareStatus = "scheduled"
	CareCompleted      CareStatus = "completed"
)

// careOrder gives each status its position in the forward chain.
var careOrder = map[CareStatus]int{
	CareAwaitingTriage: 0,
	CareTriaged:        1,
	CareScheduled:      2,
	CareCompleted:      3,
}

// ParseCareStatus converts a stored string into a CareStatus, rejecting
// anything outside the closed set.
func ParseCareStatus(s string) (CareStatus, error) {
	status := CareStatus(s)
	if _, ok := careOrder[status]; !ok {
		return "", fmt.Errorf("unrecognized care status %q", s)
	}
	return status, nil
}

// CanAdvanceTo reports whether next is the immediate successor of s.
// Skipped stages count as illegal, same as backward moves.
func (s CareStatus) CanAdvanceTo(next CareStatus) bool {
	cur, ok := careOrder[s]
	if !ok {
		return false
	}
	n, ok := careOrder[next]
	if !ok {
		return false
	}
	return n == cur+1
}

// Terminal reports whether no further transition exists from s.
func (s CareStatus) Terminal() bool {
	return s == CareCompleted
}

// Patient represents a clinic patient.
type Patient struct {
	BaseModel
	NationalID string     `gorm:"size:11;uniqueIndex;not null" json:"nationalId"`
	FullName   string     `gorm:"size:120;not null;index" json:"fullName"`
	BirthDate  time.Time  `json:"birthDate"`
	CareStatus CareStatus `gorm:"size:20;default:'awaiting_triage';index" json:"careStatus"`
	ClinicID   string     `gorm:"size:36;index;not null" json:"clinicId"`

	// Relations (not always preloaded)
	Clinic        Clinic         `gorm:"foreignKey:ClinicID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
	TriageRecords []TriageRecord `gorm:"foreignKey:PatientID" json:"-"`
}
