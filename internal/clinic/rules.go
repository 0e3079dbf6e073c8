package clinic

import (
	"strings"
	"time"

	"clinisys-server/internal/models"
)

// Scheduling window: weekdays between 08:00 inclusive and 18:00 exclusive,
// clinic-local time.
const (
	businessOpenHour  = 8
	businessCloseHour = 18
)

// Validation rules are pure predicates: they inspect their inputs and
// return nil on pass or the matching sentinel on failure. They never touch
// the store.

// SameClinic checks that the student is assigned to the patient's clinic.
func SameClinic(student *models.User, patient *models.Patient) error {
	if student.ClinicID == nil || *student.ClinicID != patient.ClinicID {
		return ErrCrossClinic
	}
	return nil
}

// FutureInstant checks that at lies strictly after now.
func FutureInstant(at, now time.Time) error {
	if !at.After(now) {
		return ErrPastScheduling
	}
	return nil
}

// BusinessDay checks that at falls on a weekday.
func BusinessDay(at time.Time) error {
	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrNonBusinessDay
	}
	return nil
}

// BusinessHour checks that the time of day is within [08:00, 18:00).
func BusinessHour(at time.Time) error {
	if at.Hour() < businessOpenHour || at.Hour() >= businessCloseHour {
		return ErrOutsideBusinessHours
	}
	return nil
}

// NoSameDayConflict checks that none of the patient's existing
// appointments share at's calendar day. Each patient gets at most one
// appointment per day.
func NoSameDayConflict(at time.Time, existing []models.Appointment) error {
	y, m, d := at.Date()
	for _, appt := range existing {
		scheduled := appt.ScheduledAt.In(at.Location())
		ey, em, ed := scheduled.Date()
		if ey == y && em == m && ed == d {
			return ErrDoubleBooking
		}
	}
	return nil
}

// PatientTriaged checks that the patient has completed triage and has not
// moved past it.
func PatientTriaged(patient *models.Patient) error {
	if patient.CareStatus != models.CareTriaged {
		return ErrInvalidPatientState
	}
	return nil
}

// AppointmentScheduled checks that the appointment is still awaiting
// execution.
func AppointmentScheduled(appt *models.Appointment) error {
	if appt.Status != models.AppointmentScheduled {
		return ErrInvalidAppointmentState
	}
	return nil
}

// ProceduresNonEmpty checks that the procedures description carries
// actual content.
func ProceduresNonEmpty(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrMissingProcedures
	}
	return nil
}

// checkAll evaluates every rule and collects all failures.
func checkAll(checks ...error) error {
	var violations []error
	for _, err := range checks {
		if err != nil {
			violations = append(violations, err)
		}
	}
	return newValidationError(violations)
}
