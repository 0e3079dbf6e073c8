package clinic

import (
	"context"
	"time"

	"clinisys-server/internal/models"
)

// Store is the durable entity store the Coordinator depends on. Reads
// return fresh snapshots; Commit persists the patient status update and
// the appointment upsert as one atomic unit or not at all.
//
// Implementations must reject status strings outside the closed enums at
// this boundary instead of letting them reach business logic.
type Store interface {
	ReadStudent(ctx context.Context, id string) (*models.User, error)
	ReadPatient(ctx context.Context, id string) (*models.Patient, error)
	ReadAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// ListAppointmentsForPatient returns the patient's appointments with
	// ScheduledAt in [from, to).
	ListAppointmentsForPatient(ctx context.Context, patientID string, from, to time.Time) ([]models.Appointment, error)

	// Commit durably writes both entities together. A failed commit must
	// leave both in their pre-call state.
	Commit(ctx context.Context, patient *models.Patient, appt *models.Appointment) error
}
