package clinic

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clinisys-server/internal/models"
)

// ScheduleRequest carries the inputs for scheduling an appointment.
type ScheduleRequest struct {
	StudentID   string
	PatientID   string
	ScheduledAt time.Time
	Type        string
}

// RegisterProceduresRequest carries the inputs for registering the
// procedures performed during a visit.
type RegisterProceduresRequest struct {
	AppointmentID string
	Procedures    string
	Notes         string
}

// Coordinator is the single entry point for mutating care and appointment
// status fields once a patient is triaged. Every operation serializes on
// the affected patient, re-reads fresh state under the lock, evaluates
// the full rule set, and persists both entity updates in one atomic
// commit. Nothing else in the system writes these fields.
type Coordinator struct {
	store  Store
	locks  *keyedMutex
	loc    *time.Location
	logger *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewCoordinator creates a Coordinator. loc is the clinic's local time
// zone, used for the business-window and same-day checks; nil means
// time.Local.
func NewCoordinator(store Store, loc *time.Location, logger *slog.Logger) *Coordinator {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		store:  store,
		locks:  newKeyedMutex(),
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

func patientKey(id string) string     { return "patient:" + id }
func appointmentKey(id string) string { return "appointment:" + id }

// ScheduleAppointment creates an appointment for a triaged patient and
// advances the patient to Scheduled in the same commit. Two concurrent
// calls for one patient serialize; the loser re-validates against the
// committed state and fails its precondition check.
func (c *Coordinator) ScheduleAppointment(ctx context.Context, req ScheduleRequest) (*models.Appointment, error) {
	c.locks.Lock(patientKey(req.PatientID))
	defer c.locks.Unlock(patientKey(req.PatientID))

	student, err := c.store.ReadStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	patient, err := c.store.ReadPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	at := req.ScheduledAt.In(c.loc)
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, c.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := c.store.ListAppointmentsForPatient(ctx, req.PatientID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if err := checkAll(
		SameClinic(student, patient),
		FutureInstant(at, c.now()),
		BusinessDay(at),
		BusinessHour(at),
		NoSameDayConflict(at, existing),
		PatientTriaged(patient),
	); err != nil {
		return nil, err
	}

	// PatientTriaged passed, so Triaged -> Scheduled is the adjacent move.
	if !patient.CareStatus.CanAdvanceTo(models.CareScheduled) {
		return nil, ErrInvalidPatientState
	}
	patient.CareStatus = models.CareScheduled

	apptType := strings.TrimSpace(req.Type)
	if apptType == "" {
		apptType = models.DefaultAppointmentType
	}
	appt := &models.Appointment{
		StudentID:   req.StudentID,
		PatientID:   req.PatientID,
		ScheduledAt: at,
		Type:        apptType,
		Status:      models.AppointmentScheduled,
	}

	if err := c.store.Commit(ctx, patient, appt); err != nil {
		return nil, err
	}

	c.logger.Info("appointment scheduled",
		slog.String("appointment_id", appt.ID),
		slog.String("patient_id", patient.ID),
		slog.String("student_id", student.ID),
		slog.Time("scheduled_at", at),
	)
	return appt, nil
}

// RegisterProcedures records the procedures performed during a scheduled
// appointment, completing both the appointment and the patient's care in
// the same commit.
func (c *Coordinator) RegisterProcedures(ctx context.Context, req RegisterProceduresRequest) (*models.Appointment, error) {
	// The appointment's patient never changes, so a peek outside the lock
	// is safe for choosing the lock key.
	peek, err := c.store.ReadAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	// Patient lock first, then appointment lock; same order everywhere.
	c.locks.Lock(patientKey(peek.PatientID))
	defer c.locks.Unlock(patientKey(peek.PatientID))
	c.locks.Lock(appointmentKey(req.AppointmentID))
	defer c.locks.Unlock(appointmentKey(req.AppointmentID))

	appt, err := c.store.ReadAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	patient, err := c.store.ReadPatient(ctx, appt.PatientID)
	if err != nil {
		return nil, err
	}

	if err := checkAll(
		AppointmentScheduled(appt),
		ProceduresNonEmpty(req.Procedures),
	); err != nil {
		return nil, err
	}

	// The joint-write invariant keeps a Scheduled appointment paired with
	// a Scheduled patient; anything else is a corrupt pairing.
	if !appt.Status.CanAdvanceTo(models.AppointmentCompleted) {
		return nil, ErrInvalidAppointmentState
	}
	if !patient.CareStatus.CanAdvanceTo(models.CareCompleted) {
		return nil, ErrInvalidPatientState
	}

	completedAt := c.now()
	appt.Status = models.AppointmentCompleted
	appt.ProceduresPerformed = strings.TrimSpace(req.Procedures)
	appt.PostVisitNotes = strings.TrimSpace(req.Notes)
	appt.CompletedAt = &completedAt
	patient.CareStatus = models.CareCompleted

	if err := c.store.Commit(ctx, patient, appt); err != nil {
		return nil, err
	}

	c.logger.Info("procedures registered",
		slog.String("appointment_id", appt.ID),
		slog.String("patient_id", patient.ID),
	)
	return appt, nil
}
