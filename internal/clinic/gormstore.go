package clinic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"clinisys-server/internal/models"
)

// GormStore implements Store on top of the shared MySQL database. Commit
// runs inside a single transaction with a bounded timeout so a hung
// database surfaces as an infrastructure error rather than a stuck
// request.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormStore creates a GormStore. A non-positive timeout falls back to
// 10 seconds.
func NewGormStore(db *gorm.DB, timeout time.Duration) *GormStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GormStore{db: db, timeout: timeout}
}

func (s *GormStore) ReadStudent(ctx context.Context, id string) (*models.User, error) {
	var student models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleStudent).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("%w: read student: %v", ErrInfrastructure, err)
	}
	return &student, nil
}

func (s *GormStore) ReadPatient(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("%w: read patient: %v", ErrInfrastructure, err)
	}
	if _, err := models.ParseCareStatus(string(patient.CareStatus)); err != nil {
		return nil, fmt.Errorf("%w: patient %s: %v", ErrInfrastructure, id, err)
	}
	return &patient, nil
}

func (s *GormStore) ReadAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: read appointment: %v", ErrInfrastructure, err)
	}
	if _, err := models.ParseAppointmentStatus(string(appt.Status)); err != nil {
		return nil, fmt.Errorf("%w: appointment %s: %v", ErrInfrastructure, id, err)
	}
	return &appt, nil
}

func (s *GormStore) ListAppointmentsForPatient(ctx context.Context, patientID string, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND scheduled_at >= ? AND scheduled_at < ?", patientID, from, to).
		Order("scheduled_at asc").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list appointments: %v", ErrInfrastructure, err)
	}
	return appts, nil
}

func (s *GormStore) Commit(ctx context.Context, patient *models.Patient, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Patient{}).
			Where("id = ?", patient.ID).
			Update("care_status", patient.CareStatus).Error; err != nil {
			return fmt.Errorf("update patient status: %w", err)
		}
		if err := tx.Save(appt).Error; err != nil {
			return fmt.Errorf("save appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: commit: %v", ErrInfrastructure, err)
	}
	return nil
}
