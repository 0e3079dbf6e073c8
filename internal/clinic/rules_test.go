package clinic

import (
	"errors"
	"testing"
	"time"

	"clinisys-server/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSameClinic(t *testing.T) {
	patient := &models.Patient{ClinicID: "clinic-1"}

	tests := []struct {
		name    string
		student *models.User
		wantErr error
	}{
		{"same clinic", &models.User{ClinicID: strPtr("clinic-1")}, nil},
		{"different clinic", &models.User{ClinicID: strPtr("clinic-2")}, ErrCrossClinic},
		{"student without clinic", &models.User{}, ErrCrossClinic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SameClinic(tt.student, patient); !errors.Is(err, tt.wantErr) {
				t.Errorf("SameClinic() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFutureInstant(t *testing.T) {
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"future", now.Add(time.Hour), nil},
		{"exactly now", now, ErrPastScheduling},
		{"past", now.Add(-time.Minute), ErrPastScheduling},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := FutureInstant(tt.at, now); !errors.Is(err, tt.wantErr) {
				t.Errorf("FutureInstant() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBusinessDay(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	for d := 0; d < 7; d++ {
		at := monday.AddDate(0, 0, d)
		err := BusinessDay(at)
		weekend := at.Weekday() == time.Saturday || at.Weekday() == time.Sunday
		if weekend && !errors.Is(err, ErrNonBusinessDay) {
			t.Errorf("BusinessDay(%s) = %v, want ErrNonBusinessDay", at.Weekday(), err)
		}
		if !weekend && err != nil {
			t.Errorf("BusinessDay(%s) = %v, want nil", at.Weekday(), err)
		}
	}
}

func TestBusinessHour(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{"before opening", 7, 59, ErrOutsideBusinessHours},
		{"opening instant", 8, 0, nil},
		{"mid morning", 10, 30, nil},
		{"last slot", 17, 59, nil},
		{"closing instant", 18, 0, ErrOutsideBusinessHours},
		{"evening", 20, 0, ErrOutsideBusinessHours},
		{"midnight", 0, 0, ErrOutsideBusinessHours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := day.Add(time.Duration(tt.hour)*time.Hour + time.Duration(tt.minute)*time.Minute)
			if err := BusinessHour(at); !errors.Is(err, tt.wantErr) {
				t.Errorf("BusinessHour(%02d:%02d) = %v, want %v", tt.hour, tt.minute, err, tt.wantErr)
			}
		})
	}
}

func TestNoSameDayConflict(t *testing.T) {
	at := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing []models.Appointment
		wantErr  error
	}{
		{"no appointments", nil, nil},
		{"other day", []models.Appointment{{ScheduledAt: at.AddDate(0, 0, 1)}}, nil},
		{"same day different hour", []models.Appointment{{ScheduledAt: at.Add(3 * time.Hour)}}, ErrDoubleBooking},
		{"same instant", []models.Appointment{{ScheduledAt: at}}, ErrDoubleBooking},
		{"completed same day still counts", []models.Appointment{{ScheduledAt: at.Add(time.Hour), Status: models.AppointmentCompleted}}, ErrDoubleBooking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NoSameDayConflict(at, tt.existing); !errors.Is(err, tt.wantErr) {
				t.Errorf("NoSameDayConflict() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPatientTriaged(t *testing.T) {
	if err := PatientTriaged(&models.Patient{CareStatus: models.CareTriaged}); err != nil {
		t.Errorf("triaged patient should pass, got %v", err)
	}
	for _, s := range []models.CareStatus{models.CareAwaitingTriage, models.CareScheduled, models.CareCompleted} {
		if err := PatientTriaged(&models.Patient{CareStatus: s}); !errors.Is(err, ErrInvalidPatientState) {
			t.Errorf("PatientTriaged(%s) = %v, want ErrInvalidPatientState", s, err)
		}
	}
}

func TestAppointmentScheduled(t *testing.T) {
	if err := AppointmentScheduled(&models.Appointment{Status: models.AppointmentScheduled}); err != nil {
		t.Errorf("scheduled appointment should pass, got %v", err)
	}
	if err := AppointmentScheduled(&models.Appointment{Status: models.AppointmentCompleted}); !errors.Is(err, ErrInvalidAppointmentState) {
		t.Errorf("completed appointment = %v, want ErrInvalidAppointmentState", err)
	}
}

func TestProceduresNonEmpty(t *testing.T) {
	if err := ProceduresNonEmpty("cleaning performed"); err != nil {
		t.Errorf("non-empty text should pass, got %v", err)
	}
	for _, text := range []string{"", "   ", "\n\t"} {
		if err := ProceduresNonEmpty(text); !errors.Is(err, ErrMissingProcedures) {
			t.Errorf("ProceduresNonEmpty(%q) = %v, want ErrMissingProcedures", text, err)
		}
	}
}

func TestCheckAllCollectsEveryViolation(t *testing.T) {
	err := checkAll(nil, ErrCrossClinic, nil, ErrNonBusinessDay, ErrInvalidPatientState)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(ve.Violations))
	}
	for _, sentinel := range []error{ErrCrossClinic, ErrNonBusinessDay, ErrInvalidPatientState} {
		if !errors.Is(err, sentinel) {
			t.Errorf("errors.Is should match %v", sentinel)
		}
	}
	if errors.Is(err, ErrDoubleBooking) {
		t.Error("errors.Is should not match an absent sentinel")
	}
}

func TestCheckAllNilWhenAllPass(t *testing.T) {
	if err := checkAll(nil, nil, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
