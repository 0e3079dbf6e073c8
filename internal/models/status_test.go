package models

import "testing"

func TestCareStatusForwardOnly(t *testing.T) {
	order := []CareStatus{CareAwaitingTriage, CareTriaged, CareScheduled, CareCompleted}

	for i, from := range order {
		for j, to := range order {
			got := from.CanAdvanceTo(to)
			want := j == i+1
			if got != want {
				t.Errorf("%s.CanAdvanceTo(%s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCareStatusTerminal(t *testing.T) {
	if !CareCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
	for _, s := range []CareStatus{CareAwaitingTriage, CareTriaged, CareScheduled} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestParseCareStatus(t *testing.T) {
	for _, valid := range []string{"awaiting_triage", "triaged", "scheduled", "completed"} {
		if _, err := ParseCareStatus(valid); err != nil {
			t.Errorf("ParseCareStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "cancelled", "Triaged", "AGENDADO", "unknown"} {
		if _, err := ParseCareStatus(invalid); err == nil {
			t.Errorf("ParseCareStatus(%q) should fail", invalid)
		}
	}
}

func TestAppointmentStatusTransitions(t *testing.T) {
	if !AppointmentScheduled.CanAdvanceTo(AppointmentCompleted) {
		t.Error("scheduled -> completed should be legal")
	}
	if AppointmentCompleted.CanAdvanceTo(AppointmentScheduled) {
		t.Error("completed -> scheduled must be illegal")
	}
	if AppointmentCompleted.CanAdvanceTo(AppointmentCompleted) {
		t.Error("completed -> completed must be illegal")
	}
	if !AppointmentCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "completed"} {
		if _, err := ParseAppointmentStatus(valid); err != nil {
			t.Errorf("ParseAppointmentStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "pending", "cancelled", "Scheduled"} {
		if _, err := ParseAppointmentStatus(invalid); err == nil {
			t.Errorf("ParseAppointmentStatus(%q) should fail", invalid)
		}
	}
}
