package models

// TriagePriority classifies how quickly a triaged patient should be seen.
type TriagePriority string

const (
	PriorityLow    TriagePriority = "low"
	PriorityMedium TriagePriority = "medium"
	PriorityHigh   TriagePriority = "high"
	PriorityUrgent TriagePriority = "urgent"
)

// TriageRecord captures the clinical intake for a patient. Recording one
// is what makes the patient eligible for scheduling.
type TriageRecord struct {
	BaseModel
	PatientID    string `gorm:"size:36;index;not null" json:"patientId"`
	RecordedByID string `gorm:"size:36;index" json:"recordedById"`

	ChiefComplaint string         `gorm:"type:text;not null" json:"chiefComplaint"`
	History        string         `gorm:"type:text" json:"history,omitempty"`
	Medications    string         `gorm:"type:text" json:"medications,omitempty"`
	Allergies      string         `gorm:"type:text" json:"allergies,omitempty"`
	Vitals         string         `gorm:"type:text" json:"vitals,omitempty"`
	PainLevel      string         `gorm:"size:20" json:"painLevel,omitempty"`
	Priority       TriagePriority `gorm:"size:20;default:'medium'" json:"priority"`

	// Relations
	Patient    Patient `gorm:"foreignKey:PatientID" json:"-"`
	RecordedBy User    `gorm:"foreignKey:RecordedByID" json:"-"`
}
