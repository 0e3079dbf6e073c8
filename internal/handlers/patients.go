package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinisys-server/internal/middleware"
	"clinisys-server/internal/models"
	"clinisys-server/internal/utils"
)

// errNotAwaitingTriage aborts the triage transaction when the patient
// has already moved past awaiting_triage.
var errNotAwaitingTriage = errors.New("patient is not awaiting triage")

// PatientHandler handles patient registration, triage recording and the
// waiting-list views. Triage is the one status write that happens outside
// the coordinator: it moves a patient from awaiting_triage to triaged via
// a conditional update keyed on the predecessor status, which is the
// trigger the scheduling core reacts to.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// RegisterPatientRequest represents the request body for registering a
// patient at the reception desk.
type RegisterPatientRequest struct {
	NationalID string `json:"nationalId" binding:"required,len=11,numeric"`
	FullName   string `json:"fullName" binding:"required"`
	BirthDate  string `json:"birthDate" binding:"required,datetime=2006-01-02"`
	ClinicID   string `json:"clinicId" binding:"required,uuid"`
}

// RegisterPatient handles registering a new patient. New patients always
// start awaiting triage.
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		utils.BadRequest(c, "Invalid birth date: "+err.Error())
		return
	}

	var clinicRecord models.Clinic
	if err := h.DB.First(&clinicRecord, "id = ?", req.ClinicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Clinic not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var existing models.Patient
	if err := h.DB.Where("national_id = ?", req.NationalID).First(&existing).Error; err == nil {
		utils.Conflict(c, "A patient with this national ID is already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	patient := models.Patient{
		NationalID: req.NationalID,
		FullName:   req.FullName,
		BirthDate:  birthDate,
		CareStatus: models.CareAwaitingTriage,
		ClinicID:   req.ClinicID,
	}
	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to register patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// GetPatients handles listing patients, optionally filtered by care
// status. ?careStatus=awaiting_triage is the triage waiting list and
// ?careStatus=triaged the scheduling-eligible list.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	query := h.DB.Order("full_name asc")

	if statusStr := c.Query("careStatus"); statusStr != "" {
		status, err := models.ParseCareStatus(statusStr)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		query = query.Where("care_status = ?", status)
	}
	if clinicID := c.Query("clinicId"); clinicID != "" {
		query = query.Where("clinic_id = ?", clinicID)
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient with their triage
// records.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patientIDStr := c.Param("id")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return
	}

	var patient models.Patient
	if err := h.DB.Preload("TriageRecords").First(&patient, "id = ?", patientIDStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}

// RecordTriageRequest represents the request body for recording a
// patient's triage.
type RecordTriageRequest struct {
	ChiefComplaint string `json:"chiefComplaint" binding:"required"`
	History        string `json:"history"`
	Medications    string `json:"medications"`
	Allergies      string `json:"allergies"`
	Vitals         string `json:"vitals"`
	PainLevel      string `json:"painLevel"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// RecordTriage stores the intake data and advances the patient from
// awaiting_triage to triaged. The status update is conditional on the
// patient still awaiting triage, so a duplicate submission cannot move
// the status twice or backward.
func (h *PatientHandler) RecordTriage(c *gin.Context) {
	patientIDStr := c.Param("id")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return
	}

	var req RecordTriageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	recordedBy, _ := middleware.GetUserIDFromContext(c)

	priority := models.TriagePriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	record := models.TriageRecord{
		PatientID:      patientIDStr,
		RecordedByID:   recordedBy,
		ChiefComplaint: req.ChiefComplaint,
		History:        req.History,
		Medications:    req.Medications,
		Allergies:      req.Allergies,
		Vitals:         req.Vitals,
		PainLevel:      req.PainLevel,
		Priority:       priority,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, "id = ?", patientIDStr).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Patient{}).
			Where("id = ? AND care_status = ?", patientIDStr, models.CareAwaitingTriage).
			Update("care_status", models.CareTriaged)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNotAwaitingTriage
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		if errors.Is(err, errNotAwaitingTriage) {
			utils.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
			return
		}
		utils.InternalServerError(c, "Failed to record triage: "+err.Error())
		return
	}

	utils.Created(c, "Triage recorded successfully", record)
}
