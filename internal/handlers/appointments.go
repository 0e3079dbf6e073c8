package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinisys-server/internal/clinic"
	"clinisys-server/internal/middleware"
	"clinisys-server/internal/models"
	"clinisys-server/internal/utils"
)

// AppointmentHandler handles appointment related requests. Reads go
// straight to the database; every status mutation goes through the
// coordinator.
type AppointmentHandler struct {
	DB          *gorm.DB
	Coordinator *clinic.Coordinator
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, coordinator *clinic.Coordinator) *AppointmentHandler {
	return &AppointmentHandler{DB: db, Coordinator: coordinator}
}

// ScheduleAppointmentRequest represents the request body for scheduling
// an appointment.
type ScheduleAppointmentRequest struct {
	StudentID   string    `json:"studentId" binding:"omitempty,uuid"` // Ignored for students; they book for themselves
	PatientID   string    `json:"patientId" binding:"required,uuid"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Type        string    `json:"type"`
}

// ScheduleAppointment handles scheduling a new appointment for a triaged
// patient.
func (h *AppointmentHandler) ScheduleAppointment(c *gin.Context) {
	var req ScheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	studentID := req.StudentID
	if userRole == models.RoleStudent {
		// Students always schedule for themselves
		studentID = userID
	}
	if studentID == "" {
		utils.BadRequest(c, "studentId is required")
		return
	}

	appt, err := h.Coordinator.ScheduleAppointment(c.Request.Context(), clinic.ScheduleRequest{
		StudentID:   studentID,
		PatientID:   req.PatientID,
		ScheduledAt: req.ScheduledAt,
		Type:        req.Type,
	})
	if err != nil {
		writeClinicError(c, err)
		return
	}

	utils.Created(c, "Appointment scheduled successfully", appt)
}

// RegisterProceduresRequest represents the request body for registering
// the procedures performed during a visit.
type RegisterProceduresRequest struct {
	Procedures string `json:"procedures" binding:"required"`
	Notes      string `json:"notes"`
}

// RegisterProcedures handles completing an appointment with the
// procedures performed.
func (h *AppointmentHandler) RegisterProcedures(c *gin.Context) {
	appointmentIDStr := c.Param("id")
	if _, err := uuid.Parse(appointmentIDStr); err != nil {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return
	}

	var req RegisterProceduresRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	// Students can only register procedures for their own appointments.
	if userRole == models.RoleStudent {
		var appt models.Appointment
		if err := h.DB.First(&appt, "id = ?", appointmentIDStr).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.NotFound(c, "Appointment not found")
			} else {
				utils.InternalServerError(c, "Database error: "+err.Error())
			}
			return
		}
		if appt.StudentID != userID {
			utils.Forbidden(c, "You can only register procedures for your own appointments.")
			return
		}
	}

	appt, err := h.Coordinator.RegisterProcedures(c.Request.Context(), clinic.RegisterProceduresRequest{
		AppointmentID: appointmentIDStr,
		Procedures:    req.Procedures,
		Notes:         req.Notes,
	})
	if err != nil {
		writeClinicError(c, err)
		return
	}

	utils.Success(c, "Procedures registered successfully", appt)
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointmentIDStr := c.Param("id")
	if _, err := uuid.Parse(appointmentIDStr); err != nil {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := h.DB.Preload("Patient").Preload("Student").First(&appointment, "id = ?", appointmentIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	if userRole == models.RoleStudent && appointment.StudentID != userID {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// GetAppointments handles listing appointments. Students see their own;
// staff see everything. Supports ?status= and ?patientId= filters, which
// is how the scheduled-for-execution and completed-visit views are built.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	query := h.DB.Preload("Patient").Preload("Student").Order("scheduled_at asc")

	if userRole == models.RoleStudent {
		query = query.Where("student_id = ?", userID)
	} else if studentID := c.Query("studentId"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := models.ParseAppointmentStatus(statusStr)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		query = query.Where("status = ?", status)
	}
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}
