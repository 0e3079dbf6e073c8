package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinisys-server/internal/models"
	"clinisys-server/internal/utils"
)

// ClinicHandler handles clinic management requests.
type ClinicHandler struct {
	DB *gorm.DB
}

// NewClinicHandler creates a new ClinicHandler.
func NewClinicHandler(db *gorm.DB) *ClinicHandler {
	return &ClinicHandler{DB: db}
}

// CreateClinicRequest represents the request body for creating a clinic.
type CreateClinicRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
}

// CreateClinic handles creating a new teaching clinic (admin).
func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var req CreateClinicRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existing models.Clinic
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Conflict(c, "A clinic with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	clinicRecord := models.Clinic{
		Name:       req.Name,
		Department: req.Department,
	}
	if err := h.DB.Create(&clinicRecord).Error; err != nil {
		utils.InternalServerError(c, "Failed to create clinic: "+err.Error())
		return
	}

	utils.Created(c, "Clinic created successfully", clinicRecord)
}

// GetClinics handles listing all clinics.
func (h *ClinicHandler) GetClinics(c *gin.Context) {
	var clinics []models.Clinic
	if err := h.DB.Order("name asc").Find(&clinics).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch clinics: "+err.Error())
		return
	}

	utils.Success(c, "Clinics fetched successfully", clinics)
}
