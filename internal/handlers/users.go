package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinisys-server/internal/models"
	"clinisys-server/internal/utils"
)

// UserHandler handles system-user management (admin operations).
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// CreateUserRequest represents the request body for creating a system
// user. Students must carry a registration number and a clinic.
type CreateUserRequest struct {
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	Role               string `json:"role" binding:"required,oneof=student receptionist professor admin"`
	RegistrationNumber string `json:"registrationNumber"`
	PhoneNumber        string `json:"phoneNumber"`
	ClinicID           string `json:"clinicId" binding:"omitempty,uuid"`
}

// CreateUser handles creating a new system user (admin).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role := models.Role(req.Role)
	if role == models.RoleStudent {
		if req.RegistrationNumber == "" {
			utils.BadRequest(c, "registrationNumber is required for students")
			return
		}
		if req.ClinicID == "" {
			utils.BadRequest(c, "clinicId is required for students")
			return
		}
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "User with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Role:               role,
		RegistrationNumber: req.RegistrationNumber,
		PhoneNumber:        req.PhoneNumber,
	}
	if req.ClinicID != "" {
		var clinicRecord models.Clinic
		if err := h.DB.First(&clinicRecord, "id = ?", req.ClinicID).Error; err != nil {
			utils.NotFound(c, "Clinic not found")
			return
		}
		user.ClinicID = &req.ClinicID
	}

	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	utils.Created(c, "User created successfully", user.Sanitize())
}

// GetUsers handles fetching all users, optionally filtered by role.
func (h *UserHandler) GetUsers(c *gin.Context) {
	query := h.DB.Order("last_name asc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch users: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	utils.Success(c, "Users fetched successfully", sanitized)
}

// GetStudents handles fetching all students, optionally scoped to one
// clinic. Used by reception when scheduling on a student's behalf.
func (h *UserHandler) GetStudents(c *gin.Context) {
	query := h.DB.Where("role = ?", models.RoleStudent).Order("last_name asc")
	if clinicID := c.Query("clinicId"); clinicID != "" {
		query = query.Where("clinic_id = ?", clinicID)
	}

	var students []models.User
	if err := query.Find(&students).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch students: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(students))
	for i, s := range students {
		sanitized[i] = s.Sanitize()
	}

	utils.Success(c, "Students fetched successfully", sanitized)
}

// GetUserByID handles fetching a single user by ID (admin).
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// DeleteUser handles removing a user (admin).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	res := h.DB.Delete(&models.User{}, "id = ?", userID)
	if res.Error != nil {
		utils.InternalServerError(c, "Failed to delete user: "+res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}
