package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinisys-server/internal/clinic"
	"clinisys-server/internal/config"
	"clinisys-server/internal/handlers"
	"clinisys-server/internal/middleware"
	"clinisys-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, coordinator *clinic.Coordinator, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	clinicHandler := handlers.NewClinicHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, coordinator)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// User management (admin), plus the student directory used by
		// reception when booking on a student's behalf.
		userRoutes := private.Group("/users")
		{
			userRoutes.GET("/students", userHandler.GetStudents)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		clinicRoutes := private.Group("/clinics")
		{
			clinicRoutes.GET("", clinicHandler.GetClinics)
			clinicRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), clinicHandler.CreateClinic)
		}

		// Patient registration and triage belong to reception; waiting
		// lists are readable by anyone on staff.
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleReceptionist, models.RoleAdmin), patientHandler.RegisterPatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.POST("/:id/triage", middleware.RoleAuthMiddleware(models.RoleReceptionist, models.RoleAdmin), patientHandler.RecordTriage)
		}

		// Appointment scheduling and procedure registration run through
		// the coordinator; reads are plain queries.
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleStudent, models.RoleReceptionist, models.RoleAdmin), appointmentHandler.ScheduleAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.POST("/:id/procedures", middleware.RoleAuthMiddleware(models.RoleStudent, models.RoleProfessor, models.RoleAdmin), appointmentHandler.RegisterProcedures)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
