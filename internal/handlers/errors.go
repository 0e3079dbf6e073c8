package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinisys-server/internal/clinic"
	"clinisys-server/internal/utils"
)

// writeClinicError translates core errors into HTTP responses. Rule
// violations come back as a 422 listing every failed rule; stale-state
// losers of a concurrent race get a 409; infrastructure failures are 503
// so the caller knows a retry may help.
func writeClinicError(c *gin.Context, err error) {
	var ve *clinic.ValidationError
	switch {
	case errors.As(err, &ve):
		msgs := make([]string, len(ve.Violations))
		for i, v := range ve.Violations {
			msgs[i] = v.Error()
		}
		utils.ValidationFailed(c, msgs)
	case errors.Is(err, clinic.ErrStudentNotFound),
		errors.Is(err, clinic.ErrPatientNotFound),
		errors.Is(err, clinic.ErrAppointmentNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, clinic.ErrInvalidPatientState),
		errors.Is(err, clinic.ErrInvalidAppointmentState):
		utils.Conflict(c, err.Error())
	case errors.Is(err, clinic.ErrInfrastructure):
		utils.ServiceUnavailable(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
