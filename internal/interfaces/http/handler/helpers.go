package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/expensedesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires the project's custom binding rules into
// gin's validator. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	// dateiso accepts calendar dates in YYYY-MM-DD form
	return v.RegisterValidation("dateiso", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// bindJSON binds the request body and, on failure, writes a validation
// error response. Returns false when the request was already answered.
func bindJSON(c *gin.Context, h *BaseHandler, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.ValidationError(c, toValidationDetails(verrs))
			return false
		}
		h.Error(c, 400, dto.ErrCodeInvalidJSON, "Request body is not valid JSON: "+err.Error())
		return false
	}
	return true
}

// toValidationDetails flattens validator errors into response details
func toValidationDetails(verrs validator.ValidationErrors) []dto.ValidationDetail {
	details := make([]dto.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.ValidationDetail{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "dateiso":
		return "Must be a calendar date in YYYY-MM-DD form"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Failed validation rule %q", fe.Tag())
	}
}
