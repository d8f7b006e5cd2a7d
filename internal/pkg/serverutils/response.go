package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ai-tutor-be/internal/pkg/apperr"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

var validate = validator.New()

// ValidateRequest checks struct-tag constraints on a request body and converts
// the first violation into a validation-input error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if ok := isValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field()[:1]) + verrs[0].Field()[1:]
			return apperr.ValidationInput(fmt.Sprintf("field %q is required", field))
		}
		return apperr.ValidationInput(err.Error())
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
