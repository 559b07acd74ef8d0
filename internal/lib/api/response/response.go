package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the wire shape of every success confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

func Error(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Error(strings.Join(errMsgs, ", "))
}
