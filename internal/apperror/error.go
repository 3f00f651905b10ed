package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE for foreign_key_violation.
const ForeignKeyViolationCode = "23503"

var (
	ErrNotFound     = NewAppError("not found")
	ErrUnauthorized = NewAppError("unauthorized")
	ErrForbidden    = NewAppError("forbidden")
	ErrDecodeBody   = NewAppError("failed to decode request body")
	ErrCancelled    = NewAppError("the action was cancelled")
)

type AppError struct {
	Message string `json:"message"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

type notFoundError struct {
	app *AppError
}

// NewNotFoundErr returns an error matching ErrNotFound that carries its own message.
func NewNotFoundErr(message string) error {
	return &notFoundError{app: NewAppError(message)}
}

func (e *notFoundError) Error() string {
	return e.app.Message
}

func (e *notFoundError) Unwrap() error {
	return e.app
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReportedError is a failure whose Message has already been shown to the operator.
type ReportedError struct {
	Message string
	Err     error
}

func NewReportedError(message string, err error) *ReportedError {
	return &ReportedError{Message: message, Err: err}
}

func (e *ReportedError) Error() string {
	return e.Message
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsForeignKeyViolation reports whether err carries the Postgres FK violation code.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == ForeignKeyViolationCode
	}
	return false
}

// Translator turns an error into the text shown to the operator.
type Translator func(err error) string

// ReferencedTranslator substitutes referencedMessage for FK violations and
// passes every other message through.
func ReferencedTranslator(referencedMessage string) Translator {
	return func(err error) string {
		if IsForeignKeyViolation(err) {
			return referencedMessage
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return pgErr.Message
		}

		return err.Error()
	}
}

func internalError() *AppError {
	return NewAppError("internal error")
}
