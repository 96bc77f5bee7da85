package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code when the
// cause already carries one.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error codes. InsufficientHistory is deliberately not here: a forecast with
// too little history is a valid result, not an error.
const (
	CodeUnreadableWorkbook = "UNREADABLE_WORKBOOK"
	CodeNoSheets           = "NO_SHEETS"
	CodeSheetNotFound      = "SHEET_NOT_FOUND"
	CodeEmptySelection     = "EMPTY_SELECTION"
	CodeMissingColumn      = "MISSING_COLUMN"
	CodeOutOfRange         = "OUT_OF_RANGE"
	CodeNoUpload           = "NO_UPLOAD"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Common error constructors
func UnreadableWorkbook(cause error) *AppError {
	return &AppError{Code: CodeUnreadableWorkbook, Message: "payload is not a readable workbook", Cause: cause}
}

func NoSheets() *AppError {
	return New(CodeNoSheets, "workbook declares no sheets")
}

func SheetNotFound(name string) *AppError {
	return New(CodeSheetNotFound, fmt.Sprintf("sheet %q not found in workbook", name))
}

func EmptySelection() *AppError {
	return New(CodeEmptySelection, "sheet selection is empty")
}

func MissingColumn(name string) *AppError {
	return New(CodeMissingColumn, fmt.Sprintf("column %q not present in table", name))
}

func OutOfRange(index, length int) *AppError {
	return New(CodeOutOfRange, fmt.Sprintf("index %d out of range for %d entries", index, length))
}

func NoUpload() *AppError {
	return New(CodeNoUpload, "no upload is currently selected")
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
