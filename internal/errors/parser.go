package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a classified error: a stable code plus a client-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError classifies storage and transport errors. context names the
// operation ("cart", "add item", ...) and only shapes the fallback message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "internal server error",
		}
	}

	errLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Postgres 23505, sqlite "UNIQUE constraint failed"
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}

	// Postgres 23503, sqlite "FOREIGN KEY constraint failed"
	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "referenced cart does not exist",
		}
	}

	// Postgres 23502, sqlite "NOT NULL constraint failed"
	if strings.Contains(errLower, "not-null constraint") || strings.Contains(errLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "a required field is missing",
		}
	}

	// Postgres 23514
	if strings.Contains(errLower, "check constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: "input value is not valid",
		}
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "bad connection") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "database is unavailable, please retry later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "cart_items") {
		return ErrorInfo{
			Code:    CartItemConflict,
			Message: "item already exists in this cart",
		}
	}
	if strings.Contains(errLower, "carts") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "cart already exists",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "resource already exists",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "item") {
		return "cart item not found"
	}
	if strings.Contains(contextLower, "cart") {
		return "cart not found"
	}
	return "requested resource not found"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "add") || strings.Contains(contextLower, "create") {
		return "failed to save, please retry later"
	}
	if strings.Contains(contextLower, "upload") {
		return "failed to prepare upload, please retry later"
	}
	return "internal server error, please retry later"
}
