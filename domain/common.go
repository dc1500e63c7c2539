package domain

import (
	"errors"
	"fmt"
	"os"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrParseID       = errors.New("failed to parse id")
)

// ConstraintViolation is returned when a write would break a foreign-key or
// uniqueness constraint. Entity and Field name the offending reference.
type ConstraintViolation struct {
	Entity string
	Field  string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint violation on %s.%s", e.Entity, e.Field)
}

// ValidationError is raised at the gateway boundary before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Reason)
}

// DependencyExists blocks a delete while dependent rows reference the target.
type DependencyExists struct {
	Entity    string
	Dependent string
	Count     int64
}

func (e *DependencyExists) Error() string {
	return fmt.Sprintf("cannot delete %s: %d dependent %s row(s) exist", e.Entity, e.Count, e.Dependent)
}

// MalformedRecord marks an ingestion row that failed type or shape coercion.
// Row is 1-based over data rows, the header excluded.
type MalformedRecord struct {
	Row    int
	Column string
	Cause  string
}

func (e *MalformedRecord) Error() string {
	return fmt.Sprintf("malformed record at row %d, column %q: %s", e.Row, e.Column, e.Cause)
}
