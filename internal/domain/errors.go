package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// these to status codes; services never return transport-specific errors.
var (
	// ErrNotFound covers any tenant-scoped lookup miss. A row owned by a
	// different tenant is reported as not found, never as forbidden.
	ErrNotFound = errors.New("record not found")

	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrPastEndDate      = errors.New("end date cannot be in the past")
	ErrOverlappingRange = errors.New("dates overlap with an existing record for this member")

	// ErrInvalidRefund is returned when a refund amount is non-positive or
	// exceeds the cumulative paid amount of the entity.
	ErrInvalidRefund = errors.New("invalid refund amount")

	// ErrConstraintViolation is returned when the database rejects a write for
	// referential-integrity reasons, e.g. deleting a member with memberships.
	ErrConstraintViolation = errors.New("operation violates a database constraint")

	// ErrDuplicate is returned when a unique field (member email/phone, user
	// email) is already taken within the tenant.
	ErrDuplicate = errors.New("record already exists")
)
