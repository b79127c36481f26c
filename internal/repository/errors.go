package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when trying to create a user with an existing email
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrDuplicateCategory is returned when trying to create a category with an existing name
	ErrDuplicateCategory = errors.New("category with this name already exists")

	// ErrDuplicateTable is returned when trying to create a table with an existing number
	ErrDuplicateTable = errors.New("table with this number already exists")
)
