package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotSaved is returned when an INSERT of a queue entry completes
	// without error but the number of affected rows is zero, indicating that
	// nothing was actually persisted.
	ErrEntryNotSaved = errors.New("queue entry was not saved")

	// ErrEntryNotFound is returned when an update or delete targets a queue
	// entry that does not exist in the database.
	ErrEntryNotFound = errors.New("queue entry was not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
