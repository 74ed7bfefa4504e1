package worklog

import "errors"

// Work log errors
var (
	ErrEntryNotFound = errors.New("work log entry not found")
)
