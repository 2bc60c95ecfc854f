package report

import "errors"

var (
	ErrMissingDateRange = errors.New("start and end are required in YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("start must not be after end")
	ErrMissingDate      = errors.New("date is required in YYYY-MM-DD format")
	ErrMissingPeriod    = errors.New("year and month are required")
)
