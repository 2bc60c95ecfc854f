package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDNIExists        = errors.New("an active employee with this DNI already exists")
)
