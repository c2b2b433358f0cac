package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSicilNoExists    = errors.New("sicil no already registered")
)
