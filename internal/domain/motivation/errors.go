package motivation

import "errors"

var (
	ErrProgramNotFound    = errors.New("motivation program not found")
	ErrProgramNameExists  = errors.New("motivation program name already exists")
	ErrDepartmentNotFound = errors.New("department not found")
)
