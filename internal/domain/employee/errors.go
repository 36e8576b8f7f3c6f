package employee

import "errors"

var (
	ErrRoleNotFound         = errors.New("role not found in directory")
	ErrDirectoryUnavailable = errors.New("employee directory unavailable")
)
