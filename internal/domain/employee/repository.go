package employee

import "context"

// Directory resolves employee records from the POS. GetByID reports absence
// and unavailability through the Lookup status rather than sentinel errors;
// the error return covers transport failures only.
type Directory interface {
	GetByID(ctx context.Context, id string) (Lookup, error)
}

// RoleLookup resolves operational role names.
type RoleLookup interface {
	GetRoleByID(ctx context.Context, id string) (Role, error)
}
