package location

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or RestoreLocation")

// Location is a physical place where units can be: a warehouse, a workshop or
// a sales branch. Locations are reference data; beyond the active flag they
// have no lifecycle of their own, but the unit state machine depends on their
// type to compute transfer and arrival statuses.
type Location struct {
	id        kernel.UUID
	name      string
	locType   Type
	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewLocation creates an active Location with validation.
func NewLocation(id kernel.UUID, name string, locType Type, now time.Time) (*Location, error) {
	loc := &Location{
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setType(locType),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a Location from persistence without applying
// creation defaults.
func RestoreLocation(id kernel.UUID, name string, locType Type, active bool, createdAt time.Time) (*Location, error) {
	loc, err := NewLocation(id, name, locType, createdAt)
	if err != nil {
		return nil, err
	}

	loc.active = active
	return loc, nil
}

// Validate ensures the Location was constructed through a factory function.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// IsEqual compares two locations by identity.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the display name of the location.
func (l *Location) Name() string {
	return l.name
}

// Type returns the location type (warehouse, workshop or branch).
func (l *Location) Type() Type {
	return l.locType
}

// IsActive reports whether the location is available for operations.
func (l *Location) IsActive() bool {
	return l.active
}

// CreatedAt returns the creation timestamp.
func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

// Deactivate flags the location as inactive. Existing units keep referencing
// it; only new placements are expected to avoid it.
func (l *Location) Deactivate() {
	l.active = false
}

// Activate flags the location as active again.
func (l *Location) Activate() {
	l.active = true
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setType(locType Type) error {
	if err := locType.Validate(); err != nil {
		return err
	}
	l.locType = locType
	return nil
}
