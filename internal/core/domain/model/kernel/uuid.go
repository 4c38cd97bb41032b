package kernel

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero-value UUID is validated.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every template, order and instance in the workshop domain.
// It wraps github.com/google/uuid and treats the nil UUID as "not constructed".
//
// UUID is a comparable value type and can be used as a map key:
//
//	positions := map[kernel.UUID]int{}
//	positions[taskID] = 0
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of a UUID. Any format accepted by
// uuid.Parse is allowed, including braces and the urn:uuid: prefix.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form, as persisted in a
// uuid column. The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDsFromStrings parses a list of identifiers received from outside the
// domain. All malformed entries are reported together.
func UUIDsFromStrings(values []string) ([]UUID, error) {
	ids := make([]UUID, 0, len(values))
	var parseErrs []error
	for i, value := range values {
		id, err := UUIDFromString(value)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		if err = id.Validate(); err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		ids = append(ids, id)
	}

	if len(parseErrs) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("identifiers", errors.Join(parseErrs...))
	}
	return ids, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (not a byte slice).
// It is the representation used by the persistence DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
