package guard_test

import (
	"errors"
	"testing"

	"workshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBayAssignmentIsNotConstructed = errors.New("BayAssignment must be created via newBayAssignment")

// bayAssignment mirrors how commands embed the guard: private fields, a
// constructor that sets it and a Validate that reports it.
type bayAssignment struct {
	bay      int
	mechanic string
	guard    guard.ConstructorGuard
}

func newBayAssignment(bay int, mechanic string) (bayAssignment, error) {
	if bay <= 0 {
		return bayAssignment{}, errors.New("bay must be positive")
	}
	if mechanic == "" {
		return bayAssignment{}, errors.New("mechanic is required")
	}
	return bayAssignment{bay: bay, mechanic: mechanic, guard: guard.NewConstructorGuard()}, nil
}

func (a bayAssignment) Validate() error {
	return a.guard.Validate(errBayAssignmentIsNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		passed  error
		wantErr error
	}{
		{
			name:   "constructed guard ignores the passed error",
			guard:  guard.NewConstructorGuard(),
			passed: errBayAssignmentIsNotConstructed,
		},
		{
			name:  "constructed guard with nil error",
			guard: guard.NewConstructorGuard(),
		},
		{
			name:    "zero value returns the passed error",
			passed:  errBayAssignmentIsNotConstructed,
			wantErr: errBayAssignmentIsNotConstructed,
		},
		{
			name:    "zero value falls back to the default error",
			wantErr: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.passed)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	t.Run("built by its constructor", func(t *testing.T) {
		a, err := newBayAssignment(3, "Dana")
		require.NoError(t, err)

		require.NoError(t, a.Validate())
		assert.Equal(t, 3, a.bay)
		assert.Equal(t, "Dana", a.mechanic)
	})

	t.Run("zero value is reported", func(t *testing.T) {
		var a bayAssignment

		require.ErrorIs(t, a.Validate(), errBayAssignmentIsNotConstructed)
	})

	t.Run("struct literal without the guard is reported", func(t *testing.T) {
		a := bayAssignment{bay: 1, mechanic: "Lee"}

		require.ErrorIs(t, a.Validate(), errBayAssignmentIsNotConstructed)
	})

	t.Run("rejected input yields an unconstructed value", func(t *testing.T) {
		a, err := newBayAssignment(0, "Dana")
		require.Error(t, err)

		require.ErrorIs(t, a.Validate(), errBayAssignmentIsNotConstructed)
	})

	t.Run("copies keep the constructed state", func(t *testing.T) {
		a, err := newBayAssignment(2, "Sam")
		require.NoError(t, err)

		copied := a
		copied.bay = 5

		require.NoError(t, copied.Validate())
	})
}
