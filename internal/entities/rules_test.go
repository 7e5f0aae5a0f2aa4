package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStatusTransitionClosedLock(t *testing.T) {
	for _, next := range []BugStatus{
		StatusNew, StatusAssigned, StatusOpen, StatusInProgress,
		StatusResolved, StatusTesting, StatusClosed,
	} {
		err := ValidateStatusTransition(StatusClosed, next)
		require.Error(t, err, "CLOSED -> %s must be rejected", next)
		require.ErrorIs(t, err, ErrInvalidArgument)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, MsgClosedBugsReopenOnly, verr.Fields["status"])
	}

	require.NoError(t, ValidateStatusTransition(StatusClosed, StatusReopened))
}

func TestValidateStatusTransitionForwardGraphIsPermissive(t *testing.T) {
	// No ordering constraints outside the CLOSED lock.
	require.NoError(t, ValidateStatusTransition(StatusNew, StatusResolved))
	require.NoError(t, ValidateStatusTransition(StatusTesting, StatusInProgress))
	require.NoError(t, ValidateStatusTransition(StatusReopened, StatusClosed))
}

func TestValidateStatusTransitionUnknownStatus(t *testing.T) {
	err := ValidateStatusTransition(StatusNew, BugStatus("BOGUS"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCanUpdateBug(t *testing.T) {
	bug := &Bug{
		ProjectManagerID:   "pm1",
		AssignedDevelopers: []User{{ID: "dev1", Role: RoleDeveloper}},
	}

	require.True(t, CanUpdateBug(User{ID: "dev1", Role: RoleDeveloper}, bug))
	require.True(t, CanUpdateBug(User{ID: "pm1", Role: RoleProjectManager}, bug))
	require.True(t, CanUpdateBug(User{ID: "boss", Role: RoleAdmin}, bug))

	// A manager of another project has no standing.
	require.False(t, CanUpdateBug(User{ID: "pm2", Role: RoleProjectManager}, bug))
	// Matching id alone is not enough without the manager role.
	require.False(t, CanUpdateBug(User{ID: "pm1", Role: RoleTester}, bug))
	require.False(t, CanUpdateBug(User{ID: "tester", Role: RoleTester}, bug))
}

func TestValidateDeveloperAssignment(t *testing.T) {
	bug := &Bug{RequiredDeveloperTypes: []DeveloperType{DeveloperBackend, DeveloperFullStack}}

	require.NoError(t, ValidateDeveloperAssignment(bug,
		User{Email: "b@x.com", Role: RoleDeveloper, DeveloperType: DeveloperBackend}))
	require.NoError(t, ValidateDeveloperAssignment(bug,
		User{Email: "f@x.com", Role: RoleDeveloper, DeveloperType: DeveloperFullStack}))

	err := ValidateDeveloperAssignment(bug,
		User{Email: "fe@x.com", Role: RoleDeveloper, DeveloperType: DeveloperFrontend})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = ValidateDeveloperAssignment(bug, User{Email: "t@x.com", Role: RoleTester})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Without declared required types any developer qualifies.
	open := &Bug{}
	require.NoError(t, ValidateDeveloperAssignment(open,
		User{Email: "fe@x.com", Role: RoleDeveloper, DeveloperType: DeveloperFrontend}))
}
