package auth

import (
	"testing"

	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	pair, err := IssueTokenPair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	id, err := ParseAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// a refresh token is not accepted where an access token is expected
	_, err = ParseAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRole(t *testing.T) {
	assert.Equal(t, RoleRecruiter, ResolveRole(&model.User{IsRecruiter: true}))
	assert.Equal(t, RoleFaculty, ResolveRole(&model.User{IsFaculty: true}))
	// recruiter wins when both flags are set on a legacy row
	assert.Equal(t, RoleRecruiter, ResolveRole(&model.User{IsFaculty: true, IsRecruiter: true}))
	assert.Equal(t, RoleNone, ResolveRole(&model.User{}))
}
