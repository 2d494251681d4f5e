package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
)

func testPrincipal() types.Principal {
	return &types.Employee{
		ID:           "64f000000000000000000001",
		Name:         "Dana Cole",
		Email:        "dana@webblaze.test",
		TeamMemberID: "WB-001",
		CompanyName:  "Web Blaze",
		Role:         types.ROLE_TEAM_LEAD,
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	m := utils.NewJWTManager("test-secret")
	token, err := m.GenerateLoginToken(testPrincipal())
	require.NoError(t, err)

	claims, err := m.ParseAuthToken(token)
	require.NoError(t, err)
	require.Equal(t, "64f000000000000000000001", claims.ID)
	require.Equal(t, "dana@webblaze.test", claims.Email)
	require.Equal(t, "Web Blaze", claims.CompanyName)
	require.Equal(t, types.ROLE_TEAM_LEAD, claims.Role)
	require.Equal(t, "WB-001", claims.TeamMemberID)
	require.True(t, m.Valid(token))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := utils.NewJWTManager("secret-a").GenerateLoginToken(testPrincipal())
	require.NoError(t, err)

	other := utils.NewJWTManager("secret-b")
	_, err = other.ParseAuthToken(token)
	require.Error(t, err)
	require.False(t, other.Valid(token))
}

func TestDeviceTokenCarriesDeviceClaims(t *testing.T) {
	m := utils.NewJWTManager("test-secret")
	token, err := m.GenerateDeviceToken(testPrincipal(), "device-123")
	require.NoError(t, err)

	claims, err := m.ParseDeviceToken(token)
	require.NoError(t, err)
	require.Equal(t, "device", claims.Type)
	require.Equal(t, "device-123", claims.DeviceID)
	require.Equal(t, "dana@webblaze.test", claims.Email)
}

func TestAuthTokenIsNotADeviceToken(t *testing.T) {
	m := utils.NewJWTManager("test-secret")
	token, err := m.GenerateLoginToken(testPrincipal())
	require.NoError(t, err)

	claims, err := m.ParseDeviceToken(token)
	if err == nil {
		// The signature checks out either way; the type discriminator is
		// what keeps a login token from passing as a device token.
		require.NotEqual(t, "device", claims.Type)
	}
}
