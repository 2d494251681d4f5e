package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
)

func newTwoFactorFixture(t *testing.T) (service.TwoFactorService, *fakeUserRepo, *fakeEmailService) {
	t.Helper()
	users := newFakeUserRepo()
	employees := newFakeEmployeeRepo()
	principals := repository.NewPrincipalRepo(users, employees)
	email := &fakeEmailService{}
	svc := service.NewTwoFactorService(principals, utils.NewJWTManager("test-secret"), email)

	require.NoError(t, users.Create(context.Background(), owner("Web Blaze")))
	return svc, users, email
}

func fetchOwner(t *testing.T, users *fakeUserRepo) *types.User {
	t.Helper()
	user, err := users.GetByEmail(context.Background(), "alma@webblaze.test")
	require.NoError(t, err)
	return user
}

func enableTwoFactor(t *testing.T, svc service.TwoFactorService, users *fakeUserRepo) *types.TwoFactorSetupResponse {
	t.Helper()
	ctx := context.Background()

	setup, err := svc.Setup(ctx, fetchOwner(t, users))
	require.NoError(t, err)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, fetchOwner(t, users), code))
	return setup
}

func TestSetupAndEnable(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)

	setup, err := svc.Setup(ctx, fetchOwner(t, users))
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	require.Contains(t, setup.QRCode, "data:image/png;base64,")
	require.Len(t, setup.BackupCodes, 8)

	// Enable rejects a garbage code and leaves the flag off.
	require.ErrorIs(t, svc.Enable(ctx, fetchOwner(t, users), "000000"), types.ErrForbidden)
	require.False(t, fetchOwner(t, users).TwoFactorEnabled)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, fetchOwner(t, users), code))

	// The owner account keeps both copies of the flag in sync.
	stored := fetchOwner(t, users)
	require.True(t, stored.TwoFactorEnabled)
	require.True(t, stored.Settings.Security.TwoFactorAuth)

	_, err = svc.Setup(ctx, stored)
	require.ErrorIs(t, err, types.ErrConflict)
}

func TestEnableRequiresSetupFirst(t *testing.T) {
	svc, users, _ := newTwoFactorFixture(t)
	err := svc.Enable(context.Background(), fetchOwner(t, users), "123456")
	require.ErrorIs(t, err, types.ErrValidation)
}

func TestVerifyWithTOTPIssuesSessionToken(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	resp, err := svc.Verify(ctx, &types.VerifyTwoFactorRequest{
		Email: "alma@webblaze.test",
		Token: code,
	}, "203.0.113.9", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Empty(t, resp.DeviceToken)

	claims, err := utils.NewJWTManager("test-secret").ParseAuthToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alma@webblaze.test", claims.Email)
}

func TestBackupCodeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)
	backup := setup.BackupCodes[0]

	_, err := svc.Verify(ctx, &types.VerifyTwoFactorRequest{
		Email: "alma@webblaze.test",
		Token: backup,
	}, "", "")
	require.NoError(t, err)

	stored := fetchOwner(t, users)
	require.Len(t, stored.BackupCodes, 7)
	require.NotContains(t, stored.BackupCodes, backup)

	_, err = svc.Verify(ctx, &types.VerifyTwoFactorRequest{
		Email: "alma@webblaze.test",
		Token: backup,
	}, "", "")
	require.ErrorIs(t, err, types.ErrForbidden)
}

func TestRememberDeviceAndValidateDeviceToken(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	resp, err := svc.Verify(ctx, &types.VerifyTwoFactorRequest{
		Email:          "alma@webblaze.test",
		Token:          code,
		RememberDevice: true,
		DeviceName:     "Work laptop",
	}, "203.0.113.9", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, resp.DeviceToken)
	require.NotEmpty(t, resp.DeviceID)

	stored := fetchOwner(t, users)
	require.Len(t, stored.TrustedDevices, 1)
	require.Equal(t, "Work laptop", stored.TrustedDevices[0].DeviceName)

	// The remembered device bypasses the second factor next time.
	session, err := svc.ValidateDeviceToken(ctx, &types.ValidateDeviceTokenRequest{
		Email:       "alma@webblaze.test",
		DeviceToken: resp.DeviceToken,
		DeviceID:    resp.DeviceID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)

	// A token bound to a different device id is rejected.
	_, err = svc.ValidateDeviceToken(ctx, &types.ValidateDeviceTokenRequest{
		Email:       "alma@webblaze.test",
		DeviceToken: resp.DeviceToken,
		DeviceID:    "someone-elses-device",
	})
	require.ErrorIs(t, err, types.ErrForbidden)
}

func TestExpiredTrustedDeviceIsPruned(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	resp, err := svc.Verify(ctx, &types.VerifyTwoFactorRequest{
		Email:          "alma@webblaze.test",
		Token:          code,
		RememberDevice: true,
	}, "", "")
	require.NoError(t, err)

	stored := fetchOwner(t, users)
	stored.TrustedDevices[0].ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, users.Update(ctx, stored))

	_, err = svc.ValidateDeviceToken(ctx, &types.ValidateDeviceTokenRequest{
		Email:       "alma@webblaze.test",
		DeviceToken: resp.DeviceToken,
		DeviceID:    resp.DeviceID,
	})
	require.ErrorIs(t, err, types.ErrForbidden)
	require.Contains(t, err.Error(), "expired")
	require.Empty(t, fetchOwner(t, users).TrustedDevices)
}

func TestTrustedDevicesLazyPrune(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)

	stored := fetchOwner(t, users)
	stored.TrustedDevices = []types.TrustedDevice{
		{DeviceID: "live", ExpiresAt: time.Now().Add(time.Hour)},
		{DeviceID: "stale", ExpiresAt: time.Now().Add(-time.Hour)},
	}
	require.NoError(t, users.Update(ctx, stored))

	devices, err := svc.TrustedDevices(ctx, fetchOwner(t, users))
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "live", devices[0].DeviceID)
	require.Len(t, fetchOwner(t, users).TrustedDevices, 1)
}

func TestDisableClearsSecondFactorState(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.Disable(ctx, fetchOwner(t, users), code))

	stored := fetchOwner(t, users)
	require.False(t, stored.TwoFactorEnabled)
	require.False(t, stored.Settings.Security.TwoFactorAuth)
	require.Empty(t, stored.TwoFactorSecret)
	require.Empty(t, stored.BackupCodes)
	require.Empty(t, stored.TrustedDevices)
}

func TestRegenerateBackupCodesReplacesTheSet(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTwoFactorFixture(t)
	setup := enableTwoFactor(t, svc, users)

	codes, err := svc.RegenerateBackupCodes(ctx, fetchOwner(t, users))
	require.NoError(t, err)
	require.Len(t, codes, 8)
	require.NotEqual(t, setup.BackupCodes, codes)

	current, err := svc.BackupCodes(ctx, fetchOwner(t, users))
	require.NoError(t, err)
	require.Equal(t, codes, current)
}
