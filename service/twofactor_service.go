package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
)

const (
	totpIssuer      = "ProjectFlow"
	backupCodeCount = 8
	// TrustedDeviceTTL is how long a remembered device may skip the
	// second factor.
	TrustedDeviceTTL = 7 * 24 * time.Hour
)

// totpOpts allows two steps of clock skew either way, matching what
// authenticator apps tolerate in practice.
var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      2,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

type TwoFactorService interface {
	Setup(ctx context.Context, principal types.Principal) (*types.TwoFactorSetupResponse, error)
	Enable(ctx context.Context, principal types.Principal, code string) error
	Disable(ctx context.Context, principal types.Principal, code string) error
	Verify(ctx context.Context, req *types.VerifyTwoFactorRequest, ipAddress, userAgent string) (*types.TwoFactorVerifyResponse, error)
	ValidateDeviceToken(ctx context.Context, req *types.ValidateDeviceTokenRequest) (*types.TwoFactorVerifyResponse, error)
	TrustedDevices(ctx context.Context, principal types.Principal) ([]types.TrustedDevice, error)
	RemoveTrustedDevice(ctx context.Context, principal types.Principal, deviceID string) error
	BackupCodes(ctx context.Context, principal types.Principal) ([]string, error)
	RegenerateBackupCodes(ctx context.Context, principal types.Principal) ([]string, error)
}

type twoFactorService struct {
	principals repository.PrincipalRepo
	jwt        *utils.JWTManager
	email      EmailService
}

func NewTwoFactorService(principals repository.PrincipalRepo, jwt *utils.JWTManager, email EmailService) TwoFactorService {
	return &twoFactorService{
		principals: principals,
		jwt:        jwt,
		email:      email,
	}
}

func validTOTP(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totpOpts)
	return err == nil && ok
}

func (s *twoFactorService) Setup(ctx context.Context, principal types.Principal) (*types.TwoFactorSetupResponse, error) {
	sec := principal.Security()
	if sec.TwoFactorEnabled {
		return nil, types.Conflictf("two-factor authentication is already enabled")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: principal.AccountEmail(),
	})
	if err != nil {
		return nil, err
	}
	codes, err := utils.RandomBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}

	sec.TwoFactorSecret = key.Secret()
	sec.BackupCodes = codes
	if err := s.principals.Save(ctx, principal); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	return &types.TwoFactorSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		BackupCodes: codes,
	}, nil
}

func (s *twoFactorService) Enable(ctx context.Context, principal types.Principal, code string) error {
	sec := principal.Security()
	if sec.TwoFactorEnabled {
		return types.Conflictf("two-factor authentication is already enabled")
	}
	if sec.TwoFactorSecret == "" {
		return types.Validationf("run setup before enabling two-factor authentication")
	}
	if !validTOTP(code, sec.TwoFactorSecret) {
		return types.Forbiddenf("invalid verification code")
	}

	principal.SetTwoFactorEnabled(true)
	return s.principals.Save(ctx, principal)
}

func (s *twoFactorService) Disable(ctx context.Context, principal types.Principal, code string) error {
	sec := principal.Security()
	if !sec.TwoFactorEnabled {
		return types.Validationf("two-factor authentication is not enabled")
	}
	if !validTOTP(code, sec.TwoFactorSecret) {
		return types.Forbiddenf("invalid verification code")
	}

	sec.TwoFactorSecret = ""
	sec.BackupCodes = nil
	sec.TrustedDevices = nil
	principal.SetTwoFactorEnabled(false)
	return s.principals.Save(ctx, principal)
}

// consumeBackupCode removes the code if present. Each code works once.
func consumeBackupCode(sec *types.SecurityState, code string) bool {
	for i, c := range sec.BackupCodes {
		if c == code {
			sec.BackupCodes = append(sec.BackupCodes[:i], sec.BackupCodes[i+1:]...)
			return true
		}
	}
	return false
}

func (s *twoFactorService) Verify(ctx context.Context, req *types.VerifyTwoFactorRequest, ipAddress, userAgent string) (*types.TwoFactorVerifyResponse, error) {
	if req.Email == "" || req.Token == "" {
		return nil, types.Validationf("email and token are required")
	}
	principal, err := s.principals.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	sec := principal.Security()
	if !sec.TwoFactorEnabled {
		return nil, types.Validationf("two-factor authentication is not enabled")
	}

	if !validTOTP(req.Token, sec.TwoFactorSecret) && !consumeBackupCode(sec, req.Token) {
		return nil, types.Forbiddenf("invalid verification code")
	}

	resp := &types.TwoFactorVerifyResponse{
		AccountType: accountType(principal),
		Account:     principal,
	}
	resp.AccessToken, err = s.jwt.GenerateSessionToken(principal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.RememberDevice {
		deviceID := uuid.NewString()
		deviceToken, err := s.jwt.GenerateDeviceToken(principal, deviceID)
		if err != nil {
			return nil, err
		}
		name := req.DeviceName
		if name == "" {
			name = "Unknown device"
		}
		sec.TrustedDevices = append(sec.TrustedDevices, types.TrustedDevice{
			DeviceID:   deviceID,
			DeviceName: name,
			LastUsed:   now,
			ExpiresAt:  now.Add(TrustedDeviceTTL),
			IPAddress:  ipAddress,
			UserAgent:  userAgent,
		})
		resp.DeviceToken = deviceToken
		resp.DeviceID = deviceID
	}

	if err := s.principals.Save(ctx, principal); err != nil {
		return nil, err
	}

	if user, ok := principal.(*types.User); ok && user.Settings.Security.LoginAlerts {
		s.email.SendLoginNotification(user.Email, user.DisplayName(), ipAddress, userAgent, now)
	}
	return resp, nil
}

func (s *twoFactorService) ValidateDeviceToken(ctx context.Context, req *types.ValidateDeviceTokenRequest) (*types.TwoFactorVerifyResponse, error) {
	if req.Email == "" || req.DeviceToken == "" || req.DeviceID == "" {
		return nil, types.Validationf("email, deviceToken and deviceId are required")
	}
	claims, err := s.jwt.ParseDeviceToken(req.DeviceToken)
	if err != nil {
		return nil, types.Forbiddenf("invalid device token")
	}
	if claims.Type != "device" || claims.Email != req.Email || claims.DeviceID != req.DeviceID {
		return nil, types.Forbiddenf("device token does not match this account")
	}

	principal, err := s.principals.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	sec := principal.Security()

	found := -1
	for i, d := range sec.TrustedDevices {
		if d.DeviceID == req.DeviceID {
			found = i
			break
		}
	}
	if found < 0 {
		return nil, types.Forbiddenf("device is not trusted")
	}
	now := time.Now()
	if now.After(sec.TrustedDevices[found].ExpiresAt) {
		sec.TrustedDevices = append(sec.TrustedDevices[:found], sec.TrustedDevices[found+1:]...)
		if err := s.principals.Save(ctx, principal); err != nil {
			return nil, err
		}
		return nil, types.Forbiddenf("trusted device has expired")
	}

	sec.TrustedDevices[found].LastUsed = now
	if err := s.principals.Save(ctx, principal); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateSessionToken(principal)
	if err != nil {
		return nil, err
	}
	return &types.TwoFactorVerifyResponse{
		AccessToken: token,
		DeviceID:    req.DeviceID,
		AccountType: accountType(principal),
		Account:     principal,
	}, nil
}

// TrustedDevices prunes expired entries on the way out.
func (s *twoFactorService) TrustedDevices(ctx context.Context, principal types.Principal) ([]types.TrustedDevice, error) {
	sec := principal.Security()
	now := time.Now()
	active := sec.TrustedDevices[:0]
	for _, d := range sec.TrustedDevices {
		if now.Before(d.ExpiresAt) {
			active = append(active, d)
		}
	}
	if len(active) != len(sec.TrustedDevices) {
		sec.TrustedDevices = active
		if err := s.principals.Save(ctx, principal); err != nil {
			return nil, err
		}
	}
	return sec.TrustedDevices, nil
}

func (s *twoFactorService) RemoveTrustedDevice(ctx context.Context, principal types.Principal, deviceID string) error {
	sec := principal.Security()
	for i, d := range sec.TrustedDevices {
		if d.DeviceID == deviceID {
			sec.TrustedDevices = append(sec.TrustedDevices[:i], sec.TrustedDevices[i+1:]...)
			return s.principals.Save(ctx, principal)
		}
	}
	return types.NotFoundf("no trusted device %s", deviceID)
}

func (s *twoFactorService) BackupCodes(ctx context.Context, principal types.Principal) ([]string, error) {
	sec := principal.Security()
	if !sec.TwoFactorEnabled {
		return nil, types.Validationf("two-factor authentication is not enabled")
	}
	return sec.BackupCodes, nil
}

func (s *twoFactorService) RegenerateBackupCodes(ctx context.Context, principal types.Principal) ([]string, error) {
	sec := principal.Security()
	if !sec.TwoFactorEnabled {
		return nil, types.Validationf("two-factor authentication is not enabled")
	}
	codes, err := utils.RandomBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}
	sec.BackupCodes = codes
	if err := s.principals.Save(ctx, principal); err != nil {
		return nil, err
	}
	return codes, nil
}
