package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/webblaze/projectflow-be/types"
)

const (
	LoginTokenTTL   = 7 * 24 * time.Hour
	SessionTokenTTL = 24 * time.Hour
	DeviceTokenTTL  = 7 * 24 * time.Hour
)

type AuthClaims struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	CompanyName  string `json:"companyName"`
	Role         string `json:"role"`
	TeamMemberID string `json:"teamMemberId,omitempty"`
	jwt.RegisteredClaims
}

type DeviceClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	DeviceID string `json:"deviceId"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// JWTManager signs and parses every token kind with the process-wide
// secret loaded from configuration.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

func (m *JWTManager) generate(p types.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		ID:           p.AccountID(),
		Email:        p.AccountEmail(),
		CompanyName:  p.Company(),
		Role:         p.AccountRole(),
		TeamMemberID: p.MemberID(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   p.AccountID(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// GenerateLoginToken issues the primary 7-day credential.
func (m *JWTManager) GenerateLoginToken(p types.Principal) (string, error) {
	return m.generate(p, LoginTokenTTL)
}

// GenerateSessionToken issues the shorter 24-hour credential handed out
// after a successful second-factor verification.
func (m *JWTManager) GenerateSessionToken(p types.Principal) (string, error) {
	return m.generate(p, SessionTokenTTL)
}

// GenerateDeviceToken issues the separately scoped credential a trusted
// device presents to bypass the second factor.
func (m *JWTManager) GenerateDeviceToken(p types.Principal, deviceID string) (string, error) {
	now := time.Now()
	claims := DeviceClaims{
		ID:       p.AccountID(),
		Email:    p.AccountEmail(),
		DeviceID: deviceID,
		Type:     "device",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(DeviceTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   p.AccountID(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ParseAuthToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrInvalidKey
	}
	return claims, nil
}

func (m *JWTManager) ParseDeviceToken(tokenString string) (*DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*DeviceClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrInvalidKey
	}
	return claims, nil
}

// Valid reports whether a previously issued auth token is still usable,
// for the stored-token reuse path on login.
func (m *JWTManager) Valid(tokenString string) bool {
	_, err := m.ParseAuthToken(tokenString)
	return err == nil
}
