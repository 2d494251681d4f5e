package types

// Principal is the authenticated actor behind a request. The two account
// kinds (owner User, Employee) live in separate collections with separate
// schemas but share the login, OTP and 2FA flows; writing those flows once
// against this interface keeps them from being duplicated per kind.
type Principal interface {
	AccountID() string
	AccountEmail() string
	AccountRole() string
	Company() string
	DisplayName() string
	PasswordHash() string
	SetPasswordHash(hash string)
	Security() *SecurityState
	// SetTwoFactorEnabled flips every storage location of the 2FA flag in
	// one call. The owner account keeps a second copy under
	// settings.security for backward compatibility; both must always be
	// written together.
	SetTwoFactorEnabled(enabled bool)
	// MemberID returns the human-readable employee identifier, empty for
	// owner accounts.
	MemberID() string
}

func (u *User) AccountID() string    { return u.ID }
func (u *User) AccountEmail() string { return u.Email }
func (u *User) AccountRole() string  { return u.Role }
func (u *User) Company() string      { return u.CompanyName }

func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) PasswordHash() string        { return u.Password }
func (u *User) SetPasswordHash(hash string) { u.Password = hash }
func (u *User) Security() *SecurityState    { return &u.SecurityState }

func (u *User) SetTwoFactorEnabled(enabled bool) {
	u.TwoFactorEnabled = enabled
	u.Settings.Security.TwoFactorAuth = enabled
}

func (u *User) MemberID() string { return "" }

func (e *Employee) AccountID() string    { return e.ID }
func (e *Employee) AccountEmail() string { return e.Email }
func (e *Employee) AccountRole() string  { return e.Role }
func (e *Employee) Company() string      { return e.CompanyName }

func (e *Employee) DisplayName() string {
	if e.Name == "" {
		return e.Email
	}
	return e.Name
}

func (e *Employee) PasswordHash() string        { return e.Password }
func (e *Employee) SetPasswordHash(hash string) { e.Password = hash }
func (e *Employee) Security() *SecurityState    { return &e.SecurityState }

func (e *Employee) SetTwoFactorEnabled(enabled bool) {
	e.TwoFactorEnabled = enabled
}

func (e *Employee) MemberID() string { return e.TeamMemberID }
