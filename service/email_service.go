package service

import (
	"fmt"
	"time"

	"github.com/webblaze/projectflow-be/config"
	"github.com/webblaze/projectflow-be/logger"
	"gopkg.in/gomail.v2"
)

// EmailService sends transactional mail. Every method swallows the send
// error after logging it: mail is a side channel and must never fail the
// write that triggered it.
type EmailService interface {
	SendWelcome(to, firstName string)
	SendEmployeeWelcome(to, name, teamMemberID, tempPassword string, expiresAt time.Time)
	SendOTP(to, name, code string)
	SendLoginNotification(to, name, ipAddress, userAgent string, at time.Time)
}

type emailService struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		dialer:      gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:        cfg.SMTP.From,
		frontendURL: cfg.FrontendURL,
	}
}

func (s *emailService) send(to, subject, htmlBody string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.Log.WithError(err).WithField("to", to).Error("failed to send email")
	}
}

func (s *emailService) SendWelcome(to, firstName string) {
	body := fmt.Sprintf(`<h2>Welcome to ProjectFlow, %s!</h2>
<p>Your company workspace is ready. Sign in to start adding your team.</p>
<p><a href="%s/login">Open ProjectFlow</a></p>`, firstName, s.frontendURL)
	s.send(to, "Welcome to ProjectFlow", body)
}

func (s *emailService) SendEmployeeWelcome(to, name, teamMemberID, tempPassword string, expiresAt time.Time) {
	body := fmt.Sprintf(`<h2>Hi %s, you've been added to ProjectFlow</h2>
<p>Your member ID is <b>%s</b>.</p>
<p>Sign in with this temporary password: <b>%s</b></p>
<p>It expires at %s. You will be asked to choose a new password on first login.</p>
<p><a href="%s/login">Sign in</a></p>`,
		name, teamMemberID, tempPassword, expiresAt.Format(time.RFC1123), s.frontendURL)
	s.send(to, "Your ProjectFlow account", body)
}

func (s *emailService) SendOTP(to, name, code string) {
	body := fmt.Sprintf(`<h2>Password reset</h2>
<p>Hi %s, your one-time code is:</p>
<h1>%s</h1>
<p>It expires in 10 minutes. If you did not request this, ignore this email.</p>`, name, code)
	s.send(to, "Your ProjectFlow password reset code", body)
}

func (s *emailService) SendLoginNotification(to, name, ipAddress, userAgent string, at time.Time) {
	body := fmt.Sprintf(`<h2>New sign-in to your account</h2>
<p>Hi %s, your account was just signed in to.</p>
<ul>
<li>Time: %s</li>
<li>IP address: %s</li>
<li>Device: %s</li>
</ul>
<p>If this wasn't you, reset your password immediately.</p>`,
		name, at.Format(time.RFC1123), ipAddress, userAgent)
	s.send(to, "New sign-in to ProjectFlow", body)
}
