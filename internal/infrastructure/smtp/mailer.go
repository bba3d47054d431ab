package smtp

import (
	"fmt"

	"github.com/portfolio-qa-api/internal/config"
	"gopkg.in/gomail.v2"
)

const subject = "Your Verification Code"

// Mailer delivers OTP codes over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	sender string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
		sender: cfg.MailSenderName,
	}
}

// SendCode sends the 6-digit code to the user.
func (m *Mailer) SendCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.sender, m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", codeBody(code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func codeBody(code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<p>Your verification code is:</p>
			<h1 style="letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 5 minutes.</p>
			<p>If you did not request this, please ignore this email.</p>
		</div>
	`, code)
}
