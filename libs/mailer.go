package libs

import (
	"classifieds/models"
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	if from == "" {
		from = user
	}
	return &Mailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func passwordChangedMessage(from string, user *models.User, at time.Time) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Your password was changed")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Password changed</h2>
    <p>Hello %s,</p>
    <p>The password of your account was changed.</p>
    <p>Time: %s</p>
    <p>If this was not you, please contact support immediately.</p>
</body>
</html>
	`, user.FirstName, at.UTC().Format("2006-01-02 15:04 MST"))

	m.SetBody("text/html", body)
	return m
}

func (s *Mailer) NotifyPasswordChanged(_ context.Context, user *models.User) error {
	if err := s.dialer.DialAndSend(passwordChangedMessage(s.from, user, time.Now())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
