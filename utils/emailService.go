package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"skillup/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillUp <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, nickname string) error {
	subject := "Welcome to SkillUp!"
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your account is ready. Pick a course batch, complete exercises and
		start earning XP. See you on the leaderboard!</p>
		<p>— The SkillUp team</p>`, nickname)

	return SendEmail([]string{email}, subject, body)
}
