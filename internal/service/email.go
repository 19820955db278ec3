package service

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cooklyapp/backend/internal/models"
)

// EmailService sends transactional mail over SMTP. When SMTP is not
// configured the message is logged instead, which keeps local development
// and tests working without a mail server.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost:     readSecret("smtp_host"),
		smtpPort:     readSecret("smtp_port"),
		smtpUsername: readSecret("smtp_username"),
		smtpPassword: readSecret("smtp_password"),
		fromEmail:    readSecret("email_from"),
		fromName:     readSecret("email_from_name"),
	}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		fmt.Printf("SMTP not configured, logging email:\n")
		fmt.Printf("To: %s\nSubject: %s\nBody:\n%s\n--- End Email ---\n", to, subject, body)
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user.
func (s *EmailService) SendWelcomeEmail(user *models.User) error {
	subject := "Welcome to Cookly!"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2>Welcome, %s!</h2>
	<p>Your Cookly account is ready. Publish your first recipe, rate what you
	cook, and bookmark what you want to try next.</p>
</body>
</html>
`, user.Name)
	return s.SendEmail(user.Email, subject, body)
}

// SendCommentNotification tells a recipe author that someone commented.
func (s *EmailService) SendCommentNotification(author *models.User, recipe *models.Recipe, commenterName string) error {
	caser := cases.Title(language.English)
	subject := fmt.Sprintf("[Cookly] New comment on %s", caser.String(recipe.Title))
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Hi %s,</p>
	<p><strong>%s</strong> just commented on your recipe <strong>%s</strong>.</p>
</body>
</html>
`, author.Name, commenterName, recipe.Title)
	return s.SendEmail(author.Email, subject, body)
}
