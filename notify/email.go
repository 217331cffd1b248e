package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"ryokan_check/config"
)

// Email sends alerts over plain SMTP. Urgency maps to an importance
// header so high-priority alerts stand out in most clients.
type Email struct {
	cfg config.SMTPConfig
}

func NewEmail(cfg config.SMTPConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Send(_ context.Context, subject, body, link string, urgency Urgency) bool {
	text := body
	if link != "" && !strings.Contains(body, link) {
		text += "\n\nBook now: " + link
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", e.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", e.cfg.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	if urgency != UrgencyNormal {
		msg.WriteString("Importance: high\r\n")
	}
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(text)

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	var auth smtp.Auth
	if e.cfg.User != "" {
		auth = smtp.PlainAuth("", e.cfg.User, e.cfg.Password, e.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, e.cfg.From, []string{e.cfg.To}, []byte(msg.String())); err != nil {
		log.Printf("email: send failed: %v", err)
		return false
	}
	return true
}
