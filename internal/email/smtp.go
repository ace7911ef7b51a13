package email

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// sendWithSMTP delivers a rendered notice over plain SMTP as a
// multipart/alternative message with base64-encoded text and HTML parts.
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	cfg := s.config.SMTP[string(s.provider)]

	boundary := fmt.Sprintf("_NOTICE_BOUNDARY_%d", time.Now().UnixNano())

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", data.FromName, data.From)
	fmt.Fprintf(&msg, "To: %s\r\n", data.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", data.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	writePart(&msg, boundary, "text/plain", textContent)
	writePart(&msg, boundary, "text/html", htmlContent)
	fmt.Fprintf(&msg, "\r\n--%s--", boundary)

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending via SMTP: %w", err)
	}

	return nil
}

func writePart(msg *strings.Builder, boundary, contentType, body string) {
	fmt.Fprintf(msg, "--%s\r\n", boundary)
	fmt.Fprintf(msg, "Content-Type: %s; charset=utf-8\r\n", contentType)
	msg.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	msg.WriteString(base64.StdEncoding.EncodeToString([]byte(body)))
	msg.WriteString("\r\n\r\n")
}
