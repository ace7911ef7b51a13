package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers a rendered notice through the Sendgrid API. An
// empty From falls back to the configured Sendgrid sender address.
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	from := data.From
	if from == "" {
		from = s.config.Sendgrid.From
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(data.FromName, from),
		data.Subject,
		mail.NewEmail("", data.To),
		textContent,
		htmlContent,
	)

	response, err := s.sendgridClient.Send(message)
	if err != nil {
		return fmt.Errorf("sending via Sendgrid: %w", err)
	}

	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
