// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and loads HTML
// templates from the filesystem to render email bodies.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client wraps the Resend client and a logger.
//
// client stays nil when no API key is configured; sends then become
// logged no-ops instead of failed (and retried) background tasks.
type Client struct {
	client *resend.Client
	logger *zerolog.Logger

	fromName    string
	fromAddress string
}

// NewClient creates an email Client using the API key and sender identity
// from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		logger:      logger,
		fromName:    cfg.Email.FromName,
		fromAddress: cfg.Email.FromAddress,
	}

	if cfg.Email.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Email.ResendAPIKey)
	} else {
		logger.Warn().Msg("no email API key configured, outbound email is disabled")
	}

	return c
}

// SendEmail sends an email with HTML rendered from a template file.
//
// Steps:
//   - Load the template file from templates/emails/<name>.html
//   - Execute the template with data into a buffer
//   - Call the Resend API to send the email
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if c.client == nil {
		c.logger.Info().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("outbound email disabled, skipping send")
		return nil
	}

	tmplPath := fmt.Sprintf("%s/%s.html", "templates/emails", templateName)

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress),
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	_, err = c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
