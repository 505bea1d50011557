package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

var ErrNoRecipient = errors.New("mail has no recipient")

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Mail struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, message Mail) (err error)
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

// Build turns a Mail into a go-mail message using the configured sender.
func Build(config *config.Config, message Mail) (*mail.Msg, error) {
	if message.To == "" {
		return nil, ErrNoRecipient
	}

	msg := mail.NewMsg()

	if err := msg.FromFormat(config.Mail.FromName, config.Mail.FromAddress); err != nil {
		return nil, fmt.Errorf("failed to set sender: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("failed to set recipient: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)

	for _, attachment := range message.Attachments {
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = string(mail.TypeAppOctetStream)
		}

		if err := msg.AttachReader(
			attachment.Name,
			bytes.NewReader(attachment.Data),
			mail.WithFileContentType(mail.ContentType(contentType)),
		); err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", attachment.Name, err)
		}
	}

	return msg, nil
}

func (m *mailerImpl) Send(ctx context.Context, message Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mail.subject", message.Subject)
	scope.SetAttribute("mail.attachments", len(message.Attachments))

	msg, err := Build(m.config, message)
	if err != nil {
		return err
	}

	smtp := m.config.Mail.SMTP
	options := []mail.Option{mail.WithPort(smtp.Port)}

	if smtp.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(smtp.Username),
			mail.WithPassword(smtp.Password),
		)
	} else {
		options = append(options, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(smtp.Host, options...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("host", smtp.Host).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
