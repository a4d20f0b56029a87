// Package mailer sends transactional email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/semka95/devcamper/domain"
)

const sendTimeout = 10 * time.Second

// Config stores SMTP configuration
type Config struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	FromName  string `yaml:"from_name"`
	FromEmail string `yaml:"from_email"`
}

// Sender delivers composed messages, *gomail.Dialer implements it
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer implements domain.Mailer
type SMTPMailer struct {
	sender Sender
	from   string
	logger *zap.Logger
	tracer trace.Tracer
}

// NewSMTPMailer creates mailer that dials configured SMTP server for every message
func NewSMTPMailer(cfg Config, logger *zap.Logger, tracer trace.Tracer) *SMTPMailer {
	return NewMailer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), cfg.FromName, cfg.FromEmail, logger, tracer)
}

// NewMailer creates mailer on top of sender
func NewMailer(sender Sender, fromName, fromEmail string, logger *zap.Logger, tracer trace.Tracer) *SMTPMailer {
	from := fromEmail
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	}
	return &SMTPMailer{
		sender: sender,
		from:   from,
		logger: logger,
		tracer: tracer,
	}
}

// Send composes plain text email and sends it
func (s *SMTPMailer) Send(ctx context.Context, msg domain.Message) error {
	ctx, span := s.tracer.Start(ctx, "mailer Send")
	defer span.End()

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- s.sender.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		s.logger.Error("email send cancelled", zap.String("to", msg.To), zap.Error(ctx.Err()))
		return fmt.Errorf("email send cancelled: %w: %s", domain.ErrInternalServerError, ctx.Err().Error())
	case err := <-errc:
		if err != nil {
			span.RecordError(err)
			s.logger.Error("failed to send email", zap.String("to", msg.To), zap.Error(err))
			return fmt.Errorf("email could not be sent: %w: %s", domain.ErrInternalServerError, err.Error())
		}
	}

	s.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
