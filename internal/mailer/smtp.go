// Package mailer delivers plain text messages over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Transport sends one message.
type Transport interface {
	Send(ctx context.Context, m Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPTransport opens a connection per message, requires STARTTLS and logs in
// with PLAIN auth when a username is configured.
type SMTPTransport struct {
	cfg    SMTPConfig
	logger *zap.Logger
	// tlsConfig is overridden in tests to trust a local server.
	tlsConfig *tls.Config
}

func NewSMTPTransport(cfg SMTPConfig, logger *zap.Logger) *SMTPTransport {
	return &SMTPTransport{
		cfg:       cfg,
		logger:    logger,
		tlsConfig: &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
	}
}

func (t *SMTPTransport) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(t.tlsConfig),
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

// Send fails only when the server did not accept the message. Errors after the
// DATA reply, such as a dropped QUIT, are logged and ignored.
func (t *SMTPTransport) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)

	client, err := mail.NewClient(t.cfg.Host, t.options()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	sendErr := client.Send(msg)
	closeErr := client.Close()
	if sendErr != nil && !msg.IsDelivered() {
		return fmt.Errorf("send: %w", sendErr)
	}
	if err := errors.Join(sendErr, closeErr); err != nil {
		t.logger.Debug("smtp session ended uncleanly after delivery", zap.String("server", addr), zap.Error(err))
	}

	t.logger.Debug("email handed to smtp server", zap.String("server", addr), zap.String("to", m.To))
	return nil
}
