package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	netmail "net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const smtpDialTimeout = 10 * time.Second

// smtpTransport delivers mail through an SMTP relay with STARTTLS when offered.
type smtpTransport struct {
	addr     string
	host     string
	from     *netmail.Address
	username string
	password string
	logger   *slog.Logger
}

// NewSMTPTransport builds the relay transport from mail configuration.
func NewSMTPTransport(cfg config.MailConfig, logger *slog.Logger) (service.MailTransport, error) {
	from, err := netmail.ParseAddress(cfg.From)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mail.from address")
	}

	return &smtpTransport{
		addr:     net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		host:     cfg.SMTP.Host,
		from:     from,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		logger:   logger,
	}, nil
}

func (t *smtpTransport) Deliver(ctx context.Context, event *service.MailEvent) error {
	to, err := netmail.ParseAddress(event.Address)
	if err != nil {
		return errors.Wrap(service.ErrMailRejected, "invalid recipient address")
	}

	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp relay")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to start smtp session")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: t.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "starttls failed")
		}
	}

	if t.username != "" {
		if err := client.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
			return classifySMTPError(err, "smtp auth failed")
		}
	}

	if err := client.Mail(t.from.Address); err != nil {
		return classifySMTPError(err, "MAIL FROM rejected")
	}
	if err := client.Rcpt(to.Address); err != nil {
		return classifySMTPError(err, "RCPT TO rejected")
	}

	w, err := client.Data()
	if err != nil {
		return classifySMTPError(err, "DATA rejected")
	}
	if _, err := w.Write(buildMessage(t.from, to, event)); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write message")
	}
	if err := w.Close(); err != nil {
		return classifySMTPError(err, "message rejected")
	}

	t.logger.InfoContext(ctx, "Mail delivered", slog.String("message_id", event.MessageID))

	return errors.Wrap(client.Quit(), "smtp quit failed")
}

// classifySMTPError treats 5xx replies as permanent.
func classifySMTPError(err error, message string) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && tpErr.Code >= 500 {
		return errors.Wrap(errors.Join(service.ErrMailRejected, err), message)
	}

	return errors.Wrap(err, message)
}

func buildMessage(from, to *netmail.Address, event *service.MailEvent) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", to.String())
	fmt.Fprintf(&buf, "Subject: %s\r\n", encodeHeader(event.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	if event.MessageID != "" {
		fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", event.MessageID, domainOf(from.Address))
	}
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.Write(normalizeNewlines(event.Content))

	return buf.Bytes()
}

func encodeHeader(value string) string {
	return mime.QEncoding.Encode("utf-8", value)
}

func domainOf(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 {
		return address[at+1:]
	}

	return "localhost"
}

func normalizeNewlines(content string) []byte {
	normalized := bytes.ReplaceAll([]byte(content), []byte("\r\n"), []byte("\n"))

	return bytes.ReplaceAll(normalized, []byte("\n"), []byte("\r\n"))
}
