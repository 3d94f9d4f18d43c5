// Package notify delivers invite emails.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"cs-crm-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// InviteKind distinguishes organization invites from workspace (team) invites
type InviteKind string

const (
	InviteKindOrganization InviteKind = "organization"
	InviteKindWorkspace    InviteKind = "workspace"
)

// InviteMessage is everything needed to render an invite email
type InviteMessage struct {
	To        string
	Kind      InviteKind
	ScopeName string
	Role      string
	InvitedBy string
	ExpiresAt time.Time
	AcceptURL string
}

// Notifier sends invite emails
type Notifier interface {
	SendInvite(ctx context.Context, msg InviteMessage) error
}

// MailSender is the part of *gomail.Dialer used by SMTPNotifier
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

var inviteTemplate = template.Must(template.New("invite").Parse(
	`<p>You have been invited to join the {{.Kind}} <strong>{{.ScopeName}}</strong> as <strong>{{.Role}}</strong>.</p>
<p><a href="{{.AcceptURL}}">Sign in to accept</a>. The invite expires on {{.ExpiresAt.Format "Jan 2, 2006"}}.</p>`))

// SMTPNotifier sends invites through an SMTP relay
type SMTPNotifier struct {
	from   string
	sender MailSender
}

// NewSMTPNotifier creates a notifier backed by a gomail dialer
func NewSMTPNotifier(host string, port int, user, password, from string) *SMTPNotifier {
	return &SMTPNotifier{from: from, sender: gomail.NewDialer(host, port, user, password)}
}

// NewSMTPNotifierWithSender creates a notifier with a custom sender
func NewSMTPNotifierWithSender(from string, sender MailSender) *SMTPNotifier {
	return &SMTPNotifier{from: from, sender: sender}
}

// SendInvite renders and sends the invite email
func (n *SMTPNotifier) SendInvite(ctx context.Context, msg InviteMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("invite recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := inviteTemplate.Execute(&body, msg); err != nil {
		return fmt.Errorf("render invite: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", fmt.Sprintf("You're invited to %s", msg.ScopeName))
	m.SetBody("text/html", body.String())

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send invite: %w", err)
	}
	return nil
}

// LogNotifier only logs invites. Used when no SMTP host is configured.
type LogNotifier struct{}

// SendInvite logs the invite
func (LogNotifier) SendInvite(ctx context.Context, msg InviteMessage) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":         msg.To,
		"kind":       string(msg.Kind),
		"scope":      msg.ScopeName,
		"role":       msg.Role,
		"accept_url": msg.AcceptURL,
	}).Info("Invite created (email delivery disabled)")
	return nil
}

// New returns an SMTP notifier when host is set, otherwise a LogNotifier
func New(host string, port int, user, password, from string) Notifier {
	if host == "" {
		return LogNotifier{}
	}
	return NewSMTPNotifier(host, port, user, password, from)
}
