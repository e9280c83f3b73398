package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/sync/errgroup"

	"github.com/SRSager/bucks-county-fence/config"
	"github.com/SRSager/bucks-county-fence/models"
)

// Recipients is the fixed notification list for new leads.
var Recipients = []string{
	"leads@buckscountyfence.com",
	"admin@buckscountyfence.com",
}

const fromName = "Bucks County Fence Leads"

// Message is one outbound notification email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message. Implementations can be swapped
// (SMTP, SendGrid) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks a sender from the configured credentials: SMTP when
// host and user are present, SendGrid when an API key is set, nil when
// neither is configured (development mode).
func NewSender(cfg config.Config) Sender {
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		return &SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		}
	}
	if cfg.SendGridAPIKey != "" {
		return &SendGridSender{
			client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
			from:   cfg.EmailFrom,
		}
	}
	return nil
}

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	body, err := buildMIME(s.From, msg)
	if err != nil {
		return fmt.Errorf("mailer: build message: %w", err)
	}
	auth := smtp.PlainAuth("", s.User, s.Password, s.Host)
	if err := smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{msg.To}, body); err != nil {
		return fmt.Errorf("mailer: smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// buildMIME assembles a multipart/alternative message with plain-text
// and HTML bodies.
func buildMIME(from string, msg Message) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %q <%s>\r\n", fromName, from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", w.Boundary())

	text, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	text.Write([]byte(msg.Text))

	html, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	html.Write([]byte(msg.HTML))

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendGridSender delivers mail through the SendGrid API.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail(fromName, s.from)
	to := sgmail.NewEmail("", msg.To)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}
	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("mailer: sendgrid send to %s: %w", msg.To, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mailer: sendgrid returned status %d for %s", resp.StatusCode, msg.To)
	}
	return nil
}

// Service formats leads and fans them out to the recipient list.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Configured reports whether outbound delivery is set up.
func (s *Service) Configured() bool {
	return s.sender != nil
}

// Deliver sends the lead notification to every recipient concurrently
// and waits for all sends. Any single failure fails the whole delivery.
// Without a configured sender it logs the lead and reports sent=false;
// the caller surfaces that as the development-mode response.
func (s *Service) Deliver(ctx context.Context, lead models.Lead) (recipients int, sent bool, err error) {
	if s.sender == nil {
		raw, _ := json.MarshalIndent(lead, "", "  ")
		log.Printf("mailer: new lead (development mode, email not sent):\n%s", raw)
		return 0, false, nil
	}

	now := time.Now()
	msg := Message{
		ReplyTo: lead.Email,
		Subject: Subject(lead),
		Text:    TextBody(lead, now),
		HTML:    HTMLBody(lead, now),
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, to := range Recipients {
		m := msg
		m.To = to
		g.Go(func() error {
			return s.sender.Send(ctx, m)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, true, err
	}
	return len(Recipients), true, nil
}
