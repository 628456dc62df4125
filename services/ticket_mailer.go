package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"doorlist.app/configs/configsevent"

	"github.com/resend/resend-go/v2"
)

// TicketInfo bilet e-postasının ihtiyaç duyduğu katılımcı ve ödeme alanları.
// Hem doors panelindeki gönderimler hem de /api/send bu yapıyı kullanır.
type TicketInfo struct {
	FirstName     string
	LastName      string
	Email         string
	Guests        int
	PaymentOption string
	PaymentHandle string
}

// ITicketMailer bilet onay e-postasını render edip sağlayıcıya teslim eder.
// Başarıda sağlayıcının atadığı teslimat kimliğini döner. Retry yapılmaz;
// tekrar gönderme kararı operatöre aittir.
type ITicketMailer interface {
	SendTicket(ctx context.Context, info TicketInfo) (string, error)
}

//go:embed templates/ticket_email.html
var ticketEmailFS embed.FS

var ticketEmailTmpl = template.Must(template.ParseFS(ticketEmailFS, "templates/ticket_email.html"))

type ticketEmailData struct {
	Event          *configsevent.Event
	Info           TicketInfo
	TotalAttendees int
	TicketLabel    string
}

// RenderTicketEmail etkinlik konfigürasyonu ve katılımcı bilgisinden
// e-posta gövdesini üretir. Program, fiyatlar ve iletişim adresi dahil
// etkinliğe özel her şey konfigürasyondan gelir; şablon etkinlikler
// arasında düzenlenmez.
func RenderTicketEmail(event *configsevent.Event, info TicketInfo) (string, error) {
	total := info.Guests + 1
	label := "tickets"
	if total == 1 {
		label = "ticket"
	}
	var buf bytes.Buffer
	err := ticketEmailTmpl.Execute(&buf, ticketEmailData{
		Event:          event,
		Info:           info,
		TotalAttendees: total,
		TicketLabel:    label,
	})
	if err != nil {
		return "", fmt.Errorf("bilet şablonu render edilemedi: %w", err)
	}
	return buf.String(), nil
}

// ResendTicketMailer ITicketMailer'ın Resend API implementasyonu.
type ResendTicketMailer struct {
	client *resend.Client
	event  *configsevent.Event
}

// NewResendTicketMailer yeni bir ResendTicketMailer örneği oluşturur.
func NewResendTicketMailer(apiKey string, event *configsevent.Event) *ResendTicketMailer {
	return &ResendTicketMailer{
		client: resend.NewClient(apiKey),
		event:  event,
	}
}

// SendTicket şablonu render eder ve sabit gönderici/konu ile Resend'e iletir.
func (m *ResendTicketMailer) SendTicket(ctx context.Context, info TicketInfo) (string, error) {
	html, err := RenderTicketEmail(m.event, info)
	if err != nil {
		return "", err
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.event.Mail.From,
		To:      []string{info.Email},
		Subject: m.event.Mail.Subject,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("e-posta sağlayıcısı hata döndü: %w", err)
	}
	return sent.Id, nil
}

var _ ITicketMailer = (*ResendTicketMailer)(nil)
