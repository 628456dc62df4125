package configsevent

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Event tek bir etkinlik örneğinin tüm parametrelerini taşır.
// Form görünümü, bilet e-postası, ödeme seçeneği doğrulaması ve store tablo adı
// tamamen bu yapıdan beslenir; yeni etkinlik = yeni YAML, kod değişikliği değil.
type Event struct {
	Name     string `yaml:"name"`
	DateLine string `yaml:"date_line"` // Örn. "June 13, 2025 • North ATX"
	Venue    string `yaml:"venue"`

	Schedule       []ScheduleEntry `yaml:"schedule"`
	TicketIncludes []string        `yaml:"ticket_includes"`
	PaymentOptions []PaymentOption `yaml:"payment_options"`

	// TableName bu etkinliğin RSVP kayıtlarının tutulduğu tablo.
	// Her etkinlik kendi tablosunu kullanır, kayıtlar etkinlikler arası karışmaz.
	TableName string `yaml:"table_name"`

	Mail MailConfig `yaml:"mail"`
}

// ScheduleEntry etkinlik programındaki tek bir satır.
type ScheduleEntry struct {
	Time string `yaml:"time"`
	Act  string `yaml:"act"`
}

// PaymentOption kabul edilen bir ödeme yöntemi ve bilet fiyatı.
type PaymentOption struct {
	Name       string `yaml:"name"`
	Price      int    `yaml:"price"` // USD, tam sayı
	HandleHint string `yaml:"handle_hint"`
}

// MailConfig bilet e-postasının etkinlikten etkinliğe değişen kısımları.
type MailConfig struct {
	From         string `yaml:"from"`    // "Electric Lounge <tickets@...>" formatında
	Subject      string `yaml:"subject"`
	ContactEmail string `yaml:"contact_email"`
	VenueNotice  string `yaml:"venue_notice"` // Mekan bilgisi ne zaman/nasıl paylaşılacak
}

// Load YAML dosyasını okuyup doğrular.
func Load(path string) (*Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("etkinlik konfigürasyonu okunamadı (%s): %w", path, err)
	}
	return Parse(raw)
}

// Parse ham YAML içeriğinden Event üretir. Testlerde dosyasız kullanım için ayrı.
func Parse(raw []byte) (*Event, error) {
	var event Event
	if err := yaml.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("etkinlik konfigürasyonu parse edilemedi: %w", err)
	}
	if err := event.validate(); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *Event) validate() error {
	if e.Name == "" {
		return fmt.Errorf("etkinlik adı (name) zorunlu")
	}
	if e.TableName == "" {
		return fmt.Errorf("tablo adı (table_name) zorunlu")
	}
	if len(e.PaymentOptions) == 0 {
		return fmt.Errorf("en az bir ödeme seçeneği (payment_options) tanımlanmalı")
	}
	for _, opt := range e.PaymentOptions {
		if opt.Name == "" {
			return fmt.Errorf("ödeme seçeneği adı boş olamaz")
		}
		if opt.Price < 0 {
			return fmt.Errorf("ödeme seçeneği fiyatı negatif olamaz: %s", opt.Name)
		}
	}
	if e.Mail.From == "" || e.Mail.Subject == "" {
		return fmt.Errorf("mail.from ve mail.subject zorunlu")
	}
	return nil
}

// AcceptsPayment verilen ödeme yönteminin bu etkinlikte geçerli olup olmadığını söyler.
func (e *Event) AcceptsPayment(name string) bool {
	for _, opt := range e.PaymentOptions {
		if strings.EqualFold(opt.Name, name) {
			return true
		}
	}
	return false
}

// PaymentOptionNames form doğrulama mesajları için seçenek adlarını döner.
func (e *Event) PaymentOptionNames() []string {
	names := make([]string, 0, len(e.PaymentOptions))
	for _, opt := range e.PaymentOptions {
		names = append(names, opt.Name)
	}
	return names
}
