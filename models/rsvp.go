// models/rsvp.go
package models

import (
	"time"

	"doorlist.app/models/helpers"
)

// RSVP bir bilet talebini (form gönderimini) temsil eder.
// Etkinlik başına ayrı tablo kullanıldığı için tablo adı modelde sabit değil,
// repository katmanında etkinlik konfigürasyonundan verilir.
type RSVP struct {
	BaseModel

	Firstname string `gorm:"column:firstname;type:varchar(100);not null" json:"firstname"`
	Lastname  string `gorm:"column:lastname;type:varchar(100);not null" json:"lastname"`

	// Email store seviyesinde unique; duplicate kontrolünün tek otoritesi bu index.
	Email string `gorm:"column:email;type:varchar(150);not null;uniqueIndex" json:"email"`

	// Guests gönderen kişi hariç ek katılımcı sayısı, >= 0.
	Guests int `gorm:"column:guests;type:integer;not null;default:0" json:"guests"`

	PaymentOption string `gorm:"column:payment_option;type:varchar(30);not null" json:"paymentOption"`
	PaymentHandle string `gorm:"column:payment_handle;type:varchar(100);not null" json:"paymentHandle"`

	// Attended kapıda check-in ile toggle edilir.
	Attended bool `gorm:"column:attended;not null;default:false" json:"attended"`

	// TicketsSent "gönderme denendi" anlamına gelir; e-posta sağlayıcısı
	// sonradan hata dönse bile geri alınmaz. Teslimat takibi için
	// TicketsSentAt ve LastEmailID ayrıca tutulur: LastEmailID yalnızca
	// sağlayıcı başarı döndüğünde yazılır.
	TicketsSent   bool       `gorm:"column:tickets_sent;not null;default:false" json:"tickets_sent"`
	TicketsSentAt *time.Time `gorm:"column:tickets_sent_at" json:"tickets_sent_at,omitempty"`
	LastEmailID   string     `gorm:"column:last_email_id;type:varchar(100)" json:"-"`

	// AdditionalGuests kapı görevlisinin sonradan eklediği isimler, en fazla 5.
	// Her kayıt listenin tamamını değiştirir.
	AdditionalGuests helpers.StringSlice `gorm:"column:additional_guests;type:jsonb" json:"additional_guests"`
}

// TotalAttendees gönderen dahil toplam katılımcı sayısı.
func (r *RSVP) TotalAttendees() int {
	return r.Guests + 1
}
