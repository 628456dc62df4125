package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/models"
	"doorlist.app/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RSVPServiceError özel servis hataları.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPNotFound       RSVPServiceError = "rsvp not found"
	ErrRSVPInvalidInput   RSVPServiceError = "invalid rsvp data"
	ErrDuplicateEmail     RSVPServiceError = "an rsvp with this email already exists"
	ErrInvalidPayment     RSVPServiceError = "payment option is not accepted for this event"
	ErrTooManyGuestNames  RSVPServiceError = "at most 5 guest names can be saved"
	ErrTicketEmailFailed  RSVPServiceError = "ticket email could not be sent"
	ErrRSVPCreationFailed RSVPServiceError = "rsvp could not be saved"
)

// MaxAdditionalGuests bir kayda eklenebilecek misafir ismi üst sınırı.
const MaxAdditionalGuests = 5

// SubmissionInput bilet talep formundan veya JSON API'den gelen veri.
// JSON alan adları dış arayüz sözleşmesi (firstName/lastName camelCase),
// store kolonları ise küçük harf; eşleme burada yapılır.
type SubmissionInput struct {
	FirstName     string `json:"firstName" form:"firstname" validate:"required"`
	LastName      string `json:"lastName" form:"lastname" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Guests        int    `json:"guests" form:"guests" validate:"gte=0"`
	PaymentOption string `json:"paymentOption" form:"paymentOption" validate:"required"`
	PaymentHandle string `json:"paymentHandle" form:"paymentHandle" validate:"required"`
}

// FieldErrors alan bazlı doğrulama mesajları. error implement eder ki
// handler errors.As ile yakalayıp formda gösterebilsin.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// IRSVPService RSVP yaşam döngüsü işlemleri için arayüz.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, input SubmissionInput) (*models.RSVP, error)
	ListRSVPs(ctx context.Context) ([]models.RSVP, error)
	GetRSVP(ctx context.Context, id uint) (*models.RSVP, error)
	ToggleCheckIn(ctx context.Context, id uint) (bool, error)
	SaveGuestNames(ctx context.Context, id uint, names []string) error
	SendTicket(ctx context.Context, id uint) (string, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo     repositories.IRSVPRepository
	mailer   ITicketMailer
	event    *configsevent.Event
	validate *validator.Validate
}

// NewRSVPService yeni bir RSVPService örneği oluşturur (bağımlılıklar enjekte edilir).
func NewRSVPService(repo repositories.IRSVPRepository, mailer ITicketMailer, event *configsevent.Event) IRSVPService {
	return &RSVPService{
		repo:     repo,
		mailer:   mailer,
		event:    event,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// validateSubmission şema kontrolünü yapar ve alan bazlı mesaj üretir.
func (s *RSVPService) validateSubmission(input SubmissionInput) error {
	err := s.validate.Struct(input)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrRSVPInvalidInput, err)
		}
		fields := FieldErrors{}
		for _, fe := range verrs {
			switch fe.Field() {
			case "FirstName":
				fields["firstname"] = "First name is required"
			case "LastName":
				fields["lastname"] = "Last name is required"
			case "Email":
				if fe.Tag() == "email" {
					fields["email"] = "Enter a valid email address"
				} else {
					fields["email"] = "Email is required"
				}
			case "Guests":
				fields["guests"] = "Guest count cannot be negative"
			case "PaymentOption":
				fields["paymentOption"] = "Choose a payment option"
			case "PaymentHandle":
				fields["paymentHandle"] = "Payment handle is required"
			}
		}
		return fields
	}
	if !s.event.AcceptsPayment(input.PaymentOption) {
		return FieldErrors{
			"paymentOption": fmt.Sprintf("Payment option must be one of: %s",
				strings.Join(s.event.PaymentOptionNames(), ", ")),
		}
	}
	return nil
}

// SubmitRSVP formdan gelen talebi doğrulayıp kaydeder.
// Duplicate e-posta kararını store'un unique index'i verir; ön okuma yok.
func (s *RSVPService) SubmitRSVP(ctx context.Context, input SubmissionInput) (*models.RSVP, error) {
	if err := s.validateSubmission(input); err != nil {
		return nil, err
	}

	rsvp := &models.RSVP{
		Firstname:     strings.TrimSpace(input.FirstName),
		Lastname:      strings.TrimSpace(input.LastName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Guests:        input.Guests,
		PaymentOption: strings.ToLower(input.PaymentOption),
		PaymentHandle: strings.TrimSpace(input.PaymentHandle),
	}

	if err := s.repo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		configslog.Log.Error("SubmitRSVP: kayıt oluşturulamadı", zap.String("email", rsvp.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRSVPCreationFailed, err)
	}

	configslog.SLog.Infow("RSVP kaydedildi", "id", rsvp.ID, "email", rsvp.Email, "guests", rsvp.Guests)
	return rsvp, nil
}

// ListRSVPs tüm kayıtları gönderim sırasıyla döner (doors tablosu için).
func (s *RSVPService) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	return s.repo.FindAll(ctx)
}

// GetRSVP tek kayıt getirir.
func (s *RSVPService) GetRSVP(ctx context.Context, id uint) (*models.RSVP, error) {
	rsvp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

// ToggleCheckIn attended bayrağının tersini yazar ve yeni değeri döner.
// İki kez çağrılması kaydı başlangıç durumuna getirir.
func (s *RSVPService) ToggleCheckIn(ctx context.Context, id uint) (bool, error) {
	rsvp, err := s.GetRSVP(ctx, id)
	if err != nil {
		return false, err
	}
	next := !rsvp.Attended
	if err := s.repo.SetAttended(ctx, id, next); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, ErrRSVPNotFound
		}
		return false, err
	}
	return next, nil
}

// SaveGuestNames boş girdileri ayıklayıp listenin tamamını değiştirir.
// Ayıklama sonrası 5'ten fazla isim kalıyorsa kayıt reddedilir.
func (s *RSVPService) SaveGuestNames(ctx context.Context, id uint, names []string) error {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) > MaxAdditionalGuests {
		return ErrTooManyGuestNames
	}
	if err := s.repo.ReplaceAdditionalGuests(ctx, id, filtered); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRSVPNotFound
		}
		return err
	}
	return nil
}

// SendTicket önce tickets_sent bayrağını yazar, sonra e-postayı gönderir.
// Bayrak "gönderme denendi" demektir: e-posta adımı başarısız olsa da geri
// alınmaz. Sağlayıcı kimliği yalnızca başarı durumunda kaydedilir, böylece
// denenen ve teslim edilen sonradan ayırt edilebilir.
func (s *RSVPService) SendTicket(ctx context.Context, id uint) (string, error) {
	rsvp, err := s.GetRSVP(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetTicketsSent(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrRSVPNotFound
		}
		return "", err
	}

	emailID, err := s.mailer.SendTicket(ctx, TicketInfo{
		FirstName:     rsvp.Firstname,
		LastName:      rsvp.Lastname,
		Email:         rsvp.Email,
		Guests:        rsvp.Guests,
		PaymentOption: rsvp.PaymentOption,
		PaymentHandle: rsvp.PaymentHandle,
	})
	if err != nil {
		configslog.Log.Error("SendTicket: e-posta gönderilemedi",
			zap.Uint("id", id), zap.String("email", rsvp.Email), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrTicketEmailFailed, err)
	}

	// Teslimat kimliği muhasebe amaçlı; yazılamazsa gönderim yine de başarılı.
	if err := s.repo.SetLastEmailID(ctx, id, emailID); err != nil {
		configslog.Log.Warn("SendTicket: teslimat kimliği kaydedilemedi",
			zap.Uint("id", id), zap.String("email_id", emailID), zap.Error(err))
	}

	configslog.SLog.Infow("Bilet e-postası gönderildi", "id", id, "email", rsvp.Email, "email_id", emailID)
	return emailID, nil
}

var _ IRSVPService = (*RSVPService)(nil)
