package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/database/migrations"
	"doorlist.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testEvent() *configsevent.Event {
	return &configsevent.Event{
		Name:     "Electric Lounge",
		DateLine: "June 13, 2025 • North ATX",
		Schedule: []configsevent.ScheduleEntry{
			{Time: "7:00 PM", Act: "Doors Open"},
			{Time: "8:00 PM", Act: "Mockjaw"},
		},
		TicketIncludes: []string{"Food and drink voucher"},
		PaymentOptions: []configsevent.PaymentOption{
			{Name: "venmo", Price: 20},
			{Name: "cashapp", Price: 20},
		},
		TableName: "electric_lounge_test",
		Mail: configsevent.MailConfig{
			From:         "Electric Lounge <tickets@example.com>",
			Subject:      "Your Tickets",
			ContactEmail: "contact@example.com",
		},
	}
}

// fakeMailer gönderimleri kaydeder; istenirse hata döner.
type fakeMailer struct {
	id      string
	err     error
	sent    []TicketInfo
	renders []string
	event   *configsevent.Event
}

func (f *fakeMailer) SendTicket(_ context.Context, info TicketInfo) (string, error) {
	f.sent = append(f.sent, info)
	if f.event != nil {
		html, err := RenderTicketEmail(f.event, info)
		if err != nil {
			return "", err
		}
		f.renders = append(f.renders, html)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func newTestService(t *testing.T, mailer *fakeMailer) (IRSVPService, repositories.IRSVPRepository) {
	t.Helper()
	configslog.InitLogger()

	event := testEvent()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.MigrateRSVPTable(db, event.TableName))

	repo := repositories.NewRSVPRepository(db, event.TableName)
	return NewRSVPService(repo, mailer, event), repo
}

func validInput() SubmissionInput {
	return SubmissionInput{
		FirstName:     "A",
		LastName:      "B",
		Email:         "a@b.com",
		Guests:        2,
		PaymentOption: "venmo",
		PaymentHandle: "@a",
	}
}

func TestSubmitRSVPCreatesRecord(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{id: "re_1"})
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)
	assert.NotZero(t, rsvp.ID)
	assert.False(t, rsvp.Attended)
	assert.False(t, rsvp.TicketsSent)
	assert.GreaterOrEqual(t, rsvp.Guests, 0)

	all, err := svc.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitRSVPDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{id: "re_1"})
	ctx := context.Background()

	_, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	// Aynı e-posta farklı büyük/küçük harfle gelse de normalize edilir.
	input := validInput()
	input.Email = "A@B.com"
	_, err = svc.SubmitRSVP(ctx, input)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := svc.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitRSVPFieldValidation(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{})
	ctx := context.Background()

	input := SubmissionInput{Email: "not-an-email", Guests: -1}
	_, err := svc.SubmitRSVP(ctx, input)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "firstname")
	assert.Contains(t, fields, "lastname")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "guests")
	assert.Contains(t, fields, "paymentOption")
	assert.Contains(t, fields, "paymentHandle")
}

func TestSubmitRSVPRejectsUnknownPaymentOption(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{})

	input := validInput()
	input.PaymentOption = "zelle"
	_, err := svc.SubmitRSVP(context.Background(), input)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "paymentOption")
}

func TestToggleCheckInIsInvolution(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{})
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	attended, err := svc.ToggleCheckIn(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, attended)

	attended, err = svc.ToggleCheckIn(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.False(t, attended)

	_, err = svc.ToggleCheckIn(ctx, 9999)
	assert.ErrorIs(t, err, ErrRSVPNotFound)
}

func TestSaveGuestNamesFiltersBlanks(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{})
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SaveGuestNames(ctx, rsvp.ID, []string{"Alice", "", "Bob"}))

	found, err := svc.GetRSVP(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, []string(found.AdditionalGuests))
}

func TestSaveGuestNamesRejectsMoreThanFive(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{})
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	err = svc.SaveGuestNames(ctx, rsvp.ID, []string{"a", "b", "c", "d", "e", "f"})
	require.ErrorIs(t, err, ErrTooManyGuestNames)

	// Boşlar ayıklandıktan sonra 5'e düşüyorsa kabul edilir.
	err = svc.SaveGuestNames(ctx, rsvp.ID, []string{"a", "b", "c", "d", "e", "  "})
	require.NoError(t, err)
}

func TestSendTicketSuccess(t *testing.T) {
	mailer := &fakeMailer{id: "re_42", event: testEvent()}
	svc, _ := newTestService(t, mailer)
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	emailID, err := svc.SendTicket(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.Equal(t, "re_42", emailID)
	require.Len(t, mailer.renders, 1)
	assert.Contains(t, mailer.renders[0], "3 tickets confirmed")

	found, err := svc.GetRSVP(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, found.TicketsSent)
	require.NotNil(t, found.TicketsSentAt)
	assert.Equal(t, "re_42", found.LastEmailID)
}

func TestSendTicketKeepsFlagOnEmailFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("provider down")}
	svc, _ := newTestService(t, mailer)
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.SendTicket(ctx, rsvp.ID)
	require.ErrorIs(t, err, ErrTicketEmailFailed)

	// Bayrak "denendi" anlamına gelir; e-posta hatası onu geri almaz.
	found, err := svc.GetRSVP(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, found.TicketsSent)
	assert.Empty(t, found.LastEmailID)
}

func TestSendTicketNotIdempotent(t *testing.T) {
	mailer := &fakeMailer{id: "re_7"}
	svc, _ := newTestService(t, mailer)
	ctx := context.Background()

	rsvp, err := svc.SubmitRSVP(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.SendTicket(ctx, rsvp.ID)
	require.NoError(t, err)
	_, err = svc.SendTicket(ctx, rsvp.ID)
	require.NoError(t, err)

	// Tekrarlanan gönderim e-postayı yeniden yollar, bayrak true kalır.
	assert.Len(t, mailer.sent, 2)
	found, err := svc.GetRSVP(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, found.TicketsSent)
}
