package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"doorlist.app/configs/configslog"
	"doorlist.app/database/migrations"
	"doorlist.app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testTable = "electric_lounge_test"

func newTestRepo(t *testing.T) IRSVPRepository {
	t.Helper()
	configslog.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// In-memory veritabanı son bağlantı kapanınca yok olur; havuzu tek
	// bağlantıya sabitleyerek test boyunca ayakta kalması garanti edilir.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.MigrateRSVPTable(db, testTable))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewRSVPRepository(db, testTable)
}

func newRSVP(email string) *models.RSVP {
	return &models.RSVP{
		Firstname:     "Ada",
		Lastname:      "Lovelace",
		Email:         email,
		Guests:        2,
		PaymentOption: "venmo",
		PaymentHandle: "@ada",
	}
}

func TestCreateAndFindAllOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := newRSVP("first@example.com")
	second := newRSVP("second@example.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first@example.com", all[0].Email)
	assert.Equal(t, "second@example.com", all[1].Email)

	// Yeni kayıt her iki bayrakla da false başlar.
	assert.False(t, all[0].Attended)
	assert.False(t, all[0].TicketsSent)
	assert.Nil(t, all[0].TicketsSentAt)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newRSVP("dup@example.com")))

	err := repo.Create(ctx, newRSVP("dup@example.com"))
	require.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newRSVP("ada@example.com")))

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Firstname)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAttended(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rsvp := newRSVP("door@example.com")
	require.NoError(t, repo.Create(ctx, rsvp))

	require.NoError(t, repo.SetAttended(ctx, rsvp.ID, true))
	found, err := repo.FindByID(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, found.Attended)

	require.NoError(t, repo.SetAttended(ctx, rsvp.ID, false))
	found, err = repo.FindByID(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.False(t, found.Attended)

	assert.ErrorIs(t, repo.SetAttended(ctx, 9999, true), ErrNotFound)
}

func TestSetTicketsSentAndEmailID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rsvp := newRSVP("tickets@example.com")
	require.NoError(t, repo.Create(ctx, rsvp))

	sentAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.SetTicketsSent(ctx, rsvp.ID, sentAt))
	require.NoError(t, repo.SetLastEmailID(ctx, rsvp.ID, "re_123"))

	found, err := repo.FindByID(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.True(t, found.TicketsSent)
	require.NotNil(t, found.TicketsSentAt)
	assert.Equal(t, "re_123", found.LastEmailID)
}

func TestReplaceAdditionalGuests(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rsvp := newRSVP("guests@example.com")
	require.NoError(t, repo.Create(ctx, rsvp))

	require.NoError(t, repo.ReplaceAdditionalGuests(ctx, rsvp.ID, []string{"Alice", "Bob"}))
	found, err := repo.FindByID(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, []string(found.AdditionalGuests))

	// Her kayıt listenin tamamını değiştirir, ekleme yapmaz.
	require.NoError(t, repo.ReplaceAdditionalGuests(ctx, rsvp.ID, []string{"Carol"}))
	found, err = repo.FindByID(ctx, rsvp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carol"}, []string(found.AdditionalGuests))
}
