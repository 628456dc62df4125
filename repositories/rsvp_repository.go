// repositories/rsvp_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"doorlist.app/configs/configslog"
	"doorlist.app/models"
	"doorlist.app/models/helpers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRSVPRepository RSVP veritabanı işlemleri için arayüz.
// Silme operasyonu bilinçli olarak yok; kayıtlar uygulama tarafından silinmez.
type IRSVPRepository interface {
	Create(ctx context.Context, rsvp *models.RSVP) error
	FindAll(ctx context.Context) ([]models.RSVP, error)
	FindByID(ctx context.Context, id uint) (*models.RSVP, error)
	FindByEmail(ctx context.Context, email string) (*models.RSVP, error)
	SetAttended(ctx context.Context, id uint, attended bool) error
	SetTicketsSent(ctx context.Context, id uint, sentAt time.Time) error
	SetLastEmailID(ctx context.Context, id uint, emailID string) error
	ReplaceAdditionalGuests(ctx context.Context, id uint, names []string) error
}

// RSVPRepository IRSVPRepository arayüzünü uygular.
// db main'de açılıp buraya enjekte edilir; global bir client yok.
// table etkinlik konfigürasyonundan gelir (etkinlik başına ayrı tablo).
type RSVPRepository struct {
	db    *gorm.DB
	table string
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository(db *gorm.DB, table string) IRSVPRepository {
	return &RSVPRepository{db: db, table: table}
}

func (r *RSVPRepository) scope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

// Create yeni bir RSVP kaydı ekler. E-posta unique index'e takılırsa
// ErrDuplicateEmail döner; duplicate kontrolünün tek otoritesi store'un kendisi,
// read-before-write yarışına yer yok.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil {
		return errors.New("geçersiz RSVP verisi")
	}
	if err := r.scope(ctx).Create(rsvp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		configslog.Log.Error("RSVP Create error", zap.String("email", rsvp.Email), zap.Error(err))
		return err
	}
	return nil
}

// FindAll tüm kayıtları id'ye göre artan sırada (gönderim sırası) döner.
func (r *RSVPRepository) FindAll(ctx context.Context) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	if err := r.scope(ctx).Order("id asc").Find(&rsvps).Error; err != nil {
		configslog.Log.Error("RSVP FindAll error", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindByID tek bir kaydı getirir.
func (r *RSVPRepository) FindByID(ctx context.Context, id uint) (*models.RSVP, error) {
	if id == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var rsvp models.RSVP
	err := r.scope(ctx).Where("id = ?", id).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVP FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindByEmail e-posta ile kayıt arar.
func (r *RSVPRepository) FindByEmail(ctx context.Context, email string) (*models.RSVP, error) {
	if email == "" {
		return nil, errors.New("geçersiz e-posta")
	}
	var rsvp models.RSVP
	err := r.scope(ctx).Where("email = ?", email).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVP FindByEmail error", zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// SetAttended attended bayrağını verilen değere yazar. Last-write-wins;
// eşzamanlı panel oturumları arasında conflict tespiti yapılmaz.
func (r *RSVPRepository) SetAttended(ctx context.Context, id uint, attended bool) error {
	return r.updateFields(ctx, id, map[string]interface{}{"attended": attended})
}

// SetTicketsSent tickets_sent bayrağını ve deneme zamanını yazar.
func (r *RSVPRepository) SetTicketsSent(ctx context.Context, id uint, sentAt time.Time) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"tickets_sent":    true,
		"tickets_sent_at": sentAt,
	})
}

// SetLastEmailID sağlayıcının döndürdüğü teslimat kimliğini kaydeder.
func (r *RSVPRepository) SetLastEmailID(ctx context.Context, id uint, emailID string) error {
	return r.updateFields(ctx, id, map[string]interface{}{"last_email_id": emailID})
}

// ReplaceAdditionalGuests misafir isim listesinin tamamını değiştirir (ekleme değil).
func (r *RSVPRepository) ReplaceAdditionalGuests(ctx context.Context, id uint, names []string) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"additional_guests": helpers.StringSlice(names),
	})
}

func (r *RSVPRepository) updateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if id == 0 {
		return errors.New("geçersiz ID")
	}
	result := r.scope(ctx).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		configslog.Log.Error("RSVP update error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
