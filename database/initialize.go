package database

import (
	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/database/migrations"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları tek bir transaction içinde çalıştırır.
// Yarım kalmış şema değişikliği bırakmamak için hata veya panic durumunda
// rollback yapılır.
func Initialize(db *gorm.DB, event *configsevent.Event, migrate bool) {
	if !migrate {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if err := RunMigrationsInOrder(tx, event); err != nil {
		configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tablo migrasyonlarını sırayla çalıştırır.
func RunMigrationsInOrder(db *gorm.DB, event *configsevent.Event) error {
	configslog.SLog.Info(" -> RSVP migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateRSVPTable(db, event.TableName); err != nil {
		configslog.Log.Error("RSVP tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> RSVP migrasyonları tamamlandı.")
	return nil
}
