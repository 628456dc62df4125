// database/migrations/rsvp.go
package migrations

import (
	"doorlist.app/configs/configslog"
	"doorlist.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable RSVP modeli için etkinliğe ait tabloyu oluşturur/günceller.
// Tablo adı etkinlik konfigürasyonundan gelir; her etkinlik kendi tablosunu kullanır.
// E-posta üzerindeki unique index duplicate kontrolünün tek otoritesidir.
func MigrateRSVPTable(db *gorm.DB, table string) error {
	configslog.SLog.Infof("Migrating %s table...", table)
	if err := db.Table(table).AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvp table",
			zap.String("table", table), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("%s table migrated successfully", table)
	return nil
}
