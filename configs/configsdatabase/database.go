package configsdatabase

import (
	"fmt"
	"time"

	"doorlist.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect Postgres'e GORM ile bağlanır ve bağlantı havuzunu ayarlar.
// Global bir singleton tutulmaz; dönen handle main'de oluşturulup
// repository'lere parametre olarak geçilir.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Unique index ihlalleri gorm.ErrDuplicatedKey olarak yakalanabilsin.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı açılamadı: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB handle alınamadı: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
	return db, nil
}

// Close altta yatan sql.DB bağlantısını kapatır.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Warn("Kapatma sırasında sql.DB handle alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Warn("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
