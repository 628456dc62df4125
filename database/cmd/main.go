package main

import (
	"flag"

	"doorlist.app/configs"
	"doorlist.app/configs/configsdatabase"
	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}

	event, err := configsevent.Load(cfg.EventConfigPath)
	if err != nil {
		configslog.Log.Fatal("Etkinlik konfigürasyonu yüklenemedi", zap.Error(err))
	}

	db, err := configsdatabase.Connect(cfg.DatabaseURL)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.Close(db)

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, event, *migrateFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
