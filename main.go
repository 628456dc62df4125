package main

import (
	"os"
	"os/signal"
	"syscall"

	"doorlist.app/configs"
	"doorlist.app/configs/configsdatabase"
	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/repositories"
	"doorlist.app/routes"
	"doorlist.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}

	event, err := configsevent.Load(cfg.EventConfigPath)
	if err != nil {
		configslog.Log.Fatal("Etkinlik konfigürasyonu yüklenemedi", zap.Error(err))
	}
	configslog.SLog.Infow("Etkinlik konfigürasyonu yüklendi",
		"event", event.Name, "table", event.TableName)

	db, err := configsdatabase.Connect(cfg.DatabaseURL)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.Close(db)

	// Bağımlılıklar burada kurulur ve aşağıya enjekte edilir; global state yok.
	repo := repositories.NewRSVPRepository(db, event.TableName)
	mailer := services.NewResendTicketMailer(cfg.ResendAPIKey, event)
	rsvpService := services.NewRSVPService(repo, mailer, event)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:     engine,
		AppName:   event.Name,
		BodyLimit: 1 << 20,
	})

	routes.SetupRoutes(app, routes.Deps{
		Config:       cfg,
		Event:        event,
		RSVPService:  rsvpService,
		Mailer:       mailer,
		SessionStore: configs.SetupSession(),
	})

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde aktif istekler tamamlanır.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	configslog.SLog.Infow("Sunucu başlatılıyor", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
