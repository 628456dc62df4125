package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession doors paneli oturumları için cookie tabanlı session store oluşturur.
func SetupSession() *session.Store {
	return session.New(session.Config{
		CookieName:     "doorlist_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     12 * time.Hour, // Etkinlik gecesi boyunca yeterli
	})
}
