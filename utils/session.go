package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	SessionKeyIsAdmin  = "is_admin"
	SessionKeyUsername = "username"
)

// SessionStart request locals'a konan store üzerinden session'ı açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetIsAdminFromSession oturumun doors paneline erişim yetkisini döner.
func GetIsAdminFromSession(sess *session.Session) (bool, error) {
	raw := sess.Get(SessionKeyIsAdmin)
	if raw == nil {
		return false, errors.New("oturumda admin bilgisi yok")
	}
	isAdmin, ok := raw.(bool)
	if !ok {
		return false, errors.New("oturumdaki admin bilgisi geçersiz")
	}
	return isAdmin, nil
}
