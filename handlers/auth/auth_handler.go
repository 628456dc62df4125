// handlers/auth/auth_handler.go
package handlers

import (
	"doorlist.app/configs"
	"doorlist.app/configs/configslog"
	"doorlist.app/pkg/flashmessages"
	"doorlist.app/pkg/renderer"
	"doorlist.app/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler doors paneli için tek admin hesaplı giriş/çıkış.
type AuthHandler struct {
	cfg *configs.Config
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(cfg *configs.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// ShowLogin (GET /auth/login) giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok && isAdmin {
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Doors Login"}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/main", renderData)
}

// Login (POST /auth/login) kullanıcı adı + parolayı environment'taki
// bcrypt hash ile karşılaştırır ve oturumu işaretler.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username != h.cfg.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) != nil {
		configslog.Log.Warn("Başarısız doors girişi", zap.String("username", username), zap.String("ip", c.IP()))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid username or password.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login failed, please try again.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	sess.Set(utils.SessionKeyIsAdmin, true)
	sess.Set(utils.SessionKeyUsername, username)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/doors", fiber.StatusSeeOther)
}

// Logout (POST /auth/logout) oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			configslog.Log.Warn("Logout: session sonlandırılamadı", zap.Error(err))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}
