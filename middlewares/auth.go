package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin doors rotalarını oturumsuz erişime kapatır.
// isAdmin locals değeri router'daki session bootstrap'inde doldurulur.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("isAdmin").(bool)
		if !ok || !isAdmin {
			return c.Redirect("/auth/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
