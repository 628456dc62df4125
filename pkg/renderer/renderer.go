package renderer

import (
	"net/http"

	"doorlist.app/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View tarafında kullanılan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash verilerini render map'ine taşır.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render view'ı verilen layout ile ve status kodu ile çizer.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
