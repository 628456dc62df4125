package routes

import (
	api_handlers "doorlist.app/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes JSON API rotaları.
func registerAPIRoutes(app *fiber.App, deps Deps) {
	handler := api_handlers.NewSendHandler(deps.Mailer)

	api := app.Group("/api")
	api.Post("/send", handler.Send)
}
