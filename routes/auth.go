package routes

import (
	auth_handlers "doorlist.app/handlers/auth"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes doors paneli giriş/çıkış rotaları.
func registerAuthRoutes(app *fiber.App, deps Deps) {
	handler := auth_handlers.NewAuthHandler(deps.Config)

	auth := app.Group("/auth")
	auth.Get("/login", handler.ShowLogin)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
}
