package routes

import (
	doors_handlers "doorlist.app/handlers/doors"
	"doorlist.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDoorsRoutes kapı görevlisi paneli rotaları. Tamamı oturum gerektirir.
func registerDoorsRoutes(app *fiber.App, deps Deps) {
	handler := doors_handlers.NewDoorsHandler(deps.RSVPService, deps.Event)

	doors := app.Group("/doors", middlewares.RequireAdmin())
	doors.Get("/", handler.ListRSVPs)
	doors.Post("/:id/checkin", handler.CheckIn)
	doors.Post("/:id/guests", handler.SaveGuests)
	doors.Post("/:id/ticket", handler.SendTicket)
}
