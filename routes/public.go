package routes

import (
	public_handlers "doorlist.app/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes bilet talep formu ve onay sayfası rotaları.
func registerPublicRoutes(app *fiber.App, deps Deps) {
	handler := public_handlers.NewTicketingHandler(deps.RSVPService, deps.Event)

	app.Get("/", handler.ShowTicketingForm)
	app.Post("/rsvp", handler.SubmitRSVP)
	app.Get("/confirmation", handler.ShowConfirmation)
}
