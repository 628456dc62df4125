// handlers/public/ticketing_handler.go
package handlers

import (
	"errors"

	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/pkg/flashmessages"
	"doorlist.app/pkg/renderer"
	"doorlist.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TicketingHandler public bilet talep formu ve onay sayfası.
type TicketingHandler struct {
	service services.IRSVPService
	event   *configsevent.Event
}

// NewTicketingHandler yeni bir TicketingHandler örneği oluşturur.
func NewTicketingHandler(service services.IRSVPService, event *configsevent.Event) *TicketingHandler {
	return &TicketingHandler{service: service, event: event}
}

// ShowTicketingForm (GET /) formu etkinlik konfigürasyonuyla çizer.
func (h *TicketingHandler) ShowTicketingForm(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":  h.event.Name,
		"Event":  h.event,
		"Form":   services.SubmissionInput{},
		"Errors": services.FieldErrors(nil),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "public/ticketing_form", "layouts/main", renderData)
}

// SubmitRSVP (POST /rsvp) form gönderimini işler.
// Başarıda onay sayfasına yönlendirir; doğrulama ve duplicate hatalarında
// formu alan mesajlarıyla yeniden çizer.
func (h *TicketingHandler) SubmitRSVP(c *fiber.Ctx) error {
	var input services.SubmissionInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("SubmitRSVP: form verisi parse edilemedi", zap.Error(err))
		return h.renderFormError(c, fiber.StatusBadRequest, input, nil,
			"Please check the form and try again.")
	}

	_, err := h.service.SubmitRSVP(c.UserContext(), input)
	if err != nil {
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			return h.renderFormError(c, fiber.StatusBadRequest, input, fieldErrs, "")
		case errors.Is(err, services.ErrDuplicateEmail):
			return h.renderFormError(c, fiber.StatusConflict, input, nil,
				"An RSVP with this email already exists.")
		default:
			configslog.Log.Error("SubmitRSVP Error", zap.String("email", input.Email), zap.Error(err))
			return h.renderFormError(c, fiber.StatusInternalServerError, input, nil,
				"Failed to submit RSVP. Please try again.")
		}
	}

	return c.Redirect("/confirmation", fiber.StatusSeeOther)
}

// ShowConfirmation (GET /confirmation) statik onay sayfası.
func (h *TicketingHandler) ShowConfirmation(c *fiber.Ctx) error {
	return renderer.Render(c, "public/confirmation", "layouts/main", fiber.Map{
		"Title": h.event.Name,
		"Event": h.event,
	})
}

func (h *TicketingHandler) renderFormError(c *fiber.Ctx, status int, input services.SubmissionInput, fieldErrs services.FieldErrors, message string) error {
	renderData := fiber.Map{
		"Title":  h.event.Name,
		"Event":  h.event,
		"Form":   input,
		"Errors": fieldErrs,
	}
	if message != "" {
		renderData[renderer.FlashErrorKeyView] = message
	}
	return renderer.Render(c, "public/ticketing_form", "layouts/main", renderData, status)
}
