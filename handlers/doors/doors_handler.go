// handlers/doors/doors_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"doorlist.app/configs/configsevent"
	"doorlist.app/configs/configslog"
	"doorlist.app/models"
	"doorlist.app/pkg/flashmessages"
	"doorlist.app/pkg/renderer"
	"doorlist.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DoorsHandler kapı görevlisi paneli: liste, check-in, misafir ekleme, bilet gönderme.
// Her mutasyon sonrası /doors'a redirect edilir; liste her yüklemede yeniden
// çekildiği için panel ancak bu fetch tamamlanınca tutarlıdır (optimistic update yok).
type DoorsHandler struct {
	service services.IRSVPService
	event   *configsevent.Event
}

// NewDoorsHandler yeni bir DoorsHandler örneği oluşturur.
func NewDoorsHandler(service services.IRSVPService, event *configsevent.Event) *DoorsHandler {
	return &DoorsHandler{service: service, event: event}
}

// doorsRow liste view'ı için hazırlanmış satır: misafir giriş alanlarının
// tamamı (dolu + boş) sunucuda hesaplanır, view'da 6. alan diye bir şey yok.
type doorsRow struct {
	models.RSVP
	GuestSlots []string
}

// ListRSVPs (GET /doors) tüm kayıtları gönderim sırasıyla listeler.
func (h *DoorsHandler) ListRSVPs(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	rsvps, err := h.service.ListRSVPs(c.UserContext())
	rows := make([]doorsRow, 0, len(rsvps))
	for _, rsvp := range rsvps {
		slots := make([]string, services.MaxAdditionalGuests)
		copy(slots, rsvp.AdditionalGuests)
		rows = append(rows, doorsRow{RSVP: rsvp, GuestSlots: slots})
	}

	renderData := fiber.Map{
		"Title": "Doors - " + h.event.Name,
		"Event": h.event,
		"RSVPs": rows,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("Doors - ListRSVPs Error", zap.Error(err))
		renderData["RSVPs"] = []doorsRow{}
		renderData[renderer.FlashErrorKeyView] = "Failed to load the RSVP list."
	}
	return renderer.Render(c, "doors/list", "layouts/doors_layout", renderData, http.StatusOK)
}

// CheckIn (POST /doors/:id/checkin) attended bayrağını toggle eder.
func (h *DoorsHandler) CheckIn(c *fiber.Ctx) error {
	id, ok := h.paramID(c)
	if !ok {
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	attended, err := h.service.ToggleCheckIn(c.UserContext(), id)
	if err != nil {
		h.flashActionError(c, "check-in", id, err)
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	if attended {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Checked in.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Check-in undone.")
	}
	return c.Redirect("/doors", fiber.StatusSeeOther)
}

// SaveGuests (POST /doors/:id/guests) misafir isim listesini değiştirir.
func (h *DoorsHandler) SaveGuests(c *fiber.Ctx) error {
	id, ok := h.paramID(c)
	if !ok {
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	var form struct {
		Names []string `form:"guest_names"`
	}
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Doors - SaveGuests: form parse edilemedi", zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid guest name data.")
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	if err := h.service.SaveGuestNames(c.UserContext(), id, form.Names); err != nil {
		if errors.Is(err, services.ErrTooManyGuestNames) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
				fmt.Sprintf("At most %d guest names can be saved.", services.MaxAdditionalGuests))
		} else {
			h.flashActionError(c, "guest update", id, err)
		}
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Guest names saved.")
	return c.Redirect("/doors", fiber.StatusSeeOther)
}

// SendTicket (POST /doors/:id/ticket) bayrağı yazar, e-postayı gönderir.
// E-posta başarısız olsa da tickets_sent geri alınmaz; hata yalnızca
// operatöre flash mesajla gösterilir.
func (h *DoorsHandler) SendTicket(c *fiber.Ctx) error {
	id, ok := h.paramID(c)
	if !ok {
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	emailID, err := h.service.SendTicket(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrTicketEmailFailed) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
				"Ticket marked as sent, but the email failed. Use Resend to retry.")
		} else {
			h.flashActionError(c, "ticket send", id, err)
		}
		return c.Redirect("/doors", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		fmt.Sprintf("Ticket email sent (delivery id: %s).", emailID))
	return c.Redirect("/doors", fiber.StatusSeeOther)
}

func (h *DoorsHandler) paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid RSVP id.")
		return 0, false
	}
	return uint(id), true
}

func (h *DoorsHandler) flashActionError(c *fiber.Ctx, action string, id uint, err error) {
	if errors.Is(err, services.ErrRSVPNotFound) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "RSVP not found.")
		return
	}
	configslog.Log.Error("Doors action error",
		zap.String("action", action), zap.Uint("id", id), zap.Error(err))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
		"Something went wrong, please try again.")
}
