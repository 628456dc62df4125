// handlers/api/send_handler.go
package handlers

import (
	"doorlist.app/configs/configslog"
	"doorlist.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SendHandler JSON bilet gönderim endpoint'i (POST /api/send).
// Store'a dokunmaz: verilen alanlarla e-postayı render edip sağlayıcıya iletir.
type SendHandler struct {
	mailer services.ITicketMailer
}

// NewSendHandler yeni bir SendHandler örneği oluşturur.
func NewSendHandler(mailer services.ITicketMailer) *SendHandler {
	return &SendHandler{mailer: mailer}
}

type sendRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Guests        int    `json:"guests"`
	PaymentOption string `json:"paymentOption"`
	PaymentHandle string `json:"paymentHandle"`
}

// Send isteği doğrular ve bilet e-postasını gönderir.
// Eksik zorunlu alan -> 400, sağlayıcı hatası -> 500,
// başarı -> 200 + teslimat kimliği.
func (h *SendHandler) Send(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.PaymentOption == "" || req.PaymentHandle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	emailID, err := h.mailer.SendTicket(c.UserContext(), services.TicketInfo{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Guests:        req.Guests,
		PaymentOption: req.PaymentOption,
		PaymentHandle: req.PaymentHandle,
	})
	if err != nil {
		configslog.Log.Error("API send error", zap.String("email", req.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send email"})
	}

	return c.JSON(fiber.Map{"success": true, "id": emailID})
}
