package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doorlist.app/configs/configslog"
	"doorlist.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	id   string
	err  error
	sent []services.TicketInfo
}

func (f *fakeMailer) SendTicket(_ context.Context, info services.TicketInfo) (string, error) {
	f.sent = append(f.sent, info)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func newTestApp(mailer services.ITicketMailer) *fiber.App {
	configslog.InitLogger()
	app := fiber.New()
	app.Post("/api/send", NewSendHandler(mailer).Send)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSendSuccess(t *testing.T) {
	mailer := &fakeMailer{id: "re_abc"}
	app := newTestApp(mailer)

	resp := postJSON(t, app, `{
		"firstName": "A", "lastName": "B", "email": "a@b.com",
		"guests": 2, "paymentOption": "venmo", "paymentHandle": "@a"
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "re_abc", body.ID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, 2, mailer.sent[0].Guests)
}

func TestSendMissingRequiredFields(t *testing.T) {
	mailer := &fakeMailer{id: "re_abc"}
	app := newTestApp(mailer)

	// lastName eksik.
	resp := postJSON(t, app, `{
		"firstName": "A", "email": "a@b.com",
		"guests": 0, "paymentOption": "venmo", "paymentHandle": "@a"
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, mailer.sent)
}

func TestSendInvalidJSON(t *testing.T) {
	app := newTestApp(&fakeMailer{})

	resp := postJSON(t, app, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendProviderFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("provider down")}
	app := newTestApp(mailer)

	resp := postJSON(t, app, `{
		"firstName": "A", "lastName": "B", "email": "a@b.com",
		"guests": 1, "paymentOption": "cashapp", "paymentHandle": "$a"
	}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
