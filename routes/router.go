package routes

import (
	"doorlist.app/configs"
	"doorlist.app/configs/configsevent"
	"doorlist.app/services"
	"doorlist.app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Deps route katmanının ihtiyaç duyduğu bağımlılıklar.
// Her şey main'de kurulup buraya enjekte edilir; paket seviyesinde state yok.
type Deps struct {
	Config       *configs.Config
	Event        *configsevent.Event
	RSVPService  services.IRSVPService
	Mailer       services.ITicketMailer
	SessionStore *session.Store
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals(deps.SessionStore))

	app.Static("/static", "./static")

	registerAuthRoutes(app, deps)
	registerDoorsRoutes(app, deps)
	registerAPIRoutes(app, deps)
	registerPublicRoutes(app, deps)

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve admin bilgisini locals'a koyar.
func initializeSessionAndLocals(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if isAdmin, err := utils.GetIsAdminFromSession(sess); err == nil {
			c.Locals("isAdmin", isAdmin)
		}
		if username, ok := sess.Get(utils.SessionKeyUsername).(string); ok {
			c.Locals("username", username)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/error_layout")
	}
}
