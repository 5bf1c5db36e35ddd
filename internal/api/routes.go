package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the site's routes. Unknown paths fall through to
// fiber's not-found error.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/", handlers.Home)
	app.Get("/add", handlers.Add)
}
