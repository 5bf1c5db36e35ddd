package api

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/bilgisen/welcome/internal/models"
	"github.com/gofiber/fiber/v2"
)

//go:embed static/index.html
var indexHTML []byte

type Handlers struct {
	page []byte
}

func NewHandlers() *Handlers {
	return &Handlers{page: indexHTML}
}

// Home handles GET /
func (h *Handlers) Home(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(h.page)
}

// Add handles GET /add
func (h *Handlers) Add(c *fiber.Ctx) error {
	a, err := queryInt(c, "a")
	if err != nil {
		return err
	}
	b, err := queryInt(c, "b")
	if err != nil {
		return err
	}

	return c.JSON(models.SumResponse{Sum: a + b})
}

// queryInt returns 0 for an absent parameter and a 400 for one that is
// present but not a base-10 integer, empty values included.
func queryInt(c *fiber.Ctx, name string) (int64, error) {
	args := c.Context().QueryArgs()
	if !args.Has(name) {
		return 0, nil
	}

	raw := string(args.Peek(name))
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("query parameter %q must be an integer, got %q", name, raw))
	}
	return n, nil
}
