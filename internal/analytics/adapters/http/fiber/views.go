package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ViewHandler serves the landing and dashboard pages of the app shell.
type ViewHandler struct {
	landing   []byte
	dashboard []byte
}

func NewViewHandler(landing, dashboard []byte) *ViewHandler {
	return &ViewHandler{landing: landing, dashboard: dashboard}
}

func (h *ViewHandler) Landing(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(h.landing)
}

func (h *ViewHandler) Dashboard(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(h.dashboard)
}
