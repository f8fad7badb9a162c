package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Estanteria-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero del almacén.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve la clasificación de productos, cajas, gordura y ocupación por piso.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (critical, low, full, in_production, total_boxes,
// overflow{count, boxes, oldest}, floors[], recent_movements[]).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
