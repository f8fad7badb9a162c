package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
)

// MovementHandler historial de movimientos.
type MovementHandler struct {
	uc *storage.StorageUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *storage.StorageUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        page        query  int     false  "Página (desde 1)"
// @Param        limit       query  int     false  "Tamaño de página (máx. 100)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 50),
	}
	out, err := h.uc.ListMovements(c.UserContext(), c.Query("product_id"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
