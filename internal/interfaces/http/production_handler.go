package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
)

// ProductionHandler reservas de columnas para producción.
// Mark y Clear se registran detrás de RequireRole(admin, gerente).
type ProductionHandler struct {
	uc *storage.StorageUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *storage.StorageUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Mark godoc
// @Summary      Marcar columna en producción (OK)
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarkProductionRequest  true  "product_id, column"
// @Success      201   {object}  dto.ProductionOrderDTO
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/mark [post]
func (h *ProductionHandler) Mark(c *fiber.Ctx) error {
	var in dto.MarkProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.MarkFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clear godoc
// @Summary      Liberar reserva de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClearProductionRequest  true  "product_id, column, cancelled"
// @Success      200   {object}  dto.ColumnDTO
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/clear [post]
func (h *ProductionHandler) Clear(c *fiber.Ctx) error {
	var in dto.ClearProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ClearFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Órdenes de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "IN_PRODUCTION (defecto), COMPLETED, CANCELLED"
// @Success      200  {object}  dto.ProductionListResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProductionOrders(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
