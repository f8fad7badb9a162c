package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// ProductHandler consultas de productos, sugerencias y leyenda de estados (protegido).
type ProductHandler struct {
	uc *storage.StorageUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *storage.StorageUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos por código o nombre
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "mínimo 2 caracteres"
// @Success      200  {object}  dto.ProductSearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Producto con tablero de columnas
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suggestion godoc
// @Summary      Mejor ubicación para almacenar
// @Description  suggestion null = sin espacio en el piso, usar la gordura.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/suggestion [get]
func (h *ProductHandler) Suggestion(c *fiber.Ctx) error {
	out, err := h.uc.Suggest(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"product_id":   c.Params("id"),
		"suggestion":   out,
		"use_overflow": out == nil,
	})
}

// Legend godoc
// @Summary      Estados de columna con etiqueta y color
// @Tags         slots
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/slots/legend [get]
func (h *ProductHandler) Legend(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"columns":   h.uc.Layout().Columns(),
		"max_boxes": slot.MaxBoxes,
		"states":    slot.Legend(),
	})
}
