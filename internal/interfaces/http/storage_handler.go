package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
)

// StorageHandler almacenar, retirar y mover cajas (protegido).
type StorageHandler struct {
	uc     *storage.StorageUseCase
	report *storage.ReportUseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *storage.StorageUseCase, report *storage.ReportUseCase) *StorageHandler {
	return &StorageHandler{uc: uc, report: report}
}

// Store godoc
// @Summary      Almacenar cajas
// @Description  Sin column se usa la mejor columna disponible; si ninguna admite la cantidad, las cajas van a la gordura.
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreRequest  true  "product_id, column (opcional), quantity"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storage/store [post]
func (h *StorageHandler) Store(c *fiber.Ctx) error {
	var in dto.StoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StoreFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Withdraw godoc
// @Summary      Retirar cajas
// @Description  Si se libera espacio devuelve capacity_opened=true y las entradas de la gordura que esperan esa columna.
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawRequest  true  "product_id, column, quantity"
// @Success      200   {object}  dto.WithdrawResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storage/withdraw [post]
func (h *StorageHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.WithdrawFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Overflow godoc
// @Summary      Enviar cajas a la gordura
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OverflowRequest  true  "product_id, quantity, floor, column"
// @Success      201   {object}  dto.OverflowEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage/overflow [post]
func (h *StorageHandler) Overflow(c *fiber.Ctx) error {
	var in dto.OverflowRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.OverflowFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOverflow godoc
// @Summary      Gordura abierta por prioridad
// @Tags         overflow
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.OverflowListResponse
// @Router       /api/overflow [get]
func (h *StorageHandler) ListOverflow(c *fiber.Ctx) error {
	out, err := h.uc.ListWaiting(c.UserContext(), c.Query("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OverflowReport godoc
// @Summary      Reporte PDF de la gordura
// @Tags         overflow
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {file}  binary
// @Router       /api/overflow/report [get]
func (h *StorageHandler) OverflowReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadOverflowReport(c.UserContext(), c.Query("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Transfer godoc
// @Summary      Transferir de la gordura a una columna
// @Tags         overflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "overflow_id, column, quantity (0 = todo)"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/overflow/transfer [post]
func (h *StorageHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.TransferFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
