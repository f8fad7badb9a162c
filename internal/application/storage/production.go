package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// MarkProductionInput entrada para reservar una columna para producción.
// La verificación de rol (gerente o superior) la hace la capa HTTP antes de llamar.
type MarkProductionInput struct {
	ProductID       string
	Column          string
	QuantityOrdered int
	ExpectedDate    *time.Time
	Notes           string
	UserID          string
}

// ClearProductionInput entrada para liberar la reserva de producción.
type ClearProductionInput struct {
	ProductID string
	Column    string
	Cancelled bool
	Notes     string
	UserID    string
}

// MarkFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) MarkFromRequest(ctx context.Context, userID string, in dto.MarkProductionRequest) (*dto.ProductionOrderDTO, error) {
	return uc.MarkForProduction(ctx, MarkProductionInput{
		ProductID:       in.ProductID,
		Column:          in.Column,
		QuantityOrdered: in.QuantityOrdered,
		ExpectedDate:    in.ExpectedDate,
		Notes:           in.Notes,
		UserID:          userID,
	})
}

// ClearFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) ClearFromRequest(ctx context.Context, userID string, in dto.ClearProductionRequest) (*dto.ColumnDTO, error) {
	return uc.ClearProduction(ctx, ClearProductionInput{
		ProductID: in.ProductID,
		Column:    in.Column,
		Cancelled: in.Cancelled,
		Notes:     in.Notes,
		UserID:    userID,
	})
}

// MarkForProduction marca la columna como ReservedForProduction sin importar su nivel y abre
// una orden de producción. Una columna ya reservada devuelve ErrConflict.
func (uc *StorageUseCase) MarkForProduction(ctx context.Context, in MarkProductionInput) (*dto.ProductionOrderDTO, error) {
	if in.ProductID == "" || in.QuantityOrdered < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validColumn(in.Column); err != nil {
		return nil, err
	}
	qty := in.QuantityOrdered
	if qty == 0 {
		qty = uc.defaultOrdered
	}

	var order *entity.ProductionOrder
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, board, err := uc.lockProduct(ctx, repos, in.ProductID)
		if err != nil {
			return err
		}
		current, err := board.Status(in.Column)
		if err != nil {
			return err
		}
		if current.IsReserved() {
			return fmt.Errorf("%w: %s ya está reservada para producción", domain.ErrConflict, in.Column)
		}
		if _, err := uc.saveColumn(ctx, repos, product, board, in.Column, slot.ReservedForProduction); err != nil {
			return err
		}

		now := uc.now()
		notes := in.Notes
		if notes == "" {
			notes = "Stock crítico - producción solicitada"
		}
		order = &entity.ProductionOrder{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			Column:          in.Column,
			QuantityOrdered: qty,
			OrderedBy:       in.UserID,
			ExpectedDate:    in.ExpectedDate,
			Status:          entity.ProductionStatusInProduction,
			Notes:           notes,
			CreatedAt:       now,
		}
		if err := repos.Production.Create(ctx, order); err != nil {
			return err
		}
		return uc.record(ctx, repos, entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeProduction,
			From:      floorLocation(product.Floor, in.Column),
			To:        areaProduction,
			Quantity:  0,
			UserID:    in.UserID,
			Notes:     fmt.Sprintf("Marcada en producción (OK) en %s; estado anterior: %s", in.Column, current.Label()),
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", in.ProductID).Str("column", in.Column).Msg("columna reservada para producción")
	out := toProductionDTO(order)
	return &out, nil
}

// ClearProduction libera una columna reservada (queda Empty) y cierra sus órdenes abiertas.
// Liberar la reserva no cuenta como apertura de capacidad para la gordura.
func (uc *StorageUseCase) ClearProduction(ctx context.Context, in ClearProductionInput) (*dto.ColumnDTO, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validColumn(in.Column); err != nil {
		return nil, err
	}
	status := entity.ProductionStatusCompleted
	if in.Cancelled {
		status = entity.ProductionStatusCancelled
	}

	var out dto.ColumnDTO
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, board, err := uc.lockProduct(ctx, repos, in.ProductID)
		if err != nil {
			return err
		}
		current, err := board.Status(in.Column)
		if err != nil {
			return err
		}
		if !current.IsReserved() {
			return fmt.Errorf("%w: %s no está reservada", domain.ErrConflict, in.Column)
		}
		next := slot.ClearReservation(current)
		if _, err := uc.saveColumn(ctx, repos, product, board, in.Column, next); err != nil {
			return err
		}
		if _, err := repos.Production.CompleteOpen(ctx, product.ID, in.Column, status); err != nil {
			return err
		}
		notes := in.Notes
		if notes == "" {
			notes = fmt.Sprintf("Reserva de producción liberada en %s (%s)", in.Column, status)
		}
		if err := uc.record(ctx, repos, entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeProductionCleared,
			From:      areaProduction,
			To:        floorLocation(product.Floor, in.Column),
			UserID:    in.UserID,
			Notes:     notes,
		}); err != nil {
			return err
		}
		out = dto.NewColumnDTO(in.Column, next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProductionOrders lista órdenes por estado (por defecto IN_PRODUCTION).
func (uc *StorageUseCase) ListProductionOrders(ctx context.Context, status string) (*dto.ProductionListResponse, error) {
	switch status {
	case "":
		status = entity.ProductionStatusInProduction
	case entity.ProductionStatusInProduction, entity.ProductionStatusCompleted, entity.ProductionStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.productionRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionOrderDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, toProductionDTO(o))
	}
	return &dto.ProductionListResponse{Count: len(items), Orders: items}, nil
}

func toProductionDTO(o *entity.ProductionOrder) dto.ProductionOrderDTO {
	return dto.ProductionOrderDTO{
		ID:              o.ID,
		ProductID:       o.ProductID,
		Column:          o.Column,
		QuantityOrdered: o.QuantityOrdered,
		OrderedBy:       o.OrderedBy,
		ExpectedDate:    o.ExpectedDate,
		Status:          o.Status,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		CompletedAt:     o.CompletedAt,
	}
}
