package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// TransferInput entrada para pasar cajas de la gordura a una columna.
// Quantity 0 = toda la cantidad pendiente de la entrada.
type TransferInput struct {
	OverflowID string
	Column     string
	Quantity   int
	UserID     string
}

// TransferFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) TransferFromRequest(ctx context.Context, userID string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	return uc.Transfer(ctx, TransferInput{
		OverflowID: in.OverflowID,
		Column:     in.Column,
		Quantity:   in.Quantity,
		UserID:     userID,
	})
}

// Transfer bloquea la entrada de la gordura y luego el producto (siempre en ese orden),
// valida CanAccept, avanza la columna con ApplyDelta, descuenta la entrada y registra
// un movimiento TRANSFER desde la gordura.
func (uc *StorageUseCase) Transfer(ctx context.Context, in TransferInput) (*dto.TransferResponse, error) {
	if in.OverflowID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := uc.validColumn(in.Column); err != nil {
		return nil, err
	}

	var out *dto.TransferResponse
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		entry, err := repos.Overflow.GetForUpdate(ctx, in.OverflowID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if entry.Resolved {
			return fmt.Errorf("%w: la entrada %s ya fue resuelta", domain.ErrConflict, entry.ID)
		}
		qty := in.Quantity
		if qty == 0 {
			qty = entry.Quantity
		}
		if qty > entry.Quantity {
			return fmt.Errorf("%w: se piden %d caja(s) y la entrada tiene %d", domain.ErrInvalidQuantity, qty, entry.Quantity)
		}

		product, board, err := uc.lockProduct(ctx, repos, entry.ProductID)
		if err != nil {
			return err
		}
		if entry.Floor != product.Floor {
			return fmt.Errorf("%w: la entrada espera en el piso %d y el producto está en el piso %d", domain.ErrConflict, entry.Floor, product.Floor)
		}
		current, err := board.Status(in.Column)
		if err != nil {
			return err
		}
		if !slot.CanAccept(current, qty) {
			return fmt.Errorf("%w: %s está en %s", domain.ErrInsufficientSpace, in.Column, current.Label())
		}
		next, err := slot.ApplyDelta(current, qty)
		if err != nil {
			return err
		}
		if _, err := uc.saveColumn(ctx, repos, product, board, in.Column, next); err != nil {
			return err
		}

		now := uc.now()
		entry.Take(qty, now)
		if err := repos.Overflow.Update(ctx, entry); err != nil {
			return err
		}
		if err := uc.record(ctx, repos, entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeTransfer,
			From:      entity.OverflowArea,
			To:        floorLocation(product.Floor, in.Column),
			Quantity:  qty,
			UserID:    in.UserID,
			Notes:     fmt.Sprintf("Transferidas %d caja(s) de la gordura a %s", qty, in.Column),
			Timestamp: now,
		}); err != nil {
			return err
		}
		out = &dto.TransferResponse{
			Column:  dto.NewColumnDTO(in.Column, next),
			Entry:   toOverflowDTO(entry, now),
			Message: fmt.Sprintf("%d caja(s) transferidas con éxito", qty),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
