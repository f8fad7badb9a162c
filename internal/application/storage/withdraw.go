package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// WithdrawInput entrada para retirar cajas de una columna.
type WithdrawInput struct {
	ProductID string
	Column    string
	Quantity  int
	UserID    string
	Notes     string
}

// WithdrawFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) WithdrawFromRequest(ctx context.Context, userID string, in dto.WithdrawRequest) (*dto.WithdrawResponse, error) {
	return uc.Withdraw(ctx, WithdrawInput{
		ProductID: in.ProductID,
		Column:    in.Column,
		Quantity:  in.Quantity,
		UserID:    userID,
		Notes:     in.Notes,
	})
}

// Withdraw retira cajas. Si la transición libera espacio (DidCapacityOpen), devuelve las
// entradas abiertas de la gordura que esperan ese piso/columna, ordenadas por prioridad.
// La transferencia la dispara el operador; aquí no se mueve nada automáticamente.
func (uc *StorageUseCase) Withdraw(ctx context.Context, in WithdrawInput) (*dto.WithdrawResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := uc.validColumn(in.Column); err != nil {
		return nil, err
	}

	var out *dto.WithdrawResponse
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
			return fmt.Errorf("%w: %s está reservada para producción", domain.ErrConflict, in.Column)
		}
		next, err := slot.ApplyDelta(current, -in.Quantity)
		if err != nil {
			return err
		}
		if _, err := uc.saveColumn(ctx, repos, product, board, in.Column, next); err != nil {
			return err
		}
		notes := in.Notes
		if notes == "" {
			notes = fmt.Sprintf("Retiradas %d caja(s)", in.Quantity)
		}
		if err := uc.record(ctx, repos, entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeWithdraw,
			From:      floorLocation(product.Floor, in.Column),
			To:        areaDispatch,
			Quantity:  in.Quantity,
			UserID:    in.UserID,
			Notes:     notes,
		}); err != nil {
			return err
		}

		out = &dto.WithdrawResponse{
			Column:  dto.NewColumnDTO(in.Column, next),
			Waiting: []dto.OverflowEntryDTO{},
			Message: fmt.Sprintf("%d caja(s) retiradas de %s", in.Quantity, floorLocation(product.Floor, in.Column)),
		}
		if !slot.DidCapacityOpen(current, next) {
			return nil
		}
		out.CapacityOpened = true

		open, err := repos.Overflow.ListUnresolved(ctx, product.ID)
		if err != nil {
			return err
		}
		waiting := open[:0]
		for _, e := range open {
			if e.Waits(product.Floor, in.Column) {
				waiting = append(waiting, e)
			}
		}
		now := uc.now()
		sortByPriority(waiting, now)
		out.Waiting = toOverflowDTOs(waiting, now)
		if len(waiting) > 0 {
			uc.log.Info().
				Str("product_id", product.ID).
				Str("column", in.Column).
				Int("waiting", len(waiting)).
				Msg("espacio liberado con ítems esperando en la gordura")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
