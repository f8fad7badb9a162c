package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// StoreInput entrada para almacenar cajas de un producto.
// Column vacío: se usa la primera columna del ranking que admita Quantity; si ninguna la admite,
// las cajas van a la gordura.
type StoreInput struct {
	ProductID string
	Column    string
	Quantity  int
	UserID    string
	Notes     string
}

// OverflowInput entrada para enviar cajas directamente a la gordura.
type OverflowInput struct {
	ProductID string
	Quantity  int
	Floor     int // 0 = piso del producto
	Column    string
	UserID    string
	Notes     string
}

// StoreFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) StoreFromRequest(ctx context.Context, userID string, in dto.StoreRequest) (*dto.StoreResponse, error) {
	return uc.Store(ctx, StoreInput{
		ProductID: in.ProductID,
		Column:    in.Column,
		Quantity:  in.Quantity,
		UserID:    userID,
		Notes:     in.Notes,
	})
}

// Store valida capacidad (CanAccept) antes de aplicar el delta; una solicitud que excede
// la columna indicada falla completa con ErrInsufficientSpace.
func (uc *StorageUseCase) Store(ctx context.Context, in StoreInput) (*dto.StoreResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Column != "" {
		if err := uc.validColumn(in.Column); err != nil {
			return nil, err
		}
	}

	var out *dto.StoreResponse
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, board, err := uc.lockProduct(ctx, repos, in.ProductID)
		if err != nil {
			return err
		}

		column := in.Column
		if column == "" {
			for _, c := range slot.Rank(board) {
				if slot.CanAccept(c.Status, in.Quantity) {
					column = c.Column
					break
				}
			}
		}
		if column == "" {
			entry, err := uc.park(ctx, repos, product, OverflowInput{
				ProductID: product.ID,
				Quantity:  in.Quantity,
				Floor:     product.Floor,
				UserID:    in.UserID,
				Notes:     in.Notes,
			})
			if err != nil {
				return err
			}
			e := toOverflowDTO(entry, uc.now())
			out = &dto.StoreResponse{
				Placement: dto.PlacementOverflow,
				Overflow:  &e,
				Message:   fmt.Sprintf("Sin espacio en el piso %d: %d caja(s) enviadas a la gordura", product.Floor, in.Quantity),
			}
			return nil
		}

		current, err := board.Status(column)
		if err != nil {
			return err
		}
		if !slot.CanAccept(current, in.Quantity) {
			return fmt.Errorf("%w: %s está en %s", domain.ErrInsufficientSpace, column, current.Label())
		}
		next, err := slot.ApplyDelta(current, in.Quantity)
		if err != nil {
			return err
		}
		if _, err := uc.saveColumn(ctx, repos, product, board, column, next); err != nil {
			return err
		}
		notes := in.Notes
		if notes == "" {
			notes = fmt.Sprintf("Almacenadas %d caja(s)", in.Quantity)
		}
		if err := uc.record(ctx, repos, entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeStore,
			From:      areaReceiving,
			To:        floorLocation(product.Floor, column),
			Quantity:  in.Quantity,
			UserID:    in.UserID,
			Notes:     notes,
		}); err != nil {
			return err
		}
		col := dto.NewColumnDTO(column, next)
		out = &dto.StoreResponse{
			Placement: dto.PlacementColumn,
			Column:    &col,
			Message:   fmt.Sprintf("%d caja(s) almacenadas en %s", in.Quantity, floorLocation(product.Floor, column)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OverflowFromRequest adapta el request HTTP al caso de uso.
func (uc *StorageUseCase) OverflowFromRequest(ctx context.Context, userID string, in dto.OverflowRequest) (*dto.OverflowEntryDTO, error) {
	return uc.StoreInOverflow(ctx, OverflowInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Floor:     in.Floor,
		Column:    in.Column,
		UserID:    userID,
		Notes:     in.Notes,
	})
}

// StoreInOverflow registra cajas en la gordura a la espera de espacio en (piso, columna).
// El piso, si se indica, debe ser el del producto.
func (uc *StorageUseCase) StoreInOverflow(ctx context.Context, in OverflowInput) (*dto.OverflowEntryDTO, error) {
	if in.ProductID == "" || in.Floor < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Column != "" {
		if err := uc.validColumn(in.Column); err != nil {
			return nil, err
		}
	}
	var out dto.OverflowEntryDTO
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		product, err := repos.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Floor != 0 && in.Floor != product.Floor {
			return fmt.Errorf("%w: el producto está en el piso %d, no en el %d", domain.ErrInvalidInput, product.Floor, in.Floor)
		}
		entry, err := uc.park(ctx, repos, product, in)
		if err != nil {
			return err
		}
		out = toOverflowDTO(entry, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// park crea la entrada en la gordura y su movimiento.
func (uc *StorageUseCase) park(ctx context.Context, repos TxRepos, product *entity.Product, in OverflowInput) (*entity.OverflowEntry, error) {
	now := uc.now()
	floor := in.Floor
	if floor == 0 {
		floor = product.Floor
	}
	notes := in.Notes
	if notes == "" {
		notes = "Esperando espacio en la estantería"
	}
	entry := &entity.OverflowEntry{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Quantity:  in.Quantity,
		Floor:     floor,
		Column:    in.Column,
		StoredAt:  now,
		Notes:     notes,
	}
	if err := repos.Overflow.Create(ctx, entry); err != nil {
		return nil, err
	}
	if err := uc.record(ctx, repos, entity.Movement{
		ProductID: product.ID,
		Type:      entity.MovementTypeOverflowIn,
		From:      areaReceiving,
		To:        entity.OverflowArea,
		Quantity:  in.Quantity,
		UserID:    in.UserID,
		Notes:     fmt.Sprintf("Almacenadas %d caja(s) en la gordura", in.Quantity),
		Timestamp: now,
	}); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product_id", product.ID).
		Str("overflow_id", entry.ID).
		Int("quantity", in.Quantity).
		Int("floor", floor).
		Msg("cajas enviadas a la gordura")
	return entry, nil
}
