package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// Origen/destino textual de los movimientos.
const (
	areaReceiving  = "RECEPCION"
	areaProduction = "PRODUCCION"
	areaDispatch   = "DESPACHO"
)

// StorageUseCase orquesta el motor de columnas (internal/domain/slot) dentro de transacciones:
// almacenar, retirar, enviar a la gordura, transferir desde la gordura y reservar para producción.
type StorageUseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	overflowRepo   repository.OverflowRepository
	productionRepo repository.ProductionOrderRepository
	movementRepo   repository.MovementRepository
	layout         *slot.Layout
	log            zerolog.Logger
	now            func() time.Time
	defaultOrdered int
}

// NewStorageUseCase construye el caso de uso. Los repositorios sin tx se usan solo para lecturas.
func NewStorageUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	overflowRepo repository.OverflowRepository,
	productionRepo repository.ProductionOrderRepository,
	movementRepo repository.MovementRepository,
	layout *slot.Layout,
	log zerolog.Logger,
) *StorageUseCase {
	return &StorageUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		overflowRepo:   overflowRepo,
		productionRepo: productionRepo,
		movementRepo:   movementRepo,
		layout:         layout,
		log:            log,
		now:            time.Now,
		defaultOrdered: 10,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *StorageUseCase) WithClock(now func() time.Time) *StorageUseCase {
	uc.now = now
	return uc
}

// WithDefaultProductionQty cantidad pedida cuando la orden de producción no la indica.
func (uc *StorageUseCase) WithDefaultProductionQty(n int) *StorageUseCase {
	if n > 0 {
		uc.defaultOrdered = n
	}
	return uc
}

// Layout devuelve el layout de columnas configurado.
func (uc *StorageUseCase) Layout() *slot.Layout { return uc.layout }

// validColumn valida que la columna exista en el layout.
func (uc *StorageUseCase) validColumn(column string) error {
	if column == "" {
		return domain.ErrInvalidInput
	}
	if !uc.layout.Has(column) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownColumn, column)
	}
	return nil
}

// lockProduct bloquea el producto y arma su tablero.
func (uc *StorageUseCase) lockProduct(ctx context.Context, repos TxRepos, productID string) (*entity.Product, slot.Board, error) {
	product, err := repos.Products.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, slot.Board{}, err
	}
	if product == nil {
		return nil, slot.Board{}, domain.ErrNotFound
	}
	board, err := uc.boardOf(product)
	if err != nil {
		return nil, slot.Board{}, err
	}
	return product, board, nil
}

// boardOf arma el tablero; un mapa inconsistente se reporta, nunca se corrige.
func (uc *StorageUseCase) boardOf(product *entity.Product) (slot.Board, error) {
	board, err := product.Board(uc.layout)
	if err != nil {
		if errors.Is(err, domain.ErrDataIntegrity) || errors.Is(err, domain.ErrUnknownColumn) {
			uc.log.Error().Err(err).Str("product_id", product.ID).Msg("mapa de columnas inconsistente")
			return slot.Board{}, fmt.Errorf("%w: producto %s: %v", domain.ErrDataIntegrity, product.ID, err)
		}
		return slot.Board{}, err
	}
	return board, nil
}

// saveColumn persiste el nuevo estado de una columna.
func (uc *StorageUseCase) saveColumn(ctx context.Context, repos TxRepos, product *entity.Product, board slot.Board, column string, st slot.Status) (slot.Board, error) {
	next, err := board.With(column, st)
	if err != nil {
		return slot.Board{}, err
	}
	locations := next.Map()
	if err := repos.Products.UpdateLocations(ctx, product.ID, locations); err != nil {
		return slot.Board{}, err
	}
	product.Locations = locations
	return next, nil
}

// record guarda el movimiento de auditoría de la operación.
func (uc *StorageUseCase) record(ctx context.Context, repos TxRepos, mov entity.Movement) error {
	mov.ID = uuid.New().String()
	if mov.Timestamp.IsZero() {
		mov.Timestamp = uc.now()
	}
	return repos.Movements.Create(ctx, &mov)
}

func floorLocation(floor int, column string) string {
	return fmt.Sprintf("Piso %d, %s", floor, column)
}

// sortByPriority ordena entradas por prioridad descendente y, a igualdad, por antigüedad.
func sortByPriority(entries []*entity.OverflowEntry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := entries[i].Priority(now), entries[j].Priority(now)
		if pi != pj {
			return pi > pj
		}
		return entries[i].StoredAt.Before(entries[j].StoredAt)
	})
}

func toOverflowDTO(e *entity.OverflowEntry, now time.Time) dto.OverflowEntryDTO {
	return dto.OverflowEntryDTO{
		ID:          e.ID,
		ProductID:   e.ProductID,
		Quantity:    e.Quantity,
		Floor:       e.Floor,
		Column:      e.Column,
		StoredAt:    e.StoredAt,
		DaysWaiting: e.DaysWaiting(now),
		Priority:    e.Priority(now),
		Resolved:    e.Resolved,
		ResolvedAt:  e.ResolvedAt,
		Notes:       e.Notes,
	}
}

func toOverflowDTOs(entries []*entity.OverflowEntry, now time.Time) []dto.OverflowEntryDTO {
	out := make([]dto.OverflowEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toOverflowDTO(e, now))
	}
	return out
}
