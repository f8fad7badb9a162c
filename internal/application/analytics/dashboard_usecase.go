// Package analytics contiene el tablero de estado del almacén: clasificación de productos,
// ocupación por piso y resumen de la gordura.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

const dashboardRecentMovements = 10 // movimientos en el widget del dashboard

// DashboardUseCase genera las estadísticas del almacén (solo lectura).
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	overflowRepo  repository.OverflowRepository
	movementRepo  repository.MovementRepository
	occupancyRepo repository.OccupancyRepository
	layout        *slot.Layout
	floors        int
	log           zerolog.Logger
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	overflowRepo repository.OverflowRepository,
	movementRepo repository.MovementRepository,
	occupancyRepo repository.OccupancyRepository,
	layout *slot.Layout,
	floors int,
	log zerolog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		overflowRepo:  overflowRepo,
		movementRepo:  movementRepo,
		occupancyRepo: occupancyRepo,
		layout:        layout,
		floors:        floors,
		log:           log,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro lecturas en paralelo:
//  1. ListAll              → clasificación y total de cajas
//  2. ListUnresolved("")   → resumen de la gordura
//  3. List(recientes)      → últimos movimientos
//  4. FloorOccupancy       → cajas y ocupación por piso (NUMERIC en PostgreSQL)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type overflowResult struct {
		list []*entity.OverflowEntry
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}
	type occupancyResult struct {
		list []repository.FloorOccupancy
		err  error
	}

	productsCh := make(chan productsResult, 1)
	overflowCh := make(chan overflowResult, 1)
	movementsCh := make(chan movementsResult, 1)
	occupancyCh := make(chan occupancyResult, 1)

	go func() {
		list, err := uc.productRepo.ListAll(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.overflowRepo.ListUnresolved(ctx, "")
		overflowCh <- overflowResult{list, err}
	}()
	go func() {
		list, _, err := uc.movementRepo.List(ctx, "", dashboardRecentMovements, 0)
		movementsCh <- movementsResult{list, err}
	}()
	go func() {
		list, err := uc.occupancyRepo.FloorOccupancy(ctx, uc.layout)
		occupancyCh <- occupancyResult{list, err}
	}()

	products := <-productsCh
	open := <-overflowCh
	recent := <-movementsCh
	occupancy := <-occupancyCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard products: %w", products.err)
	}
	if open.err != nil {
		return nil, fmt.Errorf("dashboard overflow: %w", open.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard movements: %w", recent.err)
	}
	if occupancy.err != nil {
		return nil, fmt.Errorf("dashboard occupancy: %w", occupancy.err)
	}

	now := uc.now()
	out := &dto.DashboardStatsDTO{
		TotalProducts: len(products.list),
		Recent:        make([]dto.MovementDTO, 0, len(recent.list)),
	}

	for _, p := range products.list {
		board, err := p.Board(uc.layout)
		if err != nil {
			// se reporta y se excluye; el dashboard no corrige datos
			uc.log.Error().Err(err).Str("product_id", p.ID).Msg("dashboard: mapa de columnas inconsistente")
			continue
		}
		switch board.Category() {
		case slot.CategoryInProduction:
			out.InProduction++
		case slot.CategoryFull:
			out.Full++
		case slot.CategoryLow:
			out.Low++
		default:
			out.Critical++
		}
		out.TotalBoxes += board.TotalBoxes()
	}
	out.Floors = uc.floorStats(occupancy.list)

	out.Overflow.Count = len(open.list)
	for _, e := range open.list {
		out.Overflow.Boxes += e.Quantity
	}
	if len(open.list) > 0 {
		// ListUnresolved viene ordenado por antigüedad
		oldest := open.list[0]
		out.Overflow.Oldest = &dto.OverflowEntryDTO{
			ID:          oldest.ID,
			ProductID:   oldest.ProductID,
			Quantity:    oldest.Quantity,
			Floor:       oldest.Floor,
			Column:      oldest.Column,
			StoredAt:    oldest.StoredAt,
			DaysWaiting: oldest.DaysWaiting(now),
			Priority:    oldest.Priority(now),
			Notes:       oldest.Notes,
		}
	}

	for _, m := range recent.list {
		out.Recent = append(out.Recent, storage.ToMovementDTO(m))
	}
	return out, nil
}

// floorStats completa los pisos configurados sin productos (ocupación 0) y agrega los que
// aparezcan fuera de rango en los datos.
func (uc *DashboardUseCase) floorStats(rows []repository.FloorOccupancy) []dto.FloorStatsDTO {
	floors := make(map[int]dto.FloorStatsDTO, uc.floors)
	for f := 1; f <= uc.floors; f++ {
		floors[f] = dto.FloorStatsDTO{Floor: f, Occupancy: decimal.Zero}
	}
	for _, r := range rows {
		floors[r.Floor] = dto.FloorStatsDTO{
			Floor:     r.Floor,
			Products:  r.Products,
			Boxes:     r.Boxes,
			Capacity:  r.Capacity,
			Occupancy: r.Occupancy,
		}
	}
	out := make([]dto.FloorStatsDTO, 0, len(floors))
	for _, fs := range floors {
		out = append(out, fs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Floor < out[j].Floor })
	return out
}
