package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// OccupancyRepository implementación en memoria de repository.OccupancyRepository.
type OccupancyRepository struct {
	g guard
}

var _ repository.OccupancyRepository = (*OccupancyRepository)(nil)

// Occupancy devuelve el repositorio de ocupación.
func (s *Store) Occupancy() *OccupancyRepository {
	return &OccupancyRepository{guard{store: s}}
}

func (r *OccupancyRepository) FloorOccupancy(_ context.Context, layout *slot.Layout) ([]repository.FloorOccupancy, error) {
	defer r.g.read()()
	byFloor := map[int]*repository.FloorOccupancy{}
	for _, p := range r.g.store.products {
		board, err := layout.Board(p.Locations)
		if err != nil {
			continue
		}
		fo, ok := byFloor[p.Floor]
		if !ok {
			fo = &repository.FloorOccupancy{Floor: p.Floor}
			byFloor[p.Floor] = fo
		}
		fo.Products++
		fo.Boxes += board.TotalBoxes()
		fo.Capacity += layout.Capacity()
	}
	out := make([]repository.FloorOccupancy, 0, len(byFloor))
	for _, fo := range byFloor {
		fo.Occupancy = slot.Occupancy(fo.Boxes, fo.Capacity)
		out = append(out, *fo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Floor < out[j].Floor })
	return out, nil
}
