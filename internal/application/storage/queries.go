package storage

import (
	"context"
	"strings"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

const (
	minSearchLen = 2
	searchLimit  = 20
)

// Suggest devuelve la mejor ubicación del producto en su piso.
// nil sin error = no hay espacio, las cajas deben ir a la gordura.
func (uc *StorageUseCase) Suggest(ctx context.Context, productID string) (*dto.SuggestionDTO, error) {
	product, board, err := uc.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	s, ok := slot.Suggest(product.Floor, board)
	if !ok {
		return nil, nil
	}
	return dto.NewSuggestionDTO(s), nil
}

// GetProduct devuelve el producto con su tablero, sugerencia y las entradas que esperan en la gordura.
func (uc *StorageUseCase) GetProduct(ctx context.Context, productID string) (*dto.ProductDetailDTO, error) {
	product, board, err := uc.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	open, err := uc.overflowRepo.ListUnresolved(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	sortByPriority(open, now)
	waiting := toOverflowDTOs(open, now)
	for i := range waiting {
		waiting[i].ProductCode = product.Code
		waiting[i].ProductName = product.Name
	}
	return &dto.ProductDetailDTO{
		ProductDTO: toProductDTO(product, board, len(open)),
		Waiting:    waiting,
	}, nil
}

// Search busca productos por código o nombre (mínimo 2 caracteres, máximo 20 resultados).
func (uc *StorageUseCase) Search(ctx context.Context, query string) (*dto.ProductSearchResponse, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLen {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	open, err := uc.overflowRepo.ListUnresolved(ctx, "")
	if err != nil {
		return nil, err
	}
	openByProduct := make(map[string]int, len(open))
	for _, e := range open {
		openByProduct[e.ProductID]++
	}

	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		board, err := uc.boardOf(p)
		if err != nil {
			// un producto corrupto no tumba la búsqueda
			continue
		}
		items = append(items, toProductDTO(p, board, openByProduct[p.ID]))
	}
	return &dto.ProductSearchResponse{Count: len(items), Products: items}, nil
}

// ListWaiting lista la gordura abierta por prioridad; productID vacío = todo el almacén.
func (uc *StorageUseCase) ListWaiting(ctx context.Context, productID string) (*dto.OverflowListResponse, error) {
	open, err := uc.overflowRepo.ListUnresolved(ctx, productID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	sortByPriority(open, now)
	items := toOverflowDTOs(open, now)

	cache := make(map[string]*entity.Product)
	for i := range items {
		id := items[i].ProductID
		p, seen := cache[id]
		if !seen {
			p, err = uc.productRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			cache[id] = p
		}
		if p != nil {
			items[i].ProductCode = p.Code
			items[i].ProductName = p.Name
		}
	}
	return &dto.OverflowListResponse{Total: len(items), Items: items}, nil
}

// ListMovements historial paginado, más recientes primero.
func (uc *StorageUseCase) ListMovements(ctx context.Context, productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.Normalize()
	movs, total, err := uc.movementRepo.List(ctx, productID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementDTO, 0, len(movs))
	for _, m := range movs {
		items = append(items, ToMovementDTO(m))
	}
	pages := (total + page.Limit - 1) / page.Limit
	return &dto.MovementListResponse{
		Movements: items,
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: pages,
		},
	}, nil
}

// loadProduct lectura sin bloqueo.
func (uc *StorageUseCase) loadProduct(ctx context.Context, productID string) (*entity.Product, slot.Board, error) {
	if productID == "" {
		return nil, slot.Board{}, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
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

func toProductDTO(p *entity.Product, board slot.Board, overflowOpen int) dto.ProductDTO {
	columns := make([]dto.ColumnDTO, 0, board.Layout().Len())
	board.Each(func(column string, st slot.Status) {
		columns = append(columns, dto.NewColumnDTO(column, st))
	})
	out := dto.ProductDTO{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Color:        p.Color,
		ColorSuffix:  p.ColorSuffix,
		ColorName:    entity.ColorName(p.ColorSuffix),
		Material:     p.Material,
		Floor:        p.Floor,
		Columns:      columns,
		TotalBoxes:   board.TotalBoxes(),
		Category:     string(board.Category()),
		OverflowOpen: overflowOpen,
	}
	if s, ok := slot.Suggest(p.Floor, board); ok {
		out.Suggestion = dto.NewSuggestionDTO(s)
	}
	return out
}

// ToMovementDTO convierte un movimiento al DTO de historial.
func ToMovementDTO(m *entity.Movement) dto.MovementDTO {
	return dto.MovementDTO{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		From:      m.From,
		To:        m.To,
		Quantity:  m.Quantity,
		UserID:    m.UserID,
		Notes:     m.Notes,
		Timestamp: m.Timestamp,
	}
}
