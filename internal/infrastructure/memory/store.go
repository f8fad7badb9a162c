// Package memory implementa los repositorios en memoria (STORAGE_DRIVER=memory y tests).
// Todas las escrituras pasan por un único mutex, así que hay a lo sumo un escritor a la vez,
// igual que el bloqueo por fila del driver de PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	overflow map[string]*entity.OverflowEntry
	moves    []*entity.Movement
	orders   map[string]*entity.ProductionOrder
	users    map[string]*entity.User // por email
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		overflow: make(map[string]*entity.OverflowEntry),
		moves:    []*entity.Movement{},
		orders:   make(map[string]*entity.ProductionOrder),
		users:    make(map[string]*entity.User),
	}
}

// guard toma el lock salvo que el llamador ya lo tenga (repositorios dentro de Run).
type guard struct {
	store *Store
	inTx  bool
}

func (g guard) read() func() {
	if g.inTx {
		return func() {}
	}
	g.store.mu.RLock()
	return g.store.mu.RUnlock
}

func (g guard) write() func() {
	if g.inTx {
		return func() {}
	}
	g.store.mu.Lock()
	return g.store.mu.Unlock
}

// Repos devuelve los repositorios fuera de transacción.
func (s *Store) Repos() storage.TxRepos {
	return s.repos(false)
}

func (s *Store) repos(inTx bool) storage.TxRepos {
	g := guard{store: s, inTx: inTx}
	return storage.TxRepos{
		Products:   &ProductRepository{g},
		Overflow:   &OverflowRepository{g},
		Movements:  &MovementRepository{g},
		Production: &ProductionOrderRepository{g},
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepository {
	return &UserRepository{guard{store: s}}
}

// TxRunner serializa las transacciones con el lock de escritura del Store.
// Si fn devuelve error se restaura la copia tomada al inicio (rollback).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

var _ storage.TxRunner = (*TxRunner)(nil)

// Run ejecuta fn con repositorios atados a la "transacción".
func (r *TxRunner) Run(ctx context.Context, fn func(repos storage.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	if err := fn(r.store.repos(true)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products map[string]*entity.Product
	overflow map[string]*entity.OverflowEntry
	moves    int
	orders   map[string]*entity.ProductionOrder
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		products: make(map[string]*entity.Product, len(s.products)),
		overflow: make(map[string]*entity.OverflowEntry, len(s.overflow)),
		moves:    len(s.moves),
		orders:   make(map[string]*entity.ProductionOrder, len(s.orders)),
	}
	for id, p := range s.products {
		snap.products[id] = cloneProduct(p)
	}
	for id, e := range s.overflow {
		snap.overflow[id] = cloneEntry(e)
	}
	for id, o := range s.orders {
		c := *o
		snap.orders[id] = &c
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.overflow = snap.overflow
	s.moves = s.moves[:snap.moves]
	s.orders = snap.orders
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Locations = cloneLocations(p.Locations)
	return &c
}

func cloneLocations(in map[string]slot.Status) map[string]slot.Status {
	out := make(map[string]slot.Status, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneEntry(e *entity.OverflowEntry) *entity.OverflowEntry {
	c := *e
	if e.ResolvedAt != nil {
		t := *e.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}
