package storage

import (
	"context"
	"time"

	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Products   repository.ProductRepository
	Overflow   repository.OverflowRepository
	Movements  repository.MovementRepository
	Production repository.ProductionOrderRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la validación de capacidad y la escritura del nuevo estado sean atómicas:
// un solo escritor por producto a la vez (la fila del producto se bloquea con GetForUpdate).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// WaitlistReport datos de la gordura abierta para el reporte PDF.
type WaitlistReport struct {
	GeneratedAt time.Time
	ProductID   string // vacío = todo el almacén
	Entries     []dto.OverflowEntryDTO
}

// OverflowReportGenerator puerto de salida para renderizar el reporte de la gordura.
type OverflowReportGenerator interface {
	GenerateOverflowReport(ctx context.Context, report WaitlistReport) ([]byte, error)
}
