package storage

import (
	"context"
	"fmt"
)

// ReportUseCase genera el PDF de la gordura abierta, ordenado por prioridad.
type ReportUseCase struct {
	storage   *StorageUseCase
	generator OverflowReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(storage *StorageUseCase, generator OverflowReportGenerator) *ReportUseCase {
	return &ReportUseCase{storage: storage, generator: generator}
}

// DownloadOverflowReport devuelve (pdfBytes, filename, nil); productID vacío = todo el almacén.
func (uc *ReportUseCase) DownloadOverflowReport(ctx context.Context, productID string) ([]byte, string, error) {
	list, err := uc.storage.ListWaiting(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	now := uc.storage.now()
	pdfBytes, err := uc.generator.GenerateOverflowReport(ctx, WaitlistReport{
		GeneratedAt: now,
		ProductID:   productID,
		Entries:     list.Items,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("gordura_%s.pdf", now.Format("20060102_1504")), nil
}
