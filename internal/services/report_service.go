package services

import (
	"context"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo}
}

func (s *ReportService) GetEquipmentReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	return s.reportRepo.GetEquipmentReport(ctx, filter)
}
