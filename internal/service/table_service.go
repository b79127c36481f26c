package service

import (
	"context"
	"fmt"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
)

// tableService implements TableService interface
type tableService struct {
	tableRepo repository.TableRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tableRepo}
}

// List lists all tables
func (s *tableService) List(ctx context.Context) ([]*domain.Table, error) {
	return s.tableRepo.List(ctx)
}

// Create creates a table
func (s *tableService) Create(ctx context.Context, req *dto.TableRequest) (*domain.Table, error) {
	table := &domain.Table{
		Number: req.Number,
		Seats:  req.Seats,
		Status: domain.TableAvailable,
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// SetStatus changes a table's status
func (s *tableService) SetStatus(ctx context.Context, id, status string) error {
	if !domain.ValidTableStatus(status) {
		return fmt.Errorf("unknown table status %s", status)
	}

	return s.tableRepo.UpdateStatus(ctx, id, status)
}

// Delete deletes a table
func (s *tableService) Delete(ctx context.Context, id string) error {
	return s.tableRepo.Delete(ctx, id)
}
