package service

import (
	"context"
	"fmt"
	"math"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"go.uber.org/zap"
)

// orderService implements OrderService interface
type orderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	tableRepo       repository.TableRepository
	deliveryService DeliveryService
	logger          *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	tableRepo repository.TableRepository,
	deliveryService DeliveryService,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		tableRepo:       tableRepo,
		deliveryService: deliveryService,
		logger:          logger,
	}
}

// Place validates and persists a new order. Prices are snapshotted from the
// catalog and totals are computed server side; client-sent amounts are never
// trusted.
func (s *orderService) Place(ctx context.Context, req *dto.OrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	switch req.Type {
	case domain.OrderTypeTable, domain.OrderTypeDelivery, domain.OrderTypePickup:
	default:
		return nil, fmt.Errorf("unknown order type %s", req.Type)
	}

	order := &domain.Order{
		Type:          req.Type,
		Status:        domain.OrderPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Note:          req.Note,
	}

	var itemsTotal float64
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("product %s is not available", product.Name)
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
		itemsTotal += product.Price * float64(item.Quantity)
	}
	order.ItemsTotal = math.Round(itemsTotal*100) / 100

	switch req.Type {
	case domain.OrderTypeTable:
		if req.TableID == nil || *req.TableID == "" {
			return nil, fmt.Errorf("table orders require a table")
		}
		if _, err := s.tableRepo.GetByID(ctx, *req.TableID); err != nil {
			return nil, fmt.Errorf("table %s: %w", *req.TableID, err)
		}
		order.TableID = req.TableID

	case domain.OrderTypeDelivery:
		if req.DeliveryCEP == nil || *req.DeliveryCEP == "" {
			return nil, fmt.Errorf("delivery orders require a postal code")
		}
		quote, err := s.deliveryService.Quote(ctx, *req.DeliveryCEP, order.ItemsTotal)
		if err != nil {
			return nil, fmt.Errorf("failed to quote delivery fee: %w", err)
		}
		order.DeliveryCEP = req.DeliveryCEP
		order.DeliveryFee = quote.Cost
	}

	order.Total = math.Round((order.ItemsTotal+order.DeliveryFee)*100) / 100

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if order.Type == domain.OrderTypeTable && order.TableID != nil {
		if err := s.tableRepo.UpdateStatus(ctx, *order.TableID, domain.TableOccupied); err != nil {
			// Order already stands; table status is reconciled by staff
			s.logger.Warn("Failed to mark table occupied",
				zap.String("table_id", *order.TableID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// Get retrieves an order with its items
func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// List lists orders, optionally filtered by status
func (s *orderService) List(ctx context.Context, status string) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx, status)
}

// SetStatus moves an order through its lifecycle, rejecting transitions the
// state machine does not allow.
func (s *orderService) SetStatus(ctx context.Context, id, status string) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// Terminal states release the table for table orders
	if order.TableID != nil && (status == domain.OrderDelivered || status == domain.OrderCanceled) {
		if err := s.tableRepo.UpdateStatus(ctx, *order.TableID, domain.TableAvailable); err != nil {
			s.logger.Warn("Failed to release table",
				zap.String("table_id", *order.TableID),
				zap.Error(err),
			)
		}
	}

	return nil
}
