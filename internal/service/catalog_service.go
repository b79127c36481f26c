package service

import (
	"context"
	"fmt"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
)

// catalogService implements CatalogService interface
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Menu assembles the customer-facing menu: active categories with their
// active products, in display order.
func (s *catalogService) Menu(ctx context.Context) ([]*domain.MenuSection, error) {
	categories, err := s.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu categories: %w", err)
	}

	sections := make([]*domain.MenuSection, 0, len(categories))
	for _, category := range categories {
		products, err := s.productRepo.ListByCategory(ctx, category.ID, true)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu products: %w", err)
		}

		if len(products) == 0 {
			continue
		}

		section := &domain.MenuSection{Category: *category}
		for _, product := range products {
			section.Products = append(section.Products, *product)
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// ListCategories lists categories
func (s *catalogService) ListCategories(ctx context.Context, onlyActive bool) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx, onlyActive)
}

// CreateCategory creates a category
func (s *catalogService) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory updates a category
func (s *catalogService) UpdateCategory(ctx context.Context, id string, req *dto.CategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

// ListProducts lists products, optionally restricted to a category
func (s *catalogService) ListProducts(ctx context.Context, categoryID string, onlyActive bool) ([]*domain.Product, error) {
	if categoryID != "" {
		return s.productRepo.ListByCategory(ctx, categoryID, onlyActive)
	}
	return s.productRepo.List(ctx, onlyActive)
}

// GetProduct retrieves a product
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct creates a product after checking its category exists
func (s *catalogService) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*domain.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		IsFeatured:  req.IsFeatured,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct updates a product
func (s *catalogService) UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
