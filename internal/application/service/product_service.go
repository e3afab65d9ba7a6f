package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/repository"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/apperror"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/pagination"
)

// ProductService handles the product catalog. Catalog edits never touch
// historical receipts: receipts carry their own copies of name and price.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create adds a catalog entry.
func (s *ProductService) Create(ctx context.Context, product *entity.Product) error {
	return s.productRepo.Create(ctx, product)
}

// Get returns one product by ID.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// Update replaces a product's name and price.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, name string, price float64) (*entity.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.Price = price
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a catalog entry.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List returns products ordered by name, paginated, optionally filtered
// by a name search.
func (s *ProductService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
