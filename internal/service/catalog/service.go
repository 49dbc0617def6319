package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/depotworks/workforce-backend-go/internal/domain/catalog"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// CatalogService manages the warehouse item catalog.
type CatalogService interface {
	CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (catalog.Category, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	UpdateCategory(ctx context.Context, id string, name string) (catalog.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (catalog.Product, error)
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
	ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, int64, error)
	UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CatalogServiceImpl struct {
	db *database.DB
	catalog.CategoryRepository
	catalog.ProductRepository
}

func NewCatalogService(db *database.DB, categoryRepository catalog.CategoryRepository, productRepository catalog.ProductRepository) CatalogService {
	return &CatalogServiceImpl{
		db:                 db,
		CategoryRepository: categoryRepository,
		ProductRepository:  productRepository,
	}
}

// CreateCategory implements CatalogService.
func (c *CatalogServiceImpl) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (catalog.Category, error) {
	if err := req.Validate(); err != nil {
		return catalog.Category{}, err
	}

	created, err := c.CategoryRepository.Create(ctx, catalog.Category{Name: req.Name})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.Category{}, catalog.ErrCategoryNameExists
		}
		return catalog.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// ListCategories implements CatalogService.
func (c *CatalogServiceImpl) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return c.CategoryRepository.List(ctx)
}

// UpdateCategory implements CatalogService.
func (c *CatalogServiceImpl) UpdateCategory(ctx context.Context, id string, name string) (catalog.Category, error) {
	req := catalog.CreateCategoryRequest{Name: name}
	if err := req.Validate(); err != nil {
		return catalog.Category{}, err
	}

	if err := c.CategoryRepository.Update(ctx, id, name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.Category{}, catalog.ErrCategoryNameExists
		}
		return catalog.Category{}, err
	}
	return c.CategoryRepository.GetByID(ctx, id)
}

// DeleteCategory implements CatalogService.
func (c *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	return c.CategoryRepository.Delete(ctx, id)
}

// CreateProduct implements CatalogService.
func (c *CatalogServiceImpl) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (catalog.Product, error) {
	if err := req.Validate(); err != nil {
		return catalog.Product{}, err
	}

	// Creating under a missing category fails with not-found, not a
	// foreign-key violation surfaced to the client.
	if _, err := c.CategoryRepository.GetByID(ctx, req.CategoryID); err != nil {
		return catalog.Product{}, err
	}

	created, err := c.ProductRepository.Create(ctx, catalog.Product{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Unit:       req.Unit,
		Note:       req.Note,
	})
	if err != nil {
		return catalog.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// GetProduct implements CatalogService.
func (c *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	return c.ProductRepository.GetByID(ctx, id)
}

// ListProducts implements CatalogService.
func (c *CatalogServiceImpl) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, int64, error) {
	return c.ProductRepository.List(ctx, filter)
}

// UpdateProduct implements CatalogService.
func (c *CatalogServiceImpl) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) (catalog.Product, error) {
	if err := req.Validate(); err != nil {
		return catalog.Product{}, err
	}

	if req.CategoryID != nil {
		if _, err := c.CategoryRepository.GetByID(ctx, *req.CategoryID); err != nil {
			return catalog.Product{}, err
		}
	}

	if err := c.ProductRepository.Update(ctx, req); err != nil {
		return catalog.Product{}, err
	}
	return c.ProductRepository.GetByID(ctx, req.ID)
}

// DeleteProduct implements CatalogService.
func (c *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return c.ProductRepository.Delete(ctx, id)
}
