package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/depotworks/workforce-backend-go/internal/domain/catalog"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	catalogService "github.com/depotworks/workforce-backend-go/internal/service/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)

	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService catalogService.CatalogService
}

func NewCatalogHandler(service catalogService.CatalogService) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: service}
}

// CreateCategory implements CatalogHandler.
func (c *CatalogHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created", created)
}

// ListCategories implements CatalogHandler.
func (c *CatalogHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

// UpdateCategory implements CatalogHandler.
func (c *CatalogHandlerImpl) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := c.catalogService.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category updated", updated)
}

// DeleteCategory implements CatalogHandler.
func (c *CatalogHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.catalogService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted", nil)
}

// CreateProduct implements CatalogHandler.
func (c *CatalogHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.catalogService.CreateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", created)
}

// GetProduct implements CatalogHandler.
func (c *CatalogHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	found, err := c.catalogService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListProducts implements CatalogHandler.
func (c *CatalogHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := catalog.ProductFilter{}
	if v := query.Get("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := query.Get("product_name"); v != "" {
		filter.Name = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	products, total, err := c.catalogService.ListProducts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, products, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// UpdateProduct implements CatalogHandler.
func (c *CatalogHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := c.catalogService.UpdateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated", updated)
}

// DeleteProduct implements CatalogHandler.
func (c *CatalogHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := c.catalogService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted", nil)
}
