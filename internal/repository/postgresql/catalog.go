package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/depotworks/workforce-backend-go/internal/domain/catalog"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) catalog.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) Create(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO catalog_categories (id, category_name)
		VALUES (uuidv7(), $1)
		RETURNING id, category_name, created_at, updated_at
	`

	var created catalog.Category
	err := q.QueryRow(ctx, query, c.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return catalog.Category{}, err
	}

	return created, nil
}

// GetByID implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, category_name, created_at, updated_at FROM catalog_categories WHERE id = $1`

	var found catalog.Category
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Category{}, catalog.ErrCategoryNotFound
		}
		return catalog.Category{}, err
	}

	return found, nil
}

// List implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, category_name, created_at, updated_at FROM catalog_categories ORDER BY category_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// Update implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) Update(ctx context.Context, id string, name string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE catalog_categories SET category_name = $1, updated_at = NOW() WHERE id = $2`
	commandTag, err := q.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

// Delete implements catalog.CategoryRepository.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM catalog_categories WHERE id = $1`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) catalog.ProductRepository {
	return &productRepositoryImpl{db: db}
}

// Create implements catalog.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO catalog_products (id, category_id, product_name, unit, note)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id, category_id, product_name, unit, note, created_at, updated_at
	`

	var created catalog.Product
	err := q.QueryRow(ctx, query, p.CategoryID, p.Name, p.Unit, p.Note).Scan(
		&created.ID,
		&created.CategoryID,
		&created.Name,
		&created.Unit,
		&created.Note,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return catalog.Product{}, err
	}

	return created, nil
}

// GetByID implements catalog.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.category_id, p.product_name, p.unit, p.note, p.created_at, p.updated_at,
			   c.category_name
		FROM catalog_products p
		INNER JOIN catalog_categories c ON p.category_id = c.id
		WHERE p.id = $1
	`

	var found catalog.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.CategoryID,
		&found.Name,
		&found.Unit,
		&found.Note,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.CategoryName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, err
	}

	return found, nil
}

// List implements catalog.ProductRepository.
func (r *productRepositoryImpl) List(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CategoryID != nil && *filter.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", argIdx))
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("p.product_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM catalog_products p WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT p.id, p.category_id, p.product_name, p.unit, p.note, p.created_at, p.updated_at,
			   c.category_name
		FROM catalog_products p
		INNER JOIN catalog_categories c ON p.category_id = c.id
		WHERE %s
		ORDER BY c.category_name ASC, p.product_name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		err := rows.Scan(
			&p.ID,
			&p.CategoryID,
			&p.Name,
			&p.Unit,
			&p.Note,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.CategoryName,
		)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, nil
}

// Update implements catalog.ProductRepository.
func (r *productRepositoryImpl) Update(ctx context.Context, req catalog.UpdateProductRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.CategoryID != nil {
		sets = append(sets, fmt.Sprintf("category_id = $%d", argIdx))
		args = append(args, *req.CategoryID)
		argIdx++
	}
	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("product_name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Unit != nil {
		sets = append(sets, fmt.Sprintf("unit = $%d", argIdx))
		args = append(args, *req.Unit)
		argIdx++
	}
	if req.Note != nil {
		sets = append(sets, fmt.Sprintf("note = $%d", argIdx))
		args = append(args, *req.Note)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE catalog_products SET %s WHERE id = $%d`, strings.Join(sets, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return catalog.ErrProductNotFound
	}
	return nil
}

// Delete implements catalog.ProductRepository.
func (r *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM catalog_products WHERE id = $1`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return catalog.ErrProductNotFound
	}
	return nil
}
