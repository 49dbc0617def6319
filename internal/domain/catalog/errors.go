package catalog

import "errors"

var (
	ErrCategoryNotFound   = errors.New("catalog category not found")
	ErrCategoryNameExists = errors.New("catalog category name already exists")
	ErrProductNotFound    = errors.New("product not found")
)
