package catalog

import "github.com/depotworks/workforce-backend-go/internal/pkg/validator"

type CreateCategoryRequest struct {
	Name string `json:"category_name"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_name",
			Message: "category_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "category_name",
			Message: "category_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateProductRequest struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"product_name"`
	Unit       *string `json:"unit,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_name",
			Message: "product_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProductRequest struct {
	ID         string  `json:"product_id"`
	CategoryID *string `json:"category_id,omitempty"`
	Name       *string `json:"product_name,omitempty"`
	Unit       *string `json:"unit,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_name",
			Message: "product_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProductFilter struct {
	CategoryID *string
	Name       *string
	Page       int
	Limit      int
}
