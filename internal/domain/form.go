package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductForm - редактируемый снимок товара в админке.
type ProductForm struct {
	Title         string           `json:"title"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Discount      *int             `json:"discount,omitempty"`
	IsNew         bool             `json:"isNew"`
	Collections   []Collection     `json:"collections"`
}

// ProductFormFrom заполняет форму редактирования из существующего товара.
func ProductFormFrom(p Product) ProductForm {
	f := ProductForm{
		Title:       p.Title,
		Image:       p.Image,
		Price:       p.Price,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		IsNew:       p.IsNew,
		Collections: slices.Clone(p.Collections),
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		f.OriginalPrice = &v
	}
	if p.Discount != nil {
		v := *p.Discount
		f.Discount = &v
	}

	return f
}

// ToggleCollection добавляет тег, если его нет, и убирает, если есть.
// Срез всегда пересоздается, поэтому ранее выданные снимки формы не меняются.
func (f *ProductForm) ToggleCollection(c Collection) {
	if i := slices.Index(f.Collections, c); i >= 0 {
		f.Collections = slices.Delete(slices.Clone(f.Collections), i, i+1)
		return
	}

	f.Collections = append(slices.Clone(f.Collections), c)
}

// ProductPayload - тело POST/PUT /api/products. Содержит ровно те поля, которые уходят в сервис.
type ProductPayload struct {
	Title         string       `json:"title" validate:"required"`
	Image         string       `json:"image,omitempty"`
	Price         json.Number  `json:"price"`
	OriginalPrice *json.Number `json:"originalPrice,omitempty"`
	Rating        float64      `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int          `json:"reviews" validate:"gte=0"`
	Discount      *int         `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsNew         bool         `json:"isNew"`
	Collections   []Collection `json:"collections" validate:"dive,oneof=flash best explore"`
}

// NewProductPayload переводит форму в тело запроса и проверяет его.
func NewProductPayload(f ProductForm) (ProductPayload, error) {
	if f.Price.IsNegative() || (f.OriginalPrice != nil && f.OriginalPrice.IsNegative()) {
		return ProductPayload{}, e.ErrNegativePrice
	}

	p := ProductPayload{
		Title:       strings.TrimSpace(f.Title),
		Image:       strings.TrimSpace(f.Image),
		Price:       json.Number(f.Price.String()),
		Rating:      f.Rating,
		Reviews:     f.Reviews,
		IsNew:       f.IsNew,
		Collections: make([]Collection, 0, len(f.Collections)),
	}
	if f.OriginalPrice != nil {
		v := json.Number(f.OriginalPrice.String())
		p.OriginalPrice = &v
	}
	if f.Discount != nil {
		v := *f.Discount
		p.Discount = &v
	}
	for _, c := range f.Collections {
		if !slices.Contains(p.Collections, c) {
			p.Collections = append(p.Collections, c)
		}
	}

	if err := validate.Struct(p); err != nil {
		return ProductPayload{}, fmt.Errorf("%w: %w", e.ErrInvalidForm, err)
	}

	return p, nil
}

// CategoryForm - редактируемый снимок категории в админке.
type CategoryForm struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func CategoryFormFrom(c Category) CategoryForm {
	return CategoryForm{Name: c.Name, Image: c.Image}
}

// CategoryPayload - тело POST/PUT /api/categories. Пустое изображение отправляется как "".
type CategoryPayload struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// NewCategoryPayload обрезает пробелы и проверяет, что имя не пустое.
func NewCategoryPayload(f CategoryForm) (CategoryPayload, error) {
	p := CategoryPayload{
		Name:  strings.TrimSpace(f.Name),
		Image: strings.TrimSpace(f.Image),
	}

	if err := validate.Struct(p); err != nil {
		return CategoryPayload{}, fmt.Errorf("%w: %w", e.ErrCategoryNameRequired, err)
	}

	return p, nil
}
