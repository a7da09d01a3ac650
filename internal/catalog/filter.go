// Package catalog содержит чистые функции отбора и оформления данных каталога.
package catalog

import (
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

type selectorKind int

const (
	selectAll selectorKind = iota
	selectTagged
	selectUnassigned
)

// Selector - фильтр по тегам коллекций: все товары, товары с тегом или товары без тегов.
type Selector struct {
	kind selectorKind
	tag  domain.Collection
}

func All() Selector {
	return Selector{kind: selectAll}
}

func Unassigned() Selector {
	return Selector{kind: selectUnassigned}
}

func Tagged(tag domain.Collection) Selector {
	return Selector{kind: selectTagged, tag: tag}
}

// ParseSelector разбирает значение вкладки фильтра.
// Пустая строка и "all" - все товары; "unassigned" и "uncategorized" - товары без тегов.
func ParseSelector(s string) (Selector, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "all":
		return All(), nil
	case "unassigned", "uncategorized":
		return Unassigned(), nil
	default:
		tag, ok := domain.ParseCollection(v)
		if !ok {
			return Selector{}, e.Wrap(s, e.ErrUnknownSelector)
		}
		return Tagged(tag), nil
	}
}

func (s Selector) String() string {
	switch s.kind {
	case selectTagged:
		return string(s.tag)
	case selectUnassigned:
		return "unassigned"
	default:
		return "all"
	}
}

func (s Selector) matches(p domain.Product) bool {
	switch s.kind {
	case selectTagged:
		return p.HasCollection(s.tag)
	case selectUnassigned:
		return p.Unassigned()
	default:
		return true
	}
}

// Criteria - поисковая строка и вкладка коллекции.
type Criteria struct {
	SearchTerm string
	Selector   Selector
}

// Filter возвращает товары, подходящие под criteria, в исходном порядке.
// Поиск - регистронезависимое вхождение подстроки в название. Входной срез не меняется.
func Filter(products []domain.Product, criteria Criteria) []domain.Product {
	term := normalize(criteria.SearchTerm)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !containsFold(p.Title, term) || !criteria.Selector.matches(p) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// FilterCategories отбирает категории по вхождению term в название.
func FilterCategories(categories []domain.Category, term string) []domain.Category {
	term = normalize(term)

	out := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if containsFold(c.Name, term) {
			out = append(out, c)
		}
	}

	return out
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func containsFold(s, normalizedTerm string) bool {
	return normalizedTerm == "" || strings.Contains(strings.ToLower(s), normalizedTerm)
}
