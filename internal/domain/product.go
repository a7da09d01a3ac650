package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Collection - тег витринной секции, в которой показывается товар.
type Collection string

const (
	CollectionFlash   Collection = "flash"
	CollectionBest    Collection = "best"
	CollectionExplore Collection = "explore"
)

// Collections - фиксированный словарь тегов в порядке секций витрины.
var Collections = []Collection{CollectionFlash, CollectionBest, CollectionExplore}

// ParseCollection проверяет, что s входит в словарь тегов.
func ParseCollection(s string) (Collection, bool) {
	c := Collection(s)
	if slices.Contains(Collections, c) {
		return c, true
	}

	return "", false
}

// Product описывает товар в том виде, в котором его отдает сервис каталога.
// Необязательные поля - указатели: отсутствие скидки и нулевая скидка различаются.
type Product struct {
	ID            string           `json:"_id"`
	Title         string           `json:"title"`
	Image         string           `json:"image,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Discount      *int             `json:"discount,omitempty"`
	IsNew         bool             `json:"isNew"`
	Collections   []Collection     `json:"collections"`
}

// HasCollection сообщает, отмечен ли товар тегом c.
func (p Product) HasCollection(c Collection) bool {
	return slices.Contains(p.Collections, c)
}

// Unassigned - товар не входит ни в одну секцию.
func (p Product) Unassigned() bool {
	return len(p.Collections) == 0
}
