package catalog

import (
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type iconRule struct {
	keywords []string
	icon     domain.Icon
}

// Порядок важен: побеждает первое совпадение, поэтому "Headphones" попадает под "phone".
var iconRules = []iconRule{
	{keywords: []string{"phone", "mobile"}, icon: domain.IconPhone},
	{keywords: []string{"computer", "laptop", "pc"}, icon: domain.IconComputer},
	{keywords: []string{"watch", "smartwatch"}, icon: domain.IconWatch},
	{keywords: []string{"camera"}, icon: domain.IconCamera},
	{keywords: []string{"headphone", "earphone", "audio"}, icon: domain.IconHeadphones},
	{keywords: []string{"game", "gaming"}, icon: domain.IconGaming},
}

// DefaultIcon возвращается для названий, не подошедших ни под одно правило.
const DefaultIcon = domain.IconComputer

// ResolveIcon подбирает иконку по ключевым словам в названии категории.
func ResolveIcon(name string) domain.Icon {
	lower := strings.ToLower(name)

	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.icon
			}
		}
	}

	return DefaultIcon
}

// CategoryViews дополняет категории иконками. Пустой список заменяется запасным набором.
func CategoryViews(categories []domain.Category) []domain.CategoryView {
	if len(categories) == 0 {
		out := make([]domain.CategoryView, len(domain.FallbackCategories))
		copy(out, domain.FallbackCategories)
		return out
	}

	out := make([]domain.CategoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.CategoryView{Category: c, Icon: ResolveIcon(c.Name)})
	}

	return out
}

// ResolveNav отмечает активным пункт, путь которого точно совпадает с currentRoute.
func ResolveNav(items []domain.NavItem, currentRoute string) []domain.NavItem {
	out := make([]domain.NavItem, len(items))
	for i, item := range items {
		item.Active = item.Path == currentRoute
		out[i] = item
	}

	return out
}

// Stats считает сводку для главной страницы админки.
func Stats(products []domain.Product, categories []domain.Category) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}

	for _, p := range products {
		if p.Unassigned() {
			stats.Unassigned++
			continue
		}
		if p.HasCollection(domain.CollectionFlash) {
			stats.Flash++
		}
		if p.HasCollection(domain.CollectionBest) {
			stats.Best++
		}
		if p.HasCollection(domain.CollectionExplore) {
			stats.Explore++
		}
	}

	return stats
}
