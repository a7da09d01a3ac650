package domain

import "time"

// TimeLeft - остаток времени до дедлайна, разложенный на единицы. Все поля неотрицательны.
type TimeLeft struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// TotalSeconds собирает остаток обратно в секунды.
func (t TimeLeft) TotalSeconds() int64 {
	return ((t.Days*24+t.Hours)*60+t.Minutes)*60 + t.Seconds
}

func (t TimeLeft) IsZero() bool {
	return t == TimeLeft{}
}

// Countdown - состояние таймера распродажи для клиента.
type Countdown struct {
	Deadline time.Time `json:"deadline"`
	TimeLeft TimeLeft  `json:"timeLeft"`
}

// Slide - баннер в hero-блоке витрины.
type Slide struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	TitleLine1 string `json:"titleLine1"`
	TitleLine2 string `json:"titleLine2"`
	CTA        string `json:"cta"`
	Image      string `json:"image"`
}

// DefaultSlides - колода баннеров витрины.
var DefaultSlides = []Slide{
	{ID: 1, Label: "iPhone 14 Series", TitleLine1: "Up to 10%", TitleLine2: "off Voucher", CTA: "Shop Now", Image: "/assets/hero-banner.png"},
	{ID: 2, Label: "iPhone 14 Series", TitleLine1: "Limited Time", TitleLine2: "Festival Offers", CTA: "Shop Now", Image: "/assets/hero-banner.png"},
	{ID: 3, Label: "iPhone 14 Series", TitleLine1: "Upgrade to", TitleLine2: "New iPhone", CTA: "Shop Now", Image: "/assets/hero-banner.png"},
}

// SlideState - колода и активный баннер.
type SlideState struct {
	Slides      []Slide `json:"slides"`
	ActiveIndex int     `json:"activeIndex"`
}

// HomePage - все, что нужно главной странице витрины.
type HomePage struct {
	Flash      []Product      `json:"flash"`
	Best       []Product      `json:"best"`
	Explore    []Product      `json:"explore"`
	Categories []CategoryView `json:"categories"`
	Countdown  Countdown      `json:"countdown"`
	Slides     SlideState     `json:"slides"`
}

// DashboardStats - сводка для главной страницы админки.
type DashboardStats struct {
	TotalProducts   int `json:"totalProducts"`
	Flash           int `json:"flash"`
	Best            int `json:"best"`
	Explore         int `json:"explore"`
	Unassigned      int `json:"unassigned"`
	TotalCategories int `json:"totalCategories"`
}

// NavItem - пункт бокового меню админки.
type NavItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

var AdminNav = []NavItem{
	{Label: "Dashboard", Path: "/admin"},
	{Label: "Products", Path: "/admin/products"},
	{Label: "Categories", Path: "/admin/categories"},
}
