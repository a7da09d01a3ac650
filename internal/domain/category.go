package domain

// Category описывает категорию каталога
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CategoryView - категория вместе с иконкой для витрины.
type CategoryView struct {
	Category
	Icon Icon `json:"icon"`
}

// Icon - идентификатор иконки категории.
type Icon string

const (
	IconPhone      Icon = "phone"
	IconComputer   Icon = "computer"
	IconWatch      Icon = "watch"
	IconCamera     Icon = "camera"
	IconHeadphones Icon = "headphones"
	IconGaming     Icon = "gaming"
)

// FallbackCategories показываются на витрине, если сервис каталога не вернул ни одной категории.
// Иконки заданы явно и не выводятся из названия.
var FallbackCategories = []CategoryView{
	{Category: Category{Name: "Phones"}, Icon: IconPhone},
	{Category: Category{Name: "Computers"}, Icon: IconComputer},
	{Category: Category{Name: "SmartWatch"}, Icon: IconWatch},
	{Category: Category{Name: "Camera"}, Icon: IconCamera},
	{Category: Category{Name: "HeadPhones"}, Icon: IconHeadphones},
	{Category: Category{Name: "Gaming"}, Icon: IconGaming},
}
