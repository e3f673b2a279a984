package games

// Category категория игры, множество открытое,
// но фильтр умеет только значения из Categories
type Category string

// Категории в порядке отображения
const (
	CategoryAll        Category = "All"
	CategoryAction     Category = "Action"
	CategoryAdventure  Category = "Adventure"
	CategoryRacing     Category = "Racing"
	CategoryStrategy   Category = "Strategy"
	CategorySimulation Category = "Simulation"
	CategoryRPG        Category = "RPG"
)

// Categories все категории фильтра, All первая
var Categories = []Category{
	CategoryAll,
	CategoryAction,
	CategoryAdventure,
	CategoryRacing,
	CategoryStrategy,
	CategorySimulation,
	CategoryRPG,
}

// ParseCategory пустая строка означает All
func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return CategoryAll, true
	}

	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}

	return "", false
}

// Game карточка игры в каталоге
type Game struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Creator    string   `json:"creator"`
	Thumbnail  string   `json:"thumbnail"`
	Players    int64    `json:"players"`
	Rating     float64  `json:"rating"`
	Category   Category `json:"category"`
	IsNew      bool     `json:"is_new,omitempty"`
	IsTrending bool     `json:"is_trending,omitempty"`
}
