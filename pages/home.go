package pages

import (
	"net/http"

	"github.com/go-park-mail-ru/2019_1_Remastered/games"
	"github.com/go-park-mail-ru/2019_1_Remastered/profile"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/pkg/errors"
)

// HeroStat цифра под заголовком
type HeroStat struct {
	Value string
	Label string
}

// StatTile плитка над списком игр
type StatTile struct {
	Label  string
	Value  string
	Change string
	Color  string
}

var heroStats = []*HeroStat{
	{Value: "2.5M+", Label: "Active Players"},
	{Value: "150K+", Label: "Games Created"},
	{Value: "50M+", Label: "Hours Played"},
}

var statTiles = []*StatTile{
	{Label: "Trending Now", Value: "15 Games", Change: "+5 from yesterday", Color: "orange"},
	{Label: "Recently Updated", Value: "23 Games", Change: "Updated today", Color: "blue"},
	{Label: "Top Rated", Value: "8 Games", Change: "Above 4.5★", Color: "yellow"},
	{Label: "Most Active", Value: "12 Games", Change: "1000+ players", Color: "purple"},
}

type homePage struct {
	Title      string
	User       *profile.Profile
	Query      string
	Selected   games.Category
	Categories []games.Category
	Games      []*games.Game
	HeroStats  []*HeroStat
	StatTiles  []*StatTile
}

// Home главная: каталог с фильтром по категории и поиском
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "Home")

	query := r.URL.Query()
	// кнопки фильтра дают только известные категории, остальное считаем All
	category, ok := games.ParseCategory(query.Get("category"))
	if !ok {
		category = games.CategoryAll
	}
	q := query.Get("q")

	filtered, err := games.FilteredList(category, q)
	if err != nil {
		h.renderError(w, logger, http.StatusInternalServerError, errors.Wrap(err, "home filter error"))
		return
	}

	h.render(w, logger, http.StatusOK, "home.html", &homePage{
		Title:      "Discover Games",
		User:       profile.Current,
		Query:      q,
		Selected:   category,
		Categories: games.Categories,
		Games:      filtered,
		HeroStats:  heroStats,
		StatTiles:  statTiles,
	})
}

type profilePage struct {
	Title string
	User  *profile.Profile
}

// Profile статичная страница профиля
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "Profile")

	h.render(w, logger, http.StatusOK, "profile.html", &profilePage{
		Title: profile.Current.Name,
		User:  profile.Current,
	})
}
