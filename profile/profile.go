package profile

import (
	"net/http"

	"github.com/go-park-mail-ru/2019_1_Remastered/games"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"
)

// Friend друг в боковой колонке профиля
type Friend struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile страница пользователя, пока без бэкенда
type Profile struct {
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Avatar   string        `json:"avatar"`
	Bio      string        `json:"bio"`
	Friends  []*Friend     `json:"friends"`
	Games    []*games.Game `json:"games"`
}

// Initial первая буква имени для аватарки-заглушки
func (p *Profile) Initial() string {
	return initial(p.Name)
}

// Initial первая буква имени для аватарки-заглушки
func (f *Friend) Initial() string {
	return initial(f.Name)
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}

	return "?"
}

// Current профиль, который показываем всем
var Current = &Profile{
	Name:     "Alex Doe",
	Username: "alex_doe",
	Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
	Bio:      "Game developer and 3D artist. Creator of Neon City Racing and other exciting games!",
	Friends: []*Friend{
		{ID: 1, Name: "Ben", Avatar: "https://randomuser.me/api/portraits/men/75.jpg"},
		{ID: 2, Name: "Jane", Avatar: "https://randomuser.me/api/portraits/women/75.jpg"},
		{ID: 3, Name: "Sam", Avatar: "https://randomuser.me/api/portraits/men/76.jpg"},
		{ID: 4, Name: "Sue", Avatar: "https://randomuser.me/api/portraits/women/76.jpg"},
	},
	Games: []*games.Game{
		{
			ID:        1,
			Title:     "Neon City Racing",
			Creator:   "alex_doe",
			Thumbnail: "https://images.unsplash.com/photo-1511919884226-fd3cad34687c?w=400&h=300&fit=crop",
			Players:   2847,
			Rating:    4.8,
			Category:  games.CategoryRacing,
		},
	},
}

// GetProfile отдаёт профиль
func GetProfile(w http.ResponseWriter, r *http.Request) {
	utils.WriteApplicationJSON(w, http.StatusOK, Current)
}
