package games

import (
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/pkg/errors"
)

// GameAccessObject DAO for Game catalog
type GameAccessObject interface {
	GetGameList() ([]*Game, error)
	GetGameByID(id int64) (*Game, error)
}

// AccessObject implementation of GameAccessObject
// поверх статического каталога, который не меняется после старта
type AccessObject struct {
	games []*Game
	byID  map[int64]*Game
}

var Games GameAccessObject

func init() {
	Games = MustNewAccessObject(seedGames)
}

// NewAccessObject строит каталог, id должны быть уникальны
func NewAccessObject(games []*Game) (*AccessObject, error) {
	byID := make(map[int64]*Game, len(games))
	for _, g := range games {
		if _, ok := byID[g.ID]; ok {
			return nil, errors.Errorf("duplicate game id %d", g.ID)
		}
		byID[g.ID] = g
	}

	return &AccessObject{
		games: games,
		byID:  byID,
	}, nil
}

// MustNewAccessObject как NewAccessObject, но паникует
func MustNewAccessObject(games []*Game) *AccessObject {
	ao, err := NewAccessObject(games)
	if err != nil {
		panic(err)
	}

	return ao
}

// GetGameList отдаёт копию списка, сами записи неизменяемы
func (gs *AccessObject) GetGameList() ([]*Game, error) {
	games := make([]*Game, len(gs.games))
	copy(games, gs.games)

	return games, nil
}

// GetGameByID получает игру по id
func (gs *AccessObject) GetGameByID(id int64) (*Game, error) {
	g, ok := gs.byID[id]
	if !ok {
		return nil, utils.ErrNotExists
	}

	return g, nil
}

var seedGames = []*Game{
	{
		ID:        1,
		Title:     "Neon City Racing",
		Creator:   "SpeedMaster",
		Thumbnail: "https://images.unsplash.com/photo-1511919884226-fd3cad34687c?w=400&h=300&fit=crop",
		Players:   2847,
		Rating:    4.8,
		Category:  CategoryRacing,
		IsNew:     true,
	},
	{
		ID:         2,
		Title:      "Crystal Kingdom",
		Creator:    "MagicBuilder",
		Thumbnail:  "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
		Players:    5921,
		Rating:     4.9,
		Category:   CategoryAdventure,
		IsTrending: true,
	},
	{
		ID:        3,
		Title:     "Space Odyssey",
		Creator:   "CosmicDev",
		Thumbnail: "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=400&h=300&fit=crop",
		Players:   1234,
		Rating:    4.6,
		Category:  CategorySimulation,
	},
	{
		ID:        4,
		Title:     "Medieval Fortress",
		Creator:   "CastleBuilder",
		Thumbnail: "https://images.unsplash.com/photo-1536431311719-398b6704d4cc?w=400&h=300&fit=crop",
		Players:   3456,
		Rating:    4.7,
		Category:  CategoryStrategy,
	},
	{
		ID:         5,
		Title:      "Cyberpunk Arena",
		Creator:    "FutureTech",
		Thumbnail:  "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=300&fit=crop",
		Players:    8765,
		Rating:     4.9,
		Category:   CategoryAction,
		IsTrending: true,
	},
	{
		ID:        6,
		Title:     "Ocean Explorer",
		Creator:   "DeepSea",
		Thumbnail: "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		Players:   2156,
		Rating:    4.5,
		Category:  CategoryAdventure,
	},
}
