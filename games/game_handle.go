package games

import (
	"net/http"
	"strconv"

	"github.com/go-park-mail-ru/2019_1_Remastered/metrics"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// GetGame получает объект игры
func GetGame(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "GetGame")
	errWriter := utils.NewErrorResponseWriter(w, logger)
	vars := mux.Vars(r)

	gameID, err := strconv.ParseInt(vars["game_id"], 10, 64)
	if err != nil {
		errWriter.WriteWarn(http.StatusNotFound, errors.Wrap(utils.ErrNotExists, "wrong format game_id"))
		return
	}

	game, err := Games.GetGameByID(gameID)
	if err != nil {
		if errors.Cause(err) == utils.ErrNotExists {
			errWriter.WriteWarn(http.StatusNotFound, errors.Wrap(err, "game not exists"))
		} else {
			errWriter.WriteError(http.StatusInternalServerError, errors.Wrap(err, "get game method error"))
		}
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, game)
}

// GetGameList список игр с фильтром по category и q
func GetGameList(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "GetGameList")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	query := r.URL.Query()
	category, ok := ParseCategory(query.Get("category"))
	if !ok {
		errWriter.WriteValidationError(&utils.ValidationError{
			"category": utils.ErrInvalid.Error(),
		})
		return
	}

	filtered, err := FilteredList(category, query.Get("q"))
	if err != nil {
		errWriter.WriteError(http.StatusInternalServerError, errors.Wrap(err, "get game list method error"))
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, filtered)
}

// GetCategories категории для кнопок фильтра
func GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteApplicationJSON(w, http.StatusOK, Categories)
}

// FilteredList берёт каталог и прогоняет через Filter
func FilteredList(category Category, q string) ([]*Game, error) {
	games, err := Games.GetGameList()
	if err != nil {
		return nil, errors.Wrap(err, "catalog error")
	}

	filtered := Filter(games, category, q)
	metrics.ObserveFilterResult(string(category), len(filtered))

	return filtered, nil
}
