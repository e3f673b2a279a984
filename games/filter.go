package games

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Filter отбирает игры по категории и строке поиска.
// Категория сравнивается точно, запрос ищется без учёта регистра
// в названии или имени автора. Порядок исходного списка сохраняется.
func Filter(games []*Game, category Category, query string) []*Game {
	lowerQuery := strings.ToLower(query)

	filtered := make([]*Game, 0, len(games))
	for _, g := range games {
		if category != CategoryAll && g.Category != category {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(g.Title), lowerQuery) &&
			!strings.Contains(strings.ToLower(g.Creator), lowerQuery) {
			continue
		}

		filtered = append(filtered, g)
	}

	return filtered
}

// FormatPlayerCount 2847 -> 2.8K.
// Десятые округляются по точному значению float64, половина вверх:
// 1250 -> 1.3K, но 1150 -> 1.1K (1.15 в float64 чуть меньше 1.15).
func FormatPlayerCount(count int64) string {
	if count < 1000 {
		return strconv.FormatInt(count, 10)
	}

	tenths := new(big.Float).SetPrec(256).SetFloat64(float64(count) / 1000)
	tenths.Mul(tenths, big.NewFloat(10))
	tenths.Add(tenths, big.NewFloat(0.5))
	n, _ := tenths.Int64()

	return fmt.Sprintf("%d.%dK", n/10, n%10)
}
