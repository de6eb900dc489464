package entity

import "math"

// StatsSnapshot holds the cumulative results of every completed game.
type StatsSnapshot struct {
	XWins      int `json:"xWins"`
	OWins      int `json:"oWins"`
	Draws      int `json:"draws"`
	TotalGames int `json:"totalGames"`
}

// Record counts one completed game. It reports false for a non-terminal result.
func (that *StatsSnapshot) Record(result GameResult) bool {
	switch result {
	case ResultWinX:
		that.XWins++
	case ResultWinO:
		that.OWins++
	case ResultDraw:
		that.Draws++
	default:
		return false
	}

	that.TotalGames++

	return true
}

// Percent returns count as a rounded share of all games, treating zero games as one.
func (that StatsSnapshot) Percent(count int) int {
	total := that.TotalGames
	if total < 1 {
		total = 1
	}

	return int(math.Round(100 * float64(count) / float64(total)))
}
