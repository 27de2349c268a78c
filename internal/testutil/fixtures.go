package testutil

import "nba-recap-service/internal/domain/recaps"

// Game builds a minimal final recap for tests.
func Game(id, home, away string, homeScore, awayScore int) recaps.GameRecord {
	return recaps.GameRecord{
		ID:         id,
		Date:       "2025-01-15",
		HomeTeam:   home,
		AwayTeam:   away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		GameStatus: recaps.StatusFinal,
	}
}

// GameWithTitle builds a recap carrying a record-bearing title.
func GameWithTitle(id, home, away string, homeScore, awayScore int, title string) recaps.GameRecord {
	g := Game(id, home, away, homeScore, awayScore)
	g.Title = title
	return g
}
