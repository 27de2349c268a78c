// Package feature ranks a day's recaps and selects the games promoted to
// the highlighted section. Scoring is a pure function of a single record;
// games are only compared during the final sort.
package feature

import (
	"sort"
	"strings"

	"nba-recap-service/internal/domain/recaps"
	"nba-recap-service/internal/records"
)

// Rule pairs a lower-case team-name substring with the bonus it awards.
type Rule struct {
	Term  string
	Bonus float64
}

// RecordOrder names the convention linking the title's parsed records to
// sides of the court. Recap titles list the away team first; the convention
// is a property of the title format, not something we can verify per game.
type RecordOrder int

const (
	// FirstAwaySecondHome treats the first parsed record as the away
	// team's and the second as the home team's.
	FirstAwaySecondHome RecordOrder = iota
	// FirstHomeSecondAway inverts the convention.
	FirstHomeSecondAway
)

// Rules is the immutable configuration driving ScoreGame. Construct once at
// startup and pass into NewEngine; the engine never mutates it.
type Rules struct {
	// Franchise rules mark "must feature" teams. The first matching rule
	// applies; its bonus must dominate every other component combined.
	Franchise []Rule
	// Popular rules award a flat bonus for globally popular franchises.
	Popular []Rule
	// CompetitiveWeight scales the good-matchup and upset bonuses.
	CompetitiveWeight float64
	// GoodTeamPct is the win percentage both teams need for the
	// good-matchup bonus.
	GoodTeamPct float64
	// FavoritePct is the win percentage above which a team counts as a
	// clear favorite for upset detection.
	FavoritePct float64
	// ClosenessMargin is the largest score margin that still earns a
	// closeness bonus; ClosenessStep is the per-point value.
	ClosenessMargin int
	ClosenessStep   float64
	// Order declares which side each parsed title record belongs to.
	Order RecordOrder
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		Franchise: []Rule{
			{Term: "trail blazers", Bonus: 10000},
			{Term: "portland", Bonus: 10000},
		},
		Popular: []Rule{
			{Term: "lakers", Bonus: 200},
			{Term: "warriors", Bonus: 200},
			{Term: "celtics", Bonus: 200},
			{Term: "knicks", Bonus: 200},
			{Term: "bulls", Bonus: 200},
		},
		CompetitiveWeight: 1000,
		GoodTeamPct:       0.5,
		FavoritePct:       0.6,
		ClosenessMargin:   20,
		ClosenessStep:     5,
		Order:             FirstAwaySecondHome,
	}
}

// Engine scores and ranks games according to a fixed rule set.
type Engine struct {
	rules Rules
}

// NewEngine constructs an Engine with the provided rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// ScoreGame computes the desirability score for a single recap. It never
// fails: malformed titles and missing scores contribute zero to their
// respective bonuses.
func (e *Engine) ScoreGame(g recaps.GameRecord) float64 {
	score := teamBonus(e.rules.Franchise, g.HomeTeam, g.AwayTeam)
	score += teamBonus(e.rules.Popular, g.HomeTeam, g.AwayTeam)
	score += e.competitiveBonus(g)
	score += e.closenessBonus(g)
	return score
}

// teamBonus returns the bonus of the first rule whose term appears in
// either team identifier.
func teamBonus(rules []Rule, home, away string) float64 {
	h := strings.ToLower(home)
	a := strings.ToLower(away)
	for _, r := range rules {
		if strings.Contains(h, r.Term) || strings.Contains(a, r.Term) {
			return r.Bonus
		}
	}
	return 0
}

// competitiveBonus awards either the good-matchup bonus (both teams at or
// above GoodTeamPct) or the upset bonus (a clear favorite lost to the
// underdog). Both records parsing without either condition holding is the
// expected quiet band and contributes nothing.
func (e *Engine) competitiveBonus(g recaps.GameRecord) float64 {
	recs, ok := records.ParseTitleRecords(g.Title)
	if !ok {
		return 0
	}

	pct1 := recs[0].WinPct()
	pct2 := recs[1].WinPct()
	minPct, maxPct := pct1, pct2
	if minPct > maxPct {
		minPct, maxPct = maxPct, minPct
	}

	if pct1 >= e.rules.GoodTeamPct && pct2 >= e.rules.GoodTeamPct {
		return (pct1 + pct2) / 2 * e.rules.CompetitiveWeight
	}

	if maxPct > e.rules.FavoritePct && minPct <= e.rules.GoodTeamPct {
		if e.underdogWon(g, pct1, pct2) {
			return (maxPct - minPct) * e.rules.CompetitiveWeight
		}
	}
	return 0
}

// underdogWon reports whether the side with the lower win percentage scored
// more points, using the configured record order to map the parsed records
// onto home and away.
func (e *Engine) underdogWon(g recaps.GameRecord, pct1, pct2 float64) bool {
	awayPct, homePct := pct1, pct2
	if e.rules.Order == FirstHomeSecondAway {
		awayPct, homePct = pct2, pct1
	}

	if awayPct < homePct {
		return g.AwayScore > g.HomeScore
	}
	if homePct < awayPct {
		return g.HomeScore > g.AwayScore
	}
	return false
}

func (e *Engine) closenessBonus(g recaps.GameRecord) float64 {
	diff := g.ScoreDiff()
	if diff > e.rules.ClosenessMargin {
		return 0
	}
	return float64(e.rules.ClosenessMargin-diff) * e.rules.ClosenessStep
}

// FeaturedGames scores every game and returns the top limit games in
// descending score order. The sort is stable so equal scores keep their
// input order, which makes selection reproducible.
func (e *Engine) FeaturedGames(games []recaps.GameRecord, limit int) []recaps.GameRecord {
	if len(games) == 0 || limit <= 0 {
		return []recaps.GameRecord{}
	}

	type scored struct {
		game  recaps.GameRecord
		score float64
	}
	scoredGames := make([]scored, 0, len(games))
	for _, g := range games {
		scoredGames = append(scoredGames, scored{game: g, score: e.ScoreGame(g)})
	}

	sort.SliceStable(scoredGames, func(i, j int) bool {
		return scoredGames[i].score > scoredGames[j].score
	})

	if limit > len(scoredGames) {
		limit = len(scoredGames)
	}
	out := make([]recaps.GameRecord, 0, limit)
	for _, sg := range scoredGames[:limit] {
		out = append(out, sg.game)
	}
	return out
}

// OtherGames returns the games not selected as featured, identified by ID,
// preserving the original input order.
func OtherGames(games, featured []recaps.GameRecord) []recaps.GameRecord {
	selected := make(map[string]struct{}, len(featured))
	for _, g := range featured {
		selected[g.ID] = struct{}{}
	}

	out := make([]recaps.GameRecord, 0, len(games))
	for _, g := range games {
		if _, ok := selected[g.ID]; !ok {
			out = append(out, g)
		}
	}
	return out
}
