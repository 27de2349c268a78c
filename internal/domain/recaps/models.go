package recaps

// GameStatus mirrors the recap document's lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusFinal      GameStatus = "final"
)

// GameRecord is the canonical recap document shape served by the service.
// Scores may be absent upstream; zero is the documented fallback.
type GameRecord struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Date       string     `json:"date" bson:"date"`
	HomeTeam   string     `json:"homeTeam" bson:"home_team"`
	AwayTeam   string     `json:"awayTeam" bson:"away_team"`
	HomeScore  int        `json:"homeScore" bson:"home_score"`
	AwayScore  int        `json:"awayScore" bson:"away_score"`
	Title      string     `json:"title" bson:"title"`
	Recap      string     `json:"recap,omitempty" bson:"recap,omitempty"`
	GameStatus GameStatus `json:"gameStatus" bson:"game_status"`
	EspnGameID string     `json:"espnGameId,omitempty" bson:"espn_game_id,omitempty"`
	VideoID    string     `json:"videoId,omitempty" bson:"video_id,omitempty"`
}

// ScoreDiff returns the absolute score margin.
func (g GameRecord) ScoreDiff() int {
	diff := g.HomeScore - g.AwayScore
	if diff < 0 {
		return -diff
	}
	return diff
}

// DayResponse is the payload returned by /records/{date}.
type DayResponse struct {
	Date     string       `json:"date"`
	Featured []GameRecord `json:"featured"`
	Others   []GameRecord `json:"others"`
}

// TeamResponse is the payload returned by /records/team/{team}.
type TeamResponse struct {
	Team    string       `json:"team"`
	Records []GameRecord `json:"records"`
}

// NewDayResponse builds a DayResponse payload.
func NewDayResponse(date string, featured, others []GameRecord) DayResponse {
	return DayResponse{
		Date:     date,
		Featured: featured,
		Others:   others,
	}
}
