package espn

import (
	"encoding/json"
	"regexp"
	"strings"
)

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Team     team   `json:"team"`
}

type team struct {
	DisplayName string `json:"displayName"`
}

// sides splits the competitors into home and away.
func (c competition) sides() (home, away competitor, ok bool) {
	if len(c.Competitors) != 2 {
		return competitor{}, competitor{}, false
	}
	for _, comp := range c.Competitors {
		switch comp.HomeAway {
		case "home":
			home = comp
		case "away":
			away = comp
		}
	}
	if home.Team.DisplayName == "" || away.Team.DisplayName == "" {
		return competitor{}, competitor{}, false
	}
	return home, away, true
}

type summaryResponse struct {
	// BoxScore is passed through untouched; its shape is ESPN's business.
	BoxScore json.RawMessage `json:"boxscore"`
	Videos   []summaryVideo  `json:"videos"`
	Article  *summaryArticle `json:"article"`
}

type summaryVideo struct {
	Headline   string `json:"headline"`
	Thumbnail  string `json:"thumbnail"`
	PosterImgs []struct {
		Href string `json:"href"`
	} `json:"posterImages"`
}

type summaryArticle struct {
	Images []struct {
		URL     string `json:"url"`
		Caption string `json:"caption"`
	} `json:"images"`
}

type summaryImage struct {
	URL     string
	Caption string
}

// allImages flattens article images and video thumbnails into one list.
func (s summaryResponse) allImages() []summaryImage {
	out := make([]summaryImage, 0)
	if s.Article != nil {
		for _, img := range s.Article.Images {
			out = append(out, summaryImage{URL: img.URL, Caption: img.Caption})
		}
	}
	for _, v := range s.Videos {
		url := v.Thumbnail
		if url == "" && len(v.PosterImgs) > 0 {
			url = v.PosterImgs[0].Href
		}
		if url == "" {
			continue
		}
		out = append(out, summaryImage{URL: url, Caption: v.Headline})
	}
	return out
}

var shortLogoPattern = regexp.MustCompile(`/[a-z]{2,3}\.(png|svg|gif)`)

// isTeamLogo filters out team crest assets, which make poor hero images.
func isTeamLogo(url string) bool {
	if url == "" {
		return true
	}
	lower := strings.ToLower(url)
	return strings.Contains(lower, "/team/") ||
		strings.Contains(lower, "/logo") ||
		strings.Contains(lower, "teamlogos") ||
		shortLogoPattern.MatchString(lower)
}

var genericPhrases = []string{"game preview", "full game", "extended highlights"}

var teamVsTeamPattern = regexp.MustCompile(`(?i)^[a-z\s]+ vs\.? [a-z\s]+$`)

// isGenericCaption filters captions that name no specific moment, like bare
// "Team vs Team" matchup shots.
func isGenericCaption(caption string) bool {
	if caption == "" {
		return false
	}
	lower := strings.ToLower(caption)
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return teamVsTeamPattern.MatchString(strings.TrimSpace(caption))
}
