package youtube

import (
	"encoding/json"
	"fmt"

	"nba-recap-service/internal/providers"
)

// ytInitialData mirrors just the slice of YouTube's page data we need:
// tabs -> rich grid -> video renderers.
type ytInitialData struct {
	Contents struct {
		TwoColumnBrowseResultsRenderer struct {
			Tabs []tab `json:"tabs"`
		} `json:"twoColumnBrowseResultsRenderer"`
	} `json:"contents"`
}

type tab struct {
	TabRenderer struct {
		Content struct {
			RichGridRenderer *richGrid `json:"richGridRenderer"`
		} `json:"content"`
	} `json:"tabRenderer"`
}

type richGrid struct {
	Contents []struct {
		RichItemRenderer *struct {
			Content struct {
				VideoRenderer *videoRenderer `json:"videoRenderer"`
			} `json:"content"`
		} `json:"richItemRenderer"`
	} `json:"contents"`
}

type videoRenderer struct {
	VideoID string `json:"videoId"`
	Title   struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"title"`
}

// parseInitialData extracts the uploads listing from a ytInitialData blob.
func parseInitialData(blob []byte) ([]providers.Video, error) {
	var data ytInitialData
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("youtube: decode ytInitialData: %w", err)
	}

	videos := make([]providers.Video, 0)
	for _, t := range data.Contents.TwoColumnBrowseResultsRenderer.Tabs {
		grid := t.TabRenderer.Content.RichGridRenderer
		if grid == nil {
			continue
		}
		for _, item := range grid.Contents {
			if item.RichItemRenderer == nil {
				continue
			}
			vr := item.RichItemRenderer.Content.VideoRenderer
			if vr == nil || vr.VideoID == "" || len(vr.Title.Runs) == 0 {
				continue
			}
			videos = append(videos, providers.Video{
				VideoID: vr.VideoID,
				Title:   vr.Title.Runs[0].Text,
			})
		}
	}
	return videos, nil
}
