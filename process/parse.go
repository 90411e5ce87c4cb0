package process

import (
	"regexp"
	"strings"
)

const summaryUnavailable = "Summary not available"

var (
	summaryRE   = regexp.MustCompile(`(?is)(?:summary|overview):(.*?)(?:\n\n|\n#)`)
	keyPointsRE = regexp.MustCompile(`(?is)(?:key points|takeaways|main points):(.*?)(?:\n\n|\n#)`)
	notesRE     = regexp.MustCompile(`(?is)(?:notes|detailed notes):(.*)`)
	bulletRE    = regexp.MustCompile(`\n\s*[-•*]\s*`)
)

// parseCompletion splits free completion text into its sections. The notes
// fall back to the whole text.
func parseCompletion(text string) Content {
	c := Content{
		Summary: summaryUnavailable,
		Notes:   text,
	}
	if m := summaryRE.FindStringSubmatch(text); m != nil {
		c.Summary = strings.TrimSpace(m[1])
	}
	if m := keyPointsRE.FindStringSubmatch(text); m != nil {
		for _, point := range bulletRE.Split(m[1], -1) {
			if point = strings.TrimSpace(point); point != "" {
				c.KeyPoints = append(c.KeyPoints, point)
			}
		}
	}
	if m := notesRE.FindStringSubmatch(text); m != nil {
		c.Notes = strings.TrimSpace(m[1])
	}

	return c
}
