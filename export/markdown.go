package export

import (
	"fmt"
	"strings"

	"ewintr.nl/videonotes/model"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

// Markdown renders a result as a notes document. The timestamp is written in
// UTC so the same result always renders the same bytes.
func Markdown(res model.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", res.VideoDetails.Title)
	fmt.Fprintf(&b, "*Channel: %s*\n", res.VideoDetails.ChannelTitle)
	fmt.Fprintf(&b, "*Generated: %s*\n\n", res.Timestamp.UTC().Format(timestampLayout))

	b.WriteString("## Summary\n")
	b.WriteString(res.Summary)
	b.WriteString("\n\n## Key Points\n")
	for _, point := range res.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", point)
	}
	b.WriteString("\n## Notes\n")
	b.WriteString(res.Notes)

	return strings.TrimSpace(b.String())
}

func FileName(res model.Result) string {
	return fmt.Sprintf("notes-%s.md", res.VideoDetails.ID)
}
