package fetch

import (
	"regexp"

	"ewintr.nl/videonotes/model"
)

// videoIDRE matches the common YouTube URL shapes: youtu.be/<id>, v/<id>,
// vi/<id>, u/<x>/<id>, embed/<id>, shorts/<id> and the v or vi query
// parameter. The id runs until the first '#', '&' or '?'.
var videoIDRE = regexp.MustCompile(`^.*(?:(?:youtu\.be/|v/|vi/|u/\w/|embed/|shorts/)|(?:(?:watch)?\?vi?=|&vi?=))([^#&?]*).*`)

// ExtractVideoID returns the video id embedded in rawURL. The second return
// value is false when no id could be found.
func ExtractVideoID(rawURL string) (model.YoutubeVideoID, bool) {
	m := videoIDRE.FindStringSubmatch(rawURL)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}

	return model.YoutubeVideoID(m[1]), true
}
