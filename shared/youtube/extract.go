package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls a canonical video ID out of user input: a share
// URL (youtu.be/<id>), a full watch URL (?v=<id>), or a bare 11-character
// ID. It returns "" when no ID can be found, which callers treat as
// "search keyword", not as an error. Malformed URLs never fail the call;
// they just fall through to the bare-ID check.
func ExtractVideoID(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if idx := strings.Index(input, "youtu.be/"); idx != -1 {
		id := input[idx+len("youtu.be/"):]
		if cut := strings.IndexAny(id, "?&"); cut != -1 {
			id = id[:cut]
		}
		if id != "" {
			return id
		}
	} else if strings.Contains(input, "youtube.com/") {
		if u, err := url.Parse(input); err == nil {
			if id := u.Query().Get("v"); id != "" {
				return id
			}
		}
	}

	if videoIDPattern.MatchString(input) {
		return input
	}
	return ""
}
