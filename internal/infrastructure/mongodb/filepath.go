package mongodb

import (
	"strconv"
	"strings"
)

// eggMarker flags avatar paths that have not hatched yet; those are served
// verbatim, without the mood suffix.
const eggMarker = "oeuf"

// deriveFilepath appends the "_<status>.png" suffix used by the client to
// pick the displayed sprite. Egg-stage paths are returned unchanged. The
// stored value is never modified; this runs at read time only.
func deriveFilepath(path, status string) string {
	if strings.Contains(path, eggMarker) {
		return path
	}
	return path + "_" + status + ".png"
}

// evolveFilepath splices the life-stage label for the given completion count
// into the avatar path, keeping the path's final character (a format tag).
// When no threshold matches, the rebuilt path is identical to the input.
// This mirrors the asset naming contract of the client and is not a general
// file-path operation.
func evolveFilepath(path string, evoCaps map[string]string, completedAfter int) string {
	if path == "" {
		return ""
	}
	last := path[len(path)-1:]
	if stage, ok := evoCaps[strconv.Itoa(completedAfter)]; ok {
		return stage + last
	}
	return path[:len(path)-1] + last
}
