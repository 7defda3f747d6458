package app

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errUnknownSetting = errors.New("unknown setting machine name")

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", raw)
	}
	return id, nil
}

// slugify builds a URL-safe slug from a project title.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
