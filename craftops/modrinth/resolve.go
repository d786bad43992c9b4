package modrinth

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// ErrNoMatchingVersion is returned by Resolve when no published
// version satisfies the loader and game version constraint.
var ErrNoMatchingVersion = errors.New("no matching version")

// Resolve picks the version a pack on the given loader and game
// version constraint should be running. The newest matching version
// wins, newest meaning the greatest publish date; when two matches
// share a publish date the one listed earlier by the API is kept, as
// the API returns versions newest first.
func Resolve(versions []Version, loader, constraint string) (Version, error) {
	matches := lo.Filter(versions, func(v Version, _ int) bool {
		if loader != "" && !lo.Contains(v.Loaders, loader) {
			return false
		}
		return lo.SomeBy(v.GameVersions, func(game string) bool {
			return matchesConstraint(game, constraint)
		})
	})
	if len(matches) == 0 {
		return Version{}, ErrNoMatchingVersion
	}

	best := matches[0]
	for _, v := range matches[1:] {
		if v.DatePublished.After(best.DatePublished) {
			best = v
		}
	}
	return best, nil
}

// matchesConstraint reports whether a game version satisfies the
// configured constraint. A trailing "*" matches any suffix, so
// "1.21.*" accepts "1.21.1"; an empty or bare "*" constraint accepts
// everything; anything else must match exactly.
func matchesConstraint(game, constraint string) bool {
	if constraint == "" || constraint == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(constraint, "*"); ok {
		return strings.HasPrefix(game, prefix)
	}
	return game == constraint
}
