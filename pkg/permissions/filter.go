package permissions

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// Match keeps the permissions whose api name matches the glob pattern.
// An empty pattern matches everything.
func Match(perms []Permission, pattern string) ([]Permission, error) {
	if pattern == "" {
		return perms, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, oops.In("permissions").
			Code(CodeInvalidArgument).
			With("pattern", pattern).
			Wrapf(err, "invalid api name pattern")
	}

	out := []Permission{}
	for _, p := range perms {
		if g.Match(string(p.APIName)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search keeps the permissions whose api name, display name or description
// contains text, ignoring case
func Search(perms []Permission, text string) []Permission {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return perms
	}

	out := []Permission{}
	for _, p := range perms {
		if strings.Contains(strings.ToLower(string(p.APIName)), needle) ||
			strings.Contains(strings.ToLower(p.DisplayName), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// InCategory keeps the permissions in the given product category
func InCategory(perms []Permission, category string) []Permission {
	if category == "" {
		return perms
	}
	out := []Permission{}
	for _, p := range perms {
		if strings.EqualFold(p.ProductCategory, category) {
			out = append(out, p)
		}
	}
	return out
}
