// Package media builds photo URLs from listing photo references.
package media

import (
	"net/url"
	"strings"
)

// Resolver joins relative photo references onto a configured base.
type Resolver struct {
	Base string
}

func NewResolver(base string) Resolver {
	return Resolver{Base: strings.TrimRight(base, "/")}
}

// Resolve returns ref unchanged when it already carries a scheme,
// otherwise it is appended to the base path.
func (r Resolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if IsAbsolute(ref) {
		return ref
	}
	base := strings.TrimRight(r.Base, "/")
	if base == "" {
		return ref
	}
	return base + "/" + strings.TrimLeft(ref, "/")
}

// ResolveAll resolves every reference, keeping order and dropping blanks.
func (r Resolver) ResolveAll(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if u := r.Resolve(ref); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// IsAbsolute reports whether ref is an absolute URL with a scheme.
func IsAbsolute(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
