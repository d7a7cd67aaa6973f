package application

import "crossprobe/internal/domain"

// Resolver looks scanned tokens up in the entity cache. It never
// triggers a refresh; freshness is the caller's responsibility.
type Resolver struct {
	cache *EntityCache
}

// NewResolver creates a resolver reading the given cache.
func NewResolver(cache *EntityCache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve maps a token to a resolution outcome against the current
// cache generation.
//
// Tokens with an unknown kind hint are tried as components first, then
// as nets: the shorthand syntax was defined for designators first, and
// flipping the order would silently reinterpret existing notes. When
// neither kind matches, the miss is reported as a component miss.
func (r *Resolver) Resolve(token domain.Token) domain.Resolution {
	if token.Kind != domain.KindUnknown {
		return r.resolveAs(token.Kind, token.Name)
	}

	if res := r.resolveAs(domain.KindComponent, token.Name); res.Found {
		return res
	}
	if res := r.resolveAs(domain.KindNet, token.Name); res.Found {
		return res
	}
	return domain.Resolution{Found: false, Kind: domain.KindComponent}
}

func (r *Resolver) resolveAs(kind domain.EntityKind, name string) domain.Resolution {
	if rec, ok := r.cache.Lookup(kind, name); ok {
		return domain.Resolution{Found: true, Kind: kind, Record: rec}
	}
	return domain.Resolution{Found: false, Kind: kind}
}
