/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: resolver.go
Description: Citation resolution. Scans mechanism and caution text with an ordered
keyword trigger table and returns the matching references, deduplicated in first-seen
order. Organism-specific triggers always require a keyword as well, so empty text
never yields citations.
*/

package citations

import (
	"strings"
)

// MatchFunc decides whether a trigger fires. org and text are lowercase.
type MatchFunc func(org, text string) bool

// Trigger maps a text pattern to one or more citation IDs
type Trigger struct {
	Name  string
	Match MatchFunc
	IDs   []string
}

// Resolver turns finding text into references
type Resolver struct {
	catalog  Catalog
	triggers []Trigger
}

// NewResolver creates a resolver over a catalog and ordered trigger table
func NewResolver(catalog Catalog, triggers []Trigger) *Resolver {
	return &Resolver{
		catalog:  catalog,
		triggers: append([]Trigger(nil), triggers...),
	}
}

// DefaultResolver returns a resolver with the built-in catalog and triggers
func DefaultResolver() *Resolver {
	return NewResolver(DefaultCatalog(), DefaultTriggers())
}

// ResolveIDs returns matching citation IDs in trigger order, deduplicated
func (r *Resolver) ResolveIDs(organism string, mechanisms, cautions []string) []string {
	ids := []string{}
	text := strings.ToLower(strings.Join(append(append([]string(nil), mechanisms...), cautions...), " "))
	if strings.TrimSpace(text) == "" {
		return ids
	}
	org := strings.ToLower(organism)

	seen := make(map[string]bool)
	for _, t := range r.triggers {
		if t.Match == nil || !t.Match(org, text) {
			continue
		}
		for _, id := range t.IDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Resolve returns full reference strings. IDs missing from the catalog are skipped.
func (r *Resolver) Resolve(organism string, mechanisms, cautions []string) []string {
	return r.Strings(r.ResolveIDs(organism, mechanisms, cautions))
}

// Strings maps IDs to reference strings, skipping unknown IDs
func (r *Resolver) Strings(ids []string) []string {
	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		if ref, ok := r.catalog.Lookup(id); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Triggers returns a copy of the trigger table
func (r *Resolver) Triggers() []Trigger {
	return append([]Trigger(nil), r.triggers...)
}

// Any fires when the text contains any keyword
func Any(keywords ...string) MatchFunc {
	return func(_, text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// All fires when the text contains every keyword
func All(keywords ...string) MatchFunc {
	return func(_, text string) bool {
		for _, k := range keywords {
			if !strings.Contains(text, k) {
				return false
			}
		}
		return len(keywords) > 0
	}
}

// ForOrganism restricts a matcher to organisms whose name starts with prefix
func ForOrganism(prefix string, match MatchFunc) MatchFunc {
	prefix = strings.ToLower(prefix)
	return func(org, text string) bool {
		return strings.HasPrefix(org, prefix) && match(org, text)
	}
}
