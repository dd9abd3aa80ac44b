/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: knowledge.go
Description: Organism knowledge base for MechID. Holds per-organism antibiotic panels,
intrinsic resistance lists, ordered cascade rules and the profile template that selects
the mechanism and therapy evaluator. A Base is immutable once built and is passed
explicitly to the pipeline.
*/

package knowledge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kleascm/mechid/pkg/analysis"
	"github.com/kleascm/mechid/pkg/interfaces"
)

var (
	// ErrInvalidRule is returned for malformed cascade rules
	ErrInvalidRule = errors.New("invalid cascade rule")
	// ErrUnknownTemplate is returned when a rule pack names a template that does not exist
	ErrUnknownTemplate = errors.New("unknown profile template")
	// ErrDuplicateOrganism is returned when two organisms share a name
	ErrDuplicateOrganism = errors.New("duplicate organism")
)

// Group is the pathogen group an organism is listed under
type Group string

const (
	GroupGramNegative  Group = "Gram-negatives"
	GroupStaphylococci Group = "Staphylococci"
	GroupEnterococcus  Group = "Enterococcus"
	GroupStreptococcus Group = "Streptococcus"
)

// Organism is the knowledge held for one organism
type Organism struct {
	Name      string            `json:"name"`
	Group     Group             `json:"group"`
	Panel     []string          `json:"panel"`
	Intrinsic []string          `json:"intrinsic"`
	Cascade   []CascadeRule     `json:"cascade"`
	Template  analysis.Template `json:"-"`
}

// TemplateName exposes the template for listings and JSON output
func (o *Organism) TemplateName() string {
	return o.Template.String()
}

// IsIntrinsic reports whether the organism is intrinsically resistant to the antibiotic
func (o *Organism) IsIntrinsic(antibiotic string) bool {
	for _, ab := range o.Intrinsic {
		if ab == antibiotic {
			return true
		}
	}
	return false
}

// IntrinsicProfile returns the intrinsic list as a profile of Resistant calls
func (o *Organism) IntrinsicProfile() interfaces.Profile {
	p := make(interfaces.Profile, len(o.Intrinsic))
	for _, ab := range o.Intrinsic {
		p[ab] = interfaces.Resistant
	}
	return p
}

// Evaluator returns the mechanism/therapy evaluator selected by the template
func (o *Organism) Evaluator() analysis.Evaluator {
	return analysis.ForTemplate(o.Template)
}

func (o *Organism) clone() *Organism {
	c := *o
	c.Panel = append([]string(nil), o.Panel...)
	c.Intrinsic = append([]string(nil), o.Intrinsic...)
	c.Cascade = cloneRules(o.Cascade)
	return &c
}

// Base is an immutable collection of organisms
type Base struct {
	organisms map[string]*Organism
	order     []string
	aliases   map[string]string
	prefixes  []prefixAlias
}

// New builds a Base from organisms in the given order
func New(orgs ...Organism) (*Base, error) {
	b := &Base{
		organisms: make(map[string]*Organism, len(orgs)),
		order:     make([]string, 0, len(orgs)),
		aliases:   make(map[string]string),
		prefixes:  append([]prefixAlias(nil), defaultPrefixes...),
	}
	for k, v := range defaultAliases {
		b.aliases[k] = v
	}
	for i := range orgs {
		org := orgs[i]
		if org.Name == "" {
			return nil, fmt.Errorf("organism %d has no name", i)
		}
		if _, exists := b.organisms[org.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrganism, org.Name)
		}
		b.organisms[org.Name] = org.clone()
		b.order = append(b.order, org.Name)
	}
	return b, nil
}

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Default returns the built-in knowledge base. It is built once per process.
func Default() *Base {
	defaultOnce.Do(func() {
		orgs := append(gramNegatives(), gramPositives()...)
		b, err := New(orgs...)
		if err != nil {
			panic(fmt.Sprintf("built-in knowledge base is invalid: %v", err))
		}
		defaultBase = b
	})
	return defaultBase
}

// Canonicalize maps free-text organism names onto knowledge-base names.
// Exact names and aliases match case-insensitively, then known prefixes are tried
// in order. Unknown input is returned trimmed but otherwise unchanged.
func (b *Base) Canonicalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return name
	}
	if exact := b.exactName(name); exact != name {
		return exact
	}
	if _, ok := b.organisms[name]; ok {
		return name
	}

	lower := strings.ToLower(name)
	for _, p := range b.prefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.canonical
		}
	}
	return name
}

// Lookup canonicalizes the name and returns a copy of the organism
func (b *Base) Lookup(name string) (*Organism, bool) {
	org, ok := b.organisms[b.Canonicalize(name)]
	if !ok {
		return nil, false
	}
	return org.clone(), true
}

// Names returns organism names in declaration order
func (b *Base) Names() []string {
	return append([]string(nil), b.order...)
}

// Organisms returns copies of every organism in declaration order
func (b *Base) Organisms() []*Organism {
	out := make([]*Organism, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.organisms[name].clone())
	}
	return out
}

// ByGroup returns organism names in a group, sorted
func (b *Base) ByGroup(g Group) []string {
	var out []string
	for _, name := range b.order {
		if b.organisms[name].Group == g {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Groups returns the groups present, in first-declared order
func (b *Base) Groups() []Group {
	var out []Group
	seen := make(map[Group]bool)
	for _, name := range b.order {
		g := b.organisms[name].Group
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// Len returns the number of organisms
func (b *Base) Len() int {
	return len(b.order)
}

// derive copies the base so an overlay can modify it without touching the original
func (b *Base) derive() *Base {
	c := &Base{
		organisms: make(map[string]*Organism, len(b.organisms)),
		order:     append([]string(nil), b.order...),
		aliases:   make(map[string]string, len(b.aliases)),
		prefixes:  append([]prefixAlias(nil), b.prefixes...),
	}
	for name, org := range b.organisms {
		c.organisms[name] = org.clone()
	}
	for k, v := range b.aliases {
		c.aliases[k] = v
	}
	return c
}
