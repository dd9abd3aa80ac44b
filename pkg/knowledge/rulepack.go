/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rulepack.go
Description: YAML rule packs. A pack adds organisms or overrides the panel, intrinsic
list, cascade rules or template of existing ones, and can register extra name aliases.
Applying a pack always produces a new Base; the original is never modified.
*/

package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kleascm/mechid/pkg/analysis"
)

// RulePack is the decoded form of a rule pack file
type RulePack struct {
	Name      string            `yaml:"name"`
	Aliases   map[string]string `yaml:"aliases"`
	Organisms []packOrganism    `yaml:"organisms"`
}

type packOrganism struct {
	Name      string     `yaml:"name"`
	Group     string     `yaml:"group"`
	Template  string     `yaml:"template"`
	Panel     []string   `yaml:"panel"`
	Intrinsic *[]string  `yaml:"intrinsic"`
	Cascade   []packRule `yaml:"cascade"`

	// AppendCascade adds rules after the existing ones instead of replacing them
	AppendCascade bool `yaml:"append_cascade"`
}

// packRule accepts either "ref" or "refs" for single-reference kinds
type packRule struct {
	Target   string   `yaml:"target"`
	Rule     string   `yaml:"rule"`
	Ref      string   `yaml:"ref"`
	Refs     []string `yaml:"refs"`
	Primary  string   `yaml:"primary"`
	Fallback string   `yaml:"fallback"`
}

func (r packRule) compile() (CascadeRule, error) {
	refs := append([]string(nil), r.Refs...)
	if r.Ref != "" {
		refs = append([]string{r.Ref}, refs...)
	}
	rule := CascadeRule{
		Target:   strings.TrimSpace(r.Target),
		Kind:     RuleKind(strings.ToLower(strings.TrimSpace(r.Rule))),
		Refs:     refs,
		Primary:  r.Primary,
		Fallback: r.Fallback,
	}
	if err := rule.Check(); err != nil {
		return CascadeRule{}, err
	}
	return rule, nil
}

// LoadRulePack reads and decodes a rule pack file
func LoadRulePack(path string) (*RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	pack, err := ParseRulePack(data)
	if err != nil {
		return nil, fmt.Errorf("rule pack %s: %w", path, err)
	}
	return pack, nil
}

// ParseRulePack decodes a rule pack document
func ParseRulePack(data []byte) (*RulePack, error) {
	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &pack, nil
}

// Apply overlays the pack onto the base and returns the resulting new Base
func (b *Base) Apply(pack *RulePack) (*Base, error) {
	out := b.derive()
	if pack == nil {
		return out, nil
	}

	for _, po := range pack.Organisms {
		if strings.TrimSpace(po.Name) == "" {
			return nil, fmt.Errorf("%w: organism without a name", ErrInvalidRule)
		}
		if err := out.applyOrganism(po); err != nil {
			return nil, fmt.Errorf("organism %s: %w", po.Name, err)
		}
	}

	for alias, canonical := range pack.Aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key == "" {
			continue
		}
		out.aliases[key] = out.Canonicalize(canonical)
	}

	return out, nil
}

func (b *Base) applyOrganism(po packOrganism) error {
	cascade := make([]CascadeRule, 0, len(po.Cascade))
	for i, pr := range po.Cascade {
		rule, err := pr.compile()
		if err != nil {
			return fmt.Errorf("cascade rule %d: %w", i+1, err)
		}
		cascade = append(cascade, rule)
	}

	var template analysis.Template
	if po.Template != "" {
		t, ok := analysis.ParseTemplate(po.Template)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTemplate, po.Template)
		}
		template = t
	}

	if existing, ok := b.organisms[b.exactName(po.Name)]; ok {
		if po.Group != "" {
			existing.Group = Group(po.Group)
		}
		if po.Template != "" {
			existing.Template = template
		}
		if po.Panel != nil {
			existing.Panel = append([]string(nil), po.Panel...)
		}
		if po.Intrinsic != nil {
			existing.Intrinsic = append([]string(nil), (*po.Intrinsic)...)
		}
		switch {
		case po.AppendCascade:
			existing.Cascade = append(existing.Cascade, cascade...)
		case po.Cascade != nil:
			existing.Cascade = cascade
		}
		return nil
	}

	if po.Template == "" {
		return fmt.Errorf("%w: new organisms must name a template", ErrUnknownTemplate)
	}
	org := &Organism{
		Name:     strings.TrimSpace(po.Name),
		Group:    Group(po.Group),
		Panel:    append([]string(nil), po.Panel...),
		Cascade:  cascade,
		Template: template,
	}
	if org.Group == "" {
		org.Group = groupForTemplate(template)
	}
	if po.Intrinsic != nil {
		org.Intrinsic = append([]string(nil), (*po.Intrinsic)...)
	}
	b.organisms[org.Name] = org
	b.order = append(b.order, org.Name)
	return nil
}

// exactName resolves a name by exact match or alias only. Prefix matching is skipped
// so a pack can add a new species of a genus that is already known.
func (b *Base) exactName(raw string) string {
	name := strings.TrimSpace(raw)
	lower := strings.ToLower(name)
	for _, known := range b.order {
		if strings.ToLower(known) == lower {
			return known
		}
	}
	if canonical, ok := b.aliases[lower]; ok {
		return canonical
	}
	return name
}

func groupForTemplate(t analysis.Template) Group {
	switch t {
	case analysis.TemplateStaphAureus, analysis.TemplateStaphCoagulaseNegative, analysis.TemplateStaphLugdunensis:
		return GroupStaphylococci
	case analysis.TemplateEnterococcusFaecalis, analysis.TemplateEnterococcusFaecium:
		return GroupEnterococcus
	case analysis.TemplatePneumococcus, analysis.TemplateBetaHemolyticStrep, analysis.TemplateViridansStrep:
		return GroupStreptococcus
	default:
		return GroupGramNegative
	}
}
