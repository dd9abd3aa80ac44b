/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: Profile templates. A template names the evaluator an organism uses, so several
organisms can share one family of mechanism and therapy rules. The set is closed and
enumerable; ForTemplate is the single dispatch point.
*/

package analysis

import "strings"

// Template identifies a shared evaluator
type Template int

const (
	TemplateNone Template = iota
	TemplateEnterobacterales
	TemplateProteus
	TemplateAmpC
	TemplateSerratia
	TemplatePseudomonas
	TemplateAcinetobacter
	TemplateStaphAureus
	TemplateStaphCoagulaseNegative
	TemplateStaphLugdunensis
	TemplateEnterococcusFaecalis
	TemplateEnterococcusFaecium
	TemplatePneumococcus
	TemplateBetaHemolyticStrep
	TemplateViridansStrep
)

var templateNames = map[Template]string{
	TemplateNone:                   "none",
	TemplateEnterobacterales:       "enterobacterales",
	TemplateProteus:                "proteus",
	TemplateAmpC:                   "ampc-enterobacterales",
	TemplateSerratia:               "serratia",
	TemplatePseudomonas:            "pseudomonas",
	TemplateAcinetobacter:          "acinetobacter",
	TemplateStaphAureus:            "staphylococcus-aureus",
	TemplateStaphCoagulaseNegative: "coagulase-negative-staphylococci",
	TemplateStaphLugdunensis:       "staphylococcus-lugdunensis",
	TemplateEnterococcusFaecalis:   "enterococcus-faecalis",
	TemplateEnterococcusFaecium:    "enterococcus-faecium",
	TemplatePneumococcus:           "streptococcus-pneumoniae",
	TemplateBetaHemolyticStrep:     "beta-hemolytic-streptococci",
	TemplateViridansStrep:          "viridans-streptococci",
}

// String returns the stable template name used in rule packs
func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTemplate resolves a rule-pack template name
func ParseTemplate(name string) (Template, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range templateNames {
		if n == key {
			return t, true
		}
	}
	return TemplateNone, false
}

// Templates lists every template with an evaluator, in declaration order
func Templates() []Template {
	out := make([]Template, 0, len(templateNames)-1)
	for t := TemplateEnterobacterales; t <= TemplateViridansStrep; t++ {
		out = append(out, t)
	}
	return out
}

// ForTemplate returns the evaluator for a template. TemplateNone and unknown values yield nil.
func ForTemplate(t Template) Evaluator {
	switch t {
	case TemplateEnterobacterales:
		return &enterobacteralesEvaluator{}
	case TemplateProteus:
		return &enterobacteralesEvaluator{polymyxinIntrinsic: true}
	case TemplateAmpC:
		return &ampcEvaluator{}
	case TemplateSerratia:
		return &ampcEvaluator{lowInductionRisk: true}
	case TemplatePseudomonas:
		return &pseudomonasEvaluator{}
	case TemplateAcinetobacter:
		return &acinetobacterEvaluator{}
	case TemplateStaphAureus:
		return &staphylococcusEvaluator{species: staphAureus}
	case TemplateStaphCoagulaseNegative:
		return &staphylococcusEvaluator{species: staphCoagulaseNegative}
	case TemplateStaphLugdunensis:
		return &staphylococcusEvaluator{species: staphLugdunensis}
	case TemplateEnterococcusFaecalis:
		return &enterococcusEvaluator{}
	case TemplateEnterococcusFaecium:
		return &enterococcusEvaluator{faecium: true}
	case TemplatePneumococcus:
		return &pneumococcusEvaluator{}
	case TemplateBetaHemolyticStrep:
		return &betaHemolyticEvaluator{}
	case TemplateViridansStrep:
		return &viridansEvaluator{}
	default:
		return nil
	}
}
