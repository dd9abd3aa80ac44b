/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Mechanism and therapy analysis for MechID. Defines the Evaluator interface
implemented once per organism family, the Evaluate entry point that runs both halves and
deduplicates their output, and the first-seen-order Dedup used for every narrative list.
*/

package analysis

import (
	"github.com/kleascm/mechid/pkg/interfaces"
)

// Evaluator interprets a consolidated profile for one organism family.
// Implementations are pure: each check is an independent predicate over the profile
// and a missing value never fires a check.
type Evaluator interface {
	// Mechanisms returns mechanism findings, cautions and favorable observations
	Mechanisms(p interfaces.Profile) (mechanisms, cautions, favorables []string)

	// Therapy returns therapy notes. The clinical context only selects wording variants.
	Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string
}

// Evaluate runs both halves of an evaluator and deduplicates every list.
// A nil evaluator yields empty findings.
func Evaluate(ev Evaluator, p interfaces.Profile, ctx interfaces.ClinicalContext) interfaces.Findings {
	if ev == nil {
		return interfaces.Findings{
			Mechanisms: []string{},
			Cautions:   []string{},
			Favorables: []string{},
			Therapies:  []string{},
		}
	}

	mechs, cautions, favorables := ev.Mechanisms(p)
	therapy := ev.Therapy(p, ctx)

	return interfaces.Findings{
		Mechanisms: Dedup(mechs),
		Cautions:   Dedup(cautions),
		Favorables: Dedup(favorables),
		Therapies:  Dedup(therapy),
	}
}

// Dedup removes exact duplicates keeping the first occurrence.
// The result is never nil.
func Dedup(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// findingSet accumulates findings while an evaluator walks its checks
type findingSet struct {
	mechanisms []string
	cautions   []string
	favorables []string
}

func (f *findingSet) mechanism(s string) { f.mechanisms = append(f.mechanisms, s) }
func (f *findingSet) caution(s string)   { f.cautions = append(f.cautions, s) }
func (f *findingSet) favorable(s string) { f.favorables = append(f.favorables, s) }

func (f *findingSet) result() ([]string, []string, []string) {
	return f.mechanisms, f.cautions, f.favorables
}
