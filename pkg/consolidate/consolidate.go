/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: consolidate.go
Description: Result consolidation. Merges inferred values, user-entered values and
intrinsic resistance into one final profile with per-antibiotic provenance.
Precedence is inferred < user < intrinsic.
*/

package consolidate

import (
	"sort"

	"github.com/kleascm/mechid/pkg/interfaces"
)

// Result is a consolidated profile with the provenance of every value
type Result struct {
	Final      interfaces.Profile               `json:"final"`
	Provenance map[string]interfaces.Provenance `json:"provenance"`
}

// Consolidate merges the three layers. Intrinsic antibiotics are always Resistant
// regardless of what the user entered.
func Consolidate(user, inferred interfaces.Profile, intrinsic []string) Result {
	final := make(interfaces.Profile, len(user)+len(inferred)+len(intrinsic))
	for ab, c := range inferred {
		if c.Valid() {
			final[ab] = c
		}
	}
	for ab, c := range user {
		if c.Valid() {
			final[ab] = c
		}
	}
	for _, ab := range intrinsic {
		final[ab] = interfaces.Resistant
	}

	isIntrinsic := make(map[string]bool, len(intrinsic))
	for _, ab := range intrinsic {
		isIntrinsic[ab] = true
	}

	provenance := make(map[string]interfaces.Provenance, len(final))
	for ab := range final {
		switch {
		case isIntrinsic[ab]:
			provenance[ab] = interfaces.ProvenanceIntrinsic
		case inferred.Has(ab) && !user.Has(ab):
			provenance[ab] = interfaces.ProvenanceCascade
		default:
			provenance[ab] = interfaces.ProvenanceUser
		}
	}

	return Result{Final: final, Provenance: provenance}
}

// Rows builds the consolidated table: panel antibiotics in panel order, then any
// remaining antibiotics alphabetically. Antibiotics without a value are omitted.
func Rows(r Result, panel []string) []interfaces.ResultRow {
	rows := make([]interfaces.ResultRow, 0, len(r.Final))
	listed := make(map[string]bool, len(panel))

	for _, ab := range panel {
		if listed[ab] {
			continue
		}
		listed[ab] = true
		if c, ok := r.Final.Get(ab); ok {
			rows = append(rows, interfaces.ResultRow{Antibiotic: ab, Result: c, Source: r.Provenance[ab]})
		}
	}

	var extra []string
	for ab := range r.Final {
		if !listed[ab] {
			extra = append(extra, ab)
		}
	}
	sort.Strings(extra)
	for _, ab := range extra {
		if c, ok := r.Final.Get(ab); ok {
			rows = append(rows, interfaces.ResultRow{Antibiotic: ab, Result: c, Source: r.Provenance[ab]})
		}
	}

	return rows
}
