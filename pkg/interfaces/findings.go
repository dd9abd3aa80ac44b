/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: findings.go
Description: Finding bundles, clinical context and evaluation results shared by the
analysis, citation and reporting layers.
*/

package interfaces

import "strings"

// FindingKind classifies a narrative statement
type FindingKind string

const (
	KindMechanism FindingKind = "Mechanism"
	KindCaution   FindingKind = "Caution"
	KindFavorable FindingKind = "Favorable"
	KindTherapy   FindingKind = "Therapy"
)

// FindingKinds lists the kinds in display order
var FindingKinds = []FindingKind{KindMechanism, KindCaution, KindFavorable, KindTherapy}

// Findings holds the four ordered narrative lists produced for one profile
type Findings struct {
	Mechanisms []string `json:"mechanisms"`
	Cautions   []string `json:"cautions"`
	Favorables []string `json:"favorables"`
	Therapies  []string `json:"therapies"`
}

// Empty reports whether no list has any entry
func (f Findings) Empty() bool {
	return len(f.Mechanisms) == 0 && len(f.Cautions) == 0 && len(f.Favorables) == 0 && len(f.Therapies) == 0
}

// ByKind returns the list for a given kind
func (f Findings) ByKind(kind FindingKind) []string {
	switch kind {
	case KindMechanism:
		return f.Mechanisms
	case KindCaution:
		return f.Cautions
	case KindFavorable:
		return f.Favorables
	case KindTherapy:
		return f.Therapies
	default:
		return nil
	}
}

// Syndrome is the clinical syndrome used to pick therapy wording
type Syndrome string

const (
	SyndromeUnspecified    Syndrome = ""
	SyndromeBloodstream    Syndrome = "bloodstream"
	SyndromePneumonia      Syndrome = "pneumonia"
	SyndromeCystitis       Syndrome = "cystitis"
	SyndromeComplicatedUTI Syndrome = "complicated-uti"
	SyndromeIntraAbdominal Syndrome = "intra-abdominal"
	SyndromeCNS            Syndrome = "cns"
	SyndromeEndocarditis   Syndrome = "endocarditis"
	SyndromeSkinSoftTissue Syndrome = "skin-soft-tissue"
	SyndromeBoneJoint      Syndrome = "bone-joint"
)

// Syndromes lists all accepted syndrome values except Unspecified
var Syndromes = []Syndrome{
	SyndromeBloodstream,
	SyndromePneumonia,
	SyndromeCystitis,
	SyndromeComplicatedUTI,
	SyndromeIntraAbdominal,
	SyndromeCNS,
	SyndromeEndocarditis,
	SyndromeSkinSoftTissue,
	SyndromeBoneJoint,
}

// ParseSyndrome normalizes a syndrome name. Unknown values map to Unspecified.
func ParseSyndrome(s string) Syndrome {
	v := Syndrome(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Syndromes {
		if v == known {
			return v
		}
	}
	return SyndromeUnspecified
}

// HighRisk reports whether the syndrome is one where a failing regimen is costly
func (s Syndrome) HighRisk() bool {
	switch s {
	case SyndromeBloodstream, SyndromePneumonia, SyndromeCNS, SyndromeEndocarditis:
		return true
	}
	return false
}

// Severity is the illness severity used to pick therapy wording
type Severity string

const (
	SeverityUnspecified Severity = ""
	SeverityMild        Severity = "mild"
	SeveritySevere      Severity = "severe"
)

// ParseSeverity normalizes a severity name. Unknown values map to Unspecified.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mild", "non-severe", "moderate":
		return SeverityMild
	case "severe", "critical", "septic-shock":
		return SeveritySevere
	default:
		return SeverityUnspecified
	}
}

// ClinicalContext modifies therapy wording only. It never changes mechanism findings.
type ClinicalContext struct {
	Syndrome Syndrome `json:"syndrome,omitempty"`
	Severity Severity `json:"severity,omitempty"`
}

// Request is one evaluation input: an organism name, raw results and context
type Request struct {
	Organism string            `json:"organism" yaml:"organism"`
	Results  map[string]string `json:"results" yaml:"results"`
	Syndrome string            `json:"syndrome,omitempty" yaml:"syndrome,omitempty"`
	Severity string            `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// Context extracts the clinical context from the request
func (r Request) Context() ClinicalContext {
	return ClinicalContext{
		Syndrome: ParseSyndrome(r.Syndrome),
		Severity: ParseSeverity(r.Severity),
	}
}

// Evaluation is the full, deterministic output bundle for one request.
// It carries no timestamps or IDs so identical input yields identical output.
type Evaluation struct {
	Organism    string          `json:"organism"`
	Known       bool            `json:"known"`
	Context     ClinicalContext `json:"context"`
	Intrinsic   []string        `json:"intrinsic,omitempty"`
	Rows        []ResultRow     `json:"rows"`
	Final       Profile         `json:"final"`
	Findings    Findings        `json:"findings"`
	CitationIDs []string        `json:"citation_ids"`
	Citations   []string        `json:"citations"`
}
