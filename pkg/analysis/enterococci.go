/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enterococci.go
Description: Enterococcal evaluator for E. faecalis and E. faecium. Cephalosporins are
intrinsically inactive for both, and E. faecium is intrinsically resistant to penicillin
and ampicillin, so those results never drive a finding for that species.
*/

package analysis

import (
	"github.com/kleascm/mechid/pkg/interfaces"
)

type enterococcusEvaluator struct {
	faecium bool
}

func (e *enterococcusEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	if isR(p, interfaces.Vancomycin) {
		fs.mechanism("Vancomycin resistance (vanA/vanB operon): VRE.")
	}

	if !e.faecium {
		if isR(p, interfaces.Ampicillin) {
			fs.mechanism("Ampicillin resistance in E. faecalis is rare (PBP4 alteration or beta-lactamase); confirm identification.")
		}
		if isR(p, interfaces.Ampicillin) && isS(p, interfaces.Penicillin) {
			fs.caution("Ampicillin resistant while penicillin susceptible is implausible; verify results.")
		}
		if isS(p, interfaces.Ampicillin) {
			fs.favorable("Ampicillin susceptible: ampicillin remains the drug of choice.")
		}
	}

	if isR(p, interfaces.HighLevelGentamicin) {
		fs.mechanism("High-level gentamicin resistance (aac(6')-Ie-aph(2'')-Ia): loss of gentamicin synergy.")
	}
	if isR(p, interfaces.HighLevelStreptomycin) {
		fs.mechanism("High-level streptomycin resistance: loss of streptomycin synergy.")
	}
	if isR(p, interfaces.Linezolid) {
		fs.mechanism("Linezolid resistance: 23S rRNA mutation, cfr, optrA or poxtA.")
	}
	if isNS(p, interfaces.Daptomycin) {
		fs.mechanism("Daptomycin non-susceptibility: cell-membrane adaptation (liaFSR pathway).")
	}
	if isR(p, interfaces.Ciprofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: gyrA/parC mutations.")
	}

	if isR(p, interfaces.Vancomycin) && isR(p, interfaces.Linezolid) && isNS(p, interfaces.Daptomycin) {
		fs.caution("Resistant to vancomycin, linezolid and daptomycin: confirm results and consult infectious diseases urgently.")
	}

	if isS(p, interfaces.Vancomycin) && e.faecium {
		fs.favorable("Vancomycin susceptible.")
	}

	return fs.result()
}

func (e *enterococcusEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	ampS := !e.faecium && isS(p, interfaces.Ampicillin)

	switch {
	case ampS && ctx.Syndrome == interfaces.SyndromeEndocarditis:
		notes = append(notes, "E. faecalis endocarditis: ampicillin plus ceftriaxone (dual beta-lactam synergy).")
		if isS(p, interfaces.HighLevelGentamicin) {
			notes = append(notes, "Ampicillin plus gentamicin is an alternative because high-level gentamicin resistance is absent.")
		} else if isR(p, interfaces.HighLevelGentamicin) && isS(p, interfaces.HighLevelStreptomycin) {
			notes = append(notes, "Gentamicin synergy lost; streptomycin can provide aminoglycoside synergy.")
		}
	case ampS && ctx.Syndrome == interfaces.SyndromeCystitis:
		notes = append(notes, "Cystitis: amoxicillin, or nitrofurantoin if susceptible.")
	case ampS:
		notes = append(notes, "Ampicillin (or amoxicillin) is the drug of choice.")
	case isS(p, interfaces.Vancomycin):
		notes = append(notes, "Ampicillin unavailable or inactive: vancomycin.")
	case isR(p, interfaces.Vancomycin):
		switch {
		case ctx.Syndrome == interfaces.SyndromeCystitis && isS(p, interfaces.Nitrofurantoin):
			notes = append(notes, "VRE cystitis: nitrofurantoin.")
		case ctx.Syndrome == interfaces.SyndromeBloodstream || ctx.Syndrome == interfaces.SyndromeEndocarditis:
			notes = append(notes, "VRE bacteremia: high-dose daptomycin (8-12 mg/kg) or linezolid.")
		default:
			notes = append(notes, "VRE: linezolid or high-dose daptomycin according to susceptibility.")
		}
	}

	return notes
}
