/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: streptococci.go
Description: Streptococcal evaluators: S. pneumoniae, beta-hemolytic streptococci
(groups A, B, C, G) and viridans group streptococci.
*/

package analysis

import (
	"github.com/kleascm/mechid/pkg/interfaces"
)

// macrolideFindings distinguishes erm target methylation from mef efflux
func macrolideFindings(p interfaces.Profile, fs *findingSet) {
	switch {
	case isR(p, interfaces.Erythromycin) && isR(p, interfaces.Clindamycin):
		fs.mechanism("Macrolide resistance: erm(B) target methylation (MLSB); clindamycin also inactive.")
	case isR(p, interfaces.Erythromycin) && isS(p, interfaces.Clindamycin):
		fs.mechanism("Macrolide resistance: mef(A) efflux likely; clindamycin retained unless inducible erm is shown.")
	}
}

// cephalosporinOverPenicillinCaution flags ceftriaxone resistance with penicillin susceptibility
func cephalosporinOverPenicillinCaution(p interfaces.Profile, fs *findingSet) {
	if anyR(p, interfaces.Ceftriaxone, interfaces.Cefotaxime) && isS(p, interfaces.Penicillin) {
		fs.caution("Ceftriaxone resistant while penicillin susceptible is implausible in streptococci; verify results.")
	}
}

type pneumococcusEvaluator struct{}

func (e *pneumococcusEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	if isNS(p, interfaces.Penicillin) {
		fs.mechanism("Penicillin non-susceptibility: altered penicillin-binding proteins (mosaic pbp genes); apply meningitis breakpoints to CNS isolates.")
	}
	if anyNS(p, interfaces.Ceftriaxone, interfaces.Cefotaxime) {
		fs.mechanism("Cephalosporin non-susceptibility: PBP alterations (pbp1a/pbp2x).")
	}
	macrolideFindings(p, &fs)
	if isR(p, interfaces.Levofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: parC/gyrA mutations.")
	}
	if isR(p, interfaces.Vancomycin) {
		fs.caution("Vancomycin resistance has not been confirmed in S. pneumoniae; confirm identification and send to a reference laboratory.")
	}
	cephalosporinOverPenicillinCaution(p, &fs)

	if isS(p, interfaces.Penicillin) {
		fs.favorable("Penicillin susceptible.")
	}

	return fs.result()
}

func (e *pneumococcusEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	if ctx.Syndrome == interfaces.SyndromeCNS && len(p) > 0 {
		notes = append(notes, "Meningitis: vancomycin plus ceftriaxone until susceptibilities are known; interpret with meningitis breakpoints.")
		if anyS(p, interfaces.Ceftriaxone, interfaces.Cefotaxime) {
			notes = append(notes, "Ceftriaxone susceptible at meningitis breakpoints: vancomycin can be stopped.")
		}
		return notes
	}

	switch {
	case isS(p, interfaces.Penicillin):
		notes = append(notes, "Penicillin or amoxicillin for non-meningeal infection.")
	case isS(p, interfaces.Ceftriaxone):
		notes = append(notes, "Ceftriaxone for non-meningeal infection.")
	case isS(p, interfaces.Levofloxacin):
		notes = append(notes, "Beta-lactam resistant: levofloxacin if susceptible, or vancomycin for severe infection.")
	}

	if ctx.Syndrome == interfaces.SyndromePneumonia && ctx.Severity == interfaces.SeveritySevere {
		notes = append(notes, "Severe community-acquired pneumonia: combine a beta-lactam with a macrolide for atypical coverage pending results.")
	}

	return notes
}

type betaHemolyticEvaluator struct{}

func (e *betaHemolyticEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	if isNS(p, interfaces.Penicillin) {
		fs.caution("Penicillin non-susceptibility has not been confirmed in beta-hemolytic streptococci; confirm identification and send to a reference laboratory.")
	}
	macrolideFindings(p, &fs)
	if isR(p, interfaces.Levofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: parC/gyrA mutations.")
	}
	if isNS(p, interfaces.Vancomycin) {
		fs.caution("Vancomycin non-susceptibility is not expected in beta-hemolytic streptococci; verify results.")
	}

	if isS(p, interfaces.Penicillin) {
		fs.favorable("Penicillin susceptible as expected.")
	}

	return fs.result()
}

func (e *betaHemolyticEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	if isS(p, interfaces.Penicillin) {
		notes = append(notes, "Penicillin or amoxicillin is the drug of choice.")
	}

	if ctx.Severity == interfaces.SeveritySevere || ctx.Syndrome == interfaces.SyndromeSkinSoftTissue {
		switch {
		case isS(p, interfaces.Clindamycin):
			notes = append(notes, "Necrotizing or toxin-mediated group A streptococcal infection: add clindamycin for toxin suppression.")
		case isR(p, interfaces.Clindamycin):
			notes = append(notes, "Clindamycin resistant: linezolid can provide toxin suppression in severe group A streptococcal infection.")
		}
	}

	if isR(p, interfaces.Erythromycin) {
		notes = append(notes, "Macrolide resistant: choose a tested alternative for penicillin-allergic patients.")
	}

	return notes
}

type viridansEvaluator struct{}

func (e *viridansEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	if isNS(p, interfaces.Penicillin) {
		fs.mechanism("Reduced penicillin susceptibility: altered penicillin-binding proteins.")
	}
	if isNS(p, interfaces.Ceftriaxone) {
		fs.mechanism("Ceftriaxone non-susceptibility: PBP alterations.")
	}
	macrolideFindings(p, &fs)
	if isR(p, interfaces.Levofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: parC/gyrA mutations.")
	}
	if isNS(p, interfaces.Vancomycin) {
		fs.caution("Vancomycin non-susceptible viridans streptococcus: confirm identification and testing.")
	}
	cephalosporinOverPenicillinCaution(p, &fs)

	if isS(p, interfaces.Penicillin) {
		fs.favorable("Penicillin susceptible.")
	}

	return fs.result()
}

func (e *viridansEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	if ctx.Syndrome == interfaces.SyndromeEndocarditis {
		switch {
		case isS(p, interfaces.Penicillin):
			notes = append(notes, "Viridans streptococcal endocarditis, penicillin susceptible: penicillin G or ceftriaxone.")
		case isNS(p, interfaces.Penicillin) && isS(p, interfaces.Ceftriaxone):
			notes = append(notes, "Viridans streptococcal endocarditis, reduced penicillin susceptibility: ceftriaxone, adding gentamicin for the first two weeks.")
		case isNS(p, interfaces.Penicillin):
			notes = append(notes, "Viridans streptococcal endocarditis, beta-lactam non-susceptible: vancomycin.")
		}
		return notes
	}

	switch {
	case isS(p, interfaces.Penicillin):
		notes = append(notes, "Penicillin or amoxicillin is appropriate.")
	case isS(p, interfaces.Ceftriaxone):
		notes = append(notes, "Ceftriaxone is appropriate.")
	case isNS(p, interfaces.Penicillin) && isS(p, interfaces.Vancomycin):
		notes = append(notes, "Beta-lactam non-susceptible: vancomycin.")
	}

	return notes
}
