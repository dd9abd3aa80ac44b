/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: staphylococci.go
Description: Staphylococcal evaluator shared by S. aureus, coagulase-negative staphylococci
and S. lugdunensis. A species flag selects the few checks and therapy notes that differ.
*/

package analysis

import (
	"fmt"

	"github.com/kleascm/mechid/pkg/interfaces"
)

type staphSpecies int

const (
	staphAureus staphSpecies = iota
	staphCoagulaseNegative
	staphLugdunensis
)

type staphylococcusEvaluator struct {
	species staphSpecies
}

// aureusLike reports whether the species is interpreted with S. aureus rules
func (e *staphylococcusEvaluator) aureusLike() bool {
	return e.species == staphAureus || e.species == staphLugdunensis
}

func (e *staphylococcusEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	oxaR := isR(p, interfaces.NafcillinOxacillin)
	oxaS := isS(p, interfaces.NafcillinOxacillin)

	switch {
	case oxaR && e.species == staphCoagulaseNegative:
		fs.mechanism("Methicillin resistance (mecA-encoded PBP2a) in coagulase-negative staphylococci.")
	case oxaR:
		fs.mechanism("Methicillin resistance (mecA-encoded PBP2a): MRSA phenotype; all beta-lactams except ceftaroline are inactive.")
	case oxaS && isR(p, interfaces.Penicillin):
		fs.mechanism("Penicillinase (blaZ) production: penicillin inactive, penicillinase-stable beta-lactams retained.")
	}
	if oxaR && isS(p, interfaces.Penicillin) {
		fs.caution("Oxacillin resistant while penicillin susceptible is implausible; verify results.")
	}

	eryR := isR(p, interfaces.Erythromycin)
	switch {
	case eryR && isS(p, interfaces.Clindamycin):
		fs.mechanism("Macrolide resistance: erm-mediated inducible MLSB or msrA efflux.")
		fs.caution("Erythromycin resistant, clindamycin susceptible: perform a D-test for inducible clindamycin resistance before using clindamycin.")
	case eryR && isR(p, interfaces.Clindamycin):
		fs.mechanism("Constitutive MLSB resistance (erm): macrolides and clindamycin inactive.")
	case isR(p, interfaces.Clindamycin) && isS(p, interfaces.Erythromycin):
		fs.caution("Clindamycin resistant while erythromycin susceptible is unusual (lnu or vga genes); verify results.")
	}

	switch {
	case isR(p, interfaces.Vancomycin) && e.aureusLike():
		fs.mechanism("Vancomycin resistance (vanA acquisition, VRSA): notify infection prevention and send to a reference laboratory.")
	case isI(p, interfaces.Vancomycin) && e.aureusLike():
		fs.mechanism("Vancomycin-intermediate S. aureus (VISA/hVISA): cell-wall thickening from cumulative regulatory mutations.")
	case isNS(p, interfaces.Vancomycin):
		fs.caution("Vancomycin non-susceptible coagulase-negative staphylococcus: confirm by a reference method.")
	}

	if isR(p, interfaces.Linezolid) {
		fs.mechanism("Linezolid resistance: 23S rRNA mutation (G2576T) or cfr methyltransferase.")
	}
	if isR(p, interfaces.Moxifloxacin) {
		fs.mechanism("Fluoroquinolone resistance: grlA/gyrA mutations.")
	}
	if isR(p, interfaces.Gentamicin) {
		fs.mechanism("Aminoglycoside resistance: aac(6')-aph(2'') bifunctional enzyme.")
	}
	if isR(p, interfaces.TetracyclineDoxy) {
		fs.mechanism("Tetracycline resistance: tet(K) efflux or tet(M) ribosomal protection.")
	}
	if isR(p, interfaces.TrimethoprimSulfa) {
		fs.mechanism("Trimethoprim/sulfamethoxazole resistance: dfrA/dfrG acquisition.")
	}

	if e.species == staphLugdunensis {
		if oxaR || oxaS {
			fs.caution("S. lugdunensis behaves like S. aureus; interpret oxacillin with S. aureus breakpoints.")
		}
	}

	if oxaS {
		fs.favorable("Methicillin-susceptible: anti-staphylococcal beta-lactams are active.")
	}
	if isS(p, interfaces.Penicillin) && !oxaR {
		fs.favorable("Penicillin susceptible: penicillin is an option if blaZ negativity is confirmed.")
	}

	return fs.result()
}

func (e *staphylococcusEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	switch {
	case isS(p, interfaces.NafcillinOxacillin):
		switch ctx.Syndrome {
		case interfaces.SyndromeCNS:
			notes = append(notes, "Methicillin-susceptible CNS infection: nafcillin or oxacillin (better CNS penetration than cefazolin).")
		case interfaces.SyndromeBloodstream, interfaces.SyndromeEndocarditis:
			notes = append(notes, "Methicillin-susceptible bacteremia: cefazolin or nafcillin/oxacillin; cefazolin is better tolerated.")
		default:
			notes = append(notes, "Methicillin-susceptible: cefazolin or an anti-staphylococcal penicillin is preferred over vancomycin.")
		}

	case isR(p, interfaces.NafcillinOxacillin):
		switch ctx.Syndrome {
		case interfaces.SyndromeBloodstream, interfaces.SyndromeEndocarditis:
			notes = append(notes, "Methicillin-resistant bacteremia: vancomycin (AUC-guided dosing) or daptomycin.")
		case interfaces.SyndromePneumonia:
			notes = append(notes, "Methicillin-resistant pneumonia: vancomycin or linezolid; daptomycin is inactive in the lung.")
		default:
			if isS(p, interfaces.Vancomycin) {
				notes = append(notes, "Methicillin resistant: vancomycin when parenteral therapy is needed.")
			}
		}
		if isNS(p, interfaces.Vancomycin) {
			notes = append(notes, "Reduced vancomycin susceptibility: switch to daptomycin (if susceptible) or linezolid.")
		}
	}

	tested := len(notes) > 0
	if tested && e.species == staphCoagulaseNegative && ctx.Syndrome == interfaces.SyndromeBloodstream {
		notes = append(notes, "A single positive blood culture with coagulase-negative staphylococci is often a contaminant; confirm with repeat cultures before treating.")
	}
	if tested && e.aureusLike() && (ctx.Syndrome == interfaces.SyndromeBloodstream || ctx.Syndrome == interfaces.SyndromeEndocarditis) {
		notes = append(notes, "S. aureus bacteremia: obtain repeat blood cultures, echocardiography and infectious diseases consultation.")
	}

	if ctx.Syndrome == interfaces.SyndromeSkinSoftTissue || ctx.Severity == interfaces.SeverityMild {
		oral := withCall(p, interfaces.Susceptible, interfaces.TrimethoprimSulfa, interfaces.TetracyclineDoxy)
		if isS(p, interfaces.Clindamycin) && !isR(p, interfaces.Erythromycin) {
			oral = append(oral, interfaces.Clindamycin)
		}
		if len(oral) > 0 {
			notes = append(notes, fmt.Sprintf("Oral options for mild skin and soft tissue infection: %s.", humanList(oral)))
		}
	}

	return notes
}
