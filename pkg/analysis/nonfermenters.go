/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: nonfermenters.go
Description: Evaluators for glucose non-fermenting gram-negative rods: Pseudomonas
aeruginosa and the Acinetobacter baumannii complex. Ertapenem is intrinsically inactive
against Pseudomonas and is never used as carbapenem evidence there.
*/

package analysis

import (
	"fmt"

	"github.com/kleascm/mechid/pkg/interfaces"
)

var antipseudomonalCarbapenems = []string{
	interfaces.Imipenem,
	interfaces.Meropenem,
	interfaces.Doripenem,
}

var antipseudomonalBetaLactams = []string{
	interfaces.Cefepime,
	interfaces.Ceftazidime,
	interfaces.PiperacillinTazobactam,
	interfaces.Aztreonam,
}

// dtrAgents are the first-line agents whose universal non-susceptibility defines
// difficult-to-treat resistance in P. aeruginosa
var dtrAgents = []string{
	interfaces.PiperacillinTazobactam,
	interfaces.Ceftazidime,
	interfaces.Cefepime,
	interfaces.Aztreonam,
	interfaces.Meropenem,
	interfaces.Imipenem,
	interfaces.Ciprofloxacin,
	interfaces.Levofloxacin,
}

type pseudomonasEvaluator struct{}

func (e *pseudomonasEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	carbR := anyR(p, antipseudomonalCarbapenems...)
	blR := anyR(p, interfaces.Cefepime, interfaces.Ceftazidime, interfaces.PiperacillinTazobactam)

	switch {
	case isR(p, interfaces.Imipenem) && isS(p, interfaces.Meropenem):
		fs.mechanism("Imipenem-only resistance: OprD porin loss.")
	case carbR && allS(p, interfaces.Cefepime, interfaces.Ceftazidime):
		fs.mechanism("Carbapenem resistance with anti-pseudomonal cephalosporins retained: OprD porin loss; carbapenemase unlikely.")
	case carbR:
		fs.mechanism("Carbapenem resistance (OprD loss with AmpC upregulation, or carbapenemase); request carbapenemase testing.")
	}

	if blR && !carbR {
		fs.mechanism("Chromosomal AmpC (PDC) derepression and/or MexAB-OprM efflux upregulation: anti-pseudomonal beta-lactam resistance with carbapenems preserved.")
	}

	if anyR(p, interfaces.Ciprofloxacin, interfaces.Levofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: gyrA/parC mutations with MexEF-OprN or MexCD-OprJ efflux.")
	}
	if anyR(p, interfaces.Gentamicin, interfaces.Tobramycin, interfaces.Amikacin) {
		fs.mechanism("Aminoglycoside resistance: modifying enzymes or MexXY-OprM efflux.")
	}
	if isR(p, interfaces.Colistin) {
		fs.mechanism(textPolymyxin)
	}

	if allNS(p, dtrAgents...) {
		fs.mechanism("Difficult-to-treat resistance (DTR): non-susceptible to all first-line anti-pseudomonal beta-lactams and fluoroquinolones.")
	}

	if isR(p, interfaces.CeftolozaneTazobactam) && isS(p, interfaces.Ceftazidime) {
		fs.caution("Ceftolozane-tazobactam resistant while ceftazidime susceptible is implausible; verify results.")
	}
	inhibitorCombinationCautions(p, &fs)

	if active := withCall(p, interfaces.Susceptible, antipseudomonalBetaLactams...); len(active) > 0 && !carbR {
		fs.favorable(fmt.Sprintf("Anti-pseudomonal beta-lactam activity retained: %s.", humanList(active)))
	}

	return fs.result()
}

func (e *pseudomonasEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	carbR := anyR(p, antipseudomonalCarbapenems...)
	active := withCall(p, interfaces.Susceptible, antipseudomonalBetaLactams...)

	switch {
	case allNS(p, dtrAgents...):
		notes = append(notes, "DTR P. aeruginosa: ceftolozane-tazobactam, ceftazidime-avibactam, imipenem-relebactam or cefiderocol guided by susceptibility; infectious diseases consultation advised.")
	case len(active) > 0:
		notes = append(notes, fmt.Sprintf("Use an active anti-pseudomonal beta-lactam (%s); extended infusion preferred.", humanList(active)))
		if carbR {
			notes = append(notes, "Carbapenem resistant: prefer a susceptible non-carbapenem beta-lactam over high-dose carbapenem.")
		}
	case carbR:
		notes = append(notes, "Carbapenem resistant: select from ceftolozane-tazobactam, ceftazidime-avibactam or imipenem-relebactam based on testing.")
	}

	if len(notes) > 0 && (ctx.Severity == interfaces.SeveritySevere || ctx.Syndrome.HighRisk()) {
		notes = append(notes, "Severe infection: use extended or continuous infusion dosing and pursue source control.")
	}

	if ctx.Syndrome == interfaces.SyndromeCystitis && anyS(p, interfaces.Tobramycin, interfaces.Gentamicin, interfaces.Amikacin) {
		notes = append(notes, "Cystitis: a single dose of an active aminoglycoside is an option.")
	}

	if fq := withCall(p, interfaces.Susceptible, interfaces.Ciprofloxacin, interfaces.Levofloxacin); len(fq) > 0 &&
		ctx.Syndrome != interfaces.SyndromeCNS && ctx.Severity != interfaces.SeveritySevere {
		notes = append(notes, fmt.Sprintf("Oral step-down with %s is reasonable once clinically improved.", humanList(fq)))
	}

	return notes
}

var acinetobacterCarbapenems = []string{
	interfaces.Imipenem,
	interfaces.Meropenem,
	interfaces.Doripenem,
}

type acinetobacterEvaluator struct{}

func (e *acinetobacterEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	carbR := anyR(p, acinetobacterCarbapenems...)
	if carbR {
		fs.mechanism("Carbapenem resistance (OXA-type carbapenemase likely, e.g., OXA-23 or OXA-24/40).")
	}

	if !carbR && anyR(p, interfaces.Ceftriaxone, interfaces.Cefotaxime, interfaces.Ceftazidime, interfaces.Cefepime) {
		fs.mechanism("Cephalosporin resistance: Acinetobacter-derived cephalosporinase (ADC, AmpC-type) overexpression via ISAba1.")
	}
	if isR(p, interfaces.AmpicillinSulbactam) {
		fs.mechanism("Ampicillin-sulbactam resistance: altered sulbactam target (PBP3) or beta-lactamase overproduction.")
	}
	if anyR(p, interfaces.Ciprofloxacin, interfaces.Levofloxacin) {
		fs.mechanism("Fluoroquinolone resistance: gyrA/parC mutations with AdeABC efflux.")
	}
	if anyR(p, interfaces.Gentamicin, interfaces.Tobramycin, interfaces.Amikacin) {
		fs.mechanism(textAminoglycoside)
	}
	if isR(p, interfaces.Colistin) {
		fs.mechanism(textPolymyxin)
	}

	if carbR && susceptibleWhereTested(p, interfaces.Ceftazidime, interfaces.Cefepime) {
		fs.caution("Carbapenem resistant with susceptible anti-pseudomonal cephalosporins is unusual for A. baumannii; confirm identification and carbapenemase status.")
	}
	inhibitorCombinationCautions(p, &fs)

	if !carbR && isS(p, interfaces.AmpicillinSulbactam) {
		fs.favorable("Ampicillin-sulbactam susceptible.")
	}

	return fs.result()
}

func (e *acinetobacterEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	carbR := anyR(p, acinetobacterCarbapenems...)

	switch {
	case carbR:
		notes = append(notes, "Carbapenem-resistant A. baumannii: sulbactam-durlobactam plus imipenem or meropenem is preferred; high-dose ampicillin-sulbactam combination therapy is the alternative.")
		if ctx.Severity == interfaces.SeveritySevere || ctx.Syndrome.HighRisk() {
			notes = append(notes, "Severe carbapenem-resistant A. baumannii infection: combine at least two active agents and involve infectious diseases.")
		}
	case isS(p, interfaces.AmpicillinSulbactam):
		notes = append(notes, "Ampicillin-sulbactam is a preferred option when susceptible.")
	case anyS(p, interfaces.Meropenem, interfaces.Imipenem):
		notes = append(notes, "A carbapenem (meropenem or imipenem) is appropriate when susceptible.")
	}

	return notes
}
