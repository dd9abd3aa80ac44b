/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enterobacterales.go
Description: Evaluators for the Enterobacterales. The ESBL-first family covers E. coli,
Klebsiella and Proteus; the AmpC family covers Enterobacter, Citrobacter and Serratia,
whose chromosomal AmpC changes how cephalosporin resistance is read and treated.
*/

package analysis

import (
	"fmt"

	"github.com/kleascm/mechid/pkg/interfaces"
)

// Narrative shared across gram-negative families. Citation triggers key off these words.
const (
	textCarbapenemase      = "Carbapenem resistance: carbapenemase production (KPC, NDM, VIM, IMP or OXA-48-like) is likely; request phenotypic or molecular carbapenemase testing."
	textErtapenemOnly      = "Ertapenem-only carbapenem resistance: ESBL or AmpC combined with porin loss is more likely than a carbapenemase."
	textOXA48Pattern       = "Carbapenem resistance with susceptible 3rd-generation cephalosporins is atypical; consider an OXA-48-like carbapenemase and confirm testing."
	textFluoroquinolone    = "Fluoroquinolone resistance: gyrA/parC target mutations, often with efflux or plasmid qnr genes."
	textAminoglycoside     = "Aminoglycoside resistance: aminoglycoside-modifying enzymes or 16S rRNA methyltransferase."
	textPolymyxin          = "Polymyxin (colistin) resistance: lipid A modification (chromosomal mgrB/pmrAB or plasmid mcr); confirm by broth microdilution."
	textFolatePathway      = "Trimethoprim/sulfamethoxazole resistance: acquired sul/dfr genes."
	textCRETherapy         = "Carbapenem-resistant Enterobacterales: ceftazidime-avibactam, meropenem-vaborbactam or imipenem-relebactam for KPC producers; ceftazidime-avibactam plus aztreonam or cefiderocol for metallo-beta-lactamases. Involve infectious diseases."
	textCRESevereAddendum  = "Severe carbapenem-resistant infection: obtain carbapenemase genotype urgently to choose between novel beta-lactam/beta-lactamase inhibitor agents."
	textStepDownTemplate   = "Oral step-down once clinically stable and source controlled: %s."
	textCystitisTemplate   = "Cystitis: oral %s preferred when susceptible."
	textDiscordantCeph     = "Cefepime resistant while ceftriaxone susceptible is implausible; verify identification and repeat testing."
	textDiscordantCefazoln = "Ceftriaxone resistant while cefazolin susceptible is implausible; verify identification and repeat testing."
)

var thirdGen = []string{
	interfaces.Ceftriaxone,
	interfaces.Cefotaxime,
	interfaces.Ceftazidime,
	interfaces.Cefpodoxime,
}

var gnCarbapenems = []string{
	interfaces.Ertapenem,
	interfaces.Imipenem,
	interfaces.Meropenem,
	interfaces.Doripenem,
}

// carbapenemFindings classifies carbapenem resistance shared by the Enterobacterales families.
// It returns true when any carbapenem is resistant.
func carbapenemFindings(p interfaces.Profile, fs *findingSet) bool {
	if !anyR(p, gnCarbapenems...) {
		return false
	}
	ertapenemOnly := isR(p, interfaces.Ertapenem) &&
		!anyR(p, interfaces.Imipenem, interfaces.Meropenem, interfaces.Doripenem) &&
		anyS(p, interfaces.Imipenem, interfaces.Meropenem)
	if ertapenemOnly {
		fs.mechanism(textErtapenemOnly)
	} else {
		fs.mechanism(textCarbapenemase)
	}
	if susceptibleWhereTested(p, interfaces.Ceftriaxone, interfaces.Cefotaxime, interfaces.Ceftazidime) {
		fs.caution(textOXA48Pattern)
	}
	return true
}

// inhibitorCombinationCautions flags a beta-lactamase inhibitor combination that tests
// resistant while its partner beta-lactam alone tests susceptible
func inhibitorCombinationCautions(p interfaces.Profile, fs *findingSet) {
	pairs := [][2]string{
		{interfaces.CeftazidimeAvibactam, interfaces.Ceftazidime},
		{interfaces.MeropenemVaborbactam, interfaces.Meropenem},
		{interfaces.ImipenemRelebactam, interfaces.Imipenem},
	}
	for _, pair := range pairs {
		if isR(p, pair[0]) && isS(p, pair[1]) {
			fs.caution(fmt.Sprintf("%s resistant while %s susceptible is implausible; verify results.", pair[0], pair[1]))
		}
	}
}

// acquiredNonBetaLactamFindings covers fluoroquinolones, aminoglycosides and folate pathway agents
func acquiredNonBetaLactamFindings(p interfaces.Profile, fs *findingSet) {
	if anyR(p, interfaces.Ciprofloxacin, interfaces.Levofloxacin, interfaces.Moxifloxacin) {
		fs.mechanism(textFluoroquinolone)
	}
	if anyR(p, interfaces.Gentamicin, interfaces.Tobramycin, interfaces.Amikacin) {
		fs.mechanism(textAminoglycoside)
	}
	if isR(p, interfaces.TrimethoprimSulfa) {
		fs.mechanism(textFolatePathway)
	}
}

// oralStepDown lists susceptible oral options in preference order
func oralStepDown(p interfaces.Profile) []string {
	return withCall(p, interfaces.Susceptible,
		interfaces.TrimethoprimSulfa,
		interfaces.Ciprofloxacin,
		interfaces.Levofloxacin,
	)
}

func cystitisOptions(p interfaces.Profile) []string {
	return withCall(p, interfaces.Susceptible,
		interfaces.Nitrofurantoin,
		interfaces.TrimethoprimSulfa,
		interfaces.Fosfomycin,
	)
}

func creTherapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	notes := []string{textCRETherapy}
	if active := withCall(p, interfaces.Susceptible,
		interfaces.CeftazidimeAvibactam,
		interfaces.MeropenemVaborbactam,
		interfaces.ImipenemRelebactam,
		interfaces.Cefiderocol,
	); len(active) > 0 {
		notes = append(notes, fmt.Sprintf("Tested active agents: %s.", humanList(active)))
	}
	if ctx.Severity == interfaces.SeveritySevere || ctx.Syndrome.HighRisk() {
		notes = append(notes, textCRESevereAddendum)
	}
	return notes
}

// enterobacteralesEvaluator reads cephalosporin resistance as ESBL first
type enterobacteralesEvaluator struct {
	polymyxinIntrinsic bool
}

func (e *enterobacteralesEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	carbR := carbapenemFindings(p, &fs)
	thirdR := anyR(p, thirdGen...)

	if thirdR && !carbR {
		if isS(p, interfaces.PiperacillinTazobactam) {
			fs.mechanism("ESBL likely (3rd-generation cephalosporin resistance); the piperacillin-tazobactam susceptible result is discordant and unreliable for serious infection.")
		} else {
			fs.mechanism("ESBL likely (3rd-generation cephalosporin resistance pattern).")
		}
		if anyR(p, interfaces.Cefoxitin, interfaces.Cefotetan) && isS(p, interfaces.Cefepime) {
			fs.mechanism("Plasmid-mediated AmpC possible: cephamycin and 3rd-generation cephalosporin resistance with cefepime retained.")
		}
	}

	if isR(p, interfaces.Cefazolin) && susceptibleWhereTested(p, interfaces.Ceftriaxone, interfaces.Cefotaxime, interfaces.Ceftazidime) {
		fs.mechanism("Narrow-spectrum beta-lactamase (TEM-1/SHV-1 hyperproduction): cefazolin resistance with 3rd-generation cephalosporins preserved.")
	}

	if isR(p, interfaces.Cefepime) && isS(p, interfaces.Ceftriaxone) {
		fs.caution(textDiscordantCeph)
	}
	if isR(p, interfaces.Ceftriaxone) && isS(p, interfaces.Cefazolin) {
		fs.caution(textDiscordantCefazoln)
	}
	inhibitorCombinationCautions(p, &fs)

	acquiredNonBetaLactamFindings(p, &fs)
	if !e.polymyxinIntrinsic && isR(p, interfaces.Colistin) {
		fs.mechanism(textPolymyxin)
	}

	if !thirdR && !carbR && susceptibleWhereTested(p, thirdGen...) {
		fs.favorable("No ESBL phenotype: 3rd-generation cephalosporins test susceptible.")
	}
	if !carbR && allS(p, interfaces.Ertapenem, interfaces.Meropenem) {
		fs.favorable("Carbapenems retained.")
	}

	return fs.result()
}

func (e *enterobacteralesEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	carbR := anyR(p, gnCarbapenems...)
	thirdR := anyR(p, thirdGen...)

	switch {
	case carbR:
		notes = append(notes, creTherapy(p, ctx)...)

	case thirdR:
		if ctx.Syndrome == interfaces.SyndromeCystitis {
			if opts := cystitisOptions(p); len(opts) > 0 {
				notes = append(notes, fmt.Sprintf(textCystitisTemplate, humanList(opts)))
			}
			if isS(p, interfaces.PiperacillinTazobactam) {
				notes = append(notes, "ESBL cystitis: piperacillin-tazobactam is acceptable if already started and the patient is improving.")
			}
		} else {
			notes = append(notes, "ESBL: a carbapenem (meropenem, or ertapenem if not critically ill) is preferred for infections outside the urinary tract.")
			if isS(p, interfaces.PiperacillinTazobactam) {
				notes = append(notes, "Do not rely on piperacillin-tazobactam for ESBL bloodstream infection or other high-risk syndromes even when reported susceptible.")
			}
		}
		if ctx.Severity != interfaces.SeveritySevere && ctx.Syndrome != interfaces.SyndromeCNS {
			if opts := oralStepDown(p); len(opts) > 0 {
				notes = append(notes, fmt.Sprintf(textStepDownTemplate, humanList(opts)))
			}
		}

	case isS(p, interfaces.Ceftriaxone) || isS(p, interfaces.Cefotaxime):
		if ctx.Syndrome == interfaces.SyndromeCystitis {
			if opts := cystitisOptions(p); len(opts) > 0 {
				notes = append(notes, fmt.Sprintf(textCystitisTemplate, humanList(opts)))
			}
			if isS(p, interfaces.Cefazolin) {
				notes = append(notes, "Cefazolin susceptible: oral cephalexin or cefpodoxime is an option for uncomplicated cystitis.")
			}
		} else {
			notes = append(notes, "Ceftriaxone is appropriate when susceptible; avoid broader agents.")
			if ctx.Severity != interfaces.SeveritySevere {
				if opts := oralStepDown(p); len(opts) > 0 {
					notes = append(notes, fmt.Sprintf(textStepDownTemplate, humanList(opts)))
				}
			}
		}
	}

	return notes
}

// ampcEvaluator reads cephalosporin resistance as chromosomal AmpC derepression first
type ampcEvaluator struct {
	lowInductionRisk bool
}

func (e *ampcEvaluator) Mechanisms(p interfaces.Profile) ([]string, []string, []string) {
	var fs findingSet

	carbR := carbapenemFindings(p, &fs)
	thirdR := anyR(p, thirdGen...)

	if thirdR && !carbR {
		fs.mechanism("AmpC (inducible chromosomal beta-lactamase) derepression: 3rd-generation cephalosporin resistance in an AmpC-producing organism.")
		if isR(p, interfaces.Cefepime) {
			fs.mechanism("ESBL co-production likely: cefepime resistance on top of AmpC derepression.")
		}
	}

	if !thirdR && anyS(p, interfaces.Ceftriaxone, interfaces.Cefotaxime, interfaces.Ceftazidime) {
		if e.lowInductionRisk {
			fs.favorable("Low risk of clinically significant AmpC induction: 3rd-generation cephalosporins remain reasonable when susceptible.")
		} else {
			fs.caution("Chromosomal inducible AmpC: 3rd-generation cephalosporins can select derepressed mutants during therapy despite susceptible results.")
		}
	}

	if isR(p, interfaces.Cefepime) && isS(p, interfaces.Ceftriaxone) {
		fs.caution(textDiscordantCeph)
	}
	inhibitorCombinationCautions(p, &fs)
	acquiredNonBetaLactamFindings(p, &fs)
	if isR(p, interfaces.Colistin) {
		fs.mechanism(textPolymyxin)
	}

	if isS(p, interfaces.Cefepime) && !carbR {
		fs.favorable("Cefepime susceptible: stable against AmpC hydrolysis.")
	}

	return fs.result()
}

func (e *ampcEvaluator) Therapy(p interfaces.Profile, ctx interfaces.ClinicalContext) []string {
	var notes []string

	carbR := anyR(p, gnCarbapenems...)
	thirdR := anyR(p, thirdGen...)

	switch {
	case carbR:
		notes = append(notes, creTherapy(p, ctx)...)

	case isS(p, interfaces.Cefepime):
		notes = append(notes, "Cefepime is preferred for AmpC producers when susceptible (MIC <= 2 mg/L).")
		if !thirdR && !e.lowInductionRisk {
			if ctx.Syndrome == interfaces.SyndromeCystitis {
				notes = append(notes, "Ceftriaxone remains acceptable for cystitis when susceptible.")
			} else {
				notes = append(notes, "Avoid ceftriaxone for serious infection even when susceptible because of AmpC induction risk.")
			}
		}

	case thirdR && isR(p, interfaces.Cefepime):
		notes = append(notes, "AmpC with cefepime resistance: use a carbapenem.")

	case thirdR:
		notes = append(notes, "AmpC derepressed: cefepime (if susceptible on testing) or a carbapenem; avoid 3rd-generation cephalosporins and piperacillin-tazobactam for serious infection.")

	case isS(p, interfaces.Ceftriaxone) && e.lowInductionRisk:
		notes = append(notes, "Ceftriaxone is appropriate when susceptible.")
	}

	if !carbR && ctx.Severity != interfaces.SeveritySevere && ctx.Syndrome != interfaces.SyndromeCNS {
		if opts := oralStepDown(p); len(opts) > 0 {
			notes = append(notes, fmt.Sprintf(textStepDownTemplate, humanList(opts)))
		}
	}

	return notes
}
