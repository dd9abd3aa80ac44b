/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: gramnegative.go
Description: Built-in gram-negative organisms. Intrinsic lists and cascade rules follow
the laboratory rule set MechID was designed around; cascade rules run top to bottom so
their order is significant.
*/

package knowledge

import (
	"github.com/kleascm/mechid/pkg/analysis"
	ab "github.com/kleascm/mechid/pkg/interfaces"
)

// enterobacteralesPanel is the display order shared by the Enterobacterales
var enterobacteralesPanel = []string{
	ab.Ampicillin,
	ab.AmpicillinSulbactam,
	ab.PiperacillinTazobactam,
	ab.Cefazolin,
	ab.Cefoxitin,
	ab.Cefotetan,
	ab.Cefuroxime,
	ab.Ceftriaxone,
	ab.Cefotaxime,
	ab.Ceftazidime,
	ab.Cefpodoxime,
	ab.Cefepime,
	ab.Aztreonam,
	ab.Ertapenem,
	ab.Imipenem,
	ab.Meropenem,
	ab.Doripenem,
	ab.CeftazidimeAvibactam,
	ab.MeropenemVaborbactam,
	ab.ImipenemRelebactam,
	ab.Cefiderocol,
	ab.Gentamicin,
	ab.Tobramycin,
	ab.Amikacin,
	ab.Ciprofloxacin,
	ab.Levofloxacin,
	ab.TrimethoprimSulfa,
	ab.Nitrofurantoin,
	ab.Fosfomycin,
	ab.Tetracycline,
	ab.Doxycycline,
	ab.Tigecycline,
	ab.Colistin,
}

var pseudomonasPanel = []string{
	ab.Ampicillin,
	ab.Cefazolin,
	ab.Ceftriaxone,
	ab.Ertapenem,
	ab.Tetracycline,
	ab.Tigecycline,
	ab.PiperacillinTazobactam,
	ab.Ceftazidime,
	ab.Cefepime,
	ab.Aztreonam,
	ab.Imipenem,
	ab.Meropenem,
	ab.Doripenem,
	ab.CeftolozaneTazobactam,
	ab.CeftazidimeAvibactam,
	ab.ImipenemRelebactam,
	ab.Cefiderocol,
	ab.Gentamicin,
	ab.Tobramycin,
	ab.Amikacin,
	ab.Ciprofloxacin,
	ab.Levofloxacin,
	ab.Colistin,
}

var acinetobacterPanel = []string{
	ab.AmpicillinSulbactam,
	ab.PiperacillinTazobactam,
	ab.Cefazolin,
	ab.Ceftriaxone,
	ab.Cefotaxime,
	ab.Ceftazidime,
	ab.Cefepime,
	ab.Aztreonam,
	ab.Ertapenem,
	ab.Imipenem,
	ab.Meropenem,
	ab.Doripenem,
	ab.Cefiderocol,
	ab.Gentamicin,
	ab.Tobramycin,
	ab.Amikacin,
	ab.Ciprofloxacin,
	ab.Levofloxacin,
	ab.TrimethoprimSulfa,
	ab.Minocycline,
	ab.Tetracycline,
	ab.Tigecycline,
	ab.Colistin,
}

func gramNegatives() []Organism {
	return []Organism{
		{
			Name:      AcinetobacterBaumannii,
			Group:     GroupGramNegative,
			Panel:     acinetobacterPanel,
			Intrinsic: []string{ab.Aztreonam, ab.Cefazolin, ab.Minocycline, ab.Tetracycline},
			Cascade: []CascadeRule{
				SameAsRule(ab.Doripenem, ab.Meropenem),
				SameAsRule(ab.Ceftriaxone, ab.Cefotaxime),
				SameAsRule(ab.Cefotaxime, ab.Ceftriaxone),
				SusIfSusRule(ab.Ertapenem, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfSusRule(ab.Imipenem, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfAnySusRule(ab.Meropenem, ab.Imipenem, ab.Ceftriaxone, ab.Cefotaxime),
			},
			Template: analysis.TemplateAcinetobacter,
		},
		{
			Name:      CitrobacterFreundii,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Ampicillin, ab.Cefazolin, ab.Cefotetan, ab.Cefoxitin},
			Cascade: []CascadeRule{
				SusIfAnySusRule(ab.Cefepime, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfAnySusRule(ab.Ceftazidime, ab.Ceftriaxone, ab.Cefotaxime),
			},
			Template: analysis.TemplateAmpC,
		},
		{
			Name:      EnterobacterCloacae,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Ampicillin, ab.Cefazolin},
			Cascade: []CascadeRule{
				SusIfAnySusRule(ab.Cefepime, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfAnySusRule(ab.Ceftazidime, ab.Ceftriaxone, ab.Cefotaxime),
				SameAsRule(ab.Ceftriaxone, ab.Cefotaxime),
				SameAsRule(ab.Cefotaxime, ab.Ceftriaxone),
				SusIfSusElseResRule(ab.Doxycycline, ab.Tetracycline),
				SameAsRule(ab.Doripenem, ab.Meropenem),
				SusIfAnySusRule(ab.Ertapenem, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfAnySusRule(ab.Imipenem, ab.Ceftriaxone, ab.Cefotaxime),
				SusIfAnySusRule(ab.Meropenem, ab.Imipenem, ab.Ceftriaxone, ab.Cefotaxime),
			},
			Template: analysis.TemplateAmpC,
		},
		{
			Name:      EscherichiaColi,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: nil,
			Cascade: []CascadeRule{
				SusIfAnySusRule(ab.Cefepime, ab.Ceftriaxone, ab.Cefotaxime, ab.Cefazolin),
				SusIfAnySusRule(ab.Ceftazidime, ab.Ceftriaxone, ab.Cefotaxime, ab.Cefazolin),
				SameAsRule(ab.Ceftriaxone, ab.Cefotaxime),
				SusIfSusRule(ab.Cefotetan, ab.Cefazolin),
				SusIfSusRule(ab.Cefoxitin, ab.Cefazolin),
				SusIfSusRule(ab.Cefuroxime, ab.Cefazolin),
				SameAsElseSusIfSusRule(ab.Cefpodoxime, ab.Ceftriaxone, ab.Cefazolin),
				SusIfSusElseResRule(ab.Doxycycline, ab.Tetracycline),
			},
			Template: analysis.TemplateEnterobacterales,
		},
		{
			Name:      KlebsiellaPneumoniae,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Ampicillin},
			Template:  analysis.TemplateEnterobacterales,
		},
		{
			Name:      KlebsiellaOxytoca,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Ampicillin},
			Template:  analysis.TemplateEnterobacterales,
		},
		{
			Name:      ProteusMirabilis,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Tetracycline, ab.Tigecycline, ab.Colistin},
			Template:  analysis.TemplateProteus,
		},
		{
			Name:      PseudomonasAeruginosa,
			Group:     GroupGramNegative,
			Panel:     pseudomonasPanel,
			Intrinsic: []string{ab.Ampicillin, ab.Ceftriaxone, ab.Cefazolin, ab.Ertapenem, ab.Tetracycline, ab.Tigecycline},
			Template:  analysis.TemplatePseudomonas,
		},
		{
			Name:      SerratiaMarcescens,
			Group:     GroupGramNegative,
			Panel:     enterobacteralesPanel,
			Intrinsic: []string{ab.Ampicillin, ab.Cefazolin, ab.Tetracycline},
			Template:  analysis.TemplateSerratia,
		},
	}
}
