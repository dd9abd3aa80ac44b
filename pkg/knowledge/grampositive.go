/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grampositive.go
Description: Built-in gram-positive organisms: staphylococci, enterococci and streptococci.
None of these groups carry cascade rules.
*/

package knowledge

import (
	"github.com/kleascm/mechid/pkg/analysis"
	ab "github.com/kleascm/mechid/pkg/interfaces"
)

var staphylococcalPanel = []string{
	ab.Penicillin,
	ab.NafcillinOxacillin,
	ab.Vancomycin,
	ab.Erythromycin,
	ab.Clindamycin,
	ab.Gentamicin,
	ab.TrimethoprimSulfa,
	ab.Moxifloxacin,
	ab.TetracyclineDoxy,
	ab.Linezolid,
}

var enterococcalPanel = []string{
	ab.Penicillin,
	ab.Ampicillin,
	ab.Vancomycin,
	ab.Linezolid,
	ab.Daptomycin,
	ab.HighLevelGentamicin,
	ab.HighLevelStreptomycin,
	ab.Ciprofloxacin,
	ab.Nitrofurantoin,
	ab.Ceftriaxone,
	ab.Cefepime,
}

func gramPositives() []Organism {
	return []Organism{
		{
			Name:     StaphylococcusAureus,
			Group:    GroupStaphylococci,
			Panel:    staphylococcalPanel,
			Template: analysis.TemplateStaphAureus,
		},
		{
			Name:     CoagulaseNegativeStaph,
			Group:    GroupStaphylococci,
			Panel:    staphylococcalPanel,
			Template: analysis.TemplateStaphCoagulaseNegative,
		},
		{
			Name:     StaphylococcusLugdunensis,
			Group:    GroupStaphylococci,
			Panel:    staphylococcalPanel,
			Template: analysis.TemplateStaphLugdunensis,
		},
		{
			Name:      EnterococcusFaecalis,
			Group:     GroupEnterococcus,
			Panel:     enterococcalPanel,
			Intrinsic: []string{ab.Ceftriaxone, ab.Cefepime},
			Template:  analysis.TemplateEnterococcusFaecalis,
		},
		{
			Name:      EnterococcusFaecium,
			Group:     GroupEnterococcus,
			Panel:     enterococcalPanel,
			Intrinsic: []string{ab.Ceftriaxone, ab.Cefepime, ab.Ampicillin, ab.Penicillin},
			Template:  analysis.TemplateEnterococcusFaecium,
		},
		{
			Name:  StreptococcusPneumoniae,
			Group: GroupStreptococcus,
			Panel: []string{
				ab.Penicillin,
				ab.Ceftriaxone,
				ab.Cefotaxime,
				ab.Erythromycin,
				ab.Clindamycin,
				ab.Levofloxacin,
				ab.Vancomycin,
			},
			Template: analysis.TemplatePneumococcus,
		},
		{
			Name:  BetaHemolyticStrep,
			Group: GroupStreptococcus,
			Panel: []string{
				ab.Penicillin,
				ab.Erythromycin,
				ab.Clindamycin,
				ab.Levofloxacin,
				ab.Vancomycin,
			},
			Template: analysis.TemplateBetaHemolyticStrep,
		},
		{
			Name:  ViridansStrep,
			Group: GroupStreptococcus,
			Panel: []string{
				ab.Penicillin,
				ab.Ceftriaxone,
				ab.Erythromycin,
				ab.Clindamycin,
				ab.Levofloxacin,
				ab.Vancomycin,
			},
			Template: analysis.TemplateViridansStrep,
		},
	}
}
