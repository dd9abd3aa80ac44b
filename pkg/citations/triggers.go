/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: triggers.go
Description: Built-in citation trigger table. Order determines citation order.
*/

package citations

// DefaultTriggers returns the built-in ordered trigger table
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Name: "esbl", Match: Any("esbl"), IDs: []string{IDSAAMR2024, PatersonBonomo2005}},
		{Name: "esbl-piperacillin-tazobactam", Match: All("esbl", "piperacillin-tazobactam"), IDs: []string{MERINO2018}},
		{Name: "ampc", Match: Any("ampc"), IDs: []string{Jacoby2009, IDSAAMR2024}},
		{Name: "ampc-cefepime", Match: All("ampc", "cefepime"), IDs: []string{TammaCefepime2013}},
		{Name: "carbapenemase", Match: Any("carbapenemase"), IDs: []string{QueenanBush2007, Doi2019}},
		{Name: "pseudomonas", Match: ForOrganism("pseudomonas", Any("oprd", "efflux", "dtr", "carbapenem")), IDs: []string{Lister2009, IDSAAMR2024}},
		{Name: "acinetobacter", Match: ForOrganism("acinetobacter", Any("oxa", "carbapenem", "cephalosporinase", "sulbactam")), IDs: []string{Peleg2008, IDSAAMR2024}},
		{Name: "polymyxin", Match: Any("polymyxin", "colistin"), IDs: []string{Poirel2017}},
		{Name: "fluoroquinolone", Match: Any("fluoroquinolone"), IDs: []string{HooperJacoby2015}},
		{Name: "meca", Match: Any("meca", "mrsa"), IDs: []string{IDSAMRSA2011, ChambersDeLeo2009}},
		{Name: "blaz", Match: Any("blaz"), IDs: []string{ChambersDeLeo2009}},
		{Name: "inducible-clindamycin", Match: Any("d-test", "inducible mlsb"), IDs: []string{Fiebelkorn2003}},
		{Name: "visa", Match: Any("visa", "vrsa"), IDs: []string{Howden2010}},
		{Name: "vre", Match: Any("vre", "vana", "vanb"), IDs: []string{AriasMurray2012}},
		{Name: "enterococcal", Match: ForOrganism("enterococcus", Any("high-level", "daptomycin", "pbp4")), IDs: []string{Miller2014, AriasMurray2012}},
		{Name: "synergy", Match: Any("synergy"), IDs: []string{AHAEndocarditis2015}},
		{Name: "linezolid", Match: Any("linezolid resistance"), IDs: []string{LongVester2012}},
		{Name: "pneumococcal", Match: ForOrganism("streptococcus pneumoniae", Any("non-susceptibility", "macrolide")), IDs: []string{ATSIDSACAP2019}},
		{Name: "meningitis", Match: Any("meningitis"), IDs: []string{IDSAMeningitis2004}},
		{Name: "group-a-macrolide", Match: ForOrganism("beta-hemolytic", Any("macrolide")), IDs: []string{IDSASSTI2014}},
		{Name: "unusual-phenotype", Match: Any("implausible", "unusual", "atypical", "not expected", "has not been confirmed"), IDs: []string{EUCASTExpert2013}},
		{Name: "verify", Match: Any("verify", "reference laboratory", "discordant", "confirm by"), IDs: []string{CLSIM100}},
	}
}
