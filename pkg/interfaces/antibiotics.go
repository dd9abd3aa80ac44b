/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: antibiotics.go
Description: Canonical antibiotic names used as profile keys by the knowledge base
and the evaluators. Keys are matched exactly and case-sensitively.
*/

package interfaces

// Penicillins and beta-lactam/beta-lactamase inhibitor combinations
const (
	Penicillin             = "Penicillin"
	Ampicillin             = "Ampicillin"
	AmpicillinSulbactam    = "Ampicillin/Sulbactam"
	AmoxicillinClavulanate = "Amoxicillin/Clavulanate"
	PiperacillinTazobactam = "Piperacillin/Tazobactam"
	NafcillinOxacillin     = "Nafcillin/Oxacillin"
	CeftazidimeAvibactam   = "Ceftazidime/Avibactam"
	CeftolozaneTazobactam  = "Ceftolozane/Tazobactam"
	MeropenemVaborbactam   = "Meropenem/Vaborbactam"
	ImipenemRelebactam     = "Imipenem/Relebactam"
	Cefiderocol            = "Cefiderocol"
)

// Cephalosporins
const (
	Cefazolin   = "Cefazolin"
	Cefoxitin   = "Cefoxitin"
	Cefotetan   = "Cefotetan"
	Cefuroxime  = "Cefuroxime"
	Ceftriaxone = "Ceftriaxone"
	Cefotaxime  = "Cefotaxime"
	Ceftazidime = "Ceftazidime"
	Cefpodoxime = "Cefpodoxime"
	Cefepime    = "Cefepime"
)

// Monobactams and carbapenems
const (
	Aztreonam = "Aztreonam"
	Ertapenem = "Ertapenem"
	Imipenem  = "Imipenem"
	Meropenem = "Meropenem"
	Doripenem = "Doripenem"
)

// Non-beta-lactams
const (
	Ciprofloxacin         = "Ciprofloxacin"
	Levofloxacin          = "Levofloxacin"
	Moxifloxacin          = "Moxifloxacin"
	Gentamicin            = "Gentamicin"
	Tobramycin            = "Tobramycin"
	Amikacin              = "Amikacin"
	HighLevelGentamicin   = "High-level Gentamicin"
	HighLevelStreptomycin = "High-level Streptomycin"
	TrimethoprimSulfa     = "Trimethoprim/Sulfamethoxazole"
	Nitrofurantoin        = "Nitrofurantoin"
	Fosfomycin            = "Fosfomycin"
	Tetracycline          = "Tetracycline"
	Doxycycline           = "Doxycycline"
	Minocycline           = "Minocycline"
	TetracyclineDoxy      = "Tetracycline/Doxycycline"
	Tigecycline           = "Tigecycline"
	Colistin              = "Colistin"
	Vancomycin            = "Vancomycin"
	Daptomycin            = "Daptomycin"
	Linezolid             = "Linezolid"
	Erythromycin          = "Erythromycin"
	Clindamycin           = "Clindamycin"
	Rifampin              = "Rifampin"
)

// Carbapenems is the set of carbapenems checked for carbapenem resistance
var Carbapenems = []string{Imipenem, Meropenem, Ertapenem, Doripenem}

// ThirdGenCephalosporins is the set used for ESBL/AmpC screening
var ThirdGenCephalosporins = []string{Ceftriaxone, Cefotaxime, Ceftazidime, Cefpodoxime}
