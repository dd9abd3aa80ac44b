/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: names.go
Description: Organism names, abbreviations and the prefix table used for canonicalization.
*/

package knowledge

// Canonical organism names
const (
	EscherichiaColi           = "Escherichia coli"
	KlebsiellaPneumoniae      = "Klebsiella pneumoniae"
	KlebsiellaOxytoca         = "Klebsiella oxytoca"
	ProteusMirabilis          = "Proteus mirabilis"
	EnterobacterCloacae       = "Enterobacter cloacae complex"
	CitrobacterFreundii       = "Citrobacter freundii complex"
	SerratiaMarcescens        = "Serratia marcescens"
	PseudomonasAeruginosa     = "Pseudomonas aeruginosa"
	AcinetobacterBaumannii    = "Acinetobacter baumannii complex"
	StaphylococcusAureus      = "Staphylococcus aureus"
	CoagulaseNegativeStaph    = "Coagulase-negative staphylococci"
	StaphylococcusLugdunensis = "Staphylococcus lugdunensis"
	EnterococcusFaecalis      = "Enterococcus faecalis"
	EnterococcusFaecium       = "Enterococcus faecium"
	StreptococcusPneumoniae   = "Streptococcus pneumoniae"
	BetaHemolyticStrep        = "Beta-hemolytic streptococci"
	ViridansStrep             = "Viridans group streptococci"
)

// defaultAliases are exact, lowercase abbreviations
var defaultAliases = map[string]string{
	"e. coli":      EscherichiaColi,
	"e.coli":       EscherichiaColi,
	"ecoli":        EscherichiaColi,
	"kpn":          KlebsiellaPneumoniae,
	"pa":           PseudomonasAeruginosa,
	"psa":          PseudomonasAeruginosa,
	"mrsa":         StaphylococcusAureus,
	"mssa":         StaphylococcusAureus,
	"cons":         CoagulaseNegativeStaph,
	"cns":          CoagulaseNegativeStaph,
	"gas":          BetaHemolyticStrep,
	"gbs":          BetaHemolyticStrep,
	"bhs":          BetaHemolyticStrep,
	"vgs":          ViridansStrep,
	"pneumococcus": StreptococcusPneumoniae,
}

type prefixAlias struct {
	prefix    string
	canonical string
}

// defaultPrefixes is checked in order; more specific prefixes come first
var defaultPrefixes = []prefixAlias{
	{"escherichia", EscherichiaColi},
	{"klebsiella oxytoca", KlebsiellaOxytoca},
	{"k. oxytoca", KlebsiellaOxytoca},
	{"klebsiella", KlebsiellaPneumoniae},
	{"k. pneumoniae", KlebsiellaPneumoniae},
	{"proteus", ProteusMirabilis},
	{"enterobacter", EnterobacterCloacae},
	{"citrobacter", CitrobacterFreundii},
	{"serratia", SerratiaMarcescens},
	{"pseudomonas", PseudomonasAeruginosa},
	{"p. aeruginosa", PseudomonasAeruginosa},
	{"acinetobacter", AcinetobacterBaumannii},
	{"a. baumannii", AcinetobacterBaumannii},
	{"staphylococcus aureus", StaphylococcusAureus},
	{"s. aureus", StaphylococcusAureus},
	{"staphylococcus lugdunensis", StaphylococcusLugdunensis},
	{"s. lugdunensis", StaphylococcusLugdunensis},
	{"coagulase-negative", CoagulaseNegativeStaph},
	{"coagulase negative", CoagulaseNegativeStaph},
	{"staphylococcus epidermidis", CoagulaseNegativeStaph},
	{"s. epidermidis", CoagulaseNegativeStaph},
	{"enterococcus faecalis", EnterococcusFaecalis},
	{"e. faecalis", EnterococcusFaecalis},
	{"enterococcus faecium", EnterococcusFaecium},
	{"e. faecium", EnterococcusFaecium},
	{"streptococcus pneumoniae", StreptococcusPneumoniae},
	{"s. pneumoniae", StreptococcusPneumoniae},
	{"streptococcus pyogenes", BetaHemolyticStrep},
	{"streptococcus agalactiae", BetaHemolyticStrep},
	{"streptococcus dysgalactiae", BetaHemolyticStrep},
	{"group a strep", BetaHemolyticStrep},
	{"group b strep", BetaHemolyticStrep},
	{"beta-hemolytic", BetaHemolyticStrep},
	{"beta hemolytic", BetaHemolyticStrep},
	{"viridans", ViridansStrep},
	{"streptococcus mitis", ViridansStrep},
	{"streptococcus oralis", ViridansStrep},
	{"streptococcus sanguinis", ViridansStrep},
	{"streptococcus mutans", ViridansStrep},
	{"streptococcus anginosus", ViridansStrep},
}
