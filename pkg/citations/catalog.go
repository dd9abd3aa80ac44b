/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog.go
Description: Reference catalog. Maps stable citation IDs to full bibliographic strings.
*/

package citations

// Citation IDs
const (
	IDSAAMR2024         = "idsa-amr-2024"
	PatersonBonomo2005  = "paterson-bonomo-2005"
	Jacoby2009          = "jacoby-2009"
	MERINO2018          = "harris-merino-2018"
	CLSIM100            = "clsi-m100-2024"
	EUCASTExpert2013    = "leclercq-eucast-2013"
	QueenanBush2007     = "queenan-bush-2007"
	Lister2009          = "lister-2009"
	Peleg2008           = "peleg-2008"
	IDSAMRSA2011        = "liu-idsa-mrsa-2011"
	ChambersDeLeo2009   = "chambers-deleo-2009"
	Fiebelkorn2003      = "fiebelkorn-2003"
	Howden2010          = "howden-2010"
	AriasMurray2012     = "arias-murray-2012"
	Miller2014          = "miller-2014"
	AHAEndocarditis2015 = "baddour-aha-2015"
	ATSIDSACAP2019      = "metlay-cap-2019"
	IDSAMeningitis2004  = "tunkel-meningitis-2004"
	IDSASSTI2014        = "stevens-ssti-2014"
	LongVester2012      = "long-vester-2012"
	Poirel2017          = "poirel-2017"
	Doi2019             = "doi-2019"
	TammaCefepime2013   = "tamma-cefepime-2013"
	HooperJacoby2015    = "hooper-jacoby-2015"
)

// Catalog maps citation IDs to full reference strings
type Catalog map[string]string

// Lookup returns the reference string for an ID
func (c Catalog) Lookup(id string) (string, bool) {
	ref, ok := c[id]
	return ref, ok
}

// DefaultCatalog returns the built-in reference catalog
func DefaultCatalog() Catalog {
	return Catalog{
		IDSAAMR2024:         "Tamma PD, Heil EL, Justo JA, Mathers AJ, Satlin MJ, Bonomo RA. Infectious Diseases Society of America 2024 Guidance on the Treatment of Antimicrobial-Resistant Gram-Negative Infections. Clin Infect Dis. 2024.",
		PatersonBonomo2005:  "Paterson DL, Bonomo RA. Extended-spectrum beta-lactamases: a clinical update. Clin Microbiol Rev. 2005;18(4):657-686.",
		Jacoby2009:          "Jacoby GA. AmpC beta-lactamases. Clin Microbiol Rev. 2009;22(1):161-182.",
		MERINO2018:          "Harris PNA, Tambyah PA, Lye DC, et al. Effect of piperacillin-tazobactam vs meropenem on 30-day mortality for patients with E coli or Klebsiella pneumoniae bloodstream infection and ceftriaxone resistance: a randomized clinical trial. JAMA. 2018;320(10):984-994.",
		CLSIM100:            "CLSI. Performance Standards for Antimicrobial Susceptibility Testing. 34th ed. CLSI supplement M100. Clinical and Laboratory Standards Institute; 2024.",
		EUCASTExpert2013:    "Leclercq R, Canton R, Brown DFJ, et al. EUCAST expert rules in antimicrobial susceptibility testing. Clin Microbiol Infect. 2013;19(2):141-160.",
		QueenanBush2007:     "Queenan AM, Bush K. Carbapenemases: the versatile beta-lactamases. Clin Microbiol Rev. 2007;20(3):440-458.",
		Lister2009:          "Lister PD, Wolter DJ, Hanson ND. Antibacterial-resistant Pseudomonas aeruginosa: clinical impact and complex regulation of chromosomally encoded resistance mechanisms. Clin Microbiol Rev. 2009;22(4):582-610.",
		Peleg2008:           "Peleg AY, Seifert H, Paterson DL. Acinetobacter baumannii: emergence of a successful pathogen. Clin Microbiol Rev. 2008;21(3):538-582.",
		IDSAMRSA2011:        "Liu C, Bayer A, Cosgrove SE, et al. Clinical practice guidelines by the Infectious Diseases Society of America for the treatment of methicillin-resistant Staphylococcus aureus infections in adults and children. Clin Infect Dis. 2011;52(3):e18-e55.",
		ChambersDeLeo2009:   "Chambers HF, DeLeo FR. Waves of resistance: Staphylococcus aureus in the antibiotic era. Nat Rev Microbiol. 2009;7(9):629-641.",
		Fiebelkorn2003:      "Fiebelkorn KR, Crawford SA, McElmeel ML, Jorgensen JH. Practical disk diffusion method for detection of inducible clindamycin resistance in Staphylococcus aureus and coagulase-negative staphylococci. J Clin Microbiol. 2003;41(10):4740-4744.",
		Howden2010:          "Howden BP, Davies JK, Johnson PDR, Stinear TP, Grayson ML. Reduced vancomycin susceptibility in Staphylococcus aureus, including vancomycin-intermediate and heterogeneous vancomycin-intermediate strains: resistance mechanisms, laboratory detection, and clinical implications. Clin Microbiol Rev. 2010;23(1):99-139.",
		AriasMurray2012:     "Arias CA, Murray BE. The rise of the Enterococcus: beyond vancomycin resistance. Nat Rev Microbiol. 2012;10(4):266-278.",
		Miller2014:          "Miller WR, Munita JM, Arias CA. Mechanisms of antibiotic resistance in enterococci. Expert Rev Anti Infect Ther. 2014;12(10):1221-1236.",
		AHAEndocarditis2015: "Baddour LM, Wilson WR, Bayer AS, et al. Infective endocarditis in adults: diagnosis, antimicrobial therapy, and management of complications. Circulation. 2015;132(15):1435-1486.",
		ATSIDSACAP2019:      "Metlay JP, Waterer GW, Long AC, et al. Diagnosis and treatment of adults with community-acquired pneumonia. Am J Respir Crit Care Med. 2019;200(7):e45-e67.",
		IDSAMeningitis2004:  "Tunkel AR, Hartman BJ, Kaplan SL, et al. Practice guidelines for the management of bacterial meningitis. Clin Infect Dis. 2004;39(9):1267-1284.",
		IDSASSTI2014:        "Stevens DL, Bisno AL, Chambers HF, et al. Practice guidelines for the diagnosis and management of skin and soft tissue infections: 2014 update by the Infectious Diseases Society of America. Clin Infect Dis. 2014;59(2):e10-e52.",
		LongVester2012:      "Long KS, Vester B. Resistance to linezolid caused by modifications at its binding site on the ribosome. Antimicrob Agents Chemother. 2012;56(2):603-612.",
		Poirel2017:          "Poirel L, Jayol A, Nordmann P. Polymyxins: antibacterial activity, susceptibility testing, and resistance mechanisms encoded by plasmids or chromosomes. Clin Microbiol Rev. 2017;30(2):557-596.",
		Doi2019:             "Doi Y. Treatment options for carbapenem-resistant gram-negative bacterial infections. Clin Infect Dis. 2019;69(Suppl 7):S565-S575.",
		TammaCefepime2013:   "Tamma PD, Girdwood SC, Gopaul R, et al. The use of cefepime for treating AmpC beta-lactamase-producing Enterobacteriaceae. Clin Infect Dis. 2013;57(6):781-788.",
		HooperJacoby2015:    "Hooper DC, Jacoby GA. Mechanisms of drug resistance: quinolone resistance. Ann N Y Acad Sci. 2015;1354(1):12-31.",
	}
}
