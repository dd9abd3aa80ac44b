/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer_test.go
Description: Tests for the mechanism and therapy evaluators.
*/

package analysis

import (
	"strings"
	"testing"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	S = interfaces.Susceptible
	I = interfaces.Intermediate
	R = interfaces.Resistant
)

func containsText(items []string, fragment string) bool {
	for _, item := range items {
		if strings.Contains(item, fragment) {
			return true
		}
	}
	return false
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Dedup([]string{"A", "B", "A", "C"}))
	assert.Equal(t, []string{}, Dedup(nil))
}

func TestEvaluateNilEvaluator(t *testing.T) {
	f := Evaluate(nil, interfaces.Profile{interfaces.Meropenem: R}, interfaces.ClinicalContext{})
	assert.True(t, f.Empty())
	assert.NotNil(t, f.Mechanisms)
	assert.NotNil(t, f.Therapies)
}

func TestEmptyProfileIsSilent(t *testing.T) {
	contexts := []interfaces.ClinicalContext{{}}
	for _, syndrome := range interfaces.Syndromes {
		contexts = append(contexts, interfaces.ClinicalContext{Syndrome: syndrome, Severity: interfaces.SeveritySevere})
	}

	for _, tmpl := range Templates() {
		ev := ForTemplate(tmpl)
		require.NotNil(t, ev, tmpl.String())
		for _, ctx := range contexts {
			f := Evaluate(ev, interfaces.Profile{}, ctx)
			assert.Empty(t, f.Mechanisms, "%s %v", tmpl, ctx)
			assert.Empty(t, f.Cautions, "%s %v", tmpl, ctx)
			assert.Empty(t, f.Favorables, "%s %v", tmpl, ctx)
			assert.Empty(t, f.Therapies, "%s %v", tmpl, ctx)
		}
	}
}

func TestTemplateNames(t *testing.T) {
	for _, tmpl := range Templates() {
		parsed, ok := ParseTemplate(strings.ToUpper(tmpl.String()))
		require.True(t, ok, tmpl.String())
		assert.Equal(t, tmpl, parsed)
	}
	_, ok := ParseTemplate("anaerobes")
	assert.False(t, ok)
	assert.Nil(t, ForTemplate(TemplateNone))
	assert.Equal(t, "unknown", Template(99).String())
}

func TestESBLWithPiperacillinTazobactamDiscordance(t *testing.T) {
	p := interfaces.Profile{
		interfaces.Ceftriaxone:            R,
		interfaces.PiperacillinTazobactam: S,
	}
	f := Evaluate(ForTemplate(TemplateEnterobacterales), p, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeBloodstream})

	require.Len(t, f.Mechanisms, 1)
	assert.Contains(t, f.Mechanisms[0], "ESBL")
	assert.Contains(t, f.Mechanisms[0], "discordant")
	assert.Empty(t, f.Cautions)
	assert.True(t, containsText(f.Therapies, "Do not rely on piperacillin-tazobactam"), "%v", f.Therapies)
}

func TestESBLCystitisTherapy(t *testing.T) {
	p := interfaces.Profile{
		interfaces.Ceftriaxone:       R,
		interfaces.Nitrofurantoin:    S,
		interfaces.Fosfomycin:        S,
		interfaces.TrimethoprimSulfa: R,
	}
	f := Evaluate(ForTemplate(TemplateEnterobacterales), p, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeCystitis})

	assert.Equal(t, []string{"Cystitis: oral Nitrofurantoin or Fosfomycin preferred when susceptible."}, f.Therapies)
	assert.True(t, containsText(f.Mechanisms, "sul/dfr"))
}

func TestContextNeverChangesMechanisms(t *testing.T) {
	p := interfaces.Profile{
		interfaces.Ceftriaxone:   R,
		interfaces.Meropenem:     R,
		interfaces.Ciprofloxacin: S,
	}
	for _, tmpl := range Templates() {
		ev := ForTemplate(tmpl)
		base := Evaluate(ev, p, interfaces.ClinicalContext{})
		for _, syndrome := range interfaces.Syndromes {
			f := Evaluate(ev, p, interfaces.ClinicalContext{Syndrome: syndrome, Severity: interfaces.SeveritySevere})
			assert.Equal(t, base.Mechanisms, f.Mechanisms, "%s %s", tmpl, syndrome)
			assert.Equal(t, base.Cautions, f.Cautions, "%s %s", tmpl, syndrome)
			assert.Equal(t, base.Favorables, f.Favorables, "%s %s", tmpl, syndrome)
		}
	}
}

func TestCarbapenemFindings(t *testing.T) {
	ev := ForTemplate(TemplateEnterobacterales)

	f := Evaluate(ev, interfaces.Profile{interfaces.Ertapenem: R, interfaces.Meropenem: S}, interfaces.ClinicalContext{})
	assert.True(t, containsText(f.Mechanisms, "Ertapenem-only"))
	assert.False(t, containsText(f.Mechanisms, "carbapenemase production"))

	// all carbapenems resistant with cephalosporins susceptible is flagged, not suppressed
	f = Evaluate(ev, interfaces.Profile{
		interfaces.Ertapenem:   R,
		interfaces.Imipenem:    R,
		interfaces.Meropenem:   R,
		interfaces.Ceftriaxone: S,
		interfaces.Ceftazidime: S,
	}, interfaces.ClinicalContext{Severity: interfaces.SeveritySevere})
	assert.True(t, containsText(f.Mechanisms, "carbapenemase production"))
	assert.True(t, containsText(f.Cautions, "atypical"))
	assert.True(t, containsText(f.Therapies, "Severe carbapenem-resistant infection"))
}

func TestImplausiblePatternsRaiseCautions(t *testing.T) {
	tests := []struct {
		tmpl     Template
		profile  interfaces.Profile
		fragment string
	}{
		{TemplateEnterobacterales, interfaces.Profile{interfaces.Cefepime: R, interfaces.Ceftriaxone: S}, "Cefepime resistant while ceftriaxone susceptible"},
		{TemplateEnterobacterales, interfaces.Profile{interfaces.Ceftriaxone: R, interfaces.Cefazolin: S}, "cefazolin susceptible is implausible"},
		{TemplateAmpC, interfaces.Profile{interfaces.CeftazidimeAvibactam: R, interfaces.Ceftazidime: S}, "Ceftazidime/Avibactam resistant"},
		{TemplatePseudomonas, interfaces.Profile{interfaces.CeftolozaneTazobactam: R, interfaces.Ceftazidime: S}, "Ceftolozane-tazobactam resistant"},
		{TemplateStaphAureus, interfaces.Profile{interfaces.NafcillinOxacillin: R, interfaces.Penicillin: S}, "Oxacillin resistant while penicillin susceptible"},
		{TemplateEnterococcusFaecalis, interfaces.Profile{interfaces.Ampicillin: R, interfaces.Penicillin: S}, "Ampicillin resistant while penicillin susceptible"},
		{TemplatePneumococcus, interfaces.Profile{interfaces.Ceftriaxone: R, interfaces.Penicillin: S}, "Ceftriaxone resistant while penicillin susceptible"},
		{TemplateBetaHemolyticStrep, interfaces.Profile{interfaces.Penicillin: R}, "has not been confirmed"},
	}
	for _, tt := range tests {
		f := Evaluate(ForTemplate(tt.tmpl), tt.profile, interfaces.ClinicalContext{})
		assert.True(t, containsText(f.Cautions, tt.fragment), "%s: %v", tt.tmpl, f.Cautions)
	}
}

func TestAmpCTemplates(t *testing.T) {
	// cefoxitin alone is expected in inducible AmpC producers
	f := Evaluate(ForTemplate(TemplateAmpC), interfaces.Profile{interfaces.Cefoxitin: R}, interfaces.ClinicalContext{})
	assert.Empty(t, f.Mechanisms)

	f = Evaluate(ForTemplate(TemplateAmpC), interfaces.Profile{interfaces.Ceftriaxone: R, interfaces.Cefepime: S}, interfaces.ClinicalContext{})
	assert.True(t, containsText(f.Mechanisms, "AmpC"))
	assert.True(t, containsText(f.Favorables, "Cefepime susceptible"))
	assert.Equal(t, "Cefepime is preferred for AmpC producers when susceptible (MIC <= 2 mg/L).", f.Therapies[0])

	ampc := Evaluate(ForTemplate(TemplateAmpC), interfaces.Profile{interfaces.Ceftriaxone: S}, interfaces.ClinicalContext{})
	serratia := Evaluate(ForTemplate(TemplateSerratia), interfaces.Profile{interfaces.Ceftriaxone: S}, interfaces.ClinicalContext{})
	assert.True(t, containsText(ampc.Cautions, "inducible AmpC"))
	assert.Empty(t, serratia.Cautions)
	assert.True(t, containsText(serratia.Favorables, "Low risk"))
}

func TestProteusIgnoresIntrinsicColistin(t *testing.T) {
	p := interfaces.Profile{interfaces.Colistin: R}
	assert.Empty(t, Evaluate(ForTemplate(TemplateProteus), p, interfaces.ClinicalContext{}).Mechanisms)
	assert.True(t, containsText(Evaluate(ForTemplate(TemplateEnterobacterales), p, interfaces.ClinicalContext{}).Mechanisms, "Polymyxin"))
}

func TestPseudomonasDTR(t *testing.T) {
	p := interfaces.Profile{}
	for _, ab := range dtrAgents {
		p[ab] = R
	}
	p[interfaces.CeftolozaneTazobactam] = S

	f := Evaluate(ForTemplate(TemplatePseudomonas), p, interfaces.ClinicalContext{})
	assert.True(t, containsText(f.Mechanisms, "Difficult-to-treat"))
	assert.True(t, containsText(f.Therapies, "DTR P. aeruginosa"))

	// ertapenem is intrinsic and never read as carbapenem resistance
	f = Evaluate(ForTemplate(TemplatePseudomonas), interfaces.Profile{interfaces.Ertapenem: R}, interfaces.ClinicalContext{})
	assert.Empty(t, f.Mechanisms)
}

func TestStaphylococci(t *testing.T) {
	f := Evaluate(ForTemplate(TemplateStaphAureus), interfaces.Profile{
		interfaces.NafcillinOxacillin: R,
		interfaces.Erythromycin:       R,
		interfaces.Clindamycin:        S,
		interfaces.Vancomycin:         S,
	}, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeBloodstream})

	assert.True(t, containsText(f.Mechanisms, "MRSA"))
	assert.True(t, containsText(f.Cautions, "D-test"))
	assert.True(t, containsText(f.Therapies, "vancomycin (AUC-guided dosing)"))
	assert.True(t, containsText(f.Therapies, "echocardiography"))

	cons := Evaluate(ForTemplate(TemplateStaphCoagulaseNegative), interfaces.Profile{interfaces.Vancomycin: I}, interfaces.ClinicalContext{})
	assert.Empty(t, cons.Mechanisms)
	assert.True(t, containsText(cons.Cautions, "coagulase-negative"))

	lug := Evaluate(ForTemplate(TemplateStaphLugdunensis), interfaces.Profile{interfaces.NafcillinOxacillin: S}, interfaces.ClinicalContext{})
	assert.True(t, containsText(lug.Cautions, "S. aureus breakpoints"))
}

func TestEnterococci(t *testing.T) {
	p := interfaces.Profile{interfaces.Ampicillin: R, interfaces.Vancomycin: R}
	faecium := Evaluate(ForTemplate(TemplateEnterococcusFaecium), p, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeBloodstream})
	faecalis := Evaluate(ForTemplate(TemplateEnterococcusFaecalis), p, interfaces.ClinicalContext{})

	assert.Equal(t, []string{"Vancomycin resistance (vanA/vanB operon): VRE."}, faecium.Mechanisms)
	assert.True(t, containsText(faecium.Therapies, "VRE bacteremia"))
	assert.True(t, containsText(faecalis.Mechanisms, "PBP4"))

	endo := Evaluate(ForTemplate(TemplateEnterococcusFaecalis), interfaces.Profile{
		interfaces.Ampicillin:            S,
		interfaces.HighLevelGentamicin:   R,
		interfaces.HighLevelStreptomycin: S,
	}, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeEndocarditis})
	assert.True(t, containsText(endo.Therapies, "dual beta-lactam synergy"))
	assert.True(t, containsText(endo.Therapies, "streptomycin can provide"))
}

func TestStreptococci(t *testing.T) {
	f := Evaluate(ForTemplate(TemplatePneumococcus), interfaces.Profile{
		interfaces.Penicillin:  R,
		interfaces.Ceftriaxone: S,
	}, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeCNS})
	assert.True(t, containsText(f.Mechanisms, "Penicillin non-susceptibility"))
	assert.True(t, containsText(f.Therapies, "Meningitis"))
	assert.True(t, containsText(f.Therapies, "vancomycin can be stopped"))

	f = Evaluate(ForTemplate(TemplateBetaHemolyticStrep), interfaces.Profile{
		interfaces.Penicillin:   S,
		interfaces.Erythromycin: R,
		interfaces.Clindamycin:  R,
	}, interfaces.ClinicalContext{Severity: interfaces.SeveritySevere})
	assert.True(t, containsText(f.Mechanisms, "erm(B)"))
	assert.True(t, containsText(f.Therapies, "linezolid"))

	f = Evaluate(ForTemplate(TemplateViridansStrep), interfaces.Profile{
		interfaces.Penicillin:  I,
		interfaces.Ceftriaxone: S,
	}, interfaces.ClinicalContext{Syndrome: interfaces.SyndromeEndocarditis})
	assert.Equal(t, []string{"Viridans streptococcal endocarditis, reduced penicillin susceptibility: ceftriaxone, adding gentamicin for the first two weeks."}, f.Therapies)
}
