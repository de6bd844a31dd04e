package pools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosesFor_FallbackChain(t *testing.T) {
	assert.Equal(t, DiagnosesBySpecialty["Cardiology"], DiagnosesFor("Cardiology", "Surgery"))
	assert.Equal(t, DiagnosesBySpecialty["Pediatrics"], DiagnosesFor("Neonatology", "Pediatrics"))
	assert.Equal(t, DiagnosesBySpecialty[DefaultKey], DiagnosesFor("Urology", "Urology"))
	assert.Equal(t, DiagnosesBySpecialty[DefaultKey], DiagnosesFor("", ""))
}

func TestSymptomsFor(t *testing.T) {
	assert.Len(t, SymptomsFor("Hyperlipidemia"), 2)
	assert.Equal(t, SymptomsByDiagnosis[DefaultKey], SymptomsFor("Migraine"))
}

func TestFormulary_UniqueNamesAndStrengths(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range append(Formulary(), FallbackFormulary()...) {
		assert.False(t, seen[m.Name], "duplicate %s", m.Name)
		seen[m.Name] = true
		assert.NotEmpty(t, m.Strengths(), m.Name)
		assert.NotEmpty(t, m.Warnings, m.Name)
		assert.NotEmpty(t, m.SideEffects, m.Name)
	}
	assert.Len(t, Formulary(), 20)
	assert.Len(t, FallbackFormulary(), 5)
}

func TestDepartmentFor(t *testing.T) {
	assert.Equal(t, "Surgery", DepartmentFor("Vascular Surgery"))
	assert.Equal(t, "OB/GYN", DepartmentFor("Obstetrics and Gynecology"))
	assert.Equal(t, "Geriatrics", DepartmentFor("Geriatrics"))
}

func TestLocationsIn(t *testing.T) {
	tr := LocationsIn(CountryTurkey)
	assert.Len(t, tr, 12)
	for _, l := range tr {
		assert.Equal(t, CountryTurkey, l.Country)
	}
	for _, l := range Locations {
		_, ok := DialCodes[l.Country]
		assert.True(t, ok, l.Country)
		assert.NotEmpty(t, Hospitals[l.Country], l.Country)
	}
}
