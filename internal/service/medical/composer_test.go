package medical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

var visit = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func TestPrescriptions_SingleMedicationDosageFromStrengths(t *testing.T) {
	a := model.Medication{Name: "A", Strength: "10mg,20mg"}
	a.ID = primitive.NewObjectID()

	for seed := uint64(0); seed < 50; seed++ {
		got := Prescriptions(random.New(seed), []model.Medication{a})
		require.Len(t, got, 1)
		assert.Contains(t, []string{"10mg", "20mg"}, got[0].Dosage)
		assert.Equal(t, "A", got[0].Medication)
		require.NotNil(t, got[0].MedicationID)
		assert.Equal(t, a.ID, *got[0].MedicationID)
	}
}

func TestPrescriptions_EmptyFormulary(t *testing.T) {
	got := Prescriptions(random.New(1), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPrescriptions_DistinctAndBounded(t *testing.T) {
	src := random.New(3)
	formulary := pools.Formulary()
	byName := map[string]model.Medication{}
	for _, m := range formulary {
		byName[m.Name] = m
	}

	for i := 0; i < 200; i++ {
		got := Prescriptions(src, formulary)
		require.GreaterOrEqual(t, len(got), 1)
		require.LessOrEqual(t, len(got), MaxPrescriptions)

		names := map[string]bool{}
		for _, p := range got {
			assert.False(t, names[p.Medication], "duplicate %s", p.Medication)
			names[p.Medication] = true
			assert.Contains(t, byName[p.Medication].Strengths(), p.Dosage)
			assert.Contains(t, pools.Frequencies, p.Frequency)
			assert.Contains(t, pools.Durations, p.Duration)
			assert.Equal(t, byName[p.Medication].Warnings, p.Warnings)
		}
	}
}

func TestPrescriptions_NoStrengthUsesStandardDose(t *testing.T) {
	got := Prescriptions(random.New(1), []model.Medication{{Name: "B"}})
	require.Len(t, got, 1)
	assert.Equal(t, StandardDose, got[0].Dosage)
	assert.Nil(t, got[0].MedicationID)
	assert.Nil(t, got[0].Warnings)
	assert.Nil(t, got[0].SideEffects)
}

func TestPrescriptionNote(t *testing.T) {
	assert.Equal(t, "Take twice daily with food", prescriptionNote("Take %s with food", "Twice daily"))
	assert.Equal(t, "May cause drowsiness", prescriptionNote("May cause drowsiness", "Twice daily"))
	assert.Equal(t, "", prescriptionNote("", "Twice daily"))
}

func TestSymptoms_SizeAndPool(t *testing.T) {
	src := random.New(5)
	for i := 0; i < 200; i++ {
		got := Symptoms(src, "Gastroenteritis")
		assert.GreaterOrEqual(t, len(got), 2)
		assert.LessOrEqual(t, len(got), 5)
		assert.Subset(t, pools.SymptomsFor("Gastroenteritis"), got)
	}

	// Two-symptom pool always yields both.
	assert.Len(t, Symptoms(src, "Hyperlipidemia"), 2)
	assert.Subset(t, pools.SymptomsByDiagnosis[pools.DefaultKey], Symptoms(src, "Unmapped diagnosis"))
}

func TestSymptoms_LeavesPoolUntouched(t *testing.T) {
	before := append([]string(nil), pools.SymptomsFor("Sinusitis")...)
	Symptoms(random.New(8), "Sinusitis")
	assert.Equal(t, before, pools.SymptomsFor("Sinusitis"))
}

func TestFollowUp(t *testing.T) {
	src := random.New(11)
	var present, absent int
	for i := 0; i < 500; i++ {
		d := FollowUp(src, visit)
		if d == nil {
			absent++
			continue
		}
		present++
		days := int(d.Sub(visit).Hours() / 24)
		assert.Zero(t, days%30)
		assert.GreaterOrEqual(t, days, 30)
		assert.LessOrEqual(t, days, 180)
	}
	assert.Greater(t, present, absent)
	assert.Positive(t, absent)
}

func TestCompose_DiagnosisFollowsSpecialty(t *testing.T) {
	src := random.New(2)
	for i := 0; i < 50; i++ {
		c := Compose(src, "Cardiology", "", nil, visit)
		assert.Contains(t, pools.DiagnosesFor("Cardiology", ""), c.Diagnosis)
		assert.True(t, strings.Contains(c.Notes, c.Diagnosis), c.Notes)
		assert.Empty(t, c.Prescriptions)
	}

	c := Compose(src, "Astrology", "Nowhere", nil, visit)
	assert.Contains(t, pools.DiagnosesBySpecialty[pools.DefaultKey], c.Diagnosis)
}

func TestNotes_SameDrawsSameText(t *testing.T) {
	symptoms := []string{"Cough", "Fever", "Headache"}
	a := Notes(random.New(21), "Sinusitis", symptoms)
	b := Notes(random.New(21), "Sinusitis", symptoms)
	assert.Equal(t, a, b)
}
