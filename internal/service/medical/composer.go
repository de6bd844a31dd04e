package medical

import (
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/synth"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	FollowUpChance   = 0.7
	MaxPrescriptions = 3
	StandardDose     = "Standard dose"

	minSymptoms = 2
	maxSymptoms = 5
)

// Content is the clinical part of a patient history.
type Content struct {
	Diagnosis     string
	Symptoms      []string
	Vitals        model.Vitals
	Notes         string
	Prescriptions []model.Prescription
	FollowUpDate  *time.Time
}

// Compose draws the clinical content of one visit by a doctor of the given
// specialty and department. Prescriptions are drawn from meds only.
func Compose(src *random.Source, specialty, department string, meds []model.Medication, visit time.Time) Content {
	diagnosis := random.Pick(src, pools.DiagnosesFor(specialty, department))
	symptoms := Symptoms(src, diagnosis)

	return Content{
		Diagnosis:     diagnosis,
		Symptoms:      symptoms,
		Vitals:        synth.Vitals(src),
		Notes:         Notes(src, diagnosis, symptoms),
		Prescriptions: Prescriptions(src, meds),
		FollowUpDate:  FollowUp(src, visit),
	}
}

// Symptoms returns 2 to min(5, pool size) symptoms of the diagnosis pool.
func Symptoms(src *random.Source, diagnosis string) []string {
	pool := random.Shuffled(src, pools.SymptomsFor(diagnosis))
	hi := min(maxSymptoms, len(pool))
	return pool[:random.Between(src, min(minSymptoms, hi), hi)]
}

// Prescriptions draws 1 to 3 distinct medications. An empty formulary yields
// an empty, non-nil list.
func Prescriptions(src *random.Source, meds []model.Medication) []model.Prescription {
	out := []model.Prescription{}
	if len(meds) == 0 {
		return out
	}

	for _, med := range random.Sample(src, meds, random.Between(src, 1, MaxPrescriptions)) {
		out = append(out, prescribe(src, med))
	}
	return out
}

func prescribe(src *random.Source, med model.Medication) model.Prescription {
	dosage := StandardDose
	if strengths := med.Strengths(); len(strengths) > 0 {
		dosage = random.Pick(src, strengths)
	}
	frequency := random.Pick(src, pools.Frequencies)

	p := model.Prescription{
		Medication:            med.Name,
		Dosage:                dosage,
		Frequency:             frequency,
		Duration:              random.Pick(src, pools.Durations),
		Notes:                 prescriptionNote(random.Pick(src, pools.PrescriptionNotes), frequency),
		ShowWarningsToPatient: random.Chance(src, 0.5),
	}
	if !med.ID.IsZero() {
		id := med.ID
		p.MedicationID = &id
	}
	if len(med.Warnings) > 0 {
		p.Warnings = med.Warnings
	}
	if len(med.SideEffects) > 0 {
		p.SideEffects = med.SideEffects
	}
	return p
}

func prescriptionNote(format, frequency string) string {
	if !strings.Contains(format, "%s") {
		return format
	}
	return fmt.Sprintf(format, strings.ToLower(frequency))
}

// FollowUp returns a date 1 to 6 thirty-day periods after the visit, or nil.
func FollowUp(src *random.Source, visit time.Time) *time.Time {
	if !random.Chance(src, FollowUpChance) {
		return nil
	}
	d := visit.AddDate(0, 0, 30*random.Between(src, 1, 6))
	return &d
}

// Notes fills one of the five note layouts from the diagnosis and the
// symptoms in the order they were drawn.
func Notes(src *random.Source, diagnosis string, symptoms []string) string {
	switch random.Between(src, 0, 4) {
	case 0:
		return fmt.Sprintf("Patient presents with %s. After examination, diagnosed with %s. %s",
			joinFirst(symptoms, 2), diagnosis, random.Pick(src, pools.NoteClosingsPresenting))
	case 1:
		return fmt.Sprintf("Evaluation for %s. Patient reports %s. %s",
			diagnosis, joinFirst(symptoms, 3), random.Pick(src, pools.NoteClosingsEvaluation))
	case 2:
		return fmt.Sprintf("Follow-up for %s. Patient continues to experience %s. %s",
			diagnosis, random.Pick(src, symptoms), random.Pick(src, pools.NoteClosingsFollowUp))
	case 3:
		return fmt.Sprintf("%s confirmed. Symptoms include %s. %s",
			diagnosis, joinFirst(symptoms, 3), random.Pick(src, pools.NoteClosingsConfirmed))
	default:
		return fmt.Sprintf("Assessment for %s. Patient experiencing %s for %s. %s",
			diagnosis, joinFirst(symptoms, 2), random.Pick(src, pools.NoteOnsetPeriods),
			random.Pick(src, pools.NoteClosingsAssessment))
	}
}

func joinFirst(s []string, n int) string {
	return strings.Join(s[:min(n, len(s))], ", ")
}
