package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vitals struct {
	BloodPressure    string  `bson:"bloodPressure" json:"bloodPressure" validate:"required"`
	HeartRate        int     `bson:"heartRate" json:"heartRate" validate:"required"`
	RespiratoryRate  int     `bson:"respiratoryRate" json:"respiratoryRate" validate:"required"`
	Temperature      float64 `bson:"temperature" json:"temperature" validate:"required"`
	Height           float64 `bson:"height" json:"height" validate:"required"`
	Weight           float64 `bson:"weight" json:"weight" validate:"required"`
	OxygenSaturation int     `bson:"oxygenSaturation" json:"oxygenSaturation" validate:"required"`
}

// Prescription is embedded in a PatientHistory. Medication, Warnings and
// SideEffects are snapshots of the formulary entry at prescribing time.
type Prescription struct {
	MedicationID          *primitive.ObjectID `bson:"medicationId" json:"medicationId"`
	Medication            string              `bson:"medication" json:"medication" validate:"required"`
	Dosage                string              `bson:"dosage" json:"dosage" validate:"required"`
	Frequency             string              `bson:"frequency" json:"frequency" validate:"required"`
	Duration              string              `bson:"duration" json:"duration" validate:"required"`
	Notes                 string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Warnings              []string            `bson:"warnings,omitempty" json:"warnings,omitempty"`
	SideEffects           []string            `bson:"sideEffects,omitempty" json:"sideEffects,omitempty"`
	ShowWarningsToPatient bool                `bson:"showWarningsToPatient" json:"showWarningsToPatient"`
}

type PatientHistory struct {
	Base          `bson:",inline"`
	Patient       primitive.ObjectID `bson:"patient" json:"patient" validate:"required"`
	Doctor        primitive.ObjectID `bson:"doctor" json:"doctor" validate:"required"`
	VisitDate     time.Time          `bson:"visitDate" json:"visitDate" validate:"required"`
	Diagnosis     string             `bson:"diagnosis" json:"diagnosis" validate:"required"`
	Symptoms      []string           `bson:"symptoms" json:"symptoms" validate:"required,min=2,max=5"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Vitals        Vitals             `bson:"vitals" json:"vitals"`
	Prescriptions []Prescription     `bson:"prescriptions" json:"prescriptions" validate:"required,max=3,dive"`
	FollowUpDate  *time.Time         `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	CreatedBy     primitive.ObjectID `bson:"createdBy" json:"createdBy" validate:"required"`
}

func (h *PatientHistory) SetCreator(id primitive.ObjectID) {
	h.CreatedBy = id
}
