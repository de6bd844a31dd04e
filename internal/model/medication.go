package model

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication is a formulary entry. Name is the natural key.
type Medication struct {
	Base         `bson:",inline"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	Warnings     []string           `bson:"warnings,omitempty" json:"warnings,omitempty"`
	SideEffects  []string           `bson:"sideEffects,omitempty" json:"sideEffects,omitempty"`
	DosageForm   string             `bson:"dosageForm" json:"dosageForm"`
	Strength     string             `bson:"strength" json:"strength"`
	Manufacturer string             `bson:"manufacturer" json:"manufacturer"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy" validate:"required"`
}

// Strengths splits the comma separated strength field into its values.
func (m Medication) Strengths() []string {
	var out []string
	for _, s := range strings.Split(m.Strength, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (m *Medication) SetCreator(id primitive.ObjectID) {
	m.CreatedBy = id
}
