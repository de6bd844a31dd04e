package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
	"github.com/jwalitptl/healthbridge-seeder/pkg/validator"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func validAppointment() model.Appointment {
	return model.Appointment{
		Patient:   primitive.NewObjectID(),
		Doctor:    primitive.NewObjectID(),
		Date:      time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "09:15",
		EndTime:   "10:00",
		Status:    model.AppointmentStatusPending,
		Reason:    "Annual check-up",
	}
}

func TestAssemble_FillsIDCreatorAndTimestamps(t *testing.T) {
	creator := primitive.NewObjectID()
	a := New(validator.New(), random.New(1), now, creator)

	ap := validAppointment()
	require.NoError(t, a.Assemble("appointment", &ap))

	assert.False(t, ap.ID.IsZero())
	assert.Equal(t, creator, ap.CreatedBy)
	assert.False(t, ap.UpdatedAt.Before(ap.CreatedAt))
	assert.True(t, ap.CreatedAt.Before(now))
	assert.False(t, ap.CreatedAt.Before(now.AddDate(0, 0, -30)))
}

func TestAssemble_KeepsCallerTimestamps(t *testing.T) {
	a := New(validator.New(), random.New(1), now, primitive.NewObjectID())
	created := now.AddDate(0, -2, 0)

	ap := validAppointment()
	ap.Stamp(created, created.Add(-time.Hour))
	require.NoError(t, a.Assemble("appointment", &ap))

	assert.Equal(t, created, ap.CreatedAt)
	assert.Equal(t, created, ap.UpdatedAt)
}

func TestAssemble_MissingRequiredField(t *testing.T) {
	a := New(validator.New(), random.New(1), now, primitive.NewObjectID())

	ap := validAppointment()
	ap.Reason = ""
	err := a.Assemble("appointment", &ap)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "reason")
}

func TestAssemble_NoCreator(t *testing.T) {
	a := New(validator.New(), random.New(1), now, primitive.NilObjectID)

	ap := validAppointment()
	assert.Error(t, a.Assemble("appointment", &ap))
}

func TestAll_DropsInvalid(t *testing.T) {
	a := New(validator.New(), random.New(1), now, primitive.NewObjectID())

	bad := validAppointment()
	bad.StartTime = "9:15"
	docs := []model.Appointment{validAppointment(), bad, validAppointment()}

	kept, failed := All(a, "appointment", docs)
	assert.Len(t, kept, 2)
	assert.Len(t, failed, 1)
	for _, ap := range kept {
		assert.False(t, ap.ID.IsZero())
	}
}

func TestJitter_Bounds(t *testing.T) {
	a := New(validator.New(), random.New(9), now, primitive.NewObjectID())
	for i := 0; i < 100; i++ {
		c, u := a.Jitter()
		assert.False(t, u.Before(c))
		assert.False(t, c.After(now.AddDate(0, 0, -1)))
		assert.False(t, c.Before(now.AddDate(0, 0, -30)))
		assert.False(t, u.After(now))
	}
}
