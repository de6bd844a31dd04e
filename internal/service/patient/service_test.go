package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/servicetest"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

var ctx = context.Background()

func TestDraft(t *testing.T) {
	src := random.New(7)
	for i := 0; i < 100; i++ {
		p := Draft(src, servicetest.Now)

		assert.Equal(t, model.RolePatient, p.Role)
		assert.Regexp(t, `^MRN\d{6}$`, p.MedicalRecordNumber)
		assert.Contains(t, pools.BloodTypes, p.BloodType)
		assert.NotNil(t, p.Allergies)
		assert.LessOrEqual(t, len(p.Allergies), MaxAllergies)
		assert.Subset(t, pools.Allergies, p.Allergies)

		age := servicetest.Now.Year() - p.DateOfBirth.Year()
		assert.GreaterOrEqual(t, age, MinAge)
		assert.LessOrEqual(t, age, MaxAge)
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	deps, store, p := servicetest.Deps()
	store.UsersColl.On("CountDocuments", mock.Anything, repository.ByRole(model.RolePatient)).Return(int64(0), nil)
	var inserted []model.Patient
	store.PatientsColl.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(1).([]model.Patient) }).
		Return([]primitive.ObjectID{}, nil)

	creator := primitive.NewObjectID()
	_, err := NewService(deps).Generate(ctx, creator, 0)
	require.NoError(t, err)

	assert.Empty(t, p.Asked)
	require.Len(t, inserted, DefaultCount)
	for _, pt := range inserted {
		assert.Equal(t, creator, pt.CreatedBy)
		assert.False(t, pt.ID.IsZero())
	}
}

func TestGenerate_DeclineAddingMore(t *testing.T) {
	deps, store, _ := servicetest.Deps("no")
	store.UsersColl.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(15), nil)

	_, err := NewService(deps).Generate(ctx, primitive.NewObjectID(), 5)
	assert.True(t, apperrors.IsCancelled(err))
	store.PatientsColl.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}
