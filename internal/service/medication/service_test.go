package medication

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
	"github.com/jwalitptl/healthbridge-seeder/internal/repository/mocks"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/servicetest"
)

var ctx = context.Background()

func captureInsert(coll *mocks.MockCollection[model.Medication], into *[]model.Medication) {
	coll.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { *into = args.Get(1).([]model.Medication) }).
		Return([]primitive.ObjectID{}, nil)
}

func TestGenerate_EmptyCollectionInsertsCatalog(t *testing.T) {
	deps, store, p := servicetest.Deps()
	store.MedicationsColl.On("CountDocuments", mock.Anything, repository.Filter(nil)).Return(int64(0), nil)
	store.MedicationsColl.On("Find", mock.Anything, mock.Anything).Return([]model.Medication{}, nil)
	var inserted []model.Medication
	captureInsert(store.MedicationsColl, &inserted)

	creator := primitive.NewObjectID()
	batch, err := NewService(deps).Generate(ctx, creator)
	require.NoError(t, err)

	assert.Len(t, inserted, len(pools.Formulary()))
	assert.Empty(t, p.Asked)
	for _, m := range inserted {
		assert.Equal(t, creator, m.CreatedBy)
		assert.False(t, m.ID.IsZero())
	}
	assert.Equal(t, 0, batch.Result.Skipped)
}

func TestGenerate_RerunInsertsNothing(t *testing.T) {
	deps, store, _ := servicetest.Deps("n")
	catalog := pools.Formulary()
	store.MedicationsColl.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(len(catalog)), nil)
	store.MedicationsColl.On("Find", mock.Anything, mock.Anything).Return(catalog, nil)

	batch, err := NewService(deps).Generate(ctx, primitive.NewObjectID())
	require.NoError(t, err)

	assert.Empty(t, batch.Medications)
	assert.Equal(t, len(catalog), batch.Result.Skipped)
	store.MedicationsColl.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	store.MedicationsColl.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}

func TestGenerate_SkipsStoredNames(t *testing.T) {
	deps, store, _ := servicetest.Deps("n")
	catalog := pools.Formulary()
	stored := catalog[:2]
	store.MedicationsColl.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(2), nil)
	store.MedicationsColl.On("Find", mock.Anything, mock.Anything).Return(stored, nil)
	var inserted []model.Medication
	captureInsert(store.MedicationsColl, &inserted)

	_, err := NewService(deps).Generate(ctx, primitive.NewObjectID())
	require.NoError(t, err)

	assert.Len(t, inserted, len(catalog)-2)
	for _, m := range inserted {
		assert.NotEqual(t, stored[0].Name, m.Name)
		assert.NotEqual(t, stored[1].Name, m.Name)
	}
}

func TestGenerate_ReplaceDeletesFirst(t *testing.T) {
	deps, store, _ := servicetest.Deps("y")
	store.MedicationsColl.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(4), nil)
	store.MedicationsColl.On("DeleteMany", mock.Anything, repository.Filter(nil)).Return(int64(4), nil)
	store.MedicationsColl.On("Find", mock.Anything, mock.Anything).Return([]model.Medication{}, nil)
	var inserted []model.Medication
	captureInsert(store.MedicationsColl, &inserted)

	_, err := NewService(deps).Generate(ctx, primitive.NewObjectID())
	require.NoError(t, err)

	store.MedicationsColl.AssertCalled(t, "DeleteMany", mock.Anything, repository.Filter(nil))
	assert.Len(t, inserted, len(pools.Formulary()))
}
