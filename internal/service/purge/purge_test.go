package purge

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/prompt"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository/mocks"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

var ctx = context.Background()

func newController(store *mocks.MockStore, answers ...string) (*Controller, *metrics.Metrics) {
	m := metrics.New("purge_test")
	return NewController(store, Challenges(prompt.NewScripted(answers...)), logger.Nop(), m), m
}

func TestChallenges(t *testing.T) {
	tests := []struct {
		name    string
		scope   Scope
		answers []string
		want    bool
	}{
		{"single y", Nurses, []string{"y"}, true},
		{"single Y", Nurses, []string{"Y"}, true},
		{"single yes", Nurses, []string{"yes"}, false},
		{"both literals", AllData, []string{"YES", "DELETE EVERYTHING"}, true},
		{"first only", AllData, []string{"YES"}, false},
		{"lower case first", AllData, []string{"yes", "DELETE EVERYTHING"}, false},
		{"wrong second", AllData, []string{"YES", "delete everything"}, false},
		{"no challenges", Scope{Label: "nothing"}, []string{"y"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Challenges(prompt.NewScripted(tt.answers...))(tt.scope))
		})
	}
}

func TestChallenges_StopsAtFirstMismatch(t *testing.T) {
	p := prompt.NewScripted("no")
	assert.False(t, Challenges(p)(AllData))
	assert.Len(t, p.Asked, 1)
}

func TestRun_AllDataFirstConfirmationOnlyDeletesNothing(t *testing.T) {
	store := mocks.NewMockStore()
	c, _ := newController(store, AllDataFirstAnswer)

	out, err := c.Run(ctx, AllData)
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
	assert.Zero(t, out.Total())
	for _, name := range repository.AllCollections {
		store.RawColl(name).AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
	}
	assert.Equal(t, StateIdle, c.State())
}

func TestRun_AllDataKeepsAdmins(t *testing.T) {
	store := mocks.NewMockStore()
	store.RawColl(repository.CollectionUsers).
		On("DeleteMany", mock.Anything, repository.NotRole(model.RoleAdmin)).Return(int64(40), nil)
	for _, name := range repository.AllCollections[1:] {
		store.RawColl(name).On("DeleteMany", mock.Anything, repository.Filter(nil)).Return(int64(2), nil)
	}
	c, m := newController(store, AllDataFirstAnswer, AllDataSecondAnswer)

	out, err := c.Run(ctx, AllData)
	require.NoError(t, err)
	assert.False(t, out.Cancelled)
	assert.Equal(t, int64(40+5*2), out.Total())
	assert.Equal(t, float64(40), testutil.ToFloat64(m.DocumentsDeleted.WithLabelValues(repository.CollectionUsers)))
}

func TestUserScopes_NeverMatchAdmins(t *testing.T) {
	for _, s := range append(UserScopes, AllData) {
		for _, target := range s.Targets {
			if target.Collection != repository.CollectionUsers {
				continue
			}
			require.NotNil(t, target.Filter, s.Key)
			assert.NotEqual(t, model.RoleAdmin, target.Filter["role"], s.Key)
		}
	}
}

func TestRun_DeclinedSingleConfirmation(t *testing.T) {
	store := mocks.NewMockStore()
	c, _ := newController(store, "n")

	out, err := c.Run(ctx, Medications)
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
	store.RawColl(repository.CollectionMedications).AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}

func TestRun_DeleteErrorLeavesIdle(t *testing.T) {
	store := mocks.NewMockStore()
	store.RawColl(repository.CollectionMessages).On("DeleteMany", mock.Anything, mock.Anything).Return(int64(0), errors.New("boom"))
	c, _ := newController(store, "y")

	_, err := c.Run(ctx, RelatedData)
	assert.ErrorContains(t, err, "failed to delete from messages")
	assert.Equal(t, StateIdle, c.State())
}

func TestController_Transitions(t *testing.T) {
	store := mocks.NewMockStore()
	store.RawColl(repository.CollectionUsers).On("DeleteMany", mock.Anything, mock.Anything).Return(int64(3), nil)
	c, _ := newController(store, "y")

	_, err := c.Execute(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = c.Confirm()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, c.Select(Nurses))
	assert.Equal(t, StateScopeSelected, c.State())
	assert.ErrorIs(t, c.Select(Nurses), ErrInvalidTransition)

	ok, err := c.Confirm()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, StateConfirmed, c.State())

	deleted, err := c.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted[repository.CollectionUsers])
	assert.Equal(t, StateExecuted, c.State())
}

func TestScopeByKey(t *testing.T) {
	s, ok := ScopeByKey("international-doctors")
	require.True(t, ok)
	assert.Equal(t, repository.International(model.RoleDoctor), s.Targets[0].Filter)

	_, ok = ScopeByKey("admins")
	assert.False(t, ok)
}

func countAll(store *mocks.MockStore, n int64) {
	for _, name := range repository.AllCollections {
		store.RawColl(name).On("CountDocuments", mock.Anything, mock.Anything).Return(n, nil)
	}
}

func TestMenu_DeletesMedications(t *testing.T) {
	store := mocks.NewMockStore()
	countAll(store, 3)
	store.RawColl(repository.CollectionMedications).On("DeleteMany", mock.Anything, repository.Filter(nil)).Return(int64(3), nil)

	var out bytes.Buffer
	menu := NewMenu(store, prompt.NewScripted("2", "y", "0"), &out, logger.Nop(), nil)
	require.NoError(t, menu.Run(ctx))

	store.RawColl(repository.CollectionMedications).AssertNumberOfCalls(t, "DeleteMany", 1)
	assert.Contains(t, out.String(), "Deleted 3 documents from medications")
	assert.Contains(t, out.String(), "Final collection counts after cleanup:")
}

func TestMenu_UserSubMenu(t *testing.T) {
	store := mocks.NewMockStore()
	countAll(store, 1)
	store.RawColl(repository.CollectionUsers).On("DeleteMany", mock.Anything, repository.ByRole(model.RoleNurse)).Return(int64(7), nil)

	var out bytes.Buffer
	menu := NewMenu(store, prompt.NewScripted("1", "6", "y", "1", "9", "0"), &out, logger.Nop(), nil)
	require.NoError(t, menu.Run(ctx))

	store.RawColl(repository.CollectionUsers).AssertNumberOfCalls(t, "DeleteMany", 1)
	assert.Contains(t, out.String(), "Invalid choice. Skipping user deletion.")
}

func TestMenu_SkipsEmptyCollection(t *testing.T) {
	store := mocks.NewMockStore()
	countAll(store, 0)

	var out bytes.Buffer
	menu := NewMenu(store, prompt.NewScripted("3"), &out, logger.Nop(), nil)
	require.NoError(t, menu.Run(ctx))

	assert.Contains(t, out.String(), "No appointments found in the database.")
	store.RawColl(repository.CollectionAppointments).AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}
