// Package mocks provides testify mocks of the repository gateway.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
)

// MockCollection mocks repository.Collection for one document type.
type MockCollection[T any] struct {
	mock.Mock
	name string
}

func NewMockCollection[T any](name string) *MockCollection[T] {
	return &MockCollection[T]{name: name}
}

func (m *MockCollection[T]) Name() string {
	return m.name
}

func (m *MockCollection[T]) FindOne(ctx context.Context, filter repository.Filter) (*T, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCollection[T]) Find(ctx context.Context, filter repository.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCollection[T]) CountDocuments(ctx context.Context, filter repository.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection[T]) InsertMany(ctx context.Context, docs []T) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, docs)
	if v := args.Get(0); v != nil {
		return v.([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCollection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCollection[T]) DeleteMany(ctx context.Context, filter repository.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection[T]) UpdateMany(ctx context.Context, filter repository.Filter, update repository.Update) (int64, error) {
	args := m.Called(ctx, filter, update)
	return args.Get(0).(int64), args.Error(1)
}

// MockStore hands out one MockCollection per typed view.
type MockStore struct {
	UsersColl            *MockCollection[model.User]
	PatientsColl         *MockCollection[model.Patient]
	DoctorsColl          *MockCollection[model.Doctor]
	NursesColl           *MockCollection[model.Nurse]
	AppointmentsColl     *MockCollection[model.Appointment]
	MedicationsColl      *MockCollection[model.Medication]
	PatientHistoriesColl *MockCollection[model.PatientHistory]
	RawColls             map[string]*MockCollection[bson.M]
}

var _ repository.Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		UsersColl:            NewMockCollection[model.User](repository.CollectionUsers),
		PatientsColl:         NewMockCollection[model.Patient](repository.CollectionUsers),
		DoctorsColl:          NewMockCollection[model.Doctor](repository.CollectionUsers),
		NursesColl:           NewMockCollection[model.Nurse](repository.CollectionUsers),
		AppointmentsColl:     NewMockCollection[model.Appointment](repository.CollectionAppointments),
		MedicationsColl:      NewMockCollection[model.Medication](repository.CollectionMedications),
		PatientHistoriesColl: NewMockCollection[model.PatientHistory](repository.CollectionPatientHistories),
		RawColls:             map[string]*MockCollection[bson.M]{},
	}
}

func (s *MockStore) Users() repository.Collection[model.User] {
	return s.UsersColl
}

func (s *MockStore) Patients() repository.Collection[model.Patient] {
	return s.PatientsColl
}

func (s *MockStore) Doctors() repository.Collection[model.Doctor] {
	return s.DoctorsColl
}

func (s *MockStore) Nurses() repository.Collection[model.Nurse] {
	return s.NursesColl
}

func (s *MockStore) Appointments() repository.Collection[model.Appointment] {
	return s.AppointmentsColl
}

func (s *MockStore) Medications() repository.Collection[model.Medication] {
	return s.MedicationsColl
}

func (s *MockStore) PatientHistories() repository.Collection[model.PatientHistory] {
	return s.PatientHistoriesColl
}

// Raw returns the mock for name, creating it on first use.
func (s *MockStore) Raw(name string) repository.Collection[bson.M] {
	return s.RawColl(name)
}

func (s *MockStore) RawColl(name string) *MockCollection[bson.M] {
	c, ok := s.RawColls[name]
	if !ok {
		c = NewMockCollection[bson.M](name)
		s.RawColls[name] = c
	}
	return c
}

func (s *MockStore) Close(context.Context) error {
	return nil
}
