package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
)

// Filter and Update are plain documents handed to the store as-is.
type (
	Filter = bson.M
	Update = bson.M
)

// Collection names as the application reads them.
const (
	CollectionUsers            = "users"
	CollectionAppointments     = "appointments"
	CollectionMedications      = "medications"
	CollectionPatientHistories = "patienthistories"
	CollectionMessages         = "messages"
	CollectionNotifications    = "notifications"
)

// AllCollections is the display order used by counts and purge summaries.
var AllCollections = []string{
	CollectionUsers,
	CollectionMedications,
	CollectionAppointments,
	CollectionPatientHistories,
	CollectionMessages,
	CollectionNotifications,
}

// All repository interfaces in one file
type (
	// Collection is the persistence contract for one collection. FindOne
	// returns (nil, nil) when nothing matches; a nil filter matches everything.
	Collection[T any] interface {
		Name() string
		FindOne(ctx context.Context, filter Filter) (*T, error)
		Find(ctx context.Context, filter Filter) ([]T, error)
		CountDocuments(ctx context.Context, filter Filter) (int64, error)
		InsertMany(ctx context.Context, docs []T) ([]primitive.ObjectID, error)
		InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error)
		DeleteMany(ctx context.Context, filter Filter) (int64, error)
		UpdateMany(ctx context.Context, filter Filter, update Update) (int64, error)
	}

	// Store hands out typed views over the backing database. Users, Patients,
	// Doctors and Nurses all address the users collection.
	Store interface {
		Users() Collection[model.User]
		Patients() Collection[model.Patient]
		Doctors() Collection[model.Doctor]
		Nurses() Collection[model.Nurse]
		Appointments() Collection[model.Appointment]
		Medications() Collection[model.Medication]
		PatientHistories() Collection[model.PatientHistory]
		Raw(name string) Collection[bson.M]
		Close(ctx context.Context) error
	}
)
