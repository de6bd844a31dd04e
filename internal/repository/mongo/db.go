package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

// DefaultDatabase is used when the connection string names no database.
const DefaultDatabase = "test"

type Config struct {
	URI            string
	ConnectTimeout time.Duration
}

// DatabaseName returns the database named by the URI path, or DefaultDatabase.
func DatabaseName(uri string) (string, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

// Store implements repository.Store on a MongoDB database.
type Store struct {
	client  *driver.Client
	db      *driver.Database
	metrics *metrics.Metrics
}

var _ repository.Store = (*Store)(nil)

func NewStore(ctx context.Context, cfg Config, m *metrics.Metrics) (*Store, error) {
	name, err := DatabaseName(cfg.URI)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		client:  client,
		db:      client.Database(name),
		metrics: m,
	}, nil
}

func (s *Store) DatabaseName() string {
	return s.db.Name()
}

func (s *Store) Users() repository.Collection[model.User] {
	return newCollection[model.User](s, repository.CollectionUsers)
}

func (s *Store) Patients() repository.Collection[model.Patient] {
	return newCollection[model.Patient](s, repository.CollectionUsers)
}

func (s *Store) Doctors() repository.Collection[model.Doctor] {
	return newCollection[model.Doctor](s, repository.CollectionUsers)
}

func (s *Store) Nurses() repository.Collection[model.Nurse] {
	return newCollection[model.Nurse](s, repository.CollectionUsers)
}

func (s *Store) Appointments() repository.Collection[model.Appointment] {
	return newCollection[model.Appointment](s, repository.CollectionAppointments)
}

func (s *Store) Medications() repository.Collection[model.Medication] {
	return newCollection[model.Medication](s, repository.CollectionMedications)
}

func (s *Store) PatientHistories() repository.Collection[model.PatientHistory] {
	return newCollection[model.PatientHistory](s, repository.CollectionPatientHistories)
}

// Raw addresses any collection with untyped documents.
func (s *Store) Raw(name string) repository.Collection[bson.M] {
	return newCollection[bson.M](s, name)
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	return nil
}
