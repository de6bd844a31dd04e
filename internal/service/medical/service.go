package medical

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/assembler"
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/service/medication"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	Kind         = "patient_history"
	DefaultCount = 25
	// Above this many source appointments the operator is offered to process all.
	ProcessAllThreshold = 50

	doctorCacheTTL = 10 * time.Minute
)

type Service struct {
	deps    *service.Deps
	doctors *cache.Cache
}

func NewService(deps *service.Deps) *Service {
	return &Service{
		deps:    deps,
		doctors: cache.New(doctorCacheTTL, 2*doctorCacheTTL),
	}
}

// Batch is the outcome of one patient-history run.
type Batch struct {
	Result    *service.Result
	Histories []model.PatientHistory
}

// Generate writes one patient history per selected appointment. A count of
// zero asks the operator.
func (s *Service) Generate(ctx context.Context, creator primitive.ObjectID, count int) (*Batch, error) {
	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)

	source, err := s.sourceAppointments(ctx)
	if err != nil {
		return nil, err
	}

	meds, err := s.formulary(ctx, asm)
	if err != nil {
		return nil, err
	}

	existing, err := s.deps.Store.PatientHistories().CountDocuments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count patient histories: %w", err)
	}
	if existing > 0 && !s.deps.Prompter.Confirm(fmt.Sprintf("Found %d existing patient history records. Add more?", existing)) {
		return nil, apperrors.NewCancelled("patient history generation")
	}

	selected := s.selectAppointments(source, count)
	s.deps.Logger.Info("generating patient records", "appointments", len(selected), "medications", len(meds))

	result := service.NewResult(Kind)
	drafts := make([]model.PatientHistory, 0, len(selected))
	for _, ap := range selected {
		s.deps.Generate(result, 1)
		h, err := s.draft(ctx, ap, meds)
		if err != nil {
			s.deps.Logger.Warn("skipping record for appointment",
				"appointment_id", ap.ID.Hex(), "error", err.Error())
			s.deps.Skip(result, service.ReasonFailed, 1)
			continue
		}
		drafts = append(drafts, h)
	}

	ready, failed := assembler.All(asm, Kind, drafts)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid patient history", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))

	if len(ready) == 0 {
		return nil, apperrors.NewInternal(errors.New("no patient records were generated"))
	}

	ids, err := s.deps.Store.PatientHistories().InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient histories: %w", err)
	}
	s.deps.Insert(result, len(ids))
	s.deps.Logger.Info("inserted patient histories", "inserted", len(ids), "skipped", result.Skipped)

	return &Batch{Result: result, Histories: ready}, nil
}

// sourceAppointments returns completed appointments, or every appointment if
// there are none and the operator agrees.
func (s *Service) sourceAppointments(ctx context.Context) ([]model.Appointment, error) {
	appointments := s.deps.Store.Appointments()

	completed, err := appointments.Find(ctx, repository.ByStatus(model.AppointmentStatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("failed to list completed appointments: %w", err)
	}
	if len(completed) > 0 {
		s.deps.Logger.Info("found completed appointments", "count", len(completed))
		return completed, nil
	}

	s.deps.Logger.Warn("no completed appointments found")
	if !s.deps.Prompter.Confirm("Would you like to use all appointments instead?") {
		return nil, apperrors.NewPrerequisite("completed appointments")
	}
	all, err := appointments.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if len(all) == 0 {
		return nil, apperrors.NewPrerequisite("appointments")
	}
	return all, nil
}

// formulary returns the stored medications. An empty collection can be
// seeded with the fallback formulary; declining leaves histories without
// prescriptions.
func (s *Service) formulary(ctx context.Context, asm *assembler.Assembler) ([]model.Medication, error) {
	meds, err := s.deps.Store.Medications().Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(meds) > 0 {
		return meds, nil
	}

	if !s.deps.Prompter.Confirm("No medications found in the database. Would you like to create some basic medications?") {
		s.deps.Logger.Warn("creating patient records without medications")
		return nil, nil
	}

	fallback, failed := assembler.All(asm, medication.Kind, pools.FallbackFormulary())
	if len(failed) > 0 {
		return nil, fmt.Errorf("invalid fallback formulary: %w", failed[0])
	}
	if _, err := s.deps.Store.Medications().InsertMany(ctx, fallback); err != nil {
		return nil, fmt.Errorf("failed to insert fallback medications: %w", err)
	}
	s.deps.Logger.Info("created fallback medications", "count", len(fallback))
	return fallback, nil
}

func (s *Service) selectAppointments(source []model.Appointment, count int) []model.Appointment {
	n := len(source)
	if count <= 0 {
		if n > ProcessAllThreshold && s.deps.Prompter.Confirm(fmt.Sprintf("Found %d completed appointments. Process all of them?", n)) {
			return source
		}
		count = s.deps.Prompter.AskInt(fmt.Sprintf(
			"Found %d appointments. How many would you like to create records for? (recommended: 10-50, max: %d)", n, n), DefaultCount)
		if count <= 0 {
			s.deps.Logger.Warn("invalid record count, using default", "count", count, "default", DefaultCount)
			count = DefaultCount
		}
	}
	if count >= n {
		return source
	}
	return random.Sample(s.deps.Random, source, count)
}

func (s *Service) draft(ctx context.Context, ap model.Appointment, meds []model.Medication) (model.PatientHistory, error) {
	if ap.Patient.IsZero() || ap.Doctor.IsZero() {
		return model.PatientHistory{}, fmt.Errorf("appointment %s has no patient or doctor", ap.ID.Hex())
	}
	doctor, err := s.doctor(ctx, ap.Doctor)
	if err != nil {
		return model.PatientHistory{}, err
	}

	c := Compose(s.deps.Random, doctor.Specialization, doctor.Department, meds, ap.Date)
	h := model.PatientHistory{
		Patient:       ap.Patient,
		Doctor:        ap.Doctor,
		VisitDate:     ap.Date,
		Diagnosis:     c.Diagnosis,
		Symptoms:      c.Symptoms,
		Notes:         c.Notes,
		Vitals:        c.Vitals,
		Prescriptions: c.Prescriptions,
		FollowUpDate:  c.FollowUpDate,
	}
	if !ap.CreatedAt.IsZero() {
		h.Stamp(ap.CreatedAt, ap.UpdatedAt)
	}
	return h, nil
}

// doctor resolves a doctor once per run. A missing doctor resolves to the
// zero user, whose empty specialty selects the default diagnosis pool.
func (s *Service) doctor(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	key := id.Hex()
	if cached, found := s.doctors.Get(key); found {
		return cached.(model.User), nil
	}

	u, err := s.deps.Store.Users().FindOne(ctx, repository.ByID(id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to look up doctor %s: %w", key, err)
	}
	var doctor model.User
	if u != nil {
		doctor = *u
	}
	s.doctors.Set(key, doctor, cache.DefaultExpiration)
	return doctor, nil
}
