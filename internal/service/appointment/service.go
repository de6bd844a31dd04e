package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/assembler"
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	Kind         = "appointment"
	DefaultCount = 150
)

type Service struct {
	deps *service.Deps
}

func NewService(deps *service.Deps) *Service {
	return &Service{deps: deps}
}

// Batch is the outcome of one generation run.
type Batch struct {
	Result       *service.Result
	Appointments []model.Appointment
}

// Generate draws count appointments between existing doctors and patients and
// inserts the ones that found a free slot. A count of zero asks the operator.
func (s *Service) Generate(ctx context.Context, creator primitive.ObjectID, count int) (*Batch, error) {
	appointments := s.deps.Store.Appointments()

	doctors, err := s.deps.Store.Users().Find(ctx, repository.ByRole(model.RoleDoctor))
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if len(doctors) == 0 {
		return nil, apperrors.NewPrerequisite("doctors")
	}
	patients, err := s.deps.Store.Users().Find(ctx, repository.ByRole(model.RolePatient))
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if len(patients) == 0 {
		return nil, apperrors.NewPrerequisite("patients")
	}
	s.deps.Logger.Info("found booking participants", "doctors", len(doctors), "patients", len(patients))

	existing, err := appointments.CountDocuments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	if existing > 0 && !s.deps.Prompter.Confirm(fmt.Sprintf("Found %d existing appointments. Add more?", existing)) {
		return nil, apperrors.NewCancelled("appointment generation")
	}

	if count <= 0 {
		count = s.deps.Prompter.AskInt("How many appointments would you like to create? (recommended: 100-200)", DefaultCount)
		if count <= 0 {
			s.deps.Logger.Warn("invalid appointment count, using default", "count", count, "default", DefaultCount)
			count = DefaultCount
		}
	}

	arena, err := s.bookedThisYear(ctx)
	if err != nil {
		return nil, err
	}

	// All slots are booked while drafting; validation runs after the arena
	// is no longer consulted, so rejected drafts need no release.
	result := service.NewResult(Kind)
	drafts := s.draft(doctors, patients, arena, count, result)

	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)
	ready, failed := assembler.All(asm, Kind, drafts)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid appointment", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))

	if len(ready) == 0 {
		s.deps.Logger.Warn("no appointments generated")
		return &Batch{Result: result}, nil
	}

	ids, err := appointments.InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointments: %w", err)
	}
	s.deps.Insert(result, len(ids))
	s.deps.Logger.Info("inserted appointments", "inserted", len(ids), "skipped", result.Skipped)

	return &Batch{Result: result, Appointments: ready}, nil
}

// bookedThisYear seeds the arena with slots already taken this calendar year,
// so a re-run does not double-book doctors either.
func (s *Service) bookedThisYear(ctx context.Context) (*Arena, error) {
	year := s.deps.Now.Year()
	loc := s.deps.Now.Location()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)

	taken, err := s.deps.Store.Appointments().Find(ctx, repository.DateWithin(from, from.AddDate(1, 0, 0)))
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bookings: %w", err)
	}

	arena := NewArena()
	for _, ap := range taken {
		arena.Book(ap.Doctor, ap.Date.In(loc), ap.StartTime)
	}
	if arena.Len() > 0 {
		s.deps.Logger.Debug("loaded existing bookings", "slots", arena.Len())
	}
	return arena, nil
}

func (s *Service) draft(doctors, patients []model.User, arena *Arena, count int, result *service.Result) []model.Appointment {
	src := s.deps.Random
	scheduler := NewScheduler(src, s.deps.Now, arena)

	drafts := make([]model.Appointment, 0, count)
	for i := 0; i < count; i++ {
		s.deps.Generate(result, 1)

		doctor := random.Pick(src, doctors)
		patient := random.Pick(src, patients)
		if doctor.ID.IsZero() || patient.ID.IsZero() {
			s.deps.Logger.Warn("skipping appointment with unusable reference",
				"doctor", doctor.ID.Hex(), "patient", patient.ID.Hex())
			s.deps.Skip(result, service.ReasonFailed, 1)
			continue
		}

		date, slot, err := scheduler.Schedule(doctor.ID)
		if errors.Is(err, ErrNoFreeSlot) {
			s.deps.Logger.Debug("no free slot, dropping candidate",
				"doctor", doctor.ID.Hex(), "date", date.Format(dateKeyLayout))
			s.deps.Skip(result, service.ReasonNoFreeSlot, 1)
			continue
		}

		status := ResolveStatus(src, date, s.deps.Now)
		reason := random.Pick(src, pools.AppointmentReasons)
		virtual := random.Chance(src, VirtualChance)

		ap := model.Appointment{
			Patient:     patient.ID,
			Doctor:      doctor.ID,
			Date:        date,
			StartTime:   slot.Start,
			EndTime:     slot.End,
			Status:      status,
			Reason:      reason,
			IsVirtual:   virtual,
			MeetingLink: MeetingLink(src, virtual, status),
		}
		if status == model.AppointmentStatusCompleted {
			ap.Notes = random.Pick(src, pools.VisitNotes)
		}
		drafts = append(drafts, ap)
	}
	return drafts
}
