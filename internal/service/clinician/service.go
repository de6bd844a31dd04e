package clinician

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/assembler"
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	"github.com/jwalitptl/healthbridge-seeder/internal/synth"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	DoctorKind = "doctor"
	NurseKind  = "nurse"

	DefaultDoctors = 20
	DefaultNurses  = 7

	// TurkishChance is the share of international doctors drawn from the
	// Turkish pools and placed in Turkish cities.
	TurkishChance = 0.7
)

type Service interface {
	// International doctors
	Doctors(ctx context.Context, creator primitive.ObjectID, count int) (*DoctorBatch, error)

	// Nurses
	Nurses(ctx context.Context, creator primitive.ObjectID, count int) (*NurseBatch, error)
}

type clinicianService struct {
	deps *service.Deps
}

func NewService(deps *service.Deps) Service {
	return &clinicianService{deps: deps}
}

type DoctorBatch struct {
	Result  *service.Result
	Doctors []model.Doctor
}

type NurseBatch struct {
	Result *service.Result
	Nurses []model.Nurse
}

// confirmAddMore asks before adding to a non-empty set of users.
func (s *clinicianService) confirmAddMore(ctx context.Context, filter repository.Filter, label string, count int) error {
	existing, err := s.deps.Store.Users().CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", label, err)
	}
	if existing > 0 && !s.deps.Prompter.Confirm(fmt.Sprintf("Found %d existing %s. Add %d more?", existing, label, count)) {
		return apperrors.NewCancelled(label + " generation")
	}
	return nil
}

func (s *clinicianService) Doctors(ctx context.Context, creator primitive.ObjectID, count int) (*DoctorBatch, error) {
	if count <= 0 {
		count = DefaultDoctors
	}
	if err := s.confirmAddMore(ctx, repository.International(model.RoleDoctor), "international doctors", count); err != nil {
		return nil, err
	}

	result := service.NewResult(DoctorKind)
	drafts := make([]model.Doctor, count)
	for i := range drafts {
		drafts[i] = DraftDoctor(s.deps.Random, s.deps.Now)
	}
	s.deps.Generate(result, count)

	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)
	ready, failed := assembler.All(asm, DoctorKind, drafts)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid doctor", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))
	if len(ready) == 0 {
		return &DoctorBatch{Result: result}, nil
	}

	ids, err := s.deps.Store.Doctors().InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert doctors: %w", err)
	}
	s.deps.Insert(result, len(ids))
	for i, d := range ready {
		s.deps.Logger.Info("added international doctor",
			"n", i+1, "name", "Dr. "+d.FullName(), "specialization", d.Specialization, "location", d.Location)
	}
	return &DoctorBatch{Result: result, Doctors: ready}, nil
}

func (s *clinicianService) Nurses(ctx context.Context, creator primitive.ObjectID, count int) (*NurseBatch, error) {
	if count <= 0 {
		count = DefaultNurses
	}
	if err := s.confirmAddMore(ctx, repository.ByRole(model.RoleNurse), "nurses", count); err != nil {
		return nil, err
	}

	result := service.NewResult(NurseKind)
	drafts := make([]model.Nurse, count)
	for i := range drafts {
		drafts[i] = DraftNurse(s.deps.Random, s.deps.Now)
	}
	s.deps.Generate(result, count)

	asm := assembler.New(s.deps.Validator, s.deps.Random, s.deps.Now, creator)
	ready, failed := assembler.All(asm, NurseKind, drafts)
	for _, err := range failed {
		s.deps.Logger.Warn("skipping invalid nurse", "error", err.Error())
	}
	s.deps.Skip(result, service.ReasonInvalid, len(failed))
	if len(ready) == 0 {
		return &NurseBatch{Result: result}, nil
	}

	ids, err := s.deps.Store.Nurses().InsertMany(ctx, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to insert nurses: %w", err)
	}
	s.deps.Insert(result, len(ids))
	for i, n := range ready {
		s.deps.Logger.Info("added nurse", "n", i+1, "name", n.FullName(), "specialization", n.Specialization)
	}
	return &NurseBatch{Result: result, Nurses: ready}, nil
}

// pickName draws a gender and a matching first name.
func pickName(src *random.Source, pool pools.NamePool) (gender, first, last string) {
	gender, names := "male", pool.Male
	if random.Chance(src, 0.5) {
		gender, names = "female", pool.Female
	}
	return gender, random.Pick(src, names), random.Pick(src, pool.Last)
}

// DraftDoctor builds one international doctor. Turkish names are always
// placed in Turkey; the other pool can land anywhere in the region.
func DraftDoctor(src *random.Source, now time.Time) model.Doctor {
	names, locations := pools.MiddleEasternNames, pools.Locations
	if random.Chance(src, TurkishChance) {
		names, locations = pools.TurkishNames, pools.LocationsIn(pools.CountryTurkey)
	}
	gender, first, last := pickName(src, names)
	loc := random.Pick(src, locations)

	specialty := random.Pick(src, pools.Specialties)
	profile, years := synth.DoctorProfile(src, specialty, loc, now)
	rating, ratingCount := synth.DoctorRating(src, years)

	return model.Doctor{
		Identity: model.Identity{
			Email:     synth.Email(src, synth.DoctorEmail, first, last),
			Password:  model.DefaultPassword,
			Role:      model.RoleDoctor,
			FirstName: first,
			LastName:  last,
		},
		Person: model.Person{
			DateOfBirth: synth.BirthDate(src, now, 30, 70),
			Gender:      gender,
			Phone:       synth.InternationalPhone(src, loc.Country),
			Address:     synth.InternationalAddress(src, loc),
			Location:    fmt.Sprintf("%s, %s", loc.City, loc.Country),
			Active:      true,
		},
		Clinician: model.Clinician{
			Department:         pools.DepartmentFor(specialty),
			Specialization:     specialty,
			LicenseNumber:      synth.DoctorLicense(src, loc.Country),
			Rating:             rating,
			RatingCount:        ratingCount,
			VisibilitySettings: synth.Visibility(src, 0.3, 0.3, 0.5),
		},
		ProfessionalProfile: profile,
		IsInternational:     true,
		Nationality:         loc.Country,
	}
}

// DraftNurse builds one US nurse.
func DraftNurse(src *random.Source, now time.Time) model.Nurse {
	gender, first, last := pickName(src, pools.NurseNames)
	specialty := random.Pick(src, pools.NursingSpecialties)

	profile, years := synth.NurseProfile(src, specialty.Name, now)
	rating, ratingCount := synth.NurseRating(src, years)

	return model.Nurse{
		Identity: model.Identity{
			Email:     synth.Email(src, synth.NurseEmail, first, last),
			Password:  model.DefaultPassword,
			Role:      model.RoleNurse,
			FirstName: first,
			LastName:  last,
		},
		Person: model.Person{
			DateOfBirth: synth.BirthDate(src, now, 25, 60),
			Gender:      gender,
			Phone:       synth.USPhone(src),
			Address:     synth.USAddress(src),
			Location:    random.Pick(src, pools.CareSettings),
			Active:      true,
		},
		Clinician: model.Clinician{
			Department:         specialty.Department,
			Specialization:     specialty.Name,
			LicenseNumber:      synth.NurseLicense(src),
			Rating:             rating,
			RatingCount:        ratingCount,
			VisibilitySettings: synth.Visibility(src, 0.3, 0.4, 0.3),
		},
		Certification:       specialty.Certification,
		ProfessionalProfile: profile,
	}
}
