package synth

import (
	"fmt"
	"slices"
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

// BirthDate returns a date of birth for someone aged between minAge and maxAge.
// Days stop at 28 so every month is valid.
func BirthDate(src *random.Source, now time.Time, minAge, maxAge int) time.Time {
	year := now.Year() - random.Between(src, minAge, maxAge)
	return time.Date(year, time.Month(random.Between(src, 1, 12)), random.Between(src, 1, 28), 0, 0, 0, 0, time.UTC)
}

// WorkDays samples between lo and hi distinct weekdays, in week order.
func WorkDays(src *random.Source, lo, hi int) []string {
	idx := make([]int, len(pools.Weekdays))
	for i := range idx {
		idx[i] = i
	}
	idx = random.Sample(src, idx, random.Between(src, lo, hi))
	slices.Sort(idx)

	days := make([]string, len(idx))
	for i, d := range idx {
		days[i] = pools.Weekdays[d]
	}
	return days
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// DoctorRating grows with experience: min(3+years/10, 4.9) +/- 0.5, clamped to [3, 5].
func DoctorRating(src *random.Source, years int) (float64, int) {
	base := min(3+float64(years)/10, 4.9)
	rating := clamp(base+src.Float64Range(-0.5, 0.5), 3, 5)
	return round1(rating), random.Between(src, 10, 500)
}

// NurseRating: min(3.5+years/15, 4.9) +/- 0.3, clamped to [3.5, 5].
func NurseRating(src *random.Source, years int) (float64, int) {
	base := min(3.5+float64(years)/15, 4.9)
	rating := clamp(base+src.Float64Range(-0.3, 0.3), 3.5, 5)
	return round1(rating), random.Between(src, 5, 100)
}

// Visibility draws which optional profile fields are public.
func Visibility(src *random.Source, phone, email, license float64) model.VisibilitySettings {
	return model.VisibilitySettings{
		Phone:          random.Chance(src, phone),
		Email:          random.Chance(src, email),
		Department:     true,
		Specialization: true,
		LicenseNumber:  random.Chance(src, license),
		Bio:            true,
		Education:      true,
		Experience:     true,
	}
}

// -----------------------------------------------------------------------------
// Doctors
// -----------------------------------------------------------------------------

func doctorBio(src *random.Source, specialty, hospital string, loc pools.Location, years int) string {
	switch random.Between(src, 0, 3) {
	case 0:
		return fmt.Sprintf("Board-certified %s specialist with %d years of experience. Currently practicing at %s in %s, %s.",
			specialty, years, hospital, loc.City, loc.Country)
	case 1:
		return fmt.Sprintf("Experienced %s doctor specializing in advanced treatments and patient care. %d years of clinical experience at %s.",
			specialty, years, hospital)
	case 2:
		return fmt.Sprintf("Dedicated %s physician with %d years of experience in both clinical practice and research. Affiliated with %s.",
			specialty, years, hospital)
	default:
		return fmt.Sprintf("%s specialist with a focus on innovative treatments and compassionate care. %d years of medical practice at %s in %s.",
			specialty, years, hospital, loc.City)
	}
}

// DoctorEducation always includes a residency; a fellowship in a different
// specialty follows with probability 0.4.
func DoctorEducation(src *random.Source, now time.Time) model.DoctorEducation {
	grad := now.Year() - random.Between(src, 5, 35)
	residency := random.Pick(src, pools.Specialties)

	edu := model.DoctorEducation{
		MedicalSchool:  random.Pick(src, pools.MedicalSchools),
		Degree:         "M.D.",
		GraduationYear: grad,
		Residency: model.Training{
			Specialty:   residency,
			Institution: random.Pick(src, pools.MedicalSchools),
			Years:       fmt.Sprintf("%d - %d", grad+1, grad+4),
		},
	}

	if random.Chance(src, 0.4) {
		others := make([]string, 0, len(pools.Specialties)-1)
		for _, s := range pools.Specialties {
			if s != residency {
				others = append(others, s)
			}
		}
		edu.Fellowship = &model.Training{
			Specialty:   random.Pick(src, others),
			Institution: random.Pick(src, pools.MedicalSchools),
			Years:       fmt.Sprintf("%d - %d", grad+5, grad+7),
		}
	}
	return edu
}

func consultationFee(src *random.Source, country string) string {
	switch {
	case country == pools.CountryTurkey:
		return fmt.Sprintf("%d TRY", random.Between(src, 500, 2000))
	case pools.GulfStates[country]:
		return fmt.Sprintf("%d USD", random.Between(src, 100, 500))
	default:
		return fmt.Sprintf("%d USD", random.Between(src, 50, 300))
	}
}

// DoctorProfile builds the professional profile and returns the years of experience it states.
func DoctorProfile(src *random.Source, specialty string, loc pools.Location, now time.Time) (model.DoctorProfile, int) {
	hospital := fmt.Sprintf("%s Medical Center", loc.City)
	if hs, ok := pools.Hospitals[loc.Country]; ok {
		hospital = random.Pick(src, hs)
	}
	years := random.Between(src, 5, 30)

	availability := make(map[string]string)
	for _, day := range WorkDays(src, 3, 6) {
		availability[day] = fmt.Sprintf("%d:00 - %d:00", random.Between(src, 8, 10), random.Between(src, 16, 19))
	}

	languages := []string{"English"}
	if local, ok := pools.LocalLanguages[loc.Country]; ok {
		languages = append(languages, local)
	}
	if random.Chance(src, 0.4) {
		if extra := random.Pick(src, pools.DoctorExtraLanguages); !slices.Contains(languages, extra) {
			languages = append(languages, extra)
		}
	}

	return model.DoctorProfile{
		Bio:                  doctorBio(src, specialty, hospital, loc, years),
		Education:            DoctorEducation(src, now),
		Experience:           fmt.Sprintf("%d years", years),
		Hospital:             hospital,
		Availability:         availability,
		ConsultationFee:      consultationFee(src, loc.Country),
		AcceptingNewPatients: random.Chance(src, 0.8),
		Telehealth:           random.Chance(src, 0.7),
		Languages:            languages,
	}, years
}

// -----------------------------------------------------------------------------
// Nurses
// -----------------------------------------------------------------------------

func nurseBio(src *random.Source, specialty string, years int) string {
	switch random.Between(src, 0, 3) {
	case 0:
		return fmt.Sprintf("Dedicated %s with %d years of experience providing compassionate patient care.", specialty, years)
	case 1:
		return fmt.Sprintf("Experienced %s focused on delivering high-quality patient-centered care. %d years in the healthcare field.", specialty, years)
	case 2:
		return fmt.Sprintf("Compassionate %s with %d years of clinical experience in diverse healthcare settings.", specialty, years)
	default:
		return fmt.Sprintf("Detail-oriented %s with %d years of experience and a passion for patient advocacy.", specialty, years)
	}
}

// NurseEducation adds 1-3 extra certifications with probability 0.7.
func NurseEducation(src *random.Source, now time.Time) model.NurseEducation {
	edu := model.NurseEducation{
		Degree:         random.Pick(src, pools.NursingDegrees),
		School:         random.Pick(src, pools.NursingSchools),
		GraduationYear: now.Year() - random.Between(src, 1, 25),
	}
	if random.Chance(src, 0.7) {
		edu.AdditionalCertifications = random.Sample(src, pools.NursingCertifications, random.Between(src, 1, 3))
	}
	return edu
}

// NurseProfile builds the professional profile and returns the years of experience it states.
func NurseProfile(src *random.Source, specialty string, now time.Time) (model.NurseProfile, int) {
	years := random.Between(src, 1, 20)

	languages := []string{"English"}
	if random.Chance(src, 0.3) {
		languages = append(languages, random.Pick(src, pools.NurseExtraLanguages))
	}

	return model.NurseProfile{
		Bio:        nurseBio(src, specialty, years),
		Education:  NurseEducation(src, now),
		Experience: fmt.Sprintf("%d years", years),
		Availability: model.ShiftAvailability{
			Days:  WorkDays(src, 3, 5),
			Shift: random.Pick(src, pools.NurseShifts),
		},
		Specialties: []string{specialty},
		Languages:   languages,
	}, years
}
