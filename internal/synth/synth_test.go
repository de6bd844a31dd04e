package synth

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

var now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestVitals_Ranges(t *testing.T) {
	src := random.New(7)
	bp := regexp.MustCompile(`^(\d{3})/(\d{2})$`)

	for i := 0; i < 200; i++ {
		v := Vitals(src)

		m := bp.FindStringSubmatch(v.BloodPressure)
		require.Len(t, m, 3, v.BloodPressure)
		sys, _ := strconv.Atoi(m[1])
		dia, _ := strconv.Atoi(m[2])
		assert.GreaterOrEqual(t, sys, SystolicMin)
		assert.LessOrEqual(t, sys, SystolicMax)
		assert.GreaterOrEqual(t, dia, DiastolicMin)
		assert.LessOrEqual(t, dia, DiastolicMax)

		assert.GreaterOrEqual(t, v.HeartRate, HeartRateMin)
		assert.LessOrEqual(t, v.HeartRate, HeartRateMax)
		assert.GreaterOrEqual(t, v.RespiratoryRate, RespiratoryMin)
		assert.LessOrEqual(t, v.RespiratoryRate, RespiratoryMax)
		assert.GreaterOrEqual(t, v.OxygenSaturation, SaturationMin)
		assert.LessOrEqual(t, v.OxygenSaturation, SaturationMax)

		assert.GreaterOrEqual(t, v.Temperature, TemperatureMin)
		assert.LessOrEqual(t, v.Temperature, TemperatureMax)
		assert.InDelta(t, v.Temperature, round1(v.Temperature), 1e-9)
		assert.GreaterOrEqual(t, v.Height, HeightMin)
		assert.LessOrEqual(t, v.Height, HeightMax)
		assert.GreaterOrEqual(t, v.Weight, WeightMin)
		assert.LessOrEqual(t, v.Weight, WeightMax)
	}
}

func TestBirthDate_Age(t *testing.T) {
	src := random.New(3)
	for i := 0; i < 100; i++ {
		d := BirthDate(src, now, 18, 85)
		age := now.Year() - d.Year()
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 85)
		assert.LessOrEqual(t, d.Day(), 28)
	}
}

func TestWorkDays_OrderedAndDistinct(t *testing.T) {
	src := random.New(11)
	order := map[string]int{}
	for i, d := range pools.Weekdays {
		order[d] = i
	}

	for i := 0; i < 50; i++ {
		days := WorkDays(src, 3, 5)
		assert.GreaterOrEqual(t, len(days), 3)
		assert.LessOrEqual(t, len(days), 5)
		for j := 1; j < len(days); j++ {
			assert.Less(t, order[days[j-1]], order[days[j]])
		}
	}
}

func TestDoctorRating_Bounds(t *testing.T) {
	src := random.New(5)
	for _, years := range []int{5, 15, 30} {
		for i := 0; i < 50; i++ {
			r, n := DoctorRating(src, years)
			assert.GreaterOrEqual(t, r, 3.0)
			assert.LessOrEqual(t, r, 5.0)
			assert.GreaterOrEqual(t, n, 10)
			assert.LessOrEqual(t, n, 500)
		}
	}
}

func TestNurseRating_Bounds(t *testing.T) {
	src := random.New(5)
	for i := 0; i < 100; i++ {
		r, n := NurseRating(src, 20)
		assert.GreaterOrEqual(t, r, 3.5)
		assert.LessOrEqual(t, r, 5.0)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 100)
	}
}

func TestDoctorEducation_Fellowship(t *testing.T) {
	src := random.New(21)
	fellowships := 0
	for i := 0; i < 200; i++ {
		edu := DoctorEducation(src, now)
		assert.Equal(t, "M.D.", edu.Degree)
		assert.NotEmpty(t, edu.Residency.Specialty)
		if edu.Fellowship != nil {
			fellowships++
			assert.NotEqual(t, edu.Residency.Specialty, edu.Fellowship.Specialty)
		}
	}
	assert.Greater(t, fellowships, 0)
	assert.Less(t, fellowships, 200)
}

func TestDoctorProfile_TurkishFee(t *testing.T) {
	src := random.New(9)
	loc := pools.Location{City: "Istanbul", Country: pools.CountryTurkey}

	p, years := DoctorProfile(src, "Cardiology", loc, now)
	assert.True(t, strings.HasSuffix(p.ConsultationFee, " TRY"))
	assert.Equal(t, strconv.Itoa(years)+" years", p.Experience)
	assert.Equal(t, "English", p.Languages[0])
	assert.Contains(t, p.Languages, pools.LocalLanguages[pools.CountryTurkey])
	assert.GreaterOrEqual(t, len(p.Availability), 3)
	assert.Contains(t, pools.Hospitals[pools.CountryTurkey], p.Hospital)
}

func TestNurseProfile(t *testing.T) {
	src := random.New(9)
	p, years := NurseProfile(src, "Critical Care Nurse", now)
	assert.GreaterOrEqual(t, years, 1)
	assert.LessOrEqual(t, years, 20)
	assert.Equal(t, []string{"Critical Care Nurse"}, p.Specialties)
	assert.Contains(t, pools.NurseShifts, p.Availability.Shift)
	assert.LessOrEqual(t, len(p.Education.AdditionalCertifications), 3)
}

func TestInternationalPhone(t *testing.T) {
	src := random.New(1)
	assert.True(t, strings.HasPrefix(InternationalPhone(src, pools.CountryTurkey), pools.DialCodes[pools.CountryTurkey]+" 5"))
	assert.True(t, strings.HasPrefix(InternationalPhone(src, "Atlantis"), pools.DialCodes[pools.CountryTurkey]))
	assert.Regexp(t, `^\(\d{3}\) \d{3}-\d{4}$`, USPhone(src))
}

func TestEmail_UsesStyleDomain(t *testing.T) {
	src := random.New(2)
	for i := 0; i < 30; i++ {
		e := Email(src, PatientEmail, "Ayşe", "Yılmaz")
		at := strings.LastIndex(e, "@")
		require.Positive(t, at)
		assert.Contains(t, pools.PatientEmailDomains, e[at+1:])
		assert.Equal(t, strings.ToLower(e), e)
	}
}

func TestCredentials(t *testing.T) {
	src := random.New(4)
	assert.Regexp(t, `^TR-MD-\d{5}$`, DoctorLicense(src, pools.CountryTurkey))
	assert.Regexp(t, `^MED-JO-\d{5}$`, DoctorLicense(src, "Jordan"))
	assert.Regexp(t, `^RN[A-Z]{2}\d{6}$`, NurseLicense(src))
	assert.Regexp(t, `^MRN\d{6}$`, MedicalRecordNumber(src))
	assert.Regexp(t, `^.+ .+ \(.+\): \(\d{3}\) \d{3}-\d{4}$`, EmergencyContact(src))
}
