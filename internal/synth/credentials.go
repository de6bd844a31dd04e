package synth

import (
	"fmt"
	"strings"

	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

// DoctorLicense returns a license number in the issuing country's scheme.
func DoctorLicense(src *random.Source, country string) string {
	switch country {
	case pools.CountryTurkey:
		return fmt.Sprintf("TR-MD-%d", random.Between(src, 10000, 99999))
	case "UAE":
		return fmt.Sprintf("UAE-DHA-%d", random.Between(src, 1000, 9999))
	case "Saudi Arabia":
		return fmt.Sprintf("SCFHS-%d", random.Between(src, 10000, 99999))
	case "Egypt":
		return fmt.Sprintf("EG-MS-%d", random.Between(src, 10000, 99999))
	default:
		code := strings.ToUpper(country)
		if r := []rune(code); len(r) > 2 {
			code = string(r[:2])
		}
		return fmt.Sprintf("MED-%s-%d", code, random.Between(src, 10000, 99999))
	}
}

// NurseLicense returns RN, a state code and six digits.
func NurseLicense(src *random.Source) string {
	return fmt.Sprintf("RN%s%d", random.Pick(src, pools.USStates), random.Between(src, 100000, 999999))
}

// MedicalRecordNumber returns MRN followed by six digits.
func MedicalRecordNumber(src *random.Source) string {
	return fmt.Sprintf("MRN%d", random.Between(src, 100000, 999999))
}

// EmergencyContact returns "First Last (Relation): phone".
func EmergencyContact(src *random.Source) string {
	return fmt.Sprintf("%s %s (%s): %s",
		random.Pick(src, pools.PatientFirstNames),
		random.Pick(src, pools.PatientLastNames),
		random.Pick(src, pools.EmergencyRelations),
		USPhone(src))
}
