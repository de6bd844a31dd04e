// Package synth holds one generator per record attribute. Each takes the
// run's random source and whatever locale or specialty it depends on.
package synth

import (
	"fmt"
	"strings"

	"github.com/jwalitptl/healthbridge-seeder/internal/pools"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

// USPhone returns a number formatted (NNN) NNN-NNNN.
func USPhone(src *random.Source) string {
	return fmt.Sprintf("(%d) %d-%d",
		random.Between(src, 100, 999), random.Between(src, 100, 999), random.Between(src, 1000, 9999))
}

// InternationalPhone formats a mobile number the way the given country writes it.
// Unknown countries use the Turkish dial code.
func InternationalPhone(src *random.Source, country string) string {
	code, ok := pools.DialCodes[country]
	if !ok {
		code = pools.DialCodes[pools.CountryTurkey]
	}

	switch {
	case country == pools.CountryTurkey:
		return fmt.Sprintf("%s %d %d %d", code,
			random.Between(src, 500, 559), random.Between(src, 100, 999), random.Between(src, 1000, 9999))
	case pools.GulfStates[country]:
		return fmt.Sprintf("%s %d %d %d", code,
			random.Between(src, 50, 59), random.Between(src, 100, 999), random.Between(src, 1000, 9999))
	case country == "Egypt":
		return fmt.Sprintf("%s %d %d %d", code,
			random.Between(src, 10, 15), random.Between(src, 1000, 9999), random.Between(src, 1000, 9999))
	default:
		return fmt.Sprintf("%s %d %d %d", code,
			random.Between(src, 50, 79), random.Between(src, 100, 999), random.Between(src, 1000, 9999))
	}
}

// USAddress returns "N Street, City, ST zip".
func USAddress(src *random.Source) string {
	return fmt.Sprintf("%d %s, %s, %s %d",
		random.Between(src, 100, 9999),
		random.Pick(src, pools.USStreets),
		random.Pick(src, pools.USCities),
		random.Pick(src, pools.USStates),
		random.Between(src, 10000, 99999))
}

// InternationalAddress follows local conventions: Turkish addresses lead with
// the street and carry a district, Gulf addresses carry a district, the rest
// are number-street-city.
func InternationalAddress(src *random.Source, loc pools.Location) string {
	number := random.Between(src, 1, 120)

	streetTypes, ok := pools.StreetTypes[loc.Country]
	if !ok {
		streetTypes = pools.DefaultStreetTypes
	}
	streetType := random.Pick(src, streetTypes)

	streets := pools.ArabicStreets
	if loc.Country == pools.CountryTurkey {
		streets = pools.TurkishStreets
	}
	street := random.Pick(src, streets)

	var postal string
	switch {
	case loc.Country == pools.CountryTurkey:
		postal = fmt.Sprint(random.Between(src, 10000, 81900))
	case loc.Country == "Saudi Arabia":
		postal = fmt.Sprintf("%d-%d", random.Between(src, 10000, 99999), random.Between(src, 1000, 9999))
	default:
		postal = fmt.Sprint(random.Between(src, 10000, 99999))
	}

	switch {
	case loc.Country == pools.CountryTurkey:
		district := random.Pick(src, pools.TurkishDistricts)
		return fmt.Sprintf("%s %s No:%d, %s, %s, %s, %s", street, streetType, number, district, loc.City, loc.Country, postal)
	case pools.GulfStates[loc.Country]:
		district := random.Pick(src, pools.GulfDistricts)
		return fmt.Sprintf("%d %s %s, %s, %s, %s, %s", number, street, streetType, district, loc.City, loc.Country, postal)
	default:
		return fmt.Sprintf("%d %s %s, %s, %s, %s", number, street, streetType, loc.City, loc.Country, postal)
	}
}

// EmailStyle describes how one role builds addresses.
type EmailStyle struct {
	Domains      []string
	Prefixes     []string
	PrefixChance float64
	// InitialStyle enables the f.last@ form used by patients.
	InitialStyle bool
}

var (
	DoctorEmail  = EmailStyle{Domains: pools.DoctorEmailDomains, Prefixes: pools.DoctorEmailPrefixes, PrefixChance: 0.3}
	NurseEmail   = EmailStyle{Domains: pools.NurseEmailDomains, Prefixes: pools.NurseEmailPrefixes, PrefixChance: 0.3}
	PatientEmail = EmailStyle{Domains: pools.PatientEmailDomains, InitialStyle: true}
)

var emailSeparators = []string{"", ".", "_"}

// Email derives an address from a name in the given style.
func Email(src *random.Source, style EmailStyle, first, last string) string {
	sep := random.Pick(src, emailSeparators)
	domain := random.Pick(src, style.Domains)
	first = strings.ToLower(first)
	last = strings.ToLower(last)

	if len(style.Prefixes) > 0 && random.Chance(src, style.PrefixChance) {
		prefix := random.Pick(src, style.Prefixes)
		return fmt.Sprintf("%s%s%s%s%s@%s", prefix, sep, first, sep, last, domain)
	}
	if random.Chance(src, 0.5) {
		return fmt.Sprintf("%s%s%s@%s", first, sep, last, domain)
	}
	if style.InitialStyle && !random.Chance(src, 0.7) {
		initial := []rune(first)[:1]
		return fmt.Sprintf("%s%s%s@%s", string(initial), sep, last, domain)
	}
	return fmt.Sprintf("%s%s%s%d@%s", first, sep, last, random.Between(src, 1, 99), domain)
}
