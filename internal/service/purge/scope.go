package purge

import (
	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
)

// Challenge is one question a scope asks before it may run. The answer must
// match Expect exactly, or case-insensitively when Fold is set.
type Challenge struct {
	Question string
	Expect   string
	Fold     bool
}

// Target is one deleteMany call.
type Target struct {
	Collection string
	Filter     repository.Filter
}

// Scope is one destructive action on the menu.
type Scope struct {
	Key        string
	Label      string
	Targets    []Target
	Challenges []Challenge
}

// Literal answers of the all-data scope, asked in this order.
const (
	AllDataFirstAnswer  = "YES"
	AllDataSecondAnswer = "DELETE EVERYTHING"
)

func confirmOnce(label string) []Challenge {
	return []Challenge{{
		Question: "Are you sure you want to delete " + label + "? This cannot be undone. (y/n): ",
		Expect:   "y",
		Fold:     true,
	}}
}

func scope(key, label string, targets ...Target) Scope {
	return Scope{Key: key, Label: label, Targets: targets, Challenges: confirmOnce(label)}
}

func users(filter repository.Filter) Target {
	return Target{Collection: repository.CollectionUsers, Filter: filter}
}

func everything(collection string) Target {
	return Target{Collection: collection}
}

// User scopes, in menu order. None of them matches admins.
var (
	AllUsers              = scope("users", "all non-admin users", users(repository.NotRole(model.RoleAdmin)))
	LocalPatients         = scope("patients", "local patients", users(repository.Local(model.RolePatient)))
	LocalDoctors          = scope("doctors", "local doctors", users(repository.Local(model.RoleDoctor)))
	InternationalDoctors  = scope("international-doctors", "international doctors", users(repository.International(model.RoleDoctor)))
	InternationalPatients = scope("international-patients", "international patients", users(repository.International(model.RolePatient)))
	Nurses                = scope("nurses", "nurses", users(repository.ByRole(model.RoleNurse)))
)

var UserScopes = []Scope{AllUsers, LocalPatients, LocalDoctors, InternationalDoctors, InternationalPatients, Nurses}

// Collection scopes.
var (
	Medications      = scope("medications", "all medications", everything(repository.CollectionMedications))
	Appointments     = scope("appointments", "all appointments", everything(repository.CollectionAppointments))
	PatientHistories = scope("patient-histories", "all patient history records", everything(repository.CollectionPatientHistories))
	RelatedData      = scope("related", "related data (messages, notifications)",
		everything(repository.CollectionMessages), everything(repository.CollectionNotifications))
)

// AllData empties every collection except for admin users.
var AllData = Scope{
	Key:   "all",
	Label: "ALL data",
	Targets: []Target{
		users(repository.NotRole(model.RoleAdmin)),
		everything(repository.CollectionMedications),
		everything(repository.CollectionAppointments),
		everything(repository.CollectionPatientHistories),
		everything(repository.CollectionMessages),
		everything(repository.CollectionNotifications),
	},
	Challenges: []Challenge{
		{Question: "Are you absolutely sure you want to delete ALL data? Type 'YES' in all caps to confirm: ", Expect: AllDataFirstAnswer},
		{Question: "This is your last chance to cancel. Type 'DELETE EVERYTHING' to proceed: ", Expect: AllDataSecondAnswer},
	},
}

// ScopeByKey finds any scope by its key, for non-interactive use.
func ScopeByKey(key string) (Scope, bool) {
	all := append(append([]Scope{}, UserScopes...), Medications, Appointments, PatientHistories, RelatedData, AllData)
	for _, s := range all {
		if s.Key == key {
			return s, true
		}
	}
	return Scope{}, false
}
