package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

// User roles stored in the users collection
const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RolePatient Role = "patient"
)

// DefaultPassword is the plaintext every seeded account starts with.
// fix-passwords rewrites it into a bcrypt hash.
const DefaultPassword = "password123"

// Identity holds the fields every account carries, whatever its role.
type Identity struct {
	Base      `bson:",inline"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-" validate:"required"`
	Role      Role               `bson:"role" json:"role" validate:"required,oneof=admin doctor nurse patient"`
	FirstName string             `bson:"firstName" json:"firstName" validate:"required"`
	LastName  string             `bson:"lastName" json:"lastName" validate:"required"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Person holds the demographic and contact block of generated accounts.
type Person struct {
	DateOfBirth time.Time `bson:"dateOfBirth" json:"dateOfBirth" validate:"required"`
	Gender      string    `bson:"gender" json:"gender" validate:"required"`
	Phone       string    `bson:"phone" json:"phone" validate:"required"`
	Address     string    `bson:"address" json:"address" validate:"required"`
	Location    string    `bson:"location" json:"location" validate:"required"`
	Active      bool      `bson:"active" json:"active"`
}

// User is the read model used for lookups across roles.
type User struct {
	Identity        `bson:",inline"`
	Specialization  string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Department      string `bson:"department,omitempty" json:"department,omitempty"`
	IsInternational bool   `bson:"isInternational,omitempty" json:"isInternational,omitempty"`
}

// Patient is the patient variant of an account.
type Patient struct {
	Identity            `bson:",inline"`
	Person              `bson:",inline"`
	MedicalRecordNumber string   `bson:"medicalRecordNumber" json:"medicalRecordNumber" validate:"required"`
	EmergencyContact    string   `bson:"emergencyContact" json:"emergencyContact" validate:"required"`
	BloodType           string   `bson:"bloodType" json:"bloodType" validate:"required"`
	Allergies           []string `bson:"allergies" json:"allergies" validate:"required"`
}

// VisibilitySettings controls which profile fields patients can see.
type VisibilitySettings struct {
	Phone          bool `bson:"phone" json:"phone"`
	Email          bool `bson:"email" json:"email"`
	Department     bool `bson:"department" json:"department"`
	Specialization bool `bson:"specialization" json:"specialization"`
	LicenseNumber  bool `bson:"licenseNumber" json:"licenseNumber"`
	Bio            bool `bson:"bio" json:"bio"`
	Education      bool `bson:"education" json:"education"`
	Experience     bool `bson:"experience" json:"experience"`
}

// Clinician holds the professional fields shared by doctors and nurses.
type Clinician struct {
	Department         string             `bson:"department" json:"department" validate:"required"`
	Specialization     string             `bson:"specialization" json:"specialization" validate:"required"`
	LicenseNumber      string             `bson:"licenseNumber" json:"licenseNumber" validate:"required"`
	Rating             float64            `bson:"rating" json:"rating" validate:"min=0,max=5"`
	RatingCount        int                `bson:"ratingCount" json:"ratingCount"`
	VisibilitySettings VisibilitySettings `bson:"visibilitySettings" json:"visibilitySettings"`
}

// Training is a residency or fellowship block.
type Training struct {
	Specialty   string `bson:"specialty" json:"specialty"`
	Institution string `bson:"institution" json:"institution"`
	Years       string `bson:"years" json:"years"`
}

type DoctorEducation struct {
	MedicalSchool  string    `bson:"medical_school" json:"medical_school" validate:"required"`
	Degree         string    `bson:"degree" json:"degree" validate:"required"`
	GraduationYear int       `bson:"graduation_year" json:"graduation_year" validate:"required"`
	Residency      Training  `bson:"residency" json:"residency"`
	Fellowship     *Training `bson:"fellowship,omitempty" json:"fellowship,omitempty"`
}

type DoctorProfile struct {
	Bio                  string            `bson:"bio" json:"bio" validate:"required"`
	Education            DoctorEducation   `bson:"education" json:"education"`
	Experience           string            `bson:"experience" json:"experience" validate:"required"`
	Hospital             string            `bson:"hospital" json:"hospital" validate:"required"`
	Availability         map[string]string `bson:"availability" json:"availability" validate:"required,min=1"`
	ConsultationFee      string            `bson:"consultationFee" json:"consultationFee" validate:"required"`
	AcceptingNewPatients bool              `bson:"acceptingNewPatients" json:"acceptingNewPatients"`
	Telehealth           bool              `bson:"telehealth" json:"telehealth"`
	Languages            []string          `bson:"languages" json:"languages" validate:"required,min=1"`
}

// Doctor is the doctor variant of an account.
type Doctor struct {
	Identity            `bson:",inline"`
	Person              `bson:",inline"`
	Clinician           `bson:",inline"`
	ProfessionalProfile DoctorProfile `bson:"professionalProfile" json:"professionalProfile"`
	IsInternational     bool          `bson:"isInternational" json:"isInternational"`
	Nationality         string        `bson:"nationality,omitempty" json:"nationality,omitempty"`
}

type NurseEducation struct {
	Degree                   string   `bson:"degree" json:"degree" validate:"required"`
	School                   string   `bson:"school" json:"school" validate:"required"`
	GraduationYear           int      `bson:"graduation_year" json:"graduation_year" validate:"required"`
	AdditionalCertifications []string `bson:"additional_certifications,omitempty" json:"additional_certifications,omitempty"`
}

type ShiftAvailability struct {
	Days  []string `bson:"days" json:"days" validate:"required,min=1"`
	Shift string   `bson:"shift" json:"shift" validate:"required"`
}

type NurseProfile struct {
	Bio          string            `bson:"bio" json:"bio" validate:"required"`
	Education    NurseEducation    `bson:"education" json:"education"`
	Experience   string            `bson:"experience" json:"experience" validate:"required"`
	Availability ShiftAvailability `bson:"availability" json:"availability"`
	Specialties  []string          `bson:"specialties" json:"specialties" validate:"required,min=1"`
	Languages    []string          `bson:"languages" json:"languages" validate:"required,min=1"`
}

// Nurse is the nurse variant of an account.
type Nurse struct {
	Identity            `bson:",inline"`
	Person              `bson:",inline"`
	Clinician           `bson:",inline"`
	Certification       string       `bson:"certification" json:"certification" validate:"required"`
	ProfessionalProfile NurseProfile `bson:"professionalProfile" json:"professionalProfile"`
}

func (i *Identity) SetCreator(id primitive.ObjectID) {
	i.CreatedBy = id
}
