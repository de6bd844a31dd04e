package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
)

func ByID(id primitive.ObjectID) Filter {
	return Filter{"_id": id}
}

func ByRole(role model.Role) Filter {
	return Filter{"role": role}
}

// NotRole matches every user except the given role.
func NotRole(role model.Role) Filter {
	return Filter{"role": bson.M{"$ne": role}}
}

// International matches users of role flagged isInternational.
func International(role model.Role) Filter {
	return Filter{"role": role, "isInternational": true}
}

// Local matches users of role whose isInternational flag is false or missing.
func Local(role model.Role) Filter {
	return Filter{"role": role, "isInternational": bson.M{"$ne": true}}
}

func ByStatus(status model.AppointmentStatus) Filter {
	return Filter{"status": status}
}

func NameIn(names []string) Filter {
	return Filter{"name": bson.M{"$in": names}}
}

// DateWithin matches appointments whose date falls in [from, to).
func DateWithin(from, to time.Time) Filter {
	return Filter{"date": bson.M{"$gte": from, "$lt": to}}
}

func SetField(field string, value interface{}) Update {
	return Update{"$set": bson.M{field: value}}
}
