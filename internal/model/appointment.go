package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "pending"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// Past reports whether the status belongs to an appointment dated before now.
func (s AppointmentStatus) Past() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// HasMeeting reports whether a virtual appointment in this status gets a meeting link.
func (s AppointmentStatus) HasMeeting() bool {
	return s == AppointmentStatusConfirmed || s == AppointmentStatusRescheduled
}

type Appointment struct {
	Base        `bson:",inline"`
	Patient     primitive.ObjectID `bson:"patient" json:"patient" validate:"required"`
	Doctor      primitive.ObjectID `bson:"doctor" json:"doctor" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	StartTime   string             `bson:"startTime" json:"startTime" validate:"required,len=5"`
	EndTime     string             `bson:"endTime" json:"endTime" validate:"required,len=5"`
	Status      AppointmentStatus  `bson:"status" json:"status" validate:"required,oneof=pending confirmed cancelled completed rescheduled"`
	Reason      string             `bson:"reason" json:"reason" validate:"required"`
	IsVirtual   bool               `bson:"isVirtual" json:"isVirtual"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	MeetingLink string             `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy" validate:"required"`
}

// TimeSlot is a same-day start/end pair in HH:MM form.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (a *Appointment) SetCreator(id primitive.ObjectID) {
	a.CreatedBy = id
}
