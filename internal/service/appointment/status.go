package appointment

import (
	"fmt"
	"time"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

const (
	VirtualChance   = 0.3
	meetingLinkBase = "https://healthbridge-meet.com/"
)

var (
	pastOutcomes = []random.Outcome[model.AppointmentStatus]{
		{Value: model.AppointmentStatusCompleted, Weight: 0.85},
		{Value: model.AppointmentStatusCancelled, Weight: 0.15},
	}
	upcomingOutcomes = []random.Outcome[model.AppointmentStatus]{
		{Value: model.AppointmentStatusPending, Weight: 0.30},
		{Value: model.AppointmentStatusConfirmed, Weight: 0.60},
		{Value: model.AppointmentStatusRescheduled, Weight: 0.10},
	}
)

// ResolveStatus is the only place an appointment status is decided.
func ResolveStatus(src *random.Source, date, now time.Time) model.AppointmentStatus {
	if date.Before(now) {
		return random.Choose(src, pastOutcomes)
	}
	return random.Choose(src, upcomingOutcomes)
}

// MeetingLink returns a link only for virtual appointments that are
// confirmed or rescheduled.
func MeetingLink(src *random.Source, virtual bool, status model.AppointmentStatus) string {
	if !virtual || !status.HasMeeting() {
		return ""
	}
	return fmt.Sprintf("%s%d", meetingLinkBase, random.Between(src, 1000000, 9999999))
}
