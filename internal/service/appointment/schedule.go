package appointment

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/pkg/random"
)

// Scheduling rules
const (
	MaxSlotAttempts = 5
	FirstStartHour  = 8
	LastStartHour   = 16
	PastDateChance  = 0.4

	dateKeyLayout = "2006-01-02"
)

var (
	slotMinutes   = []int{0, 15, 30, 45}
	slotDurations = []int{30, 45, 60}
)

// ErrNoFreeSlot means every attempt hit an already booked start time.
var ErrNoFreeSlot = errors.New("no free slot for doctor on date")

type arenaKey struct {
	doctor primitive.ObjectID
	date   string
}

// Arena records, per (doctor, date), the start times already taken. It is
// owned by one generation run and is not safe for concurrent use.
type Arena struct {
	booked map[arenaKey]map[string]struct{}
}

func NewArena() *Arena {
	return &Arena{booked: make(map[arenaKey]map[string]struct{})}
}

func keyOf(doctor primitive.ObjectID, date time.Time) arenaKey {
	return arenaKey{doctor: doctor, date: date.Format(dateKeyLayout)}
}

// Book claims start for doctor on date. It returns false if it was already taken.
func (a *Arena) Book(doctor primitive.ObjectID, date time.Time, start string) bool {
	k := keyOf(doctor, date)
	times, ok := a.booked[k]
	if !ok {
		times = make(map[string]struct{})
		a.booked[k] = times
	}
	if _, taken := times[start]; taken {
		return false
	}
	times[start] = struct{}{}
	return true
}

func (a *Arena) IsBooked(doctor primitive.ObjectID, date time.Time, start string) bool {
	_, taken := a.booked[keyOf(doctor, date)][start]
	return taken
}

// Booked returns a sorted copy of the start times taken for doctor on date.
func (a *Arena) Booked(doctor primitive.ObjectID, date time.Time) []string {
	times := a.booked[keyOf(doctor, date)]
	out := make([]string, 0, len(times))
	for t := range times {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of booked slots across all doctors and dates.
func (a *Arena) Len() int {
	n := 0
	for _, times := range a.booked {
		n += len(times)
	}
	return n
}

// Scheduler draws appointment dates and slots within the current calendar year.
type Scheduler struct {
	src   *random.Source
	now   time.Time
	arena *Arena
}

func NewScheduler(src *random.Source, now time.Time, arena *Arena) *Scheduler {
	return &Scheduler{src: src, now: now, arena: arena}
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// PickDate returns midnight of a day in the current year: a past day with
// probability 0.4, otherwise today or later.
func (s *Scheduler) PickDate() time.Time {
	year, month, today := s.now.Date()
	loc := s.now.Location()

	var m time.Month
	var day int
	if random.Chance(s.src, PastDateChance) {
		m = time.Month(random.Between(s.src, 1, int(month)))
		switch {
		case m != month:
			day = random.Between(s.src, 1, daysIn(year, m, loc))
		case today > 1:
			day = random.Between(s.src, 1, today-1)
		default:
			day = 1
		}
	} else {
		m = time.Month(random.Between(s.src, int(month), 12))
		first := 1
		if m == month {
			first = today
		}
		day = random.Between(s.src, first, daysIn(year, m, loc))
	}
	return time.Date(year, m, day, 0, 0, 0, 0, loc)
}

// PickSlot returns a quarter-hour start between 08:00 and 16:45 and an end
// 30, 45 or 60 minutes later.
func (s *Scheduler) PickSlot() model.TimeSlot {
	hour := random.Between(s.src, FirstStartHour, LastStartHour)
	minute := random.Pick(s.src, slotMinutes)
	end := hour*60 + minute + random.Pick(s.src, slotDurations)

	return model.TimeSlot{
		Start: fmt.Sprintf("%02d:%02d", hour, minute),
		End:   fmt.Sprintf("%02d:%02d", end/60, end%60),
	}
}

// Schedule picks a date for doctor and books the first free slot found in
// MaxSlotAttempts draws.
func (s *Scheduler) Schedule(doctor primitive.ObjectID) (time.Time, model.TimeSlot, error) {
	date := s.PickDate()
	for attempt := 0; attempt < MaxSlotAttempts; attempt++ {
		slot := s.PickSlot()
		if s.arena.Book(doctor, date, slot.Start) {
			return date, slot, nil
		}
	}
	return date, model.TimeSlot{}, ErrNoFreeSlot
}
