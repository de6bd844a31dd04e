// Package report summarizes what a run wrote and what the database holds.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
)

// TopDiagnoses is how many diagnoses a history summary lists.
const TopDiagnoses = 5

var collectionLabels = map[string]string{
	repository.CollectionUsers:            "Users",
	repository.CollectionMedications:      "Medications",
	repository.CollectionAppointments:     "Appointments",
	repository.CollectionPatientHistories: "Patient Histories",
	repository.CollectionMessages:         "Messages",
	repository.CollectionNotifications:    "Notifications",
}

// Label returns the display name of a collection.
func Label(collection string) string {
	if l, ok := collectionLabels[collection]; ok {
		return l
	}
	return collection
}

type CollectionCount struct {
	Collection string
	Count      int64
}

// Counts returns the document count of every known collection, in display order.
func Counts(ctx context.Context, store repository.Store) ([]CollectionCount, error) {
	out := make([]CollectionCount, 0, len(repository.AllCollections))
	for _, name := range repository.AllCollections {
		n, err := store.Raw(name).CountDocuments(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		out = append(out, CollectionCount{Collection: name, Count: n})
	}
	return out, nil
}

func LogCounts(log *logger.Logger, counts []CollectionCount) {
	for _, c := range counts {
		log.Info("collection count", "collection", Label(c.Collection), "documents", c.Count)
	}
}

// Share is one bucket of a distribution.
type Share struct {
	Name    string
	Count   int
	Percent float64
}

func shares(counts map[string]int, total int) []Share {
	out := make([]Share, 0, len(counts))
	for name, n := range counts {
		out = append(out, Share{Name: name, Count: n, Percent: percent(n, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

type AppointmentSummary struct {
	Total    int
	Statuses []Share
	Virtual  int
	InPerson int
}

func Appointments(apps []model.Appointment) AppointmentSummary {
	byStatus := make(map[string]int)
	s := AppointmentSummary{Total: len(apps)}
	for _, ap := range apps {
		byStatus[string(ap.Status)]++
		if ap.IsVirtual {
			s.Virtual++
		} else {
			s.InPerson++
		}
	}
	s.Statuses = shares(byStatus, len(apps))
	return s
}

func (s AppointmentSummary) Log(log *logger.Logger) {
	log.Info("appointments added", "count", s.Total)
	for _, st := range s.Statuses {
		log.Info("status distribution", "status", st.Name, "count", st.Count, "percent", fmt.Sprintf("%.1f%%", st.Percent))
	}
	log.Info("appointment types", "virtual", s.Virtual, "in_person", s.InPerson)
}

type HistorySummary struct {
	Records          int
	Prescriptions    int
	AvgPrescriptions float64
	TopDiagnoses     []Share
}

func Histories(records []model.PatientHistory) HistorySummary {
	byDiagnosis := make(map[string]int)
	s := HistorySummary{Records: len(records)}
	for _, h := range records {
		s.Prescriptions += len(h.Prescriptions)
		byDiagnosis[h.Diagnosis]++
	}
	if s.Records > 0 {
		s.AvgPrescriptions = float64(s.Prescriptions) / float64(s.Records)
	}
	s.TopDiagnoses = shares(byDiagnosis, len(records))
	if len(s.TopDiagnoses) > TopDiagnoses {
		s.TopDiagnoses = s.TopDiagnoses[:TopDiagnoses]
	}
	return s
}

func (s HistorySummary) Log(log *logger.Logger) {
	log.Info("patient history records added", "count", s.Records)
	log.Info("prescriptions added", "total", s.Prescriptions, "average_per_record", fmt.Sprintf("%.1f", s.AvgPrescriptions))
	for _, d := range s.TopDiagnoses {
		log.Info("top diagnosis", "diagnosis", d.Name, "count", d.Count, "percent", fmt.Sprintf("%.1f%%", d.Percent))
	}
}
