package purge

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jwalitptl/healthbridge-seeder/internal/report"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

var mainMenu = []string{
	"1. Delete test users",
	"2. Delete medications",
	"3. Delete appointments",
	"4. Delete patient history records",
	"5. Delete related data (messages, notifications)",
	"6. Delete ALL data (DANGEROUS)",
	"7. Show current collection counts",
	"0. Exit",
}

var userMenu = []string{
	"1. All test users",
	"2. Only patients",
	"3. Only doctors",
	"4. Only international doctors",
	"5. Only international patients",
	"6. Only nurses",
	"0. Skip user deletion",
}

// Menu is the interactive cleanup loop.
type Menu struct {
	store      repository.Store
	asker      Challenger
	controller *Controller
	out        io.Writer
	logger     *logger.Logger
}

func NewMenu(store repository.Store, asker Challenger, out io.Writer, log *logger.Logger, m *metrics.Metrics) *Menu {
	return &Menu{
		store:      store,
		asker:      asker,
		controller: NewController(store, Challenges(asker), log, m),
		out:        out,
		logger:     log,
	}
}

func (m *Menu) Controller() *Controller {
	return m.controller
}

func (m *Menu) print(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(m.out, l)
	}
}

func (m *Menu) showCounts(ctx context.Context) error {
	counts, err := report.Counts(ctx, m.store)
	if err != nil {
		return err
	}
	m.print("", "Current collection counts:", "--------------------------")
	for _, c := range counts {
		fmt.Fprintf(m.out, "%s: %d documents\n", report.Label(c.Collection), c.Count)
	}
	m.print("")
	return nil
}

// Run loops until the operator picks 0 or input ends. An empty answer ends
// the loop so a closed stdin cannot spin forever.
func (m *Menu) Run(ctx context.Context) error {
	m.print("", "=================================================",
		"HealthBridge Test Data Cleanup Utility",
		"=================================================")
	if err := m.showCounts(ctx); err != nil {
		return err
	}

	for {
		m.print("", "What would you like to do?")
		m.print(mainMenu...)

		var err error
		switch choice := strings.TrimSpace(m.asker.Ask("\nEnter your choice (0-7): ")); choice {
		case "0", "":
			m.print("Exiting cleanup utility.", "", "Final collection counts after cleanup:")
			return m.showCounts(ctx)
		case "1":
			err = m.users(ctx)
		case "2":
			err = m.collection(ctx, Medications, repository.CollectionMedications)
		case "3":
			err = m.collection(ctx, Appointments, repository.CollectionAppointments)
		case "4":
			err = m.collection(ctx, PatientHistories, repository.CollectionPatientHistories)
		case "5":
			err = m.related(ctx)
		case "6":
			m.print("", "WARNING: This will delete ALL data from ALL collections!",
				"This action is irreversible. Admin users are kept.")
			err = m.run(ctx, AllData)
		case "7":
			err = m.showCounts(ctx)
		default:
			m.print("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) run(ctx context.Context, scope Scope) error {
	out, err := m.controller.Run(ctx, scope)
	if err != nil {
		return err
	}
	if out.Cancelled {
		m.print("Deletion cancelled.")
		return nil
	}
	for _, t := range scope.Targets {
		fmt.Fprintf(m.out, "Deleted %d documents from %s\n", out.Deleted[t.Collection], t.Collection)
	}
	return nil
}

func (m *Menu) users(ctx context.Context) error {
	m.print("", "Select which user types to delete:")
	m.print(userMenu...)

	choice := strings.TrimSpace(m.asker.Ask("Enter your choice (0-6): "))
	if choice == "0" {
		m.print("Skipping user deletion.")
		return nil
	}
	var idx int
	if _, err := fmt.Sscan(choice, &idx); err != nil || idx < 1 || idx > len(UserScopes) {
		m.print("Invalid choice. Skipping user deletion.")
		return nil
	}
	return m.run(ctx, UserScopes[idx-1])
}

// collection runs a single-collection scope unless the collection is already empty.
func (m *Menu) collection(ctx context.Context, scope Scope, name string) error {
	n, err := m.store.Raw(name).CountDocuments(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if n == 0 {
		fmt.Fprintf(m.out, "No %s found in the database.\n", strings.ToLower(report.Label(name)))
		return nil
	}
	fmt.Fprintf(m.out, "%s holds %d documents.\n", report.Label(name), n)
	return m.run(ctx, scope)
}

func (m *Menu) related(ctx context.Context) error {
	var total int64
	for _, name := range []string{repository.CollectionMessages, repository.CollectionNotifications} {
		n, err := m.store.Raw(name).CountDocuments(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		if n > 0 {
			fmt.Fprintf(m.out, "- %s: %d documents\n", report.Label(name), n)
		}
		total += n
	}
	if total == 0 {
		m.print("No related data found.")
		return nil
	}
	return m.run(ctx, RelatedData)
}
