package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnPrivateRegistry(t *testing.T) {
	m := New("seeder")
	m.RecordsInserted.WithLabelValues("appointment").Add(3)
	m.RecordsSkipped.WithLabelValues("appointment", "no_free_slot").Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RecordsInserted.WithLabelValues("appointment")))

	count, err := testutil.GatherAndCount(m.Registry(), "seeder_records_skipped_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A second instance must not panic on duplicate registration.
	assert.NotPanics(t, func() { New("seeder") })
}

func TestObserveDatabase(t *testing.T) {
	m := New("seeder")
	m.ObserveDatabase("insert_many", time.Now(), nil)
	m.ObserveDatabase("insert_many", time.Now(), errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("insert_many", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("insert_many", "error")))
}
