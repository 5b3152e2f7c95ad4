package persist_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/persist"
	"github.com/pkordes/servicelog/internal/repo"
)

// failingSlots is a SlotRepo whose every call fails.
type failingSlots struct{ err error }

func (f failingSlots) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingSlots) Put(context.Context, string, string) error   { return f.err }

func sampleRecords() []domain.Record {
	return []domain.Record{
		{
			ID:                 "01890a5d-ac96-774b-bcce-b302099a8057",
			ProviderID:         "ABC123",
			ServiceOrder:       "SO-1001",
			TruckID:            "TRK-7",
			Odometer:           120450,
			EngineHours:        3420.5,
			StartDate:          "2024-03-01",
			EndDate:            "2024-03-02",
			Type:               domain.ServicePlanned,
			ServiceDescription: "Oil and filter change",
		},
		{
			ID:                 "2",
			ProviderID:         "xyz999",
			ServiceOrder:       "SO-1002",
			TruckID:            "TRK-8",
			Odometer:           1,
			EngineHours:        1,
			StartDate:          "2024-01-01",
			EndDate:            "2024-01-02",
			Type:               domain.ServiceEmergency,
			ServiceDescription: "Brake failure",
		},
	}
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestAdapter_RoundTrip(t *testing.T) {
	a := persist.NewAdapter(repo.NewMemorySlotRepo(), nil)
	ctx := context.Background()
	records := sampleRecords()

	require.NoError(t, a.Save(ctx, domain.DraftsSlot, records))

	assert.Equal(t, records, a.Load(ctx, domain.DraftsSlot))
}

func TestAdapter_Load_AbsentSlot(t *testing.T) {
	log, buf := newLogger()
	a := persist.NewAdapter(repo.NewMemorySlotRepo(), log)

	got := a.Load(context.Background(), domain.ServiceLogsSlot)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, buf.String(), "an absent slot is not worth a warning")
}

func TestAdapter_Load_Malformed(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":     "{not json",
		"object":      `{"id":"1"}`,
		"wrong types": `[{"odometer":"many"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			slots := repo.NewMemorySlotRepo()
			require.NoError(t, slots.Put(context.Background(), domain.DraftsSlot, raw))
			log, buf := newLogger()

			got := persist.NewAdapter(slots, log).Load(context.Background(), domain.DraftsSlot)

			assert.Empty(t, got)
			assert.Contains(t, buf.String(), "slot malformed")
		})
	}
}

func TestAdapter_Load_Null(t *testing.T) {
	slots := repo.NewMemorySlotRepo()
	require.NoError(t, slots.Put(context.Background(), domain.DraftsSlot, "null"))

	got := persist.NewAdapter(slots, nil).Load(context.Background(), domain.DraftsSlot)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdapter_Load_BackendError(t *testing.T) {
	log, buf := newLogger()
	a := persist.NewAdapter(failingSlots{err: errors.New("disk on fire")}, log)

	got := a.Load(context.Background(), domain.DraftsSlot)

	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestAdapter_Save_Empty(t *testing.T) {
	slots := repo.NewMemorySlotRepo()
	a := persist.NewAdapter(slots, nil)

	require.NoError(t, a.Save(context.Background(), domain.DraftsSlot, nil))

	raw, err := slots.Get(context.Background(), domain.DraftsSlot)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestAdapter_Save_BackendError(t *testing.T) {
	a := persist.NewAdapter(failingSlots{err: errors.New("read-only")}, nil)

	err := a.Save(context.Background(), domain.DraftsSlot, sampleRecords())

	assert.ErrorContains(t, err, "read-only")
}

// TestEncode_SlotFormat pins the persisted wire format. Field names are shared
// with existing browser-stored data and must not change.
//
// To regenerate the golden file, run:
//
//	go test ./internal/persist -update
func TestEncode_SlotFormat(t *testing.T) {
	raw, err := persist.Encode(sampleRecords())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "drafts_slot", []byte(raw))
}
