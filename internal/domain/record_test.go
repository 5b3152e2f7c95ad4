package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/servicelog/internal/domain"
)

func TestRecordPatch_Apply_PreservesUnsetFields(t *testing.T) {
	original := domain.Record{
		ID:           "1",
		ProviderID:   "P1",
		ServiceOrder: "SO-1",
		TruckID:      "T1",
		Odometer:     100,
		EngineHours:  5,
		StartDate:    "2024-01-01",
		Type:         domain.ServicePlanned,
	}
	odometer := 250.0
	emergency := domain.ServiceEmergency

	got := domain.RecordPatch{ID: "1", Odometer: &odometer, Type: &emergency}.Apply(original)

	want := original
	want.Odometer = 250
	want.Type = domain.ServiceEmergency
	assert.Equal(t, want, got)
}

func TestRecordPatch_Apply_NeverChangesID(t *testing.T) {
	got := domain.RecordPatch{ID: "other"}.Apply(domain.Record{ID: "1"})

	assert.Equal(t, "1", got.ID)
}

func TestPatchFrom_OverwritesEverything(t *testing.T) {
	replacement := domain.Record{ID: "1", ProviderID: "P2", TruckID: "T2", Odometer: 7}

	got := domain.PatchFrom(replacement).Apply(domain.Record{ID: "1", ProviderID: "P1", ServiceOrder: "SO"})

	assert.Equal(t, replacement, got)
}

func TestServiceType_StatusColor(t *testing.T) {
	cases := map[domain.ServiceType]string{
		domain.ServicePlanned:   "green",
		domain.ServiceUnplanned: "yellow",
		domain.ServiceEmergency: "red",
		"":                      "gray",
		"scheduled":             "gray",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.StatusColor(), "type %q", typ)
	}
}

func TestPaginationParams_Window(t *testing.T) {
	page, limit := 2, 2
	p := domain.NewPaginationParams(&page, &limit)

	start, end := p.Window(3)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)

	start, end = p.Window(1)
	assert.Equal(t, 1, start)
	assert.Equal(t, 1, end)
}

func TestPaginationParams_Window_HugePage(t *testing.T) {
	page, limit := 1<<62, 4
	p := domain.NewPaginationParams(&page, &limit)

	start, end := p.Window(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	page = math.MaxInt
	p = domain.NewPaginationParams(&page, &limit)
	start, end = p.Window(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, math.MaxInt, p.Offset())
}

func TestNewPaginationParams_Defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)

	big := 500
	assert.Equal(t, 100, domain.NewPaginationParams(nil, &big).Limit)
}

func TestRecord_CSVRow(t *testing.T) {
	r := domain.Record{
		ID:                 "1",
		ProviderID:         "P1",
		ServiceOrder:       "SO-1",
		TruckID:            "T1",
		Odometer:           1250.5,
		EngineHours:        40,
		StartDate:          "2024-01-01",
		EndDate:            "2024-01-02",
		Type:               domain.ServiceUnplanned,
		ServiceDescription: "Tow",
	}

	row := r.CSVRow()

	assert.Len(t, row, len(domain.CSVHeaders))
	assert.Equal(t, []string{"1", "P1", "SO-1", "T1", "1250.5", "40", "2024-01-01", "2024-01-02", "unplanned", "Tow"}, row)
}
