package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/servicelog/internal/domain"
)

func validForm() domain.ServiceLogForm {
	return domain.ServiceLogForm{
		ProviderID:         "ABC123",
		ServiceOrder:       "SO-1",
		TruckID:            "TRK-9",
		Odometer:           "1",
		EngineHours:        "12.5",
		StartDate:          "2024-03-01",
		EndDate:            "2024-03-02",
		Type:               "planned",
		ServiceDescription: "oil change",
	}
}

func TestServiceLogForm_Validate_OK(t *testing.T) {
	require.NoError(t, validForm().Validate())
}

func TestServiceLogForm_Validate_Odometer(t *testing.T) {
	for _, odometer := range []string{"0", "", "   ", "-4", "abc", "Inf", "-Inf", "NaN", "1e400"} {
		t.Run(odometer, func(t *testing.T) {
			f := validForm()
			f.Odometer = odometer

			err := f.Validate()

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "odometer")
		})
	}
}

func TestValidateRecord_NonFiniteNumbers(t *testing.T) {
	for name, v := range map[string]float64{
		"inf": math.Inf(1),
		"nan": math.NaN(),
	} {
		t.Run(name, func(t *testing.T) {
			r := validForm().Record()
			r.Odometer = v
			r.EngineHours = v

			err := domain.ValidateRecord(r)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "odometer, engineHours")
		})
	}
}

func TestServiceLogForm_Validate_WhitespaceOnly(t *testing.T) {
	f := validForm()
	f.ProviderID = "   "
	f.TruckID = "\t"

	err := f.Validate()

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, domain.StatusIncomplete)
	assert.ErrorContains(t, err, "providerId, truckId")
}

func TestServiceLogForm_Validate_EngineHours(t *testing.T) {
	f := validForm()
	f.EngineHours = "0"

	assert.ErrorIs(t, f.Validate(), domain.ErrValidation)
}

func TestServiceLogForm_Normalize_DerivesEndDate(t *testing.T) {
	f := validForm()
	f.StartDate = "2024-02-28"
	f.EndDate = ""

	got := f.Normalize()

	assert.Equal(t, "2024-02-29", got.EndDate)
}

func TestServiceLogForm_Normalize_KeepsExplicitEndDate(t *testing.T) {
	f := validForm()

	assert.Equal(t, "2024-03-02", f.Normalize().EndDate)
}

func TestServiceLogForm_Normalize_InvalidStartDate(t *testing.T) {
	f := validForm()
	f.StartDate = "not a date"
	f.EndDate = ""

	got := f.Normalize()

	assert.Empty(t, got.EndDate)
	assert.ErrorIs(t, got.Validate(), domain.ErrValidation)
}

func TestServiceLogForm_Record(t *testing.T) {
	r := validForm().Record()

	assert.Equal(t, 1.0, r.Odometer)
	assert.Equal(t, 12.5, r.EngineHours)
	assert.Equal(t, domain.ServicePlanned, r.Type)
	assert.Empty(t, r.ID)
}
