package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by form inputs and records.
const DateLayout = "2006-01-02"

// Status messages shown by the compose form.
const (
	StatusSaved      = "Draft Saved"
	StatusIncomplete = "Please fill in all fields"
	StatusDeleted    = "Draft Deleted"
	StatusNoCurrent  = "No draft to delete."
	StatusCleared    = "All drafts cleared."
)

// ServiceLogForm is the raw state of the compose form. Every field is the
// string the user typed; numbers are parsed only on submit.
type ServiceLogForm struct {
	ProviderID         string `json:"providerId"`
	ServiceOrder       string `json:"serviceOrder"`
	TruckID            string `json:"truckId"`
	Odometer           string `json:"odometer"`
	EngineHours        string `json:"engineHours"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Type               string `json:"type"`
	ServiceDescription string `json:"serviceDescription"`
}

// Normalize fills EndDate with the day after StartDate when EndDate is blank
// and StartDate is a valid date.
func (f ServiceLogForm) Normalize() ServiceLogForm {
	if strings.TrimSpace(f.EndDate) != "" {
		return f
	}
	if end, ok := NextDay(f.StartDate); ok {
		f.EndDate = end
	}
	return f
}

// Record converts the form into a Record. Unparseable numbers become zero,
// which Validate rejects.
func (f ServiceLogForm) Record() Record {
	return Record{
		ProviderID:         f.ProviderID,
		ServiceOrder:       f.ServiceOrder,
		TruckID:            f.TruckID,
		Odometer:           parseNumber(f.Odometer),
		EngineHours:        parseNumber(f.EngineHours),
		StartDate:          f.StartDate,
		EndDate:            f.EndDate,
		Type:               ServiceType(f.Type),
		ServiceDescription: f.ServiceDescription,
	}
}

// Validate applies the form rules to the submitted values.
func (f ServiceLogForm) Validate() error {
	return ValidateRecord(f.Record())
}

// ValidateRecord enforces the rules a record must satisfy before it may be created.
//   - ProviderID, ServiceOrder, TruckID, StartDate, EndDate, Type and
//     ServiceDescription must be non-empty after trimming.
//   - Odometer and EngineHours must be greater than zero.
//
// The returned error wraps ErrValidation and names every failing field.
func ValidateRecord(r Record) error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"providerId", r.ProviderID},
		{"serviceOrder", r.ServiceOrder},
		{"truckId", r.TruckID},
		{"startDate", r.StartDate},
		{"endDate", r.EndDate},
		{"type", string(r.Type)},
		{"serviceDescription", r.ServiceDescription},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !positive(r.Odometer) {
		missing = append(missing, "odometer")
	}
	if !positive(r.EngineHours) {
		missing = append(missing, "engineHours")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrValidation, StatusIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// NextDay returns the calendar day after date, formatted with DateLayout.
func NextDay(date string) (string, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, 1).Format(DateLayout), true
}

// positive reports whether x is a finite number above zero.
// NaN and the infinities cannot be stored as JSON.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// parseNumber converts user input to a float. Blank input is zero, as is
// anything that does not parse to a finite number.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
