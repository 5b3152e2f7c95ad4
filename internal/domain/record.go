// Package domain contains the core data types for the service logbook.
// This package has zero external dependencies and is imported by every other
// internal package (repo, persist, store, service, handler).
package domain

// Slot keys under which each store persists its full record list.
const (
	DraftsSlot      = "drafts"
	ServiceLogsSlot = "serviceLogs"
)

// ServiceType classifies a service event.
type ServiceType string

const (
	ServicePlanned   ServiceType = "planned"
	ServiceUnplanned ServiceType = "unplanned"
	ServiceEmergency ServiceType = "emergency"
)

// ServiceTypes lists the fixed set of service types in display order.
var ServiceTypes = []ServiceType{ServicePlanned, ServiceUnplanned, ServiceEmergency}

// StatusColor returns the badge colour the table view shows for t.
// Unknown types are gray.
func (t ServiceType) StatusColor() string {
	switch t {
	case ServicePlanned:
		return "green"
	case ServiceUnplanned:
		return "yellow"
	case ServiceEmergency:
		return "red"
	default:
		return "gray"
	}
}

// Record is one vehicle service log entry. Drafts and service logs share this
// shape. The JSON field names are the persisted slot format and must not change.
//
// StartDate and EndDate are ISO dates ("2006-01-02") kept as strings so that
// whatever the caller stored round-trips untouched.
type Record struct {
	ID                 string      `json:"id" yaml:"id"`
	ProviderID         string      `json:"providerId" yaml:"providerId"`
	ServiceOrder       string      `json:"serviceOrder" yaml:"serviceOrder"`
	TruckID            string      `json:"truckId" yaml:"truckId"`
	Odometer           float64     `json:"odometer" yaml:"odometer"`
	EngineHours        float64     `json:"engineHours" yaml:"engineHours"`
	StartDate          string      `json:"startDate" yaml:"startDate"`
	EndDate            string      `json:"endDate" yaml:"endDate"`
	Type               ServiceType `json:"type" yaml:"type"`
	ServiceDescription string      `json:"serviceDescription" yaml:"serviceDescription"`
}

// RecordPatch is a partial update addressed by ID.
// Nil fields are left untouched when the patch is applied.
type RecordPatch struct {
	ID                 string       `json:"id"`
	ProviderID         *string      `json:"providerId,omitempty"`
	ServiceOrder       *string      `json:"serviceOrder,omitempty"`
	TruckID            *string      `json:"truckId,omitempty"`
	Odometer           *float64     `json:"odometer,omitempty"`
	EngineHours        *float64     `json:"engineHours,omitempty"`
	StartDate          *string      `json:"startDate,omitempty"`
	EndDate            *string      `json:"endDate,omitempty"`
	Type               *ServiceType `json:"type,omitempty"`
	ServiceDescription *string      `json:"serviceDescription,omitempty"`
}

// Apply merges the non-nil fields of p over r and returns the result.
// The ID of r is never changed.
func (p RecordPatch) Apply(r Record) Record {
	if p.ProviderID != nil {
		r.ProviderID = *p.ProviderID
	}
	if p.ServiceOrder != nil {
		r.ServiceOrder = *p.ServiceOrder
	}
	if p.TruckID != nil {
		r.TruckID = *p.TruckID
	}
	if p.Odometer != nil {
		r.Odometer = *p.Odometer
	}
	if p.EngineHours != nil {
		r.EngineHours = *p.EngineHours
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.ServiceDescription != nil {
		r.ServiceDescription = *p.ServiceDescription
	}
	return r
}

// PatchFrom builds a patch that overwrites every field of the record with
// the given ID. Used by edit flows that submit the whole form.
func PatchFrom(r Record) RecordPatch {
	return RecordPatch{
		ID:                 r.ID,
		ProviderID:         &r.ProviderID,
		ServiceOrder:       &r.ServiceOrder,
		TruckID:            &r.TruckID,
		Odometer:           &r.Odometer,
		EngineHours:        &r.EngineHours,
		StartDate:          &r.StartDate,
		EndDate:            &r.EndDate,
		Type:               &r.Type,
		ServiceDescription: &r.ServiceDescription,
	}
}
