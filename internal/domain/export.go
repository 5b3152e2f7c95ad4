package domain

import "strconv"

// CSVHeaders are the column names of a flat record export, in column order.
// They match the JSON field names of Record.
var CSVHeaders = []string{
	"id", "providerId", "serviceOrder", "truckId", "odometer",
	"engineHours", "startDate", "endDate", "type", "serviceDescription",
}

// CSVRow encodes r as one export row aligned with CSVHeaders.
// Numbers use the shortest representation that round-trips.
func (r Record) CSVRow() []string {
	return []string{
		r.ID,
		r.ProviderID,
		r.ServiceOrder,
		r.TruckID,
		strconv.FormatFloat(r.Odometer, 'f', -1, 64),
		strconv.FormatFloat(r.EngineHours, 'f', -1, 64),
		r.StartDate,
		r.EndDate,
		string(r.Type),
		r.ServiceDescription,
	}
}
