package services

import (
	"time"

	"navexa/internal/core"
)

// VehicleAlert flags one vehicle document that is expired or due soon.
type VehicleAlert struct {
	Vehicle  core.Vehicle
	Document string
	Due      core.Date
	State    core.ExpiryState
}

// Documents surfaced on the vehicle overview.
const (
	DocInsurance   = "Insurance"
	DocPollution   = "Pollution"
	DocNextService = "Next Service"
)

// VehicleAlerts scans every vehicle's surfaced documents and returns the
// expired and due-soon ones, in vehicle order. Unset dates never alert.
func VehicleAlerts(vehicles []core.Vehicle, now time.Time) []VehicleAlert {
	var out []VehicleAlert
	for _, v := range vehicles {
		docs := []struct {
			name string
			date core.Date
		}{
			{DocInsurance, v.InsuranceExpiry},
			{DocPollution, v.PollutionExpiry},
			{DocNextService, v.NextServiceDue},
		}
		for _, doc := range docs {
			state := core.ExpiryStatus(doc.date, now)
			if state == core.ExpiryExpired || state == core.ExpiryDueSoon {
				out = append(out, VehicleAlert{
					Vehicle:  v,
					Document: doc.name,
					Due:      doc.date,
					State:    state,
				})
			}
		}
	}
	return out
}
