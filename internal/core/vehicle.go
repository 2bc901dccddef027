package core

import (
	"math"
	"time"
)

// Vehicle is one fleet asset with its maintenance and document dates.
// All dates are optional; the zero Date marks an unset one.
type Vehicle struct {
	ID                 string `json:"id"`
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`

	LastServiceDate        Date `json:"lastServiceDate"`
	NextServiceDue         Date `json:"nextServiceDue"`
	OilChangeDate          Date `json:"oilChangeDate"`
	TyreChangeDate         Date `json:"tyreChangeDate"`
	BrakeServiceDate       Date `json:"brakeServiceDate"`
	BatteryReplacementDate Date `json:"batteryReplacementDate"`
	InsuranceExpiry        Date `json:"insuranceExpiry"`
	PollutionExpiry        Date `json:"pollutionExpiry"`
}

// ExpiryState classifies a maintenance/document date against a reference
// instant.
type ExpiryState string

const (
	ExpiryNone    ExpiryState = "none" // date not set
	ExpiryOK      ExpiryState = "ok"
	ExpiryDueSoon ExpiryState = "due_soon"
	ExpiryExpired ExpiryState = "expired"
)

// expirySoonDays is the warning window before a document date.
const expirySoonDays = 30

// ExpiryStatus classifies a document date: Expired when past, DueSoon
// within the warning window, OK otherwise, None when unset.
func ExpiryStatus(d Date, now time.Time) ExpiryState {
	if d.IsZero() {
		return ExpiryNone
	}
	diff := d.Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	switch {
	case days < 0:
		return ExpiryExpired
	case days < expirySoonDays:
		return ExpiryDueSoon
	default:
		return ExpiryOK
	}
}
