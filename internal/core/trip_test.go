package core

import (
	"encoding/json"
	"strings"
	"testing"
)

// Stored data written by earlier versions must keep decoding: field names,
// date strings, and plain-number amounts are part of the storage contract.
func TestTripJSONCompatibility(t *testing.T) {
	raw := `{
		"id": "t1",
		"date": "2025-03-05",
		"startTime": "09:00",
		"endTime": "18:00",
		"vehicleId": "v1",
		"driverName": "John",
		"customerName": "Acme",
		"pickupLocation": "Airport",
		"dropLocation": "Downtown",
		"odometerStart": 1000,
		"odometerEnd": 1250,
		"totalAmount": 500,
		"expenseFuel": 50.25,
		"expenseToll": 10,
		"expenseParking": 5,
		"expenseOther": 0,
		"driverPaymentAmount": 100,
		"driverAdvance": 100,
		"driverPaymentMode": "UPI",
		"notes": "",
		"createdAt": 1741161600000
	}`

	var trip Trip
	if err := json.Unmarshal([]byte(raw), &trip); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !trip.Date.Equal(NewDate(2025, 3, 5).Time) {
		t.Fatalf("date = %v", trip.Date)
	}
	if trip.TotalAmount.Cents != 50000 || trip.ExpenseFuel.Cents != 5025 {
		t.Fatalf("amounts = %v / %v", trip.TotalAmount, trip.ExpenseFuel)
	}
	if trip.DriverPaymentMode != ModeUPI {
		t.Fatalf("mode = %v", trip.DriverPaymentMode)
	}

	trip.Recalculate()
	out, err := json.Marshal(trip)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{
		`"date":"2025-03-05"`,
		`"totalAmount":500`,
		`"expenseFuel":50.25`,
		`"totalExpense":165.25`,
		`"driverPaymentStatus":"Paid"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("marshaled trip missing %s:\n%s", want, out)
		}
	}
}

func TestDateUnmarshalLenient(t *testing.T) {
	cases := []struct {
		in     string
		isZero bool
	}{
		{`"2025-03-05"`, false},
		{`""`, true},
		{`"not-a-date"`, true},
		{`null`, true},
	}
	for _, tc := range cases {
		var d Date
		if err := d.UnmarshalJSON([]byte(tc.in)); err != nil {
			t.Fatalf("%s: unexpected error %v", tc.in, err)
		}
		if d.IsZero() != tc.isZero {
			t.Fatalf("%s: isZero = %v, want %v", tc.in, d.IsZero(), tc.isZero)
		}
	}
}
