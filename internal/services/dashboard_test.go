package services

import (
	"testing"
	"time"

	"navexa/internal/core"
)

func trip(date core.Date, vehicleID string, income, fuel, driverPay, advance int64) core.Trip {
	t := core.Trip{
		Date:                date,
		VehicleID:           vehicleID,
		TotalAmount:         core.Money{Cents: income * 100},
		ExpenseFuel:         core.Money{Cents: fuel * 100},
		DriverPaymentAmount: core.Money{Cents: driverPay * 100},
		DriverAdvance:       core.Money{Cents: advance * 100},
	}
	t.Recalculate()
	return t
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	vehicles := []core.Vehicle{
		{ID: "v1", RegistrationNumber: "KA 01"},
		{ID: "v2", RegistrationNumber: "KA 02"},
	}
	trips := []core.Trip{
		trip(core.NewDate(2025, 3, 15), "v1", 500, 50, 100, 100), // today, paid
		trip(core.NewDate(2025, 3, 10), "v2", 300, 0, 100, 40),   // this month, pending 60
		trip(core.NewDate(2025, 1, 2), "v1", 1000, 0, 0, 0),      // older, pending (unagreed)
	}

	d := BuildDashboard(trips, vehicles, now)

	if d.TripsToday != 1 || d.TripsThisMonth != 2 {
		t.Fatalf("counts = %d today / %d month", d.TripsToday, d.TripsThisMonth)
	}
	if d.MonthlyIncome.Cents != 80000 {
		t.Fatalf("income = %v", d.MonthlyIncome)
	}
	if d.MonthlyIncome.Sub(d.MonthlyExpense) != d.MonthlyProfit {
		t.Fatalf("profit inconsistent: %v - %v != %v",
			d.MonthlyIncome, d.MonthlyExpense, d.MonthlyProfit)
	}
	if d.PendingCount != 2 || d.PendingTotal.Cents != 6000 {
		t.Fatalf("pending = %v over %d", d.PendingTotal, d.PendingCount)
	}
	// v1 all-time: (500-150) + 1000 = 1350; v2: 300-100 = 200.
	if !d.HasBestVehicle || d.BestVehicle.Vehicle.ID != "v1" || d.BestVehicle.Profit.Cents != 135000 {
		t.Fatalf("best vehicle = %+v", d.BestVehicle)
	}
	if len(d.DailyBreakdown) != 2 {
		t.Fatalf("breakdown buckets = %d", len(d.DailyBreakdown))
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil, nil, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if d.HasBestVehicle {
		t.Fatal("expected no best vehicle with empty fleet")
	}
	if len(d.DailyBreakdown) != 0 || d.PendingCount != 0 {
		t.Fatalf("expected empty dashboard, got %+v", d)
	}
}

func TestVehicleAlerts(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	vehicles := []core.Vehicle{
		{
			ID:              "v1",
			InsuranceExpiry: core.NewDate(2025, 3, 1),  // expired
			PollutionExpiry: core.NewDate(2025, 3, 30), // due soon
			NextServiceDue:  core.NewDate(2025, 8, 1),  // fine
		},
		{ID: "v2"}, // no dates set
	}

	alerts := VehicleAlerts(vehicles, now)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2: %+v", len(alerts), alerts)
	}
	if alerts[0].Document != DocInsurance || alerts[0].State != core.ExpiryExpired {
		t.Fatalf("alert 0 = %+v", alerts[0])
	}
	if alerts[1].Document != DocPollution || alerts[1].State != core.ExpiryDueSoon {
		t.Fatalf("alert 1 = %+v", alerts[1])
	}
}
