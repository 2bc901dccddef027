// Package services builds the read-side reports over the core engines:
// the dashboard snapshot and vehicle document alerts.
package services

import (
	"time"

	"navexa/internal/core"
)

// Dashboard is the aggregate bundle the dashboard view presents, computed
// from a single snapshot of the collections and a reference instant.
type Dashboard struct {
	Date time.Time

	TripsToday     int
	TripsThisMonth int

	MonthlyIncome  core.Money
	MonthlyExpense core.Money
	MonthlyProfit  core.Money

	PendingTotal core.Money
	PendingCount int

	BestVehicle    core.VehicleProfit
	HasBestVehicle bool

	DailyBreakdown []core.DayTotals
}

// BuildDashboard computes every dashboard metric. Pure: now is supplied by
// the caller and the collections are read-only snapshots.
func BuildDashboard(trips []core.Trip, vehicles []core.Vehicle, now time.Time) Dashboard {
	d := Dashboard{
		Date:           now,
		TripsToday:     len(core.TripsOnDate(trips, now)),
		TripsThisMonth: len(core.TripsInMonth(trips, now)),
		MonthlyIncome:  core.MonthlyIncome(trips, now),
		MonthlyExpense: core.MonthlyExpense(trips, now),
		MonthlyProfit:  core.MonthlyProfit(trips, now),
		DailyBreakdown: core.DailyBreakdown(trips, now),
	}
	d.PendingTotal, d.PendingCount = core.PendingPayments(trips)
	d.BestVehicle, d.HasBestVehicle = core.BestVehicle(trips, vehicles)
	return d
}
