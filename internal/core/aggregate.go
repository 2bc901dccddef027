package core

import (
	"sort"
	"time"
)

// Aggregation over trip and vehicle collections. Every function takes the
// full collections and a caller-supplied reference instant; nothing here
// reads the wall clock or caches results.

// TripsOnDate returns trips whose date is the same calendar day as day.
func TripsOnDate(trips []Trip, day time.Time) []Trip {
	var out []Trip
	for _, t := range trips {
		if t.Date.SameDay(day) {
			out = append(out, t)
		}
	}
	return out
}

// TripsInMonth returns trips whose date falls in the same calendar month
// and year as month.
func TripsInMonth(trips []Trip, month time.Time) []Trip {
	var out []Trip
	for _, t := range trips {
		if t.Date.SameMonth(month) {
			out = append(out, t)
		}
	}
	return out
}

// MonthlyIncome sums totalAmount over the trips of the given month.
func MonthlyIncome(trips []Trip, month time.Time) Money {
	var sum Money
	for _, t := range TripsInMonth(trips, month) {
		sum = sum.Add(t.TotalAmount)
	}
	return sum
}

// MonthlyExpense sums totalExpense over the trips of the given month.
func MonthlyExpense(trips []Trip, month time.Time) Money {
	var sum Money
	for _, t := range TripsInMonth(trips, month) {
		sum = sum.Add(t.TotalExpense)
	}
	return sum
}

// MonthlyProfit sums netProfit over the trips of the given month.
func MonthlyProfit(trips []Trip, month time.Time) Money {
	var sum Money
	for _, t := range TripsInMonth(trips, month) {
		sum = sum.Add(t.NetProfit)
	}
	return sum
}

// PendingPayments returns the summed driver balance and the count over
// trips whose payment status is Pending.
func PendingPayments(trips []Trip) (Money, int) {
	var sum Money
	count := 0
	for _, t := range trips {
		if t.DriverPaymentStatus == StatusPending {
			sum = sum.Add(t.DriverBalance)
			count++
		}
	}
	return sum, count
}

// VehicleProfit pairs a vehicle with its all-time summed net profit.
type VehicleProfit struct {
	Vehicle Vehicle
	Profit  Money
}

// VehicleProfits ranks vehicles by all-time net profit, descending. The
// sort is stable: vehicles tied on profit keep their input order.
func VehicleProfits(trips []Trip, vehicles []Vehicle) []VehicleProfit {
	byVehicle := make(map[string]Money, len(vehicles))
	for _, t := range trips {
		byVehicle[t.VehicleID] = byVehicle[t.VehicleID].Add(t.NetProfit)
	}

	stats := make([]VehicleProfit, 0, len(vehicles))
	for _, v := range vehicles {
		stats = append(stats, VehicleProfit{Vehicle: v, Profit: byVehicle[v.ID]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit.Cents > stats[j].Profit.Cents
	})
	return stats
}

// BestVehicle returns the top-ranked vehicle by all-time net profit.
// ok is false when the vehicle list is empty.
func BestVehicle(trips []Trip, vehicles []Vehicle) (VehicleProfit, bool) {
	stats := VehicleProfits(trips, vehicles)
	if len(stats) == 0 {
		return VehicleProfit{}, false
	}
	return stats[0], true
}

// DayTotals is one per-day bucket of a month's financial breakdown.
type DayTotals struct {
	Day     Date
	Income  Money
	Expense Money
	Profit  Money
}

// DailyBreakdown groups the month's trips by calendar day, summing income,
// expense and profit per day. The result is ordered chronologically; an
// empty month yields an empty slice.
func DailyBreakdown(trips []Trip, month time.Time) []DayTotals {
	buckets := make(map[Date]*DayTotals)
	for _, t := range TripsInMonth(trips, month) {
		day := DateOf(t.Date.Time)
		b, ok := buckets[day]
		if !ok {
			b = &DayTotals{Day: day}
			buckets[day] = b
		}
		b.Income = b.Income.Add(t.TotalAmount)
		b.Expense = b.Expense.Add(t.TotalExpense)
		b.Profit = b.Profit.Add(t.NetProfit)
	}

	out := make([]DayTotals, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day.Time)
	})
	return out
}
