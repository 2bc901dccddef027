package core

import "testing"

func amt(units int64) Money {
	return Money{Cents: units * 100}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		trip Trip
		want Derived
	}{
		{
			name: "settled trip",
			trip: Trip{
				OdometerStart:       1000,
				OdometerEnd:         1250,
				TotalAmount:         amt(500),
				ExpenseFuel:         amt(50),
				ExpenseToll:         amt(10),
				ExpenseParking:      amt(5),
				ExpenseOther:        amt(0),
				DriverPaymentAmount: amt(100),
				DriverAdvance:       amt(100),
			},
			want: Derived{
				Distance:            250,
				TotalExpense:        amt(165),
				NetProfit:           amt(335),
				DriverBalance:       amt(0),
				DriverPaymentStatus: StatusPaid,
			},
		},
		{
			name: "zero agreed payment stays pending",
			trip: Trip{
				OdometerStart: 1000,
				OdometerEnd:   1250,
				TotalAmount:   amt(500),
				ExpenseFuel:   amt(50),
			},
			want: Derived{
				Distance:            250,
				TotalExpense:        amt(50),
				NetProfit:           amt(450),
				DriverBalance:       amt(0),
				DriverPaymentStatus: StatusPending,
			},
		},
		{
			name: "advance exceeding agreed amount is paid",
			trip: Trip{
				DriverPaymentAmount: amt(100),
				DriverAdvance:       amt(150),
			},
			want: Derived{
				TotalExpense:        amt(100),
				NetProfit:           amt(-100),
				DriverBalance:       amt(-50),
				DriverPaymentStatus: StatusPaid,
			},
		},
		{
			name: "reversed odometer clamps distance to zero",
			trip: Trip{
				OdometerStart: 1250,
				OdometerEnd:   1000,
			},
			want: Derived{
				Distance:            0,
				DriverPaymentStatus: StatusPending,
			},
		},
		{
			name: "loss-making trip",
			trip: Trip{
				TotalAmount:         amt(100),
				ExpenseFuel:         amt(80),
				DriverPaymentAmount: amt(50),
				DriverAdvance:       amt(20),
			},
			want: Derived{
				TotalExpense:        amt(130),
				NetProfit:           amt(-30),
				DriverBalance:       amt(30),
				DriverPaymentStatus: StatusPending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.trip)
			if got != tt.want {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveExactSums(t *testing.T) {
	trip := Trip{
		TotalAmount:         Money{Cents: 49999},
		ExpenseFuel:         Money{Cents: 3333},
		ExpenseToll:         Money{Cents: 1},
		ExpenseParking:      Money{Cents: 7},
		ExpenseOther:        Money{Cents: 11},
		DriverPaymentAmount: Money{Cents: 9999},
		DriverAdvance:       Money{Cents: 5000},
	}
	d := Derive(trip)

	wantExpense := trip.ExpenseFuel.Cents + trip.ExpenseToll.Cents +
		trip.ExpenseParking.Cents + trip.ExpenseOther.Cents + trip.DriverPaymentAmount.Cents
	if d.TotalExpense.Cents != wantExpense {
		t.Fatalf("totalExpense = %d, want %d", d.TotalExpense.Cents, wantExpense)
	}
	if d.NetProfit.Cents != trip.TotalAmount.Cents-wantExpense {
		t.Fatalf("netProfit = %d, want %d", d.NetProfit.Cents, trip.TotalAmount.Cents-wantExpense)
	}
	if d.DriverBalance.Cents != trip.DriverPaymentAmount.Cents-trip.DriverAdvance.Cents {
		t.Fatalf("driverBalance = %d, want %d",
			d.DriverBalance.Cents, trip.DriverPaymentAmount.Cents-trip.DriverAdvance.Cents)
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	trip := Trip{
		OdometerStart:       100,
		OdometerEnd:         350,
		TotalAmount:         amt(800),
		ExpenseFuel:         amt(120),
		DriverPaymentAmount: amt(200),
		DriverAdvance:       amt(50),
		// stale derived values that must be overwritten
		Distance:            9999,
		TotalExpense:        amt(1),
		NetProfit:           amt(1),
		DriverBalance:       amt(1),
		DriverPaymentStatus: StatusPaid,
	}

	trip.Recalculate()
	first := Derive(trip)
	trip.Recalculate()
	second := Derive(trip)

	if first != second {
		t.Fatalf("re-deriving drifted: %+v vs %+v", first, second)
	}
	if trip.Distance != 250 || trip.DriverPaymentStatus != StatusPending {
		t.Fatalf("stale derived values survived: %+v", trip)
	}
}
