package core

// Derived holds the trip fields computed from raw input. Each value is a
// function of the raw fields alone, never of a previously derived value.
type Derived struct {
	Distance            float64
	TotalExpense        Money
	NetProfit           Money
	DriverBalance       Money
	DriverPaymentStatus PaymentStatus
}

// Derive computes the derived fields for a trip. It is pure and total:
// any combination of raw inputs yields a defined result.
//
//	distance     = max(0, odometerEnd - odometerStart)
//	balance      = driverPaymentAmount - driverAdvance
//	status       = Paid iff balance <= 0 and driverPaymentAmount > 0
//	totalExpense = fuel + toll + parking + other + driverPaymentAmount
//	netProfit    = totalAmount - totalExpense
//
// A trip with zero agreed payment and zero advance has balance zero but
// status Pending: no payment has been agreed yet.
func Derive(t Trip) Derived {
	distance := t.OdometerEnd - t.OdometerStart
	if distance < 0 {
		distance = 0
	}

	balance := t.DriverPaymentAmount.Sub(t.DriverAdvance)

	status := StatusPending
	if balance.Cents <= 0 && t.DriverPaymentAmount.Cents > 0 {
		status = StatusPaid
	}

	totalExpense := t.ExpenseFuel.
		Add(t.ExpenseToll).
		Add(t.ExpenseParking).
		Add(t.ExpenseOther).
		Add(t.DriverPaymentAmount)

	return Derived{
		Distance:            distance,
		TotalExpense:        totalExpense,
		NetProfit:           t.TotalAmount.Sub(totalExpense),
		DriverBalance:       balance,
		DriverPaymentStatus: status,
	}
}

// Recalculate overwrites the trip's derived fields from its raw fields.
// Callers run it on every raw-field change and once more right before a
// save, so stale derived values never reach storage.
func (t *Trip) Recalculate() {
	d := Derive(*t)
	t.Distance = d.Distance
	t.TotalExpense = d.TotalExpense
	t.NetProfit = d.NetProfit
	t.DriverBalance = d.DriverBalance
	t.DriverPaymentStatus = d.DriverPaymentStatus
}
