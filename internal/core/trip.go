package core

// PaymentStatus is the driver-payment settlement state, always derived
// from the agreed amount and the advance paid.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Paid"
	StatusPending PaymentStatus = "Pending"
)

// PaymentMode is how the driver is paid.
type PaymentMode string

const (
	ModeCash         PaymentMode = "Cash"
	ModeUPI          PaymentMode = "UPI"
	ModeBankTransfer PaymentMode = "Bank Transfer"
)

// Trip is one recorded job: route, timing, financials, and driver payment.
// JSON field names match previously stored data and must not change.
//
// Distance, TotalExpense, NetProfit, DriverBalance and DriverPaymentStatus
// are derived: Recalculate overwrites them from the raw fields, and the
// store re-derives once more before every persist so they never diverge.
type Trip struct {
	ID string `json:"id"`

	// Basic info
	Date            Date   `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	VehicleID       string `json:"vehicleId"`
	DriverName      string `json:"driverName"`
	DriverContact   string `json:"driverContact"`
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
	PickupLocation  string `json:"pickupLocation"`
	DropLocation    string `json:"dropLocation"`

	// Odometer
	OdometerStart float64 `json:"odometerStart"`
	OdometerEnd   float64 `json:"odometerEnd"`
	Distance      float64 `json:"distance"`

	// Financials
	TotalAmount Money `json:"totalAmount"`

	// Expenses
	ExpenseFuel         Money   `json:"expenseFuel"`
	ExpenseFuelQuantity float64 `json:"expenseFuelQuantity"`
	ExpenseToll         Money   `json:"expenseToll"`
	ExpenseParking      Money   `json:"expenseParking"`
	ExpenseOther        Money   `json:"expenseOther"`
	ExpenseOtherDesc    string  `json:"expenseOtherDesc"`

	// Driver payment
	DriverPaymentAmount Money         `json:"driverPaymentAmount"`
	DriverAdvance       Money         `json:"driverAdvance"`
	DriverBalance       Money         `json:"driverBalance"`
	DriverPaymentStatus PaymentStatus `json:"driverPaymentStatus"`
	DriverPaymentMode   PaymentMode   `json:"driverPaymentMode"`

	// Meta
	TotalExpense Money  `json:"totalExpense"`
	NetProfit    Money  `json:"netProfit"`
	Notes        string `json:"notes"`
	CreatedAt    int64  `json:"createdAt"` // ms since epoch, set once
}
