package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldKey          = "key"
	FieldTripID       = "trip_id"
	FieldVehicleID    = "vehicle_id"
	FieldTripCount    = "trip_count"
	FieldVehicleCount = "vehicle_count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentReport  = "report"
)
