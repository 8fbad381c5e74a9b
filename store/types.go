package store

// Vehicle status values
const (
	VehicleActive      = "active"
	VehicleInactive    = "inactive"
	VehicleMaintenance = "maintenance"
)

// Schedule status values
const (
	ScheduleOnTime    = "on-time"
	ScheduleDelayed   = "delayed"
	ScheduleCancelled = "cancelled"
)

// Log severity values
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Route is a named transit line with fixed stops, price, and frequency.
type Route struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Number     string   `json:"number"`
	StartPoint string   `json:"startPoint"`
	EndPoint   string   `json:"endPoint"`
	Stops      []string `json:"stops"`
	Duration   int      `json:"duration"`  // end-to-end minutes
	Frequency  int      `json:"frequency"` // minutes between departures
	Price      float64  `json:"price"`
	IsActive   bool     `json:"isActive"`
	Type       string   `json:"type"` // bus|train|tram|...
}

// Vehicle is a physical transport unit with capacity and assigned driver.
type Vehicle struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Driver   string `json:"driver"`
	Status   string `json:"status"`
}

// Schedule is one dated departure/arrival instance of a route operated by
// a vehicle. RouteID and VehicleID may reference ids missing from their
// collections.
type Schedule struct {
	ID            string `json:"id"`
	RouteID       string `json:"routeId"`
	VehicleID     string `json:"vehicleId"`
	DriverID      string `json:"driverId"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Status        string `json:"status"`
	DelayMinutes  int    `json:"delayMinutes,omitempty"` // set when Status is delayed
	Date          string `json:"date"`
}

// LogEntry is an operational event record (delay, breakdown, maintenance).
type LogEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// SeriesPoint is one dated value in an analytics series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Analytics carries the three named series consumed by chart clients.
type Analytics struct {
	DailyDelays []SeriesPoint `json:"dailyDelays"`
	TicketsSold []SeriesPoint `json:"ticketsSold"`
	Revenue     []SeriesPoint `json:"revenue"`
}

// Stats are the aggregate counts shown on the admin page.
type Stats struct {
	TotalVehicles    int `json:"totalVehicles"`
	ActiveVehicles   int `json:"activeVehicles"`
	TotalRoutes      int `json:"totalRoutes"`
	ActiveRoutes     int `json:"activeRoutes"`
	TotalLogs        int `json:"totalLogs"`
	HighSeverityLogs int `json:"highSeverityLogs"`
}
