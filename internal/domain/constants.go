package domain

// Timeline constants
const (
	MinutesPerDay = 24 * 60
)

// Default scheduling values
const (
	DefaultWorkStartMinute = 9 * 60  // 09:00
	DefaultWorkEndMinute   = 21 * 60 // 21:00
	DefaultStepMinutes     = 5
	DefaultSearchDays      = 7
)

// Business validation constants
const (
	MinStepMinutes      = 1
	MaxStepMinutes      = 120
	MaxSearchDays       = 31
	MaxServicesPerVisit = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
