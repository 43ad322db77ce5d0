package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReferenceLength number of id characters shown to the customer as booking reference
const ReferenceLength = 8

// Scheduling modes, used as metric labels and in notifications
const (
	ModeScheduled = "scheduled"
	ModeFlexible  = "flexible"
)

// FinalStatuses statuses a booking cannot leave
var FinalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
