package domain

import "time"

// Service is a catalog entry a client can book
type Service struct {
	ID                 string
	Name               string
	BaseDurationMin    int // minutes of actual work
	BufferCleanupMin   int // mandatory downtime after the service
	DefaultCadenceDays int // recommended rebooking interval
}

// OccupiedMinutes returns how long the service blocks the staff timeline
func (s *Service) OccupiedMinutes() int {
	return s.BaseDurationMin + s.BufferCleanupMin
}

// StaffRole represents the role of a staff member
type StaffRole string

const (
	RoleMaster    StaffRole = "master"
	RoleAssistant StaffRole = "assistant"
)

// Staff is a salon employee with their own calendar
type Staff struct {
	ID   string
	Name string
	Role StaffRole
}

// CanBeScheduled returns true if appointments can be booked with this staff member
func (s *Staff) CanBeScheduled() bool {
	return s.Role == RoleMaster
}

// Channel is a preferred way to contact a client
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelCall  Channel = "call"
)

// ClientStatus represents the lifecycle of a client record
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientPaused   ClientStatus = "paused"
	ClientArchived ClientStatus = "archived"
)

// Client is a salon customer
type Client struct {
	ID                    string
	Name                  string
	Phone                 string
	Email                 string
	ConsentMarketingEmail bool
	ConsentMarketingSMS   bool
	PreferredChannel      Channel
	Tags                  []string
	Notes                 string
	CadenceDefaultDays    int
	LastVisitAt           *time.Time
	Status                ClientStatus
}
