package models

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	BaseDurationMin    int    `json:"baseDurationMin"`
	BufferCleanupMin   int    `json:"bufferCleanupMin"`
	DefaultCadenceDays int    `json:"defaultCadenceDays"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffResponse сотрудник
type StaffResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// StaffListResponse список сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ConsentsResponse согласия клиента на рассылки
type ConsentsResponse struct {
	MarketingEmail bool `json:"marketingEmail"`
	MarketingSMS   bool `json:"marketingSms"`
}

// ClientResponse клиент салона
type ClientResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Phone              string           `json:"phone"`
	Email              string           `json:"email"`
	Consents           ConsentsResponse `json:"consents"`
	PreferredChannel   string           `json:"preferredChannel"`
	Tags               []string         `json:"tags"`
	Notes              string           `json:"notes"`
	CadenceDefaultDays int              `json:"cadenceDefaultDays"`
	LastVisitAt        *string          `json:"lastVisitAt,omitempty"` // RFC 3339
	Status             string           `json:"status"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// VisitResponse завершённый визит в истории клиента
type VisitResponse struct {
	AppointmentID string   `json:"appointmentId"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	ServiceIDs    []string `json:"serviceIds"`
	ServiceNames  []string `json:"serviceNames"`
	StaffName     string   `json:"staffName"`
}

// HistoryResponse история визитов, новые первыми
type HistoryResponse struct {
	ClientID string          `json:"clientId"`
	Visits   []VisitResponse `json:"visits"`
}

// TextResponse сгенерированный текст
type TextResponse struct {
	ClientID string `json:"clientId"`
	Text     string `json:"text"`
}

func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		BaseDurationMin:    s.BaseDurationMin,
		BufferCleanupMin:   s.BufferCleanupMin,
		DefaultCadenceDays: s.DefaultCadenceDays,
	}
}

func FromDomainStaff(s *domain.Staff) StaffResponse {
	return StaffResponse{ID: s.ID, Name: s.Name, Role: string(s.Role)}
}

func FromDomainClient(c *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		Consents: ConsentsResponse{
			MarketingEmail: c.ConsentMarketingEmail,
			MarketingSMS:   c.ConsentMarketingSMS,
		},
		PreferredChannel:   string(c.PreferredChannel),
		Tags:               c.Tags,
		Notes:              c.Notes,
		CadenceDefaultDays: c.CadenceDefaultDays,
		Status:             string(c.Status),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if c.LastVisitAt != nil {
		lastVisit := c.LastVisitAt.Format(time.RFC3339)
		resp.LastVisitAt = &lastVisit
	}
	return resp
}

func FromDomainVisit(a *domain.Appointment) VisitResponse {
	return VisitResponse{
		AppointmentID: a.ID,
		StartAt:       a.StartAt.Format(time.RFC3339),
		EndAt:         a.EndAt.Format(time.RFC3339),
		ServiceIDs:    a.ServiceIDs,
		ServiceNames:  a.ServiceNames,
		StaffName:     a.StaffName,
	}
}
