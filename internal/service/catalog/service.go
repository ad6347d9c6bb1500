package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/assistant"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

// Service сервис чтения справочников и истории клиентов
type Service struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	assistant       Assistant
	defaultLanguage assistant.Language
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	textAssistant Assistant,
	defaultLanguage assistant.Language,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		assistant:       textAssistant,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// ListServices возвращает каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	resp := &models.ServiceListResponse{Services: make([]models.ServiceResponse, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, models.FromDomainService(svc))
	}
	return resp, nil
}

// ListStaff возвращает сотрудников салона
func (s *Service) ListStaff(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.catalogRepo.ListStaff(ctx)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	resp := &models.StaffListResponse{Staff: make([]models.StaffResponse, 0, len(staff))}
	for _, st := range staff {
		resp.Staff = append(resp.Staff, models.FromDomainStaff(st))
	}
	return resp, nil
}

// ListClients возвращает клиентов
func (s *Service) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.catalogRepo.ListClients(ctx)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClientListResponse{Clients: make([]models.ClientResponse, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, models.FromDomainClient(c))
	}
	return resp, nil
}

// GetClient возвращает клиента по ID
func (s *Service) GetClient(ctx context.Context, id string) (*models.ClientResponse, error) {
	client, err := s.getClient(ctx, "GetClient", id)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainClient(client)
	return &resp, nil
}

// GetClientHistory возвращает завершённые визиты клиента, новые первыми
func (s *Service) GetClientHistory(ctx context.Context, clientID string) (*models.HistoryResponse, error) {
	if _, err := s.getClient(ctx, "GetClientHistory", clientID); err != nil {
		return nil, err
	}

	visits, err := s.history(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := &models.HistoryResponse{
		ClientID: clientID,
		Visits:   make([]models.VisitResponse, 0, len(visits)),
	}
	for _, v := range visits {
		resp.Visits = append(resp.Visits, models.FromDomainVisit(v))
	}
	return resp, nil
}

// GetClientSummary краткая сводка по клиенту для администратора
func (s *Service) GetClientSummary(ctx context.Context, clientID string) (*models.TextResponse, error) {
	client, err := s.getClient(ctx, "GetClientSummary", clientID)
	if err != nil {
		return nil, err
	}

	visits, err := s.history(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &models.TextResponse{
		ClientID: clientID,
		Text:     s.assistant.SummarizeClient(ctx, client, visits),
	}, nil
}

// GetReminderText текст напоминания о повторной записи.
// Без serviceID берется первая услуга последнего визита.
func (s *Service) GetReminderText(ctx context.Context, clientID, serviceID, lang string) (*models.TextResponse, error) {
	client, err := s.getClient(ctx, "GetReminderText", clientID)
	if err != nil {
		return nil, err
	}

	serviceName, err := s.reminderServiceName(ctx, clientID, strings.TrimSpace(serviceID))
	if err != nil {
		return nil, err
	}

	language := assistant.ParseLanguage(lang, s.defaultLanguage)
	s.logger.Info("GetReminderText: client=%s, service=%q, lang=%s", clientID, serviceName, language)

	return &models.TextResponse{
		ClientID: clientID,
		Text:     s.assistant.ReminderText(ctx, client, serviceName, language),
	}, nil
}

func (s *Service) reminderServiceName(ctx context.Context, clientID, serviceID string) (string, error) {
	if serviceID != "" {
		services, err := s.catalogRepo.GetServicesByIDs(ctx, []string{serviceID})
		if err != nil {
			s.logger.Error("GetReminderText: failed to get service id=%s: %v", serviceID, err)
			return "", fmt.Errorf("%w: GetReminderText - repository error: %v", ErrInternal, err)
		}
		if len(services) == 0 {
			s.logger.Warn("GetReminderText: service id=%s not found", serviceID)
			return "", ErrServiceNotFound
		}
		return services[0].Name, nil
	}

	visits, err := s.history(ctx, clientID)
	if err != nil {
		return "", err
	}
	for _, v := range visits {
		if len(v.ServiceNames) > 0 {
			return v.ServiceNames[0], nil
		}
	}
	return "", fmt.Errorf("%w: serviceId is required for a client without visits", ErrInvalidInput)
}

func (s *Service) getClient(ctx context.Context, op, id string) (*domain.Client, error) {
	client, err := s.catalogRepo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%s not found", op, id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return client, nil
}

// history завершённые визиты клиента, новые первыми
func (s *Service) history(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	done := domain.StatusDone
	visits, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ClientID: &clientID,
		Status:   &done,
	})
	if err != nil {
		s.logger.Error("history: repository error for client id=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: history - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].StartAt.After(visits[j].StartAt)
	})
	return visits, nil
}
