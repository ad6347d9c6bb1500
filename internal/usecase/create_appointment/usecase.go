package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	newID           IDGenerator
	rejectOverlaps  bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	rejectOverlaps bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		newID:           uuid.NewString,
		rejectOverlaps:  rejectOverlaps,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		uc.metrics.ObserveAppointmentOperation(metrics.OperationCreate, outcomeOf(err))
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: client=%s, staff=%s, services=%v, start=%s",
		req.ClientID, req.StaffID, req.ServiceIDs, req.StartAt.Format(time.RFC3339))

	// 2. Получаем клиента
	client, err := uc.catalogRepo.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем мастера
	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, storage.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.CanBeScheduled() {
		uc.logger.Warn("CreateAppointment: staff id=%s has role %s", staff.ID, staff.Role)
		return nil, ErrStaffNotSchedulable
	}

	// 4. Получаем услуги одним запросом; неизвестные id пропускаются
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) == 0 {
		uc.logger.Warn("CreateAppointment: none of services %v found", req.ServiceIDs)
		return nil, ErrServiceNotFound
	}

	// 5. Длительность визита
	duration := scheduling.ComputeDuration(req.ServiceIDs, services)
	if duration.TotalMinutes <= 0 {
		uc.logger.Warn("CreateAppointment: services %v have zero duration", req.ServiceIDs)
		return nil, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}

	serviceIDs := resolvedIDs(req.ServiceIDs, services)
	appointment := &domain.Appointment{
		ClientID:     client.ID,
		ServiceIDs:   serviceIDs,
		StaffID:      staff.ID,
		StartAt:      req.StartAt,
		EndAt:        req.StartAt.Add(time.Duration(duration.TotalMinutes) * time.Minute),
		Status:       domain.StatusPlanned,
		ClientName:   client.Name,
		ServiceNames: scheduling.ServiceNames(serviceIDs, services),
		StaffName:    staff.Name,
	}

	var result *domain.Appointment

	// 6. Проверка пересечений и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if uc.rejectOverlaps {
			from, to := appointment.StartAt, appointment.EndAt
			existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StaffID: &appointment.StaffID,
				From:    &from,
				To:      &to,
			})
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			if conflict := scheduling.FindConflict(appointment.Interval(), appointment.StaffID, existing, ""); conflict != nil {
				uc.logger.Warn("CreateAppointment: interval %s-%s overlaps appointment id=%s",
					appointment.StartAt.Format(time.RFC3339), appointment.EndAt.Format(time.RFC3339), conflict.ID)
				return ErrSlotConflict
			}
		}

		appointment.ID = uc.newID()
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, end=%s",
		result.ID, result.EndAt.Format(time.RFC3339))

	if err := uc.publisher.Publish(ctx, events.AppointmentCreated, result); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish event for id=%s: %v", result.ID, err)
	}

	return toResponse(result, duration), nil
}

// resolvedIDs оставляет только найденные услуги, сохраняя порядок запроса и убирая повторы
func resolvedIDs(requested []string, services []*domain.Service) []string {
	known := make(map[string]struct{}, len(services))
	for _, s := range services {
		known[s.ID] = struct{}{}
	}

	ids := make([]string, 0, len(services))
	for _, id := range requested {
		if _, ok := known[id]; ok {
			ids = append(ids, id)
			delete(known, id)
		}
	}
	return ids
}

func toResponse(a *domain.Appointment, d scheduling.Duration) *Response {
	return &Response{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ServiceIDs:      a.ServiceIDs,
		StaffID:         a.StaffID,
		StartAt:         a.StartAt,
		EndAt:           a.EndAt,
		Status:          string(a.Status),
		ClientName:      a.ClientName,
		ServiceNames:    a.ServiceNames,
		StaffName:       a.StaffName,
		DurationMinutes: d.TotalMinutes,
		BufferMinutes:   d.BufferMinutes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
