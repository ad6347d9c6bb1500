package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
)

// UseCase use case для изменения клиента и состава услуг записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
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
		rejectOverlaps:  rejectOverlaps,
		logger:          logger,
	}
}

// Execute пересчитывает окончание и денормализованные поля записи.
// Повторный вызов с теми же данными ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		uc.metrics.ObserveAppointmentOperation(metrics.OperationUpdate, outcomeOf(err))
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: id=%s, client=%s, services=%v", req.AppointmentID, req.ClientID, req.ServiceIDs)

	// 1. Справочники
	client, err := uc.catalogRepo.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			uc.logger.Warn("UpdateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) == 0 {
		uc.logger.Warn("UpdateAppointment: none of services %v found", req.ServiceIDs)
		return nil, ErrServiceNotFound
	}

	duration := scheduling.ComputeDuration(req.ServiceIDs, services)
	if duration.TotalMinutes <= 0 {
		return nil, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}
	serviceIDs := resolvedIDs(req.ServiceIDs, services)

	var result *domain.Appointment

	// 2. Чтение, проверка и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		updated := existing.Clone()
		updated.ClientID = client.ID
		updated.ClientName = client.Name
		updated.ServiceIDs = serviceIDs
		updated.ServiceNames = scheduling.ServiceNames(serviceIDs, services)
		updated.EndAt = existing.StartAt.Add(time.Duration(duration.TotalMinutes) * time.Minute)

		if uc.rejectOverlaps && updated.IsActive() {
			from, to := updated.StartAt, updated.EndAt
			others, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StaffID: &updated.StaffID,
				From:    &from,
				To:      &to,
			})
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			if conflict := scheduling.FindConflict(updated.Interval(), updated.StaffID, others, updated.ID); conflict != nil {
				uc.logger.Warn("UpdateAppointment: id=%s would overlap appointment id=%s", updated.ID, conflict.ID)
				return ErrSlotConflict
			}
		}

		saved, err := uc.appointmentRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s, end=%s",
		result.ID, result.EndAt.Format(time.RFC3339))

	if err := uc.publisher.Publish(ctx, events.AppointmentUpdated, result); err != nil {
		uc.logger.Error("UpdateAppointment: failed to publish event for id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ServiceIDs:      result.ServiceIDs,
		StaffID:         result.StaffID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		ServiceNames:    result.ServiceNames,
		StaffName:       result.StaffName,
		DurationMinutes: duration.TotalMinutes,
		BufferMinutes:   duration.BufferMinutes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

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
