package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
)

// Service сервис чтения, удаления и смены статуса записей
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         Metrics
	rejectOverlaps  bool
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	rejectOverlaps bool,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		rejectOverlaps:  rejectOverlaps,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(a), nil
}

// List получает записи по фильтру, по возрастанию начала
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// Delete удаляет запись без возможности восстановления.
// Для несуществующего id хранилище не меняется.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	s.observe(metrics.OperationDelete, err)
	return err
}

func (s *Service) delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	var deleted *domain.Appointment
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = a
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)

	if err := s.publisher.Publish(ctx, events.AppointmentDeleted, deleted); err != nil {
		s.logger.Error("Delete: failed to publish event for id=%s: %v", id, err)
	}
	return nil
}

// UpdateStatus меняет статус записи (отмена, завершение, перенос).
// Возврат отменённой записи в активный статус проверяется на пересечения.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.AppointmentResponse, error) {
	resp, err := s.updateStatus(ctx, id, status)
	s.observe(metrics.OperationUpdateStatus, err)
	return resp, err
}

func (s *Service) updateStatus(ctx context.Context, id string, status string) (*models.AppointmentResponse, error) {
	newStatus, err := models.ToDomainStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%s", status, id)
		return nil, ErrInvalidStatus
	}

	s.logger.Info("UpdateStatus: appointment id=%s, status=%s", id, newStatus)

	var updated *domain.Appointment
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		next := a.Clone()
		next.Status = newStatus

		if s.rejectOverlaps && !a.IsActive() && next.IsActive() {
			from, to := next.StartAt, next.EndAt
			others, err := s.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
				StaffID: &next.StaffID,
				From:    &from,
				To:      &to,
			})
			if err != nil {
				return err
			}
			if conflict := scheduling.FindConflict(next.Interval(), next.StaffID, others, next.ID); conflict != nil {
				s.logger.Warn("UpdateStatus: reactivating id=%s would overlap appointment id=%s", id, conflict.ID)
				return ErrSlotConflict
			}
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return err
		}
		updated, err = s.appointmentRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrSlotConflict):
			return nil, err
		default:
			s.logger.Error("UpdateStatus: failed to update appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	if err := s.publisher.Publish(ctx, events.AppointmentUpdated, updated); err != nil {
		s.logger.Error("UpdateStatus: failed to publish event for id=%s: %v", id, err)
	}

	return models.FromDomainAppointment(updated), nil
}

func (s *Service) observe(operation string, err error) {
	if s.metrics == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		outcome = metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrConflict):
		outcome = metrics.OutcomeConflict
	default:
		outcome = metrics.OutcomeError
	}
	s.metrics.ObserveAppointmentOperation(operation, outcome)
}
