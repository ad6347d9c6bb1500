package find_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
)

// UseCase use case для поиска свободного времени мастера
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	calendar        scheduling.Calendar
	window          scheduling.WorkingWindow
	searchDays      int
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	calendar scheduling.Calendar,
	window scheduling.WorkingWindow,
	searchDays int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if searchDays <= 0 {
		searchDays = domain.DefaultSearchDays
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		calendar:        calendar,
		window:          window,
		searchDays:      searchDays,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет поиск свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		slots := 0
		if resp != nil {
			for _, d := range resp.Days {
				slots += len(d.Slots)
			}
		}
		uc.metrics.ObserveSlotSearch(outcomeOf(err), slots)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 1. Мастер
	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, storage.ErrStaffNotFound) {
			uc.logger.Warn("FindAvailableSlots: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("FindAvailableSlots: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.CanBeScheduled() {
		uc.logger.Warn("FindAvailableSlots: staff id=%s has role %s", staff.ID, staff.Role)
		return nil, ErrStaffNotSchedulable
	}

	// 2. Длительность визита
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("FindAvailableSlots: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	duration := scheduling.ComputeDuration(req.ServiceIDs, services)
	if duration.TotalMinutes <= 0 {
		uc.logger.Warn("FindAvailableSlots: services %v give zero duration", req.ServiceIDs)
		return nil, fmt.Errorf("%w: no known services with positive duration", ErrInvalidInput)
	}

	// 3. Дни поиска
	days := uc.searchDates(req.Dates)

	uc.logger.Info("FindAvailableSlots: staff=%s, services=%v, duration=%d, days=%s..%s",
		staff.ID, req.ServiceIDs, duration.TotalMinutes,
		days[0].Format(domain.DateFormat), days[len(days)-1].Format(domain.DateFormat))

	// 4. Снимок записей мастера на весь диапазон; дальше он только читается
	from := days[0]
	to := uc.calendar.NextDay(days[len(days)-1])
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StaffID: &staff.ID,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		uc.logger.Error("FindAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Поиск по дням параллельно
	found, err := scheduling.FindAvailableSlotsInRange(ctx, days, duration.TotalMinutes, staff.ID, appointments, uc.window)
	if err != nil {
		uc.logger.Warn("FindAvailableSlots: search interrupted: %v", err)
		return nil, err
	}

	uc.logger.Info("FindAvailableSlots: staff=%s, %d of %d days have free slots", staff.ID, len(found), len(days))

	return &Response{
		StaffID:         staff.ID,
		DurationMinutes: duration.TotalMinutes,
		BufferMinutes:   duration.BufferMinutes,
		Days:            found,
	}, nil
}

// QuoteDuration считает длительность набора услуг; неизвестные id не учитываются
func (uc *UseCase) QuoteDuration(ctx context.Context, serviceIDs []string) (*DurationQuote, error) {
	if len(serviceIDs) > domain.MaxServicesPerVisit {
		return nil, fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerVisit)
	}
	if len(serviceIDs) == 0 {
		return &DurationQuote{}, nil
	}

	services, err := uc.catalogRepo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		uc.logger.Error("QuoteDuration: failed to get services %v: %v", serviceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	d := scheduling.ComputeDuration(serviceIDs, services)
	return &DurationQuote{TotalMinutes: d.TotalMinutes, BufferMinutes: d.BufferMinutes}, nil
}

// searchDates приводит даты запроса к началу локального дня, убирает повторы и сортирует.
// Без дат ищем на searchDays дней вперед начиная с сегодняшнего.
func (uc *UseCase) searchDates(dates []time.Time) []time.Time {
	loc := uc.calendar.Location()

	if len(dates) == 0 {
		today := uc.calendar.StartOfDay(uc.timeProvider.Now())
		days := make([]time.Time, 0, uc.searchDays)
		for i := 0; i < uc.searchDays; i++ {
			y, m, d := today.Date()
			days = append(days, time.Date(y, m, d+i, 0, 0, 0, 0, loc))
		}
		return days
	}

	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		y, m, d := date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		key := day.Format(domain.DateFormat)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
