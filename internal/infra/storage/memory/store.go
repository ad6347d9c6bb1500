package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage"
)

// Store in-memory хранилище справочников и записей.
// Последняя запись побеждает; DoSerializable упорядочивает последовательности
// чтение-проверка-запись между собой.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	clients      map[string]*domain.Client
	services     map[string]*domain.Service
	serviceOrder []string
	staff        map[string]*domain.Staff
	staffOrder   []string
	appointments map[string]*domain.Appointment

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		clients:      make(map[string]*domain.Client),
		services:     make(map[string]*domain.Service),
		staff:        make(map[string]*domain.Staff),
		appointments: make(map[string]*domain.Appointment),
		now:          time.Now,
	}
}

// DoSerializable выполняет fn эксклюзивно относительно других вызовов DoSerializable
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// ============================================================
// Справочники
// ============================================================

// AddClient добавляет или заменяет клиента
func (s *Store) AddClient(c domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Tags = append([]string(nil), c.Tags...)
	s.clients[c.ID] = &c
}

// AddService добавляет или заменяет услугу
func (s *Store) AddService(svc domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[svc.ID]; !ok {
		s.serviceOrder = append(s.serviceOrder, svc.ID)
	}
	s.services[svc.ID] = &svc
}

// AddStaff добавляет или заменяет сотрудника
func (s *Store) AddStaff(st domain.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[st.ID]; !ok {
		s.staffOrder = append(s.staffOrder, st.ID)
	}
	s.staff[st.ID] = &st
}

func (s *Store) GetClient(_ context.Context, id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, storage.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

// ListClients возвращает клиентов, отсортированных по имени
func (s *Store) ListClients(_ context.Context) ([]*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		cp := *c
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// GetServicesByIDs возвращает найденные услуги в порядке ids; неизвестные id пропускаются
func (s *Store) GetServicesByIDs(_ context.Context, ids []string) ([]*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Service, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if svc, ok := s.services[id]; ok {
			cp := *svc
			result = append(result, &cp)
		}
	}
	return result, nil
}

// ListServices возвращает услуги в порядке добавления
func (s *Store) ListServices(_ context.Context) ([]*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Service, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		cp := *s.services[id]
		result = append(result, &cp)
	}
	return result, nil
}

func (s *Store) GetStaff(_ context.Context, id string) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.staff[id]
	if !ok {
		return nil, storage.ErrStaffNotFound
	}
	cp := *st
	return &cp, nil
}

// ListStaff возвращает сотрудников в порядке добавления
func (s *Store) ListStaff(_ context.Context) ([]*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Staff, 0, len(s.staffOrder))
	for _, id := range s.staffOrder {
		cp := *s.staff[id]
		result = append(result, &cp)
	}
	return result, nil
}

// ============================================================
// Записи
// ============================================================

// Create сохраняет новую запись; ID назначается вызывающей стороной
func (s *Store) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := a.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.appointments[stored.ID] = stored

	return stored.Clone(), nil
}

// Update заменяет существующую запись целиком
func (s *Store) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.appointments[a.ID]
	if !ok {
		return nil, storage.ErrAppointmentNotFound
	}

	stored := a.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.now()
	s.appointments[stored.ID] = stored

	return stored.Clone(), nil
}

// UpdateStatus меняет только статус записи
func (s *Store) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.appointments[id]
	if !ok {
		return storage.ErrAppointmentNotFound
	}
	existing.Status = status
	existing.UpdatedAt = s.now()
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, storage.ErrAppointmentNotFound
	}
	return a.Clone(), nil
}

// List возвращает записи, подходящие под фильтр, по возрастанию начала
func (s *Store) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if filter.Matches(a) {
			result = append(result, a.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartAt.Equal(result[j].StartAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartAt.Before(result[j].StartAt)
	})
	return result, nil
}

// Delete удаляет запись без возможности восстановления
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return storage.ErrAppointmentNotFound
	}
	delete(s.appointments, id)
	return nil
}

// Count возвращает количество записей в хранилище
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}
