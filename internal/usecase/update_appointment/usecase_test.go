package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

type recordingPublisher struct {
	events []events.Type
}

func (p *recordingPublisher) Publish(_ context.Context, eventType events.Type, _ *domain.Appointment) error {
	p.events = append(p.events, eventType)
	return nil
}

var day = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func setup(t *testing.T) (*memory.Store, *UseCase, *recordingPublisher) {
	t.Helper()
	s := memory.NewStore()
	s.AddClient(domain.Client{ID: "1", Name: "Анна Иванова"})
	s.AddClient(domain.Client{ID: "2", Name: "Мария Петрова"})
	s.AddService(domain.Service{ID: "s1", Name: "Стрижка и укладка", BaseDurationMin: 60, BufferCleanupMin: 5})
	s.AddService(domain.Service{ID: "s4", Name: "Коррекция бровей", BaseDurationMin: 30, BufferCleanupMin: 5})
	s.AddService(domain.Service{ID: "s3", Name: "Сложное окрашивание", BaseDurationMin: 180, BufferCleanupMin: 15})

	ctx := context.Background()
	_, err := s.Create(ctx, &domain.Appointment{
		ID: "a1", ClientID: "1", ClientName: "Анна Иванова",
		ServiceIDs: []string{"s1"}, ServiceNames: []string{"Стрижка и укладка"},
		StaffID: "st1", StaffName: "Елена",
		StartAt: at(10, 0), EndAt: at(11, 5), Status: domain.StatusPlanned,
	})
	require.NoError(t, err)
	_, err = s.Create(ctx, &domain.Appointment{
		ID: "a3", ClientID: "2", ServiceIDs: []string{"s3"}, StaffID: "st1",
		StartAt: at(12, 0), EndAt: at(15, 15), Status: domain.StatusPlanned,
	})
	require.NoError(t, err)

	pub := &recordingPublisher{}
	return s, NewUseCase(s, s, s, pub, nil, true, logger.Nop()), pub
}

func TestExecute_AddServiceExtendsEnd(t *testing.T) {
	s, uc, pub := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		ClientID:      "1",
		ServiceIDs:    []string{"s1", "s4"},
	})
	require.NoError(t, err)

	assert.Equal(t, at(10, 0), resp.StartAt)
	assert.Equal(t, at(11, 40), resp.EndAt)
	assert.Equal(t, []string{"Стрижка и укладка", "Коррекция бровей"}, resp.ServiceNames)
	assert.Equal(t, "st1", resp.StaffID)
	assert.Equal(t, "planned", resp.Status)
	assert.Equal(t, 100, resp.DurationMinutes)

	stored, err := s.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, at(11, 40), stored.EndAt)
	assert.Equal(t, "Елена", stored.StaffName)
	assert.Equal(t, []events.Type{events.AppointmentUpdated}, pub.events)
}

func TestExecute_ChangeClientRefreshesName(t *testing.T) {
	_, uc, _ := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		ClientID:      "2",
		ServiceIDs:    []string{"s1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Мария Петрова", resp.ClientName)
	assert.Equal(t, at(11, 5), resp.EndAt)
}

func TestExecute_Idempotent(t *testing.T) {
	s, uc, _ := setup(t)
	ctx := context.Background()
	req := &Request{AppointmentID: "a1", ClientID: "1", ServiceIDs: []string{"s1"}}

	before, err := s.GetByID(ctx, "a1")
	require.NoError(t, err)

	first, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	second, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, before.EndAt, first.EndAt)
	assert.Equal(t, first.EndAt, second.EndAt)
	assert.Equal(t, first.ClientName, second.ClientName)
	assert.Equal(t, first.ServiceNames, second.ServiceNames)
	assert.Equal(t, first.ServiceIDs, second.ServiceIDs)
}

func TestExecute_ConflictLeavesStoreUnchanged(t *testing.T) {
	s, uc, pub := setup(t)

	// 10:00 + 195 минут заходит на запись 12:00-15:15
	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		ClientID:      "1",
		ServiceIDs:    []string{"s3"},
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := s.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, at(11, 5), stored.EndAt)
	assert.Empty(t, pub.events)
}

func TestExecute_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "appointment", req: Request{AppointmentID: "nope", ClientID: "1", ServiceIDs: []string{"s1"}}, wantErr: ErrAppointmentNotFound},
		{name: "client", req: Request{AppointmentID: "a1", ClientID: "9", ServiceIDs: []string{"s1"}}, wantErr: ErrClientNotFound},
		{name: "services", req: Request{AppointmentID: "a1", ClientID: "1", ServiceIDs: []string{"zz"}}, wantErr: ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc, _ := setup(t)
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	_, uc, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: "a1", ClientID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ClientID: "1", ServiceIDs: []string{"s1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
