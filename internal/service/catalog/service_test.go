package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/assistant"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

type fakeAssistant struct {
	history     []*domain.Appointment
	serviceName string
	lang        assistant.Language
}

func (f *fakeAssistant) SummarizeClient(_ context.Context, client *domain.Client, history []*domain.Appointment) string {
	f.history = history
	return "summary for " + client.Name
}

func (f *fakeAssistant) ReminderText(_ context.Context, client *domain.Client, serviceName string, lang assistant.Language) string {
	f.serviceName = serviceName
	f.lang = lang
	return "reminder for " + client.Name
}

func setup(t *testing.T) (*Service, *fakeAssistant) {
	t.Helper()
	s := memory.NewStore()
	memory.Seed(s, time.UTC, time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))

	fa := &fakeAssistant{}
	return NewService(s, s, fa, assistant.LanguageRU, logger.Nop()), fa
}

func TestListings(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	services, err := svc.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services.Services, 4)
	assert.Equal(t, 60, services.Services[0].BaseDurationMin)

	staff, err := svc.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff.Staff, 1)
	assert.Equal(t, "master", staff.Staff[0].Role)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients.Clients, 4)
}

func TestGetClient(t *testing.T) {
	svc, _ := setup(t)

	c, err := svc.GetClient(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Анна Иванова", c.Name)
	assert.True(t, c.Consents.MarketingEmail)
	require.NotNil(t, c.LastVisitAt)
	assert.Equal(t, "2024-06-15T14:00:00Z", *c.LastVisitAt)

	_, err = svc.GetClient(context.Background(), "404")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetClientHistory_DoneNewestFirst(t *testing.T) {
	svc, _ := setup(t)

	h, err := svc.GetClientHistory(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, h.Visits, 2)
	assert.Equal(t, "h1", h.Visits[0].AppointmentID)
	assert.Equal(t, "h4", h.Visits[1].AppointmentID)

	h, err = svc.GetClientHistory(context.Background(), "4")
	require.NoError(t, err)
	assert.Empty(t, h.Visits)
}

func TestGetClientSummary(t *testing.T) {
	svc, fa := setup(t)

	resp, err := svc.GetClientSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "summary for Анна Иванова", resp.Text)
	assert.Len(t, fa.history, 2)
}

func TestGetReminderText(t *testing.T) {
	svc, fa := setup(t)
	ctx := context.Background()

	resp, err := svc.GetReminderText(ctx, "2", "s4", "en")
	require.NoError(t, err)
	assert.Equal(t, "reminder for Мария Петрова", resp.Text)
	assert.Equal(t, "Коррекция бровей", fa.serviceName)
	assert.Equal(t, assistant.LanguageEN, fa.lang)

	// Без услуги берется последний визит
	_, err = svc.GetReminderText(ctx, "1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Стрижка и укладка", fa.serviceName)
	assert.Equal(t, assistant.LanguageRU, fa.lang)

	_, err = svc.GetReminderText(ctx, "1", "nope", "")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.GetReminderText(ctx, "4", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
