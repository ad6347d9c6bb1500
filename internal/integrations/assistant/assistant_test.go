package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func testClient() *domain.Client {
	lastVisit := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	return &domain.Client{
		ID:               "1",
		Name:             "Анна Иванова",
		Tags:             []string{"VIP", "Длинные волосы"},
		Notes:            "Предпочитает кофе без сахара.",
		PreferredChannel: domain.ChannelEmail,
		LastVisitAt:      &lastVisit,
	}
}

func TestFallbacksWithoutGenerator(t *testing.T) {
	a := New(nil, time.Second, logger.Nop())
	client := testClient()

	summary := a.SummarizeClient(context.Background(), client, nil)
	assert.Contains(t, summary, "Анна Иванова")
	assert.Contains(t, summary, "15.06.2024")
	assert.Contains(t, summary, "email")

	ru := a.ReminderText(context.Background(), client, "Стрижка и укладка", LanguageRU)
	assert.Contains(t, ru, "Стрижка и укладка")
	assert.Contains(t, ru, "Ждем вас")

	en := a.ReminderText(context.Background(), client, "Haircut", LanguageEN)
	assert.Contains(t, en, `"Haircut"`)
	assert.Contains(t, en, "Dear Анна Иванова")
}

func TestFallbackSummaryWithoutVisits(t *testing.T) {
	client := testClient()
	client.LastVisitAt = nil
	assert.Contains(t, fallbackSummary(client), "пока не было")
}

func TestGeneratorUsed(t *testing.T) {
	gen := &fakeGenerator{text: "Лояльный клиент."}
	a := New(gen, time.Second, logger.Nop())

	history := []*domain.Appointment{{
		StartAt:      time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC),
		ServiceNames: []string{"Стрижка и укладка"},
		Status:       domain.StatusDone,
	}}

	assert.Equal(t, "Лояльный клиент.", a.SummarizeClient(context.Background(), testClient(), history))
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Client Tags: VIP, Длинные волосы")
	assert.Contains(t, gen.prompts[0], "Visit on 2024-06-15 for Стрижка и укладка, status: done.")

	a.ReminderText(context.Background(), testClient(), "Haircut", LanguageEN)
	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[1], "The message should be in English.")
}

func TestGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	a := New(gen, time.Second, logger.Nop())

	assert.Equal(t, summaryFailedText, a.SummarizeClient(context.Background(), testClient(), nil))
	assert.Equal(t,
		fallbackReminder(testClient(), "Стрижка и укладка", LanguageRU),
		a.ReminderText(context.Background(), testClient(), "Стрижка и укладка", LanguageRU))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageEN, ParseLanguage("en", LanguageRU))
	assert.Equal(t, LanguageRU, ParseLanguage(" RU ", LanguageEN))
	assert.Equal(t, LanguageRU, ParseLanguage("de", LanguageRU))
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), " ", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
