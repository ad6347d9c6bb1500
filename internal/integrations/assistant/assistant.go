package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Language язык генерируемого текста
type Language string

const (
	LanguageRU Language = "RU"
	LanguageEN Language = "EN"
)

// ParseLanguage разбирает код языка; неизвестное значение дает def
func ParseLanguage(s string, def Language) Language {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case LanguageRU:
		return LanguageRU
	case LanguageEN:
		return LanguageEN
	default:
		return def
	}
}

const summaryFailedText = "Не удалось сгенерировать сводку. Проверьте историю вручную."

// Assistant тексты для администратора салона.
// Без генератора или при его ошибке возвращает шаблонный текст, ошибку наружу не отдает.
type Assistant struct {
	generator TextGenerator
	timeout   time.Duration
	logger    Logger
}

// New создает ассистента. generator == nil означает режим шаблонов.
func New(generator TextGenerator, timeout time.Duration, logger Logger) *Assistant {
	return &Assistant{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// SummarizeClient краткая сводка по клиенту перед звонком
func (a *Assistant) SummarizeClient(ctx context.Context, client *domain.Client, history []*domain.Appointment) string {
	if a.generator == nil {
		return fallbackSummary(client)
	}

	text, err := a.generate(ctx, summaryPrompt(client, history))
	if err != nil {
		a.logger.Error("Assistant: failed to summarize client id=%s: %v", client.ID, err)
		return summaryFailedText
	}
	return text
}

// ReminderText текст напоминания о повторной записи
func (a *Assistant) ReminderText(ctx context.Context, client *domain.Client, serviceName string, lang Language) string {
	if a.generator == nil {
		return fallbackReminder(client, serviceName, lang)
	}

	text, err := a.generate(ctx, reminderPrompt(client, serviceName, lang))
	if err != nil {
		a.logger.Error("Assistant: failed to generate reminder for client id=%s: %v", client.ID, err)
		return fallbackReminder(client, serviceName, lang)
	}
	return text
}

func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	return a.generator.Generate(ctx, prompt)
}

func fallbackSummary(client *domain.Client) string {
	lastVisit := "пока не было"
	if client.LastVisitAt != nil {
		lastVisit = client.LastVisitAt.Format("02.01.2006")
	}
	return fmt.Sprintf("Это постоянный клиент по имени %s. Последний визит: %s. Предпочитает общаться через %s.",
		client.Name, lastVisit, client.PreferredChannel)
}

func fallbackReminder(client *domain.Client, serviceName string, lang Language) string {
	if lang == LanguageEN {
		return fmt.Sprintf("Dear %s, this is a friendly reminder to book your next %q appointment. We look forward to seeing you!",
			client.Name, serviceName)
	}
	return fmt.Sprintf("Уважаемый(ая) %s, напоминаем вам о необходимости записи на услугу «%s». Ждем вас в нашем салоне!",
		client.Name, serviceName)
}

func summaryPrompt(client *domain.Client, history []*domain.Appointment) string {
	var b strings.Builder
	b.WriteString("As an expert salon administrator, provide a very brief summary (2-3 sentences) ")
	b.WriteString("of a client's history for a quick pre-call briefing.\n")
	fmt.Fprintf(&b, "Client Name: %s\n", client.Name)
	fmt.Fprintf(&b, "Client Tags: %s\n", strings.Join(client.Tags, ", "))
	fmt.Fprintf(&b, "Notes: %s\n\n", client.Notes)
	b.WriteString("Visit History:\n")
	if len(history) == 0 {
		b.WriteString("- no completed visits\n")
	}
	for _, a := range history {
		fmt.Fprintf(&b, "- Visit on %s for %s, status: %s.\n",
			a.StartAt.Format(domain.DateFormat), strings.Join(a.ServiceNames, ", "), a.Status)
	}
	b.WriteString("\nFocus on their loyalty, last visit and any mentioned preferences. ")
	b.WriteString("The summary should be in Russian.")
	return b.String()
}

func reminderPrompt(client *domain.Client, serviceName string, lang Language) string {
	language := "Russian"
	if lang == LanguageEN {
		language = "English"
	}

	var b strings.Builder
	b.WriteString("Generate a concise, friendly, and professional reminder message for a beauty salon client.\n")
	fmt.Fprintf(&b, "The client's name is %s.\n", client.Name)
	fmt.Fprintf(&b, "The recommended service is %q.\n", serviceName)
	b.WriteString("The tone should be welcoming and not pushy.\n")
	fmt.Fprintf(&b, "The message should be in %s.\n", language)
	b.WriteString("Do not include placeholders for booking links or phone numbers. Just generate the core message text.")
	return b.String()
}
