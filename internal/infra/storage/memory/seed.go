package memory

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func mustTime(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

// Seed наполняет хранилище демонстрационными данными.
// Записи на сегодня ставятся по локальному времени loc.
func Seed(s *Store, loc *time.Location, now time.Time) {
	SeedCatalog(s)
	SeedAppointments(s, loc, now)
}

// SeedCatalog загружает демонстрационных клиентов, услуги и сотрудников
func SeedCatalog(s *Store) {
	s.AddClient(domain.Client{
		ID: "1", Name: "Анна Иванова", Phone: "+79261234567", Email: "anna@example.com",
		ConsentMarketingEmail: true, ConsentMarketingSMS: true, PreferredChannel: domain.ChannelEmail,
		Tags: []string{"VIP", "Длинные волосы"}, Notes: "Предпочитает кофе без сахара.",
		CadenceDefaultDays: 30, LastVisitAt: mustTime("2024-06-15T14:00:00Z"), Status: domain.ClientActive,
	})
	s.AddClient(domain.Client{
		ID: "2", Name: "Мария Петрова", Phone: "+79167654321", Email: "maria@example.com",
		ConsentMarketingSMS: true, PreferredChannel: domain.ChannelSMS,
		Tags: []string{"Новый клиент"}, CadenceDefaultDays: 45,
		LastVisitAt: mustTime("2024-05-20T11:30:00Z"), Status: domain.ClientActive,
	})
	s.AddClient(domain.Client{
		ID: "3", Name: "Ольга Сидорова", Phone: "+79031112233", Email: "olga@example.com",
		ConsentMarketingEmail: true, PreferredChannel: domain.ChannelCall,
		Notes: "Сложное окрашивание, требует консультации.", CadenceDefaultDays: 90,
		LastVisitAt: mustTime("2024-04-10T16:00:00Z"), Status: domain.ClientActive,
	})
	s.AddClient(domain.Client{
		ID: "4", Name: "John Doe", Phone: "+14155552671", Email: "john@example.com",
		ConsentMarketingEmail: true, ConsentMarketingSMS: true, PreferredChannel: domain.ChannelEmail,
		Tags: []string{"Frequent Visitor"}, Notes: "Likes to chat.", CadenceDefaultDays: 21,
		LastVisitAt: mustTime("2024-06-25T10:00:00Z"), Status: domain.ClientPaused,
	})

	s.AddService(domain.Service{ID: "s1", Name: "Стрижка и укладка", BaseDurationMin: 60, BufferCleanupMin: 5, DefaultCadenceDays: 45})
	s.AddService(domain.Service{ID: "s2", Name: "Маникюр с покрытием", BaseDurationMin: 90, BufferCleanupMin: 10, DefaultCadenceDays: 21})
	s.AddService(domain.Service{ID: "s3", Name: "Сложное окрашивание", BaseDurationMin: 180, BufferCleanupMin: 15, DefaultCadenceDays: 90})
	s.AddService(domain.Service{ID: "s4", Name: "Коррекция бровей", BaseDurationMin: 30, BufferCleanupMin: 5, DefaultCadenceDays: 30})

	s.AddStaff(domain.Staff{ID: "st1", Name: "Елена", Role: domain.RoleMaster})
}

// SeedAppointments загружает записи на сегодня и историю визитов
func SeedAppointments(s *Store, loc *time.Location, now time.Time) {
	if loc == nil {
		loc = time.Local
	}

	y, m, d := now.In(loc).Date()
	at := func(hour, minute int) time.Time {
		return time.Date(y, m, d, hour, minute, 0, 0, loc)
	}

	type seedAppointment struct {
		id, clientID, clientName, serviceID, serviceName string
		start, end                                       time.Time
		status                                           domain.AppointmentStatus
	}

	seeds := []seedAppointment{
		{"a1", "1", "Анна Иванова", "s1", "Стрижка и укладка", at(10, 0), at(11, 5), domain.StatusPlanned},
		{"a3", "3", "Ольга Сидорова", "s3", "Сложное окрашивание", at(12, 0), at(15, 15), domain.StatusPlanned},
		{"a5", "4", "John Doe", "s1", "Стрижка и укладка", at(16, 0), at(17, 5), domain.StatusPlanned},
		{"a6", "2", "Мария Петрова", "s4", "Коррекция бровей", at(9, 0), at(9, 35), domain.StatusPlanned},
		{"a7", "1", "Анна Иванова", "s4", "Коррекция бровей", at(11, 10), at(11, 45), domain.StatusPlanned},
		{"a8", "2", "Мария Петрова", "s2", "Маникюр с покрытием", at(17, 15), at(18, 55), domain.StatusPlanned},

		// История посещений
		{"h1", "1", "Анна Иванова", "s1", "Стрижка и укладка", *mustTime("2024-06-15T14:00:00Z"), *mustTime("2024-06-15T15:05:00Z"), domain.StatusDone},
		{"h2", "2", "Мария Петрова", "s2", "Маникюр с покрытием", *mustTime("2024-05-20T11:30:00Z"), *mustTime("2024-05-20T13:10:00Z"), domain.StatusDone},
		{"h3", "3", "Ольга Сидорова", "s3", "Сложное окрашивание", *mustTime("2024-04-10T16:00:00Z"), *mustTime("2024-04-10T19:15:00Z"), domain.StatusDone},
		{"h4", "1", "Анна Иванова", "s4", "Коррекция бровей", *mustTime("2024-05-14T09:00:00Z"), *mustTime("2024-05-14T09:35:00Z"), domain.StatusDone},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sa := range seeds {
		s.appointments[sa.id] = &domain.Appointment{
			ID:           sa.id,
			ClientID:     sa.clientID,
			ServiceIDs:   []string{sa.serviceID},
			StaffID:      "st1",
			StartAt:      sa.start,
			EndAt:        sa.end,
			Status:       sa.status,
			ClientName:   sa.clientName,
			ServiceNames: []string{sa.serviceName},
			StaffName:    "Елена",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
}
