package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func testCatalog() []*domain.Service {
	return []*domain.Service{
		{ID: "s1", Name: "Стрижка и укладка", BaseDurationMin: 60, BufferCleanupMin: 5},
		{ID: "s2", Name: "Маникюр с покрытием", BaseDurationMin: 90, BufferCleanupMin: 10},
		{ID: "s3", Name: "Сложное окрашивание", BaseDurationMin: 180, BufferCleanupMin: 15},
		{ID: "s4", Name: "Коррекция бровей", BaseDurationMin: 30, BufferCleanupMin: 5},
	}
}

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name       string
		serviceIDs []string
		want       Duration
	}{
		{"empty set", nil, Duration{}},
		{"single service", []string{"s1"}, Duration{TotalMinutes: 65, BufferMinutes: 5}},
		{"two services", []string{"s1", "s4"}, Duration{TotalMinutes: 100, BufferMinutes: 10}},
		{"order does not matter", []string{"s4", "s1"}, Duration{TotalMinutes: 100, BufferMinutes: 10}},
		{"unknown ids ignored", []string{"s1", "nope"}, Duration{TotalMinutes: 65, BufferMinutes: 5}},
		{"all unknown", []string{"x", "y"}, Duration{}},
		{"duplicate counts once", []string{"s2", "s2"}, Duration{TotalMinutes: 100, BufferMinutes: 10}},
		{"whole catalog", []string{"s1", "s2", "s3", "s4"}, Duration{TotalMinutes: 395, BufferMinutes: 35}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDuration(tt.serviceIDs, testCatalog()))
		})
	}
}

func TestComputeDuration_NilCatalogEntries(t *testing.T) {
	catalog := []*domain.Service{nil, {ID: "s1", BaseDurationMin: 10, BufferCleanupMin: 0}}
	assert.Equal(t, Duration{TotalMinutes: 10}, ComputeDuration([]string{"s1"}, catalog))
}

func TestServiceNames_KeepsRequestOrder(t *testing.T) {
	names := ServiceNames([]string{"s4", "missing", "s1"}, testCatalog())
	assert.Equal(t, []string{"Коррекция бровей", "Стрижка и укладка"}, names)
}
