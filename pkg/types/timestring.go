package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfDay возвращается, когда результат выходит за пределы суток
	ErrTimeOutOfDay = errors.New("time string out of day bounds")
)

// TimeString время суток в формате HH:MM
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString создает TimeString из часов и минут time.Time (в его локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromMinutes создает TimeString из минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfDay, minutes)
	}
	return TimeString{minutes: minutes, valid: true}, nil
}

// NewTimeStringFromString парсит строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// MinuteOfDay возвращает количество минут от полуночи
func (t TimeString) MinuteOfDay() int {
	return t.minutes
}

// AddMinutes возвращает время, сдвинутое на n минут
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// IsZero возвращает true для неинициализированного значения
func (t TimeString) IsZero() bool {
	return !t.valid
}

// On возвращает момент времени t в указанный день (в локации day)
func (t TimeString) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.minutes/60, t.minutes%60, 0, 0, day.Location())
}

func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}
