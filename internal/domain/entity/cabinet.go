package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSchedule = errors.New("invalid cabinet schedule")

// Cabinet is a doctor's practice location and weekly opening schedule
type Cabinet struct {
	ID       int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID int64          `gorm:"not null;uniqueIndex" json:"doctor_id"`
	Name     string         `gorm:"type:varchar(255);not null" json:"name"`
	Address  string         `gorm:"type:text;not null" json:"address"`
	Schedule WeeklySchedule `gorm:"type:text" json:"schedule"`
}

func (Cabinet) TableName() string {
	return "cabinets"
}

// DaySchedule is the opening window of one weekday, times in HH:MM
type DaySchedule struct {
	IsOpen bool   `json:"isOpen"`
	Start  string `json:"start" validate:"omitempty,hhmm"`
	End    string `json:"end" validate:"omitempty,hhmm"`
}

// WeeklySchedule is a fixed seven-day record stored as JSON text
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DefaultSchedule is applied when a cabinet is created without one
func DefaultSchedule() WeeklySchedule {
	fullDay := DaySchedule{IsOpen: true, Start: "09:00", End: "17:00"}
	return WeeklySchedule{
		Monday:    fullDay,
		Tuesday:   fullDay,
		Wednesday: DaySchedule{IsOpen: true, Start: "09:00", End: "12:00"},
		Thursday:  fullDay,
		Friday:    fullDay,
		Saturday:  DaySchedule{IsOpen: false, Start: "09:00", End: "12:00"},
		Sunday:    DaySchedule{IsOpen: false, Start: "", End: ""},
	}
}

func (s WeeklySchedule) days() []struct {
	name string
	day  DaySchedule
} {
	return []struct {
		name string
		day  DaySchedule
	}{
		{"monday", s.Monday},
		{"tuesday", s.Tuesday},
		{"wednesday", s.Wednesday},
		{"thursday", s.Thursday},
		{"friday", s.Friday},
		{"saturday", s.Saturday},
		{"sunday", s.Sunday},
	}
}

// Validate checks that open days have start < end and that every time present is HH:MM
func (s WeeklySchedule) Validate() error {
	for _, d := range s.days() {
		start, startErr := parseClock(d.day.Start)
		end, endErr := parseClock(d.day.End)
		if startErr != nil || endErr != nil {
			return fmt.Errorf("%w: %s times must use HH:MM", ErrInvalidSchedule, d.name)
		}
		if !d.day.IsOpen {
			continue
		}
		if start == nil || end == nil {
			return fmt.Errorf("%w: %s is open without start and end", ErrInvalidSchedule, d.name)
		}
		if !start.Before(*end) {
			return fmt.Errorf("%w: %s must start before it ends", ErrInvalidSchedule, d.name)
		}
	}
	return nil
}

func parseClock(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Value implements driver.Valuer
func (s WeeklySchedule) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner; NULL and empty text decode to the zero schedule
func (s *WeeklySchedule) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*s = WeeklySchedule{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal schedule value:", value))
	}

	if len(bytes) == 0 {
		*s = WeeklySchedule{}
		return nil
	}

	var result WeeklySchedule
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = result
	return nil
}
