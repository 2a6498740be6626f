package leave

import "time"

// Booking is a paid-vacation reservation. Dates are calendar-date granularity,
// both ends inclusive.
type Booking struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"column:user_id;not null;index"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}

func (Booking) TableName() string {
	return "bookings"
}

// MedicalLeave does not consume vacation quota. WorkingDays is computed once
// at creation and never recomputed, so later holiday-calendar changes cannot
// alter historical reports.
type MedicalLeave struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"column:user_id;not null;index"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	DiseaseCode string    `gorm:"column:disease_code;not null"`
	WorkingDays int       `gorm:"column:working_days;not null"`
	Year        int       `gorm:"column:year;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

func (MedicalLeave) TableName() string {
	return "medical_leave"
}

// ClosedPeriod is an organization-wide shutdown. It consumes quota for every
// staff member whether or not they booked it themselves.
type ClosedPeriod struct {
	ID          string    `gorm:"primaryKey"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

func (ClosedPeriod) TableName() string {
	return "closed_periods"
}
