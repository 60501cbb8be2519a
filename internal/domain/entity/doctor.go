package entity

import "time"

// Doctor is the authenticating practitioner who owns patients, appointments and one cabinet
type Doctor struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Specialty string    `gorm:"type:varchar(150)" json:"specialty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Cabinet *Cabinet `gorm:"foreignKey:DoctorID" json:"cabinet,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
