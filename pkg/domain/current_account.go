package domain

import (
	"time"
)

// CurrentAccount is a checking account aggregate owning booklets and users.
type CurrentAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id" groups:"getBooklet,getCurrentAccount,getUser"`
	Name      string    `gorm:"size:255;not null" json:"name" validate:"required,min=2,max=255" groups:"getBooklet,getCurrentAccount,getUser"`
	Money     float64   `gorm:"not null" json:"money" validate:"gte=0" groups:"getBooklet,getCurrentAccount,getUser"`
	Status    bool      `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt" groups:"getBooklet,getCurrentAccount"`
	Booklets  []Booklet `gorm:"foreignKey:CurrentAccountID" json:"booklets" groups:"getCurrentAccount,getUser"`
	Users     []User    `gorm:"foreignKey:CurrentAccountID" json:"users" groups:"getBooklet,getCurrentAccount"`
}
