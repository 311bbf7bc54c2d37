// Package domain holds the persisted records of the ledger: users,
// current accounts, savings booklets, interest tiers and picture
// attachments.
//
// Field visibility in API responses is declared with `groups` tags: a field
// is rendered under a view only when its group set contains the requested
// group (see pkg/view). Status flags and password hashes carry no group and
// therefore never appear in any response.
package domain

import (
	"time"
)

// Booklet is a savings sub-account with its own balance and interest tier,
// linked to one current account.
type Booklet struct {
	ID               uint            `gorm:"primaryKey" json:"id" groups:"getBooklet,getCurrentAccount,getUser"`
	Name             string          `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150" groups:"getBooklet,getCurrentAccount,getUser"`
	Money            float64         `gorm:"not null" json:"money" validate:"gte=0" groups:"getBooklet,getCurrentAccount,getUser"`
	Status           bool            `gorm:"not null" json:"-"`
	CreatedAt        time.Time       `gorm:"not null" json:"createdAt" groups:"getBooklet"`
	BookletPercentID *uint           `gorm:"not null" json:"idBookletPercent" validate:"required"`
	BookletPercent   *BookletPercent `json:"bookletPercent" groups:"getBooklet,getCurrentAccount,getUser"`
	CurrentAccountID *uint           `gorm:"not null" json:"idCurrentAccount" validate:"required"`
	CurrentAccount   *CurrentAccount `json:"currentAccount" groups:"getBooklet"`
}
