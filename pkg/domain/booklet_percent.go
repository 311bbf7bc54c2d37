package domain

// BookletPercent is an interest-rate tier shared by many booklets.
type BookletPercent struct {
	ID      uint    `gorm:"primaryKey" json:"id" groups:"getBooklet,getCurrentAccount,getUser,getBookletPercent"`
	Percent float64 `gorm:"not null" json:"percent" validate:"gte=0" groups:"getBooklet,getCurrentAccount,getUser,getBookletPercent"`
	Status  bool    `gorm:"not null" json:"-"`

	// Inverse side, never rendered. Kept for relationship traversal when a
	// tier is hard-deleted.
	Booklets []Booklet `gorm:"foreignKey:BookletPercentID" json:"-"`
}
