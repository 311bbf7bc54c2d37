package domain

import (
	"mime/multipart"
	"time"
)

// Picture is an uploaded image attachment. File is the transient upload
// used to derive the stored path; it is never persisted.
type Picture struct {
	ID         uint      `gorm:"primaryKey" json:"id" groups:"getPicture"`
	RealName   string    `gorm:"size:255;not null" json:"realName" validate:"required" groups:"getPicture"`
	RealPath   string    `gorm:"size:255;not null" json:"realPath" validate:"required" groups:"getPicture"`
	PublicPath string    `gorm:"size:255;not null" json:"publicPath" validate:"required" groups:"getPicture"`
	MimeType   string    `gorm:"size:255;not null" json:"mimeType" validate:"required" groups:"getPicture"`
	UploadDate time.Time `gorm:"not null" json:"uploadDate" groups:"getPicture"`
	Status     bool      `gorm:"not null" json:"-"`

	File *multipart.FileHeader `gorm:"-" json:"-" validate:"required"`
}
