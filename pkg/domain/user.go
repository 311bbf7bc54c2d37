package domain

import (
	"database/sql/driver"
	"errors"
	"slices"
	"time"

	"github.com/goccy/go-json"
)

// RoleUser is carried implicitly by every user.
const RoleUser = "ROLE_USER"

// RoleAdmin unlocks the mutating admin routes.
const RoleAdmin = "ROLE_ADMIN"

// Roles is a list of role tags stored as a JSON text column.
type Roles []string

// Value implements driver.Valuer.
func (r Roles) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (r *Roles) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), r)
	case []byte:
		return json.Unmarshal(v, r)
	case nil:
		*r = nil
		return nil
	default:
		return errors.New("roles: unsupported column type")
	}
}

// Effective returns the role list with the implicit base role included.
func (r Roles) Effective() []string {
	if slices.Contains(r, RoleUser) {
		return slices.Clone(r)
	}
	return append(slices.Clone(r), RoleUser)
}

// Has reports whether the effective role list contains role.
func (r Roles) Has(role string) bool {
	return slices.Contains(r.Effective(), role)
}

// User is an account holder. Password holds a bcrypt hash and is opaque at
// this layer.
type User struct {
	ID               uint            `gorm:"primaryKey" json:"id" groups:"getBooklet,getCurrentAccount,getUser"`
	Username         string          `gorm:"size:180;uniqueIndex;not null" json:"username" validate:"required,min=2,max=180" groups:"getBooklet,getCurrentAccount,getUser"`
	Roles            Roles           `gorm:"type:text;not null" json:"-"`
	Password         string          `gorm:"not null" json:"-" validate:"required"`
	Status           bool            `gorm:"not null" json:"-"`
	CreatedAt        time.Time       `gorm:"not null" json:"createdAt" groups:"getUser"`
	CurrentAccountID *uint           `gorm:"not null" json:"idCurrentAccount" validate:"required"`
	CurrentAccount   *CurrentAccount `json:"currentAccount" groups:"getUser"`
}
