package models

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAnalyst UserRole = "analista"
	RoleReader  UserRole = "lector"
)

func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleAnalyst, RoleReader:
		return true
	}
	return false
}

type User struct {
	ID       uint     `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Name     string   `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Email    string   `gorm:"column:email;size:150;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"column:password;size:255;not null" json:"-"`
	Role     UserRole `gorm:"column:rol;type:varchar(10);not null" json:"rol"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }
