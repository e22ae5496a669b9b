package models

import "time"

// AccessLog is an audit row for login/logout/failed-login actions.
type AccessLog struct {
	ID         uint      `gorm:"column:id_log;primaryKey" json:"id_log"`
	UserID     uint      `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	AccessedAt time.Time `gorm:"column:fecha_acceso;not null" json:"fecha_acceso"`
	Action     string    `gorm:"column:accion;type:text;not null" json:"accion"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AccessLog) TableName() string { return "registros_accesos" }
