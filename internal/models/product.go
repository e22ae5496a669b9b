package models

import "time"

type Product struct {
	ID          uint       `gorm:"column:id_producto;primaryKey" json:"id_producto"`
	CompanyID   uint       `gorm:"column:id_empresa;not null;index" json:"id_empresa"`
	Name        string     `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Type        string     `gorm:"column:tipo;size:100;not null" json:"tipo"`
	Description string     `gorm:"column:descripcion;type:text" json:"descripcion"`
	LaunchDate  *time.Time `gorm:"column:fecha_lanzamiento" json:"fecha_lanzamiento"`

	Company *Company `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:RESTRICT" json:"empresa,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "productos_servicios" }
