package models

import "time"

type Country struct {
	Code              string   `gorm:"column:codigo_pais;type:char(3);primaryKey" json:"codigo_pais"`
	Name              string   `gorm:"column:nombre;size:100;not null" json:"nombre"`
	TechGDP           *float64 `gorm:"column:pbi_tech;type:decimal(12,2)" json:"pbi_tech"`
	SoftwareCompanies *int     `gorm:"column:num_empresas_software" json:"num_empresas_software"`
	ITExports         *float64 `gorm:"column:exportaciones_ti;type:decimal(12,2)" json:"exportaciones_ti"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Country) TableName() string { return "paises" }
