package models

import "time"

type Indicator struct {
	ID           uint     `gorm:"column:id_indicador;primaryKey" json:"id_indicador"`
	Year         int      `gorm:"column:anio;not null" json:"anio"`
	GDP          *float64 `gorm:"column:pib;type:decimal(12,2)" json:"pib"`
	Inflation    *float64 `gorm:"column:inflacion;type:decimal(5,2)" json:"inflacion"`
	ITInvestment *float64 `gorm:"column:inversion_ti;type:decimal(12,2)" json:"inversion_ti"`
	CountryCode  string   `gorm:"column:codigo_pais;type:char(3);not null;index" json:"codigo_pais"`

	Country *Country `gorm:"foreignKey:CountryCode;references:Code;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Indicator) TableName() string { return "indicadores_economicos" }
