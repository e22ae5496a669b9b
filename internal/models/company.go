package models

import "time"

// Company is a technology company operating in one of the observed
// countries. The same company name may appear once per country; the
// international-presence report groups on that.
type Company struct {
	ID                uint    `gorm:"column:id_empresa;primaryKey" json:"id_empresa"`
	Name              string  `gorm:"column:nombre;size:255;not null" json:"nombre"`
	CountryCode       string  `gorm:"column:pais;type:char(3);not null;index" json:"pais"`
	Sector            string  `gorm:"column:sector;size:100;not null" json:"sector"`
	FoundedYear       *int    `gorm:"column:anio_fundacion" json:"anio_fundacion"`
	Employees         *int    `gorm:"column:empleados" json:"empleados"`
	PrevYearEmployees *int    `gorm:"column:empleados_anio_anterior" json:"empleados_anio_anterior"`
	Website           *string `gorm:"column:sitio_web;size:255" json:"sitio_web"`
	LinkedIn          *string `gorm:"column:linkedin;size:255" json:"linkedin"`
	Description       string  `gorm:"column:descripcion;type:text" json:"descripcion"`
	TrendID           *uint   `gorm:"column:id_tendencia;index" json:"id_tendencia"`

	Country *Country `gorm:"foreignKey:CountryCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Trend   *Trend   `gorm:"foreignKey:TrendID;references:ID;constraint:OnDelete:SET NULL" json:"tendencia,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "empresas" }
