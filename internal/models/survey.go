package models

import "time"

// DemandSurvey records the surveyed demand percentage for a product in a
// given year.
type DemandSurvey struct {
	ID            uint    `gorm:"column:id_encuesta;primaryKey" json:"id_encuesta"`
	DemandPercent float64 `gorm:"column:porcentaje_demanda;type:decimal(5,2);not null" json:"porcentaje_demanda"`
	Year          int     `gorm:"column:anio;not null" json:"anio"`
	ProductID     uint    `gorm:"column:id_producto;not null;index" json:"id_producto"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT" json:"producto,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DemandSurvey) TableName() string { return "encuestas_demanda" }
