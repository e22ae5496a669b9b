package models

import "time"

type TrendRelevance string

const (
	RelevanceHigh   TrendRelevance = "Alta"
	RelevanceMedium TrendRelevance = "Media"
	RelevanceLow    TrendRelevance = "Baja"
)

func ValidTrendRelevance(r TrendRelevance) bool {
	switch r {
	case RelevanceHigh, RelevanceMedium, RelevanceLow:
		return true
	}
	return false
}

type Trend struct {
	ID          uint           `gorm:"column:id_tendencia;primaryKey" json:"id_tendencia"`
	Name        string         `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Description string         `gorm:"column:descripcion;type:text" json:"descripcion"`
	Relevance   TrendRelevance `gorm:"column:relevancia_region;type:varchar(10);not null" json:"relevancia_region"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Trend) TableName() string { return "tendencias_tecnologicas" }
