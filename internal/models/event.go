package models

import "time"

type EventType string

const (
	EventInvestment  EventType = "inversion"
	EventAcquisition EventType = "adquisicion"
	EventClosure     EventType = "cierre"
	EventDataBreach  EventType = "fuga_datos"
)

func ValidEventType(t EventType) bool {
	switch t {
	case EventInvestment, EventAcquisition, EventClosure, EventDataBreach:
		return true
	}
	return false
}

// Event is a dated sector occurrence. AffectedCountry is stored as sent
// and is deliberately not validated against paises, matching the
// observed behavior of the data set.
type Event struct {
	ID              uint      `gorm:"column:id_evento;primaryKey" json:"id_evento"`
	Title           string    `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Description     string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	Type            EventType `gorm:"column:tipo_evento;type:varchar(20);not null;index" json:"tipo_evento"`
	Date            time.Time `gorm:"column:fecha;not null" json:"fecha"`
	AffectedCountry string    `gorm:"column:pais_afectado;type:char(3)" json:"pais_afectado"`
	CompanyID       *uint     `gorm:"column:empresa_relacionada;index" json:"empresa_relacionada"`

	Company *Company `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:SET NULL" json:"empresa,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "eventos_sectores" }
