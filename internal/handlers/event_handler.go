package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type EventHandler struct {
	DB *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler { return &EventHandler{DB: db} }

func (h *EventHandler) List(c *gin.Context) {
	var events []models.Event
	if err := h.DB.Preload("Company").Find(&events).Error; err != nil {
		serverError(c, "error al obtener eventos de sector", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_evento"))
	if id == "" {
		badRequest(c, "debe enviar id_evento")
		return
	}

	var event models.Event
	err := h.DB.Preload("Company").Where("id_evento = ?", id).First(&event).Error
	if err == gorm.ErrRecordNotFound {
		notFound(c, "evento de sector no encontrado")
		return
	}
	if err != nil {
		serverError(c, "error al buscar evento de sector", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

type EventReq struct {
	Title           string           `json:"titulo" binding:"required"`
	Description     string           `json:"descripcion"`
	Type            models.EventType `json:"tipo_evento" binding:"required"`
	Date            time.Time        `json:"fecha" binding:"required"`
	AffectedCountry string           `json:"pais_afectado" binding:"omitempty,len=3"`
	CompanyID       *uint            `json:"empresa_relacionada"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !models.ValidEventType(req.Type) {
		badRequest(c, "tipo_evento debe ser inversion, adquisicion, cierre o fuga_datos")
		return
	}

	// pais_afectado is stored as sent; only the related company is
	// validated, as the source data has always worked.
	if req.CompanyID != nil {
		var company models.Company
		if err := h.DB.First(&company, *req.CompanyID).Error; err != nil {
			badRequest(c, fmt.Sprintf("la empresa con id %d no existe", *req.CompanyID))
			return
		}
	}

	event := models.Event{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Type:            req.Type,
		Date:            req.Date,
		AffectedCountry: strings.ToUpper(strings.TrimSpace(req.AffectedCountry)),
		CompanyID:       req.CompanyID,
	}
	if err := h.DB.Create(&event).Error; err != nil {
		serverError(c, "error al guardar el evento de sector", err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

type EventUpdateReq struct {
	Title           *string           `json:"titulo"`
	Description     *string           `json:"descripcion"`
	Type            *models.EventType `json:"tipo_evento"`
	Date            *time.Time        `json:"fecha"`
	AffectedCountry *string           `json:"pais_afectado" binding:"omitempty,len=3"`
	CompanyID       *uint             `json:"empresa_relacionada"`
}

func (h *EventHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_evento"))
	if id == "" {
		badRequest(c, "debe enviar id_evento")
		return
	}

	var req EventUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["titulo"] = *req.Title
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if req.Type != nil {
		if !models.ValidEventType(*req.Type) {
			badRequest(c, "tipo_evento debe ser inversion, adquisicion, cierre o fuga_datos")
			return
		}
		updates["tipo_evento"] = *req.Type
	}
	if req.Date != nil {
		updates["fecha"] = *req.Date
	}
	if req.AffectedCountry != nil {
		updates["pais_afectado"] = strings.ToUpper(strings.TrimSpace(*req.AffectedCountry))
	}
	if req.CompanyID != nil {
		var company models.Company
		if err := h.DB.First(&company, *req.CompanyID).Error; err != nil {
			badRequest(c, fmt.Sprintf("la empresa con id %d no existe", *req.CompanyID))
			return
		}
		updates["empresa_relacionada"] = *req.CompanyID
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Event{}).Where("id_evento = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar el evento de sector", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "evento de sector no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evento de sector actualizado correctamente"})
}

func (h *EventHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_evento"))
	if id == "" {
		badRequest(c, "debe enviar id_evento")
		return
	}

	res := h.DB.Where("id_evento = ?", id).Delete(&models.Event{})
	if res.Error != nil {
		serverError(c, "error al eliminar el evento de sector", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "evento de sector no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evento de sector eliminado correctamente"})
}
