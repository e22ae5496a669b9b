package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type TrendHandler struct {
	DB *gorm.DB
}

func NewTrendHandler(db *gorm.DB) *TrendHandler { return &TrendHandler{DB: db} }

func (h *TrendHandler) List(c *gin.Context) {
	var trends []models.Trend
	if err := h.DB.Find(&trends).Error; err != nil {
		serverError(c, "error al obtener tendencias", err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

func (h *TrendHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_tendencia"))
	if id == "" {
		badRequest(c, "debe enviar id_tendencia")
		return
	}

	var trends []models.Trend
	if err := h.DB.Where("id_tendencia = ?", id).Find(&trends).Error; err != nil {
		serverError(c, "error al buscar tendencia", err)
		return
	}
	if len(trends) == 0 {
		notFound(c, "tendencia no encontrada")
		return
	}
	c.JSON(http.StatusOK, trends)
}

type TrendReq struct {
	Name        string                `json:"nombre" binding:"required"`
	Description string                `json:"descripcion"`
	Relevance   models.TrendRelevance `json:"relevancia_region" binding:"required"`
}

func (h *TrendHandler) Create(c *gin.Context) {
	var req TrendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !models.ValidTrendRelevance(req.Relevance) {
		badRequest(c, "relevancia_region debe ser Alta, Media o Baja")
		return
	}

	trend := models.Trend{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Relevance:   req.Relevance,
	}
	if err := h.DB.Create(&trend).Error; err != nil {
		serverError(c, "error al guardar la tendencia", err)
		return
	}
	c.JSON(http.StatusCreated, trend)
}

type TrendUpdateReq struct {
	Name        *string                `json:"nombre"`
	Description *string                `json:"descripcion"`
	Relevance   *models.TrendRelevance `json:"relevancia_region"`
}

func (h *TrendHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_tendencia"))
	if id == "" {
		badRequest(c, "debe enviar id_tendencia")
		return
	}

	var req TrendUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if req.Relevance != nil {
		if !models.ValidTrendRelevance(*req.Relevance) {
			badRequest(c, "relevancia_region debe ser Alta, Media o Baja")
			return
		}
		updates["relevancia_region"] = *req.Relevance
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Trend{}).Where("id_tendencia = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar la tendencia", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "tendencia no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tendencia actualizada correctamente"})
}

func (h *TrendHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_tendencia"))
	if id == "" {
		badRequest(c, "debe enviar id_tendencia")
		return
	}

	res := h.DB.Where("id_tendencia = ?", id).Delete(&models.Trend{})
	if res.Error != nil {
		serverError(c, "error al eliminar la tendencia", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "tendencia no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tendencia eliminada correctamente"})
}
