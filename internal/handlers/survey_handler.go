package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type SurveyHandler struct {
	DB *gorm.DB
}

func NewSurveyHandler(db *gorm.DB) *SurveyHandler { return &SurveyHandler{DB: db} }

func (h *SurveyHandler) List(c *gin.Context) {
	var surveys []models.DemandSurvey
	if err := h.DB.Preload("Product").Find(&surveys).Error; err != nil {
		serverError(c, "error al obtener encuestas de demanda", err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

func (h *SurveyHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_encuesta"))
	if id == "" {
		badRequest(c, "debe enviar id_encuesta")
		return
	}

	var survey models.DemandSurvey
	err := h.DB.Preload("Product").Where("id_encuesta = ?", id).First(&survey).Error
	if err == gorm.ErrRecordNotFound {
		notFound(c, "encuesta de demanda no encontrada")
		return
	}
	if err != nil {
		serverError(c, "error al buscar encuesta de demanda", err)
		return
	}
	c.JSON(http.StatusOK, survey)
}

type SurveyReq struct {
	DemandPercent *float64 `json:"porcentaje_demanda" binding:"required,min=0,max=100"`
	Year          int      `json:"anio" binding:"required"`
	ProductID     uint     `json:"id_producto" binding:"required"`
}

func (h *SurveyHandler) Create(c *gin.Context) {
	var req SurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		badRequest(c, fmt.Sprintf("el producto/servicio con id %d no existe", req.ProductID))
		return
	}

	survey := models.DemandSurvey{
		DemandPercent: *req.DemandPercent,
		Year:          req.Year,
		ProductID:     req.ProductID,
	}
	if err := h.DB.Create(&survey).Error; err != nil {
		serverError(c, "error al guardar la encuesta de demanda", err)
		return
	}
	c.JSON(http.StatusCreated, survey)
}

type SurveyUpdateReq struct {
	DemandPercent *float64 `json:"porcentaje_demanda" binding:"omitempty,min=0,max=100"`
	Year          *int     `json:"anio"`
	ProductID     *uint    `json:"id_producto"`
}

func (h *SurveyHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_encuesta"))
	if id == "" {
		badRequest(c, "debe enviar id_encuesta")
		return
	}

	var req SurveyUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.DemandPercent != nil {
		updates["porcentaje_demanda"] = *req.DemandPercent
	}
	if req.Year != nil {
		updates["anio"] = *req.Year
	}
	if req.ProductID != nil {
		var product models.Product
		if err := h.DB.First(&product, *req.ProductID).Error; err != nil {
			badRequest(c, fmt.Sprintf("el producto/servicio con id %d no existe", *req.ProductID))
			return
		}
		updates["id_producto"] = *req.ProductID
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.DemandSurvey{}).Where("id_encuesta = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar la encuesta de demanda", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "encuesta de demanda no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "encuesta de demanda actualizada correctamente"})
}

func (h *SurveyHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_encuesta"))
	if id == "" {
		badRequest(c, "debe enviar id_encuesta")
		return
	}

	res := h.DB.Where("id_encuesta = ?", id).Delete(&models.DemandSurvey{})
	if res.Error != nil {
		serverError(c, "error al eliminar la encuesta de demanda", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "encuesta de demanda no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "encuesta de demanda eliminada correctamente"})
}
