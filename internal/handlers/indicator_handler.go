package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type IndicatorHandler struct {
	DB *gorm.DB
}

func NewIndicatorHandler(db *gorm.DB) *IndicatorHandler { return &IndicatorHandler{DB: db} }

func (h *IndicatorHandler) List(c *gin.Context) {
	var indicators []models.Indicator
	if err := h.DB.Find(&indicators).Error; err != nil {
		serverError(c, "error al obtener indicadores económicos", err)
		return
	}
	c.JSON(http.StatusOK, indicators)
}

func (h *IndicatorHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_indicador"))
	if id == "" {
		badRequest(c, "debe enviar id_indicador")
		return
	}

	var indicator models.Indicator
	err := h.DB.Where("id_indicador = ?", id).First(&indicator).Error
	if err == gorm.ErrRecordNotFound {
		notFound(c, "indicador económico no encontrado")
		return
	}
	if err != nil {
		serverError(c, "error al buscar indicador económico", err)
		return
	}
	c.JSON(http.StatusOK, indicator)
}

type IndicatorReq struct {
	Year         int      `json:"anio" binding:"required"`
	GDP          *float64 `json:"pib"`
	Inflation    *float64 `json:"inflacion"`
	ITInvestment *float64 `json:"inversion_ti"`
	CountryCode  string   `json:"codigo_pais" binding:"required,len=3"`
}

func (h *IndicatorHandler) Create(c *gin.Context) {
	var req IndicatorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	req.CountryCode = strings.ToUpper(strings.TrimSpace(req.CountryCode))
	var country models.Country
	if err := h.DB.First(&country, "codigo_pais = ?", req.CountryCode).Error; err != nil {
		badRequest(c, fmt.Sprintf("el país con código %s no existe", req.CountryCode))
		return
	}

	indicator := models.Indicator{
		Year:         req.Year,
		GDP:          req.GDP,
		Inflation:    req.Inflation,
		ITInvestment: req.ITInvestment,
		CountryCode:  req.CountryCode,
	}
	if err := h.DB.Create(&indicator).Error; err != nil {
		serverError(c, "error al guardar el indicador económico", err)
		return
	}
	c.JSON(http.StatusCreated, indicator)
}

type IndicatorUpdateReq struct {
	Year         *int     `json:"anio"`
	GDP          *float64 `json:"pib"`
	Inflation    *float64 `json:"inflacion"`
	ITInvestment *float64 `json:"inversion_ti"`
	CountryCode  *string  `json:"codigo_pais" binding:"omitempty,len=3"`
}

func (h *IndicatorHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_indicador"))
	if id == "" {
		badRequest(c, "debe enviar id_indicador")
		return
	}

	var req IndicatorUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Year != nil {
		updates["anio"] = *req.Year
	}
	if req.GDP != nil {
		updates["pib"] = *req.GDP
	}
	if req.Inflation != nil {
		updates["inflacion"] = *req.Inflation
	}
	if req.ITInvestment != nil {
		updates["inversion_ti"] = *req.ITInvestment
	}
	if req.CountryCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CountryCode))
		var country models.Country
		if err := h.DB.First(&country, "codigo_pais = ?", code).Error; err != nil {
			badRequest(c, fmt.Sprintf("el país con código %s no existe", code))
			return
		}
		updates["codigo_pais"] = code
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Indicator{}).Where("id_indicador = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar el indicador económico", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "indicador económico no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "indicador económico actualizado correctamente"})
}

func (h *IndicatorHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_indicador"))
	if id == "" {
		badRequest(c, "debe enviar id_indicador")
		return
	}

	res := h.DB.Where("id_indicador = ?", id).Delete(&models.Indicator{})
	if res.Error != nil {
		serverError(c, "error al eliminar el indicador económico", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "indicador económico no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "indicador económico eliminado correctamente"})
}
