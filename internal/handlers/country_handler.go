package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type CountryHandler struct {
	DB *gorm.DB
}

func NewCountryHandler(db *gorm.DB) *CountryHandler { return &CountryHandler{DB: db} }

func (h *CountryHandler) List(c *gin.Context) {
	var countries []models.Country
	if err := h.DB.Find(&countries).Error; err != nil {
		serverError(c, "error al obtener países", err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// Search matches codigo_pais by substring and returns a (possibly empty)
// list with 200, unlike the id lookups of the other resources.
func (h *CountryHandler) Search(c *gin.Context) {
	code := strings.TrimSpace(c.Query("codigo_pais"))
	if code == "" {
		badRequest(c, "debe enviar codigo_pais")
		return
	}

	var countries []models.Country
	if err := h.DB.Where("codigo_pais LIKE ?", "%"+code+"%").Find(&countries).Error; err != nil {
		serverError(c, "error al buscar país", err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

type CountryReq struct {
	Code              string   `json:"codigo_pais" binding:"required,len=3"`
	Name              string   `json:"nombre" binding:"required"`
	TechGDP           *float64 `json:"pbi_tech"`
	SoftwareCompanies *int     `json:"num_empresas_software"`
	ITExports         *float64 `json:"exportaciones_ti"`
}

func (h *CountryHandler) Create(c *gin.Context) {
	var req CountryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	country := models.Country{
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:              strings.TrimSpace(req.Name),
		TechGDP:           req.TechGDP,
		SoftwareCompanies: req.SoftwareCompanies,
		ITExports:         req.ITExports,
	}

	var exists models.Country
	if err := h.DB.First(&exists, "codigo_pais = ?", country.Code).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "el país ya existe"})
		return
	}

	if err := h.DB.Create(&country).Error; err != nil {
		serverError(c, "error al guardar el país", err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

type CountryUpdateReq struct {
	Name              *string  `json:"nombre"`
	TechGDP           *float64 `json:"pbi_tech"`
	SoftwareCompanies *int     `json:"num_empresas_software"`
	ITExports         *float64 `json:"exportaciones_ti"`
}

func (h *CountryHandler) Update(c *gin.Context) {
	code := strings.TrimSpace(c.Query("codigo_pais"))
	if code == "" {
		badRequest(c, "debe enviar codigo_pais")
		return
	}

	var req CountryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.TechGDP != nil {
		updates["pbi_tech"] = *req.TechGDP
	}
	if req.SoftwareCompanies != nil {
		updates["num_empresas_software"] = *req.SoftwareCompanies
	}
	if req.ITExports != nil {
		updates["exportaciones_ti"] = *req.ITExports
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Country{}).Where("codigo_pais = ?", code).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al actualizar el país", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "país no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "país actualizado correctamente"})
}

// Delete refuses to remove a country that companies or indicators still
// reference, instead of orphaning them.
func (h *CountryHandler) Delete(c *gin.Context) {
	code := strings.TrimSpace(c.Query("codigo_pais"))
	if code == "" {
		badRequest(c, "debe enviar codigo_pais")
		return
	}

	var companies int64
	if err := h.DB.Model(&models.Company{}).Where("pais = ?", code).Count(&companies).Error; err != nil {
		serverError(c, "error al eliminar el país", err)
		return
	}
	var indicators int64
	if err := h.DB.Model(&models.Indicator{}).Where("codigo_pais = ?", code).Count(&indicators).Error; err != nil {
		serverError(c, "error al eliminar el país", err)
		return
	}
	if companies > 0 || indicators > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "el país tiene empresas o indicadores asociados"})
		return
	}

	res := h.DB.Where("codigo_pais = ?", code).Delete(&models.Country{})
	if res.Error != nil {
		serverError(c, "error al eliminar el país", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "país no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "país eliminado correctamente"})
}
