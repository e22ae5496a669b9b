package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type CompanyHandler struct {
	DB *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler { return &CompanyHandler{DB: db} }

func (h *CompanyHandler) List(c *gin.Context) {
	var companies []models.Company
	if err := h.DB.Preload("Trend").Find(&companies).Error; err != nil {
		serverError(c, "error al obtener empresas", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_empresa"))
	if id == "" {
		badRequest(c, "debe enviar id_empresa")
		return
	}

	var companies []models.Company
	if err := h.DB.Preload("Trend").Where("id_empresa = ?", id).Find(&companies).Error; err != nil {
		serverError(c, "error al buscar empresa", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

type CompanyReq struct {
	Name              string  `json:"nombre" binding:"required"`
	CountryCode       string  `json:"pais" binding:"required,len=3"`
	Sector            string  `json:"sector" binding:"required"`
	FoundedYear       *int    `json:"anio_fundacion"`
	Employees         *int    `json:"empleados"`
	PrevYearEmployees *int    `json:"empleados_anio_anterior"`
	Website           *string `json:"sitio_web" binding:"omitempty,url"`
	LinkedIn          *string `json:"linkedin" binding:"omitempty,url"`
	Description       string  `json:"descripcion"`
	TrendID           *uint   `json:"id_tendencia"`
}

// checkRefs verifies the referenced country and trend exist before any
// insert, so the caller gets a descriptive 400 instead of a raw
// constraint violation.
func (h *CompanyHandler) checkRefs(c *gin.Context, countryCode string, trendID *uint) bool {
	var country models.Country
	if err := h.DB.First(&country, "codigo_pais = ?", countryCode).Error; err != nil {
		badRequest(c, fmt.Sprintf("el país con código %s no existe", countryCode))
		return false
	}
	if trendID != nil {
		var trend models.Trend
		if err := h.DB.First(&trend, *trendID).Error; err != nil {
			badRequest(c, fmt.Sprintf("la tendencia con id %d no existe", *trendID))
			return false
		}
	}
	return true
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	req.CountryCode = strings.ToUpper(strings.TrimSpace(req.CountryCode))
	if !h.checkRefs(c, req.CountryCode, req.TrendID) {
		return
	}

	company := models.Company{
		Name:              strings.TrimSpace(req.Name),
		CountryCode:       req.CountryCode,
		Sector:            strings.TrimSpace(req.Sector),
		FoundedYear:       req.FoundedYear,
		Employees:         req.Employees,
		PrevYearEmployees: req.PrevYearEmployees,
		Website:           req.Website,
		LinkedIn:          req.LinkedIn,
		Description:       req.Description,
		TrendID:           req.TrendID,
	}
	if err := h.DB.Create(&company).Error; err != nil {
		serverError(c, "error al guardar la empresa", err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

type CompanyUpdateReq struct {
	Name              *string `json:"nombre"`
	CountryCode       *string `json:"pais" binding:"omitempty,len=3"`
	Sector            *string `json:"sector"`
	FoundedYear       *int    `json:"anio_fundacion"`
	Employees         *int    `json:"empleados"`
	PrevYearEmployees *int    `json:"empleados_anio_anterior"`
	Website           *string `json:"sitio_web" binding:"omitempty,url"`
	LinkedIn          *string `json:"linkedin" binding:"omitempty,url"`
	Description       *string `json:"descripcion"`
	TrendID           *uint   `json:"id_tendencia"`
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_empresa"))
	if id == "" {
		badRequest(c, "debe enviar id_empresa")
		return
	}

	var req CompanyUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.CountryCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CountryCode))
		var country models.Country
		if err := h.DB.First(&country, "codigo_pais = ?", code).Error; err != nil {
			badRequest(c, fmt.Sprintf("el país con código %s no existe", code))
			return
		}
		updates["pais"] = code
	}
	if req.Sector != nil {
		updates["sector"] = *req.Sector
	}
	if req.FoundedYear != nil {
		updates["anio_fundacion"] = *req.FoundedYear
	}
	if req.Employees != nil {
		updates["empleados"] = *req.Employees
	}
	if req.PrevYearEmployees != nil {
		updates["empleados_anio_anterior"] = *req.PrevYearEmployees
	}
	if req.Website != nil {
		updates["sitio_web"] = *req.Website
	}
	if req.LinkedIn != nil {
		updates["linkedin"] = *req.LinkedIn
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if req.TrendID != nil {
		var trend models.Trend
		if err := h.DB.First(&trend, *req.TrendID).Error; err != nil {
			badRequest(c, fmt.Sprintf("la tendencia con id %d no existe", *req.TrendID))
			return
		}
		updates["id_tendencia"] = *req.TrendID
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Company{}).Where("id_empresa = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar la empresa", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "empresa no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empresa actualizada correctamente"})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_empresa"))
	if id == "" {
		badRequest(c, "debe enviar id_empresa")
		return
	}

	res := h.DB.Where("id_empresa = ?", id).Delete(&models.Company{})
	if res.Error != nil {
		serverError(c, "error al eliminar la empresa", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "empresa no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empresa eliminada correctamente"})
}
