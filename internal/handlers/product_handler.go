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

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler { return &ProductHandler{DB: db} }

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Company").Find(&products).Error; err != nil {
		serverError(c, "error al obtener productos/servicios", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_producto"))
	if id == "" {
		badRequest(c, "debe enviar id_producto")
		return
	}

	var products []models.Product
	if err := h.DB.Preload("Company").Where("id_producto = ?", id).Find(&products).Error; err != nil {
		serverError(c, "error al buscar producto/servicio", err)
		return
	}
	if len(products) == 0 {
		notFound(c, "producto o servicio no encontrado")
		return
	}
	c.JSON(http.StatusOK, products)
}

type ProductReq struct {
	CompanyID   uint       `json:"id_empresa" binding:"required"`
	Name        string     `json:"nombre" binding:"required"`
	Type        string     `json:"tipo" binding:"required"`
	Description string     `json:"descripcion"`
	LaunchDate  *time.Time `json:"fecha_lanzamiento"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	var company models.Company
	if err := h.DB.First(&company, req.CompanyID).Error; err != nil {
		badRequest(c, fmt.Sprintf("la empresa con id %d no existe", req.CompanyID))
		return
	}

	product := models.Product{
		CompanyID:   req.CompanyID,
		Name:        strings.TrimSpace(req.Name),
		Type:        strings.TrimSpace(req.Type),
		Description: req.Description,
		LaunchDate:  req.LaunchDate,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		serverError(c, "error al guardar el producto/servicio", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

type ProductUpdateReq struct {
	CompanyID   *uint      `json:"id_empresa"`
	Name        *string    `json:"nombre"`
	Type        *string    `json:"tipo"`
	Description *string    `json:"descripcion"`
	LaunchDate  *time.Time `json:"fecha_lanzamiento"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_producto"))
	if id == "" {
		badRequest(c, "debe enviar id_producto")
		return
	}

	var req ProductUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.CompanyID != nil {
		var company models.Company
		if err := h.DB.First(&company, *req.CompanyID).Error; err != nil {
			badRequest(c, fmt.Sprintf("la empresa con id %d no existe", *req.CompanyID))
			return
		}
		updates["id_empresa"] = *req.CompanyID
	}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Type != nil {
		updates["tipo"] = *req.Type
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if req.LaunchDate != nil {
		updates["fecha_lanzamiento"] = *req.LaunchDate
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.Product{}).Where("id_producto = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar el producto/servicio", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "producto o servicio no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "producto o servicio actualizado correctamente"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_producto"))
	if id == "" {
		badRequest(c, "debe enviar id_producto")
		return
	}

	res := h.DB.Where("id_producto = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		serverError(c, "error al eliminar el producto/servicio", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "producto o servicio no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "producto o servicio eliminado correctamente"})
}
