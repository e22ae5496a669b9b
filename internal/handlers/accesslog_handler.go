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

// AccessLogHandler exposes the audit trail. Logs are created by the auth
// flow and by this endpoint; they are never updated.
type AccessLogHandler struct {
	DB *gorm.DB
}

func NewAccessLogHandler(db *gorm.DB) *AccessLogHandler { return &AccessLogHandler{DB: db} }

func (h *AccessLogHandler) List(c *gin.Context) {
	var logs []models.AccessLog
	if err := h.DB.Preload("User").Find(&logs).Error; err != nil {
		serverError(c, "error al obtener registros de acceso", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *AccessLogHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_log"))
	if id == "" {
		badRequest(c, "debe enviar id_log")
		return
	}

	var row models.AccessLog
	err := h.DB.Preload("User").Where("id_log = ?", id).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		notFound(c, "registro de acceso no encontrado")
		return
	}
	if err != nil {
		serverError(c, "error al buscar registro de acceso", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type AccessLogReq struct {
	UserID uint   `json:"id_usuario" binding:"required"`
	Action string `json:"accion" binding:"required"`
}

func (h *AccessLogHandler) Create(c *gin.Context) {
	var req AccessLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	var user models.User
	if err := h.DB.First(&user, req.UserID).Error; err != nil {
		badRequest(c, fmt.Sprintf("el usuario con id %d no existe", req.UserID))
		return
	}

	row := models.AccessLog{
		UserID:     req.UserID,
		Action:     req.Action,
		AccessedAt: time.Now(),
	}
	if err := h.DB.Create(&row).Error; err != nil {
		serverError(c, "error al guardar el registro de acceso", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *AccessLogHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_log"))
	if id == "" {
		badRequest(c, "debe enviar id_log")
		return
	}

	res := h.DB.Where("id_log = ?", id).Delete(&models.AccessLog{})
	if res.Error != nil {
		serverError(c, "error al eliminar el registro de acceso", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "registro de acceso no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registro de acceso eliminado correctamente"})
}
