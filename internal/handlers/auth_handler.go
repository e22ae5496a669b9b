package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/logger"
	"github.com/Joasro/Industrias/internal/middleware"
	"github.com/Joasro/Industrias/internal/models"
	"github.com/Joasro/Industrias/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, secret string) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: secret}
}

type LoginReq struct {
	User     string `json:"usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// logAccess appends an audit row. Failures are logged and swallowed so
// they never break the auth flow itself.
func (h *AuthHandler) logAccess(userID uint, action string) {
	row := models.AccessLog{
		UserID:     userID,
		Action:     action,
		AccessedAt: time.Now(),
	}
	if err := h.DB.Create(&row).Error; err != nil {
		logger.Log.WithError(err).Warn("registro de acceso no guardado")
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ident := strings.TrimSpace(req.User)

	var user models.User
	err := h.DB.Where("email = ? OR nombre = ?", ident, ident).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		return
	}
	if err != nil {
		serverError(c, "error al iniciar sesión", err)
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		h.logAccess(user.ID, "Intento fallido de inicio de sesión")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		return
	}

	token, err := middleware.SignToken(h.JWTSecret, user.ID)
	if err != nil {
		serverError(c, "error al generar el token", err)
		return
	}

	c.SetCookie("token", token, int(middleware.TokenTTL.Seconds()), "/", "", false, true)
	h.logAccess(user.ID, "Inicio de sesión")

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"id_usuario": user.ID,
		"nombre":     user.Name,
		"email":      user.Email,
		"rol":        user.Role,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if user := middleware.CurrentUser(c); user != nil {
		h.logAccess(user.ID, "Cierre de sesión")
	}

	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "sesión cerrada correctamente"})
}
