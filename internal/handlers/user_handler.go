package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
	"github.com/Joasro/Industrias/internal/utils"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler { return &UserHandler{DB: db} }

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		serverError(c, "error al obtener usuarios", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Search(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_usuario"))
	if id == "" {
		badRequest(c, "debe enviar id_usuario")
		return
	}

	var users []models.User
	if err := h.DB.Where("id_usuario = ?", id).Find(&users).Error; err != nil {
		serverError(c, "error al buscar usuario", err)
		return
	}
	if len(users) == 0 {
		notFound(c, "usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, users)
}

type UserReq struct {
	Name     string          `json:"nombre" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"rol" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !models.ValidUserRole(req.Role) {
		badRequest(c, "rol debe ser admin, analista o lector")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var exists models.User
	if err := h.DB.Where("email = ?", email).First(&exists).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "el correo ya está registrado"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, "error al guardar el usuario", err)
		return
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		Role:     req.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		serverError(c, "error al guardar el usuario", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type UserUpdateReq struct {
	Name     *string          `json:"nombre"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
	Role     *models.UserRole `json:"rol"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_usuario"))
	if id == "" {
		badRequest(c, "debe enviar id_usuario")
		return
	}

	var req UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			serverError(c, "error al editar el usuario", err)
			return
		}
		updates["password"] = hash
	}
	if req.Role != nil {
		if !models.ValidUserRole(*req.Role) {
			badRequest(c, "rol debe ser admin, analista o lector")
			return
		}
		updates["rol"] = *req.Role
	}
	if len(updates) == 0 {
		badRequest(c, "no hay campos para actualizar")
		return
	}

	res := h.DB.Model(&models.User{}).Where("id_usuario = ?", id).Updates(updates)
	if res.Error != nil {
		serverError(c, "error al editar el usuario", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuario actualizado correctamente"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_usuario"))
	if id == "" {
		badRequest(c, "debe enviar id_usuario")
		return
	}

	res := h.DB.Where("id_usuario = ?", id).Delete(&models.User{})
	if res.Error != nil {
		serverError(c, "error al eliminar el usuario", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado correctamente"})
}
