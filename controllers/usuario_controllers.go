package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"tuso/config"
	"tuso/dto"
	"tuso/models"
	"tuso/response"
	"tuso/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UsuarioController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUsuarioController(db *gorm.DB, redisCli *redis.Client) UsuarioController {
	return UsuarioController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetPerfil devuelve el perfil del usuario autenticado con el formato que
// consume el cliente móvil
func (u UsuarioController) GetPerfil(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	var usuario models.Usuario
	if err := u.DB.First(&usuario, usuarioID).Error; err != nil {
		response.NotFound(c)
		return
	}

	nombre := usuario.Nombre
	if nombre == "" {
		nombre = usuario.Username
	}

	response.Success(c, dto.PerfilResponse{
		ID:            usuario.ID,
		Nombre:        nombre,
		Email:         usuario.Email,
		Telefono:      usuario.Telefono,
		Avatar:        usuario.Avatar,
		Puntos:        usuario.Puntos,
		FechaRegistro: usuario.FechaRegistro.Format(time.RFC3339),
	})
}

// GetUsuarios lista los usuarios registrados (solo administradores)
func (u UsuarioController) GetUsuarios(c *gin.Context) {
	cacheKey := "usuarios:all"

	var usuarios []models.Usuario

	if u.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, u.Redis, cacheKey, &usuarios); err != nil {
			log.Printf("No se pudo leer el cache de usuarios: %v", err)
		}
	}

	if len(usuarios) == 0 {
		if err := u.DB.Order("fecha_registro desc").Find(&usuarios).Error; err != nil {
			response.ServerError(c)
			return
		}

		if u.Redis != nil {
			if err := services.SetToRedis(config.Ctx, u.Redis, cacheKey, usuarios, 10*time.Minute); err != nil {
				log.Printf("No se pudo guardar el cache de usuarios: %v", err)
			}
		}
	}

	page := 1
	limit := 20
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("page_size"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	total := len(usuarios)
	start := (page - 1) * limit
	end := start + limit
	if start >= total {
		usuarios = []models.Usuario{}
	} else if end > total {
		usuarios = usuarios[start:]
	} else {
		usuarios = usuarios[start:end]
	}

	respuestas := make([]dto.UsuarioLoginResponse, 0, len(usuarios))
	for _, usuario := range usuarios {
		respuestas = append(respuestas, toUsuarioLoginResponse(usuario))
	}

	response.SuccessWithPagination(c, respuestas, page, limit, total)
}

// AgregarPuntos suma puntos de bonificación a un usuario (solo
// administradores). Es la única vía de incremento fuera de las visitas.
func (u UsuarioController) AgregarPuntos(c *gin.Context) {
	var input struct {
		Cantidad int `json:"cantidad" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "cantidad debe ser un entero positivo")
		return
	}

	usuarioID := c.Param("id")

	var usuario models.Usuario
	if err := u.DB.First(&usuario, usuarioID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := u.DB.Model(&usuario).
		Update("puntos", gorm.Expr("puntos + ?", input.Cantidad)).Error; err != nil {
		response.ServerError(c)
		return
	}

	u.DB.First(&usuario, usuario.ID)

	if u.Redis != nil {
		_ = services.DeleteFromRedis(config.Ctx, u.Redis, "usuarios:all")
	}

	response.Success(c, gin.H{
		"success":        true,
		"message":        fmt.Sprintf("Se agregaron %d puntos", input.Cantidad),
		"puntos_totales": usuario.Puntos,
	})
}
