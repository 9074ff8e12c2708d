package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tuso/config"
	"tuso/dto"
	"tuso/models"
	"tuso/response"
	"tuso/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccionController agrupa las acciones de usuario sobre un lugar: visitar,
// favorito y calificar, más los listados personales.
type AccionController struct {
	Service *services.LugarService
}

func NewAccionController(service *services.LugarService) AccionController {
	return AccionController{Service: service}
}

func toCalificacionResponse(cal models.Calificacion) dto.CalificacionResponse {
	return dto.CalificacionResponse{
		ID:            cal.ID,
		LugarID:       cal.LugarID,
		Comida:        cal.Comida,
		Servicio:      cal.Servicio,
		CalidadPrecio: cal.CalidadPrecio,
		Comentario:    cal.Comentario,
		CreatedAt:     cal.CreateAt,
		UpdatedAt:     cal.UpdateAt,
		Usuario: dto.UsuarioInfo{
			ID:     cal.Usuario.ID,
			Nombre: cal.Usuario.Nombre,
			Avatar: cal.Usuario.Avatar,
		},
	}
}

func getLugarID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

// Visitar marca el lugar como visitado. La primera visita otorga los puntos
// del lugar; las siguientes responden 200 sin puntos.
func (a AccionController) Visitar(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	lugarID, ok := getLugarID(c)
	if !ok {
		return
	}

	visita, creada, puntosTotales, err := a.Service.RegistrarVisita(usuarioID, lugarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if creada {
		c.JSON(http.StatusCreated, gin.H{
			"success":        true,
			"message":        "Lugar marcado como visitado",
			"puntos_ganados": visita.PuntosGanados,
			"puntos_totales": puntosTotales,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Ya habías visitado este lugar",
		"puntos_ganados": 0,
		"puntos_totales": puntosTotales,
	})
}

// Favorito alterna la marca de favorito del lugar
func (a AccionController) Favorito(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	lugarID, ok := getLugarID(c)
	if !ok {
		return
	}

	isFavorito, err := a.Service.ToggleFavorito(usuarioID, lugarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if isFavorito {
		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"is_favorito": true,
			"message":     "Agregado a favoritos",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"is_favorito": false,
		"message":     "Eliminado de favoritos",
	})
}

// Calificar hace upsert de la calificación y devuelve el rating recalculado.
// Los sub-puntajes ausentes quedan en 0; no hay validación de rango.
func (a AccionController) Calificar(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	lugarID, ok := getLugarID(c)
	if !ok {
		return
	}

	var input dto.CalificarRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	calificacion, creada, rating, err := a.Service.Calificar(usuarioID, lugarID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	invalidarCacheLugares()

	mensaje := "Calificación actualizada"
	status := http.StatusOK
	if creada {
		mensaje = "Calificación registrada"
		status = http.StatusCreated
	}

	config.DB.Preload("Usuario").First(&calificacion, calificacion.ID)

	c.JSON(status, gin.H{
		"success":            true,
		"message":            mensaje,
		"calificacion":       toCalificacionResponse(calificacion),
		"rating_actualizado": rating,
	})
}

// MisVisitas lista los lugares que el usuario ya visitó, sin paginar
func (a AccionController) MisVisitas(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	var visitas []models.Visita
	if err := config.DB.Preload("Lugar").Where("usuario_id = ?", usuarioID).Find(&visitas).Error; err != nil {
		response.ServerError(c)
		return
	}

	lugares := make([]models.Lugar, 0, len(visitas))
	for _, visita := range visitas {
		lugares = append(lugares, visita.Lugar)
	}

	response.SuccessWithCount(c, toLugarResponses(lugares), len(lugares))
}

// MisFavoritos lista los lugares favoritos del usuario, sin paginar
func (a AccionController) MisFavoritos(c *gin.Context) {
	usuarioID := c.GetUint("userID")

	var favoritos []models.Favorito
	if err := config.DB.Preload("Lugar").Where("usuario_id = ?", usuarioID).Find(&favoritos).Error; err != nil {
		response.ServerError(c)
		return
	}

	lugares := make([]models.Lugar, 0, len(favoritos))
	for _, favorito := range favoritos {
		lugares = append(lugares, favorito.Lugar)
	}

	response.SuccessWithCount(c, toLugarResponses(lugares), len(lugares))
}
