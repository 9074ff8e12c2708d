package dto

import (
	"time"

	"github.com/lib/pq"
)

type LugarResponse struct {
	ID          uint           `json:"id"`
	Nombre      string         `json:"nombre"`
	Descripcion string         `json:"descripcion"`
	Tipo        string         `json:"tipo"`
	TipoComida  string         `json:"tipo_comida,omitempty"`
	Presupuesto string         `json:"presupuesto"`
	Distancia   float64        `json:"distancia"`
	Rating      float64        `json:"rating"`
	Puntos      int            `json:"puntos"`
	Imagen      string         `json:"imagen,omitempty"`
	Etiquetas   pq.StringArray `json:"etiquetas,omitempty"`
	Latitud     float64        `json:"latitud"`
	Longitud    float64        `json:"longitud"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// LugarDetailResponse agrega los datos relacionados que pide la vista de
// detalle del cliente
type LugarDetailResponse struct {
	LugarResponse
	TotalVisitas        int64                  `json:"total_visitas"`
	TotalFavoritos      int64                  `json:"total_favoritos"`
	TotalCalificaciones int64                  `json:"total_calificaciones"`
	Calificaciones      []CalificacionResponse `json:"calificaciones"`
}

type CreateLugarRequest struct {
	Nombre      string   `json:"nombre" binding:"required"`
	Descripcion string   `json:"descripcion"`
	Tipo        string   `json:"tipo" binding:"required"`
	TipoComida  string   `json:"tipo_comida"`
	Presupuesto string   `json:"presupuesto" binding:"required"`
	Distancia   float64  `json:"distancia"`
	Puntos      int      `json:"puntos"`
	Imagen      string   `json:"imagen"`
	Etiquetas   []string `json:"etiquetas"`
	Latitud     float64  `json:"latitud"`
	Longitud    float64  `json:"longitud"`
}

// UpdateLugarRequest usa punteros para distinguir campos ausentes (PATCH)
type UpdateLugarRequest struct {
	Nombre      *string   `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	Tipo        *string   `json:"tipo"`
	TipoComida  *string   `json:"tipo_comida"`
	Presupuesto *string   `json:"presupuesto"`
	Distancia   *float64  `json:"distancia"`
	Puntos      *int      `json:"puntos"`
	Imagen      *string   `json:"imagen"`
	Etiquetas   *[]string `json:"etiquetas"`
	Latitud     *float64  `json:"latitud"`
	Longitud    *float64  `json:"longitud"`
}
