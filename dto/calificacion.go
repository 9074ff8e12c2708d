package dto

import "time"

type CalificarRequest struct {
	Comida        int    `json:"comida"`
	Servicio      int    `json:"servicio"`
	CalidadPrecio int    `json:"calidad_precio"`
	Comentario    string `json:"comentario"`
}

type CalificacionResponse struct {
	ID            uint        `json:"id"`
	LugarID       uint        `json:"lugarId"`
	Comida        int         `json:"comida"`
	Servicio      int         `json:"servicio"`
	CalidadPrecio int         `json:"calidad_precio"`
	Comentario    string      `json:"comentario"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	Usuario       UsuarioInfo `json:"usuario"`
}
