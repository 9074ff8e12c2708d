package models

import "time"

type Calificacion struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UsuarioID     uint      `json:"usuarioId" gorm:"uniqueIndex:idx_calificaciones_usuario_lugar;not null"`
	LugarID       uint      `json:"lugarId" gorm:"uniqueIndex:idx_calificaciones_usuario_lugar;not null"`
	Comida        int       `json:"comida"`
	Servicio      int       `json:"servicio"`
	CalidadPrecio int       `json:"calidad_precio"`
	Comentario    string    `json:"comentario"`
	CreateAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Usuario       Usuario   `json:"usuario" gorm:"foreignKey:UsuarioID"`
}

// Promedio de la fila: media simple de las tres sub-notas.
func (c *Calificacion) Promedio() float64 {
	return float64(c.Comida+c.Servicio+c.CalidadPrecio) / 3.0
}
