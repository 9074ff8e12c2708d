package models

import "time"

// Visita registra la primera visita de un usuario a un lugar. El índice único
// sobre (usuario, lugar) garantiza una sola fila por par incluso bajo
// peticiones concurrentes.
type Visita struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UsuarioID     uint      `json:"usuarioId" gorm:"uniqueIndex:idx_visitas_usuario_lugar;not null"`
	LugarID       uint      `json:"lugarId" gorm:"uniqueIndex:idx_visitas_usuario_lugar;not null"`
	PuntosGanados int       `json:"puntos_ganados"` // Copia de lugar.puntos al momento de crear
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Usuario       Usuario   `json:"-" gorm:"foreignKey:UsuarioID"`
	Lugar         Lugar     `json:"lugar,omitempty" gorm:"foreignKey:LugarID"`
}
