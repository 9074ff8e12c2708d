package models

import "time"

// Favorito existe mientras el lugar esté marcado como favorito (toggle).
type Favorito struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UsuarioID uint      `json:"usuarioId" gorm:"uniqueIndex:idx_favoritos_usuario_lugar;not null"`
	LugarID   uint      `json:"lugarId" gorm:"uniqueIndex:idx_favoritos_usuario_lugar;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Usuario   Usuario   `json:"-" gorm:"foreignKey:UsuarioID"`
	Lugar     Lugar     `json:"lugar,omitempty" gorm:"foreignKey:LugarID"`
}
