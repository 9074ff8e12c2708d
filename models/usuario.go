package models

import (
	"time"
)

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"unique;not null" json:"username"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Password      string    `json:"-"`
	Nombre        string    `gorm:"default:Nuevo Usuario" json:"nombre"`
	Telefono      string    `gorm:"type:varchar(20)" json:"telefono"`
	Avatar        string    `gorm:"default:'https://res.cloudinary.com/dtuso/image/upload/v1740564293/avatars/default.png'" json:"avatar"`
	Puntos        int       `gorm:"default:0" json:"puntos"` // Puntos acumulados por visitas
	Role          int       `gorm:"default:0" json:"role"`   // 0: usuario, 1: admin
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Visitas       []Visita  `json:"visitas,omitempty" gorm:"foreignKey:UsuarioID"`
}
