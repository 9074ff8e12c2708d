package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Lugar struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Nombre      string         `json:"nombre" gorm:"not null"`
	Descripcion string         `json:"descripcion"`
	Tipo        string         `json:"tipo"`        // gastronomico, natural, cultural, aventura, historico
	TipoComida  string         `json:"tipo_comida"` // Solo para lugares gastronómicos
	Presupuesto string         `json:"presupuesto"` // bajo, medio, alto
	Distancia   float64        `json:"distancia"`   // Km desde el punto de referencia
	Rating      float64        `json:"rating"`      // Promedio derivado de las calificaciones
	Puntos      int            `json:"puntos"`      // Puntos otorgados en la primera visita
	Imagen      string         `json:"imagen"`
	Etiquetas   pq.StringArray `json:"etiquetas" gorm:"type:text[]"`
	Latitud     float64        `json:"latitud"`
	Longitud    float64        `json:"longitud"`
	CreateAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Calificaciones []Calificacion `json:"calificaciones,omitempty" gorm:"foreignKey:LugarID"`
}

var TiposLugar = []string{"gastronomico", "natural", "cultural", "aventura", "historico"}

var Presupuestos = []string{"bajo", "medio", "alto"}

func (l *Lugar) ValidateTipo() error {
	for _, t := range TiposLugar {
		if l.Tipo == t {
			return nil
		}
	}
	return fmt.Errorf("tipo inválido: %s", l.Tipo)
}

func (l *Lugar) ValidatePresupuesto() error {
	for _, p := range Presupuestos {
		if l.Presupuesto == p {
			return nil
		}
	}
	return fmt.Errorf("presupuesto inválido: %s", l.Presupuesto)
}
