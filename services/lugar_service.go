package services

import (
	"fmt"
	"math"
	"strings"

	"tuso/dto"
	"tuso/models"
	"tuso/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// LugarService concentra las escrituras con semántica propia del dominio:
// visitas idempotentes con puntos, toggle de favoritos y calificaciones con
// recálculo del rating agregado.
type LugarService struct {
	db     *gorm.DB
	logger logger.Logger
	melody *melody.Melody
}

type LugarServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewLugarService(opts LugarServiceOptions, m *melody.Melody) *LugarService {
	return &LugarService{
		db:     opts.DB,
		logger: opts.Logger,
		melody: m,
	}
}

// esDuplicado detecta la violación del índice único (postgres y sqlite)
func esDuplicado(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// RegistrarVisita crea la visita si no existe y otorga los puntos del lugar.
// El índice único sobre (usuario, lugar) hace que el perdedor de una carrera
// caiga en la rama "ya existe" sin duplicar puntos.
func (s *LugarService) RegistrarVisita(usuarioID, lugarID uint) (models.Visita, bool, int, error) {
	var lugar models.Lugar
	if err := s.db.First(&lugar, lugarID).Error; err != nil {
		return models.Visita{}, false, 0, err
	}

	var visita models.Visita
	creada := false

	err := s.db.Where("usuario_id = ? AND lugar_id = ?", usuarioID, lugarID).First(&visita).Error
	if err == gorm.ErrRecordNotFound {
		nueva := models.Visita{
			UsuarioID:     usuarioID,
			LugarID:       lugarID,
			PuntosGanados: lugar.Puntos,
		}

		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&nueva).Error; err != nil {
				return err
			}
			return tx.Model(&models.Usuario{}).
				Where("id = ?", usuarioID).
				Update("puntos", gorm.Expr("puntos + ?", lugar.Puntos)).Error
		})

		if txErr == nil {
			visita = nueva
			creada = true
		} else if esDuplicado(txErr) {
			// Otro request ganó la carrera: tratar como visita existente
			if err := s.db.Where("usuario_id = ? AND lugar_id = ?", usuarioID, lugarID).First(&visita).Error; err != nil {
				return models.Visita{}, false, 0, err
			}
		} else {
			return models.Visita{}, false, 0, txErr
		}
	} else if err != nil {
		return models.Visita{}, false, 0, err
	}

	var usuario models.Usuario
	if err := s.db.First(&usuario, usuarioID).Error; err != nil {
		return models.Visita{}, false, 0, err
	}

	if creada {
		s.logger.Info("usuario %d visitó el lugar %d y ganó %d puntos", usuarioID, lugarID, lugar.Puntos)
		s.notificar(fmt.Sprintf("%s ganó %d puntos visitando %s", usuario.Username, lugar.Puntos, lugar.Nombre))
	}

	return visita, creada, usuario.Puntos, nil
}

// ToggleFavorito alterna la membresía del lugar en los favoritos del usuario
func (s *LugarService) ToggleFavorito(usuarioID, lugarID uint) (bool, error) {
	if err := s.db.First(&models.Lugar{}, lugarID).Error; err != nil {
		return false, err
	}

	var favorito models.Favorito
	err := s.db.Where("usuario_id = ? AND lugar_id = ?", usuarioID, lugarID).First(&favorito).Error

	if err == nil {
		if err := s.db.Delete(&favorito).Error; err != nil {
			return false, err
		}
		return false, nil
	}

	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	favorito = models.Favorito{UsuarioID: usuarioID, LugarID: lugarID}
	if err := s.db.Create(&favorito).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Calificar hace upsert de la calificación del par (usuario, lugar) y
// recalcula el rating del lugar con todas las filas vigentes
func (s *LugarService) Calificar(usuarioID, lugarID uint, input dto.CalificarRequest) (models.Calificacion, bool, float64, error) {
	if err := s.db.First(&models.Lugar{}, lugarID).Error; err != nil {
		return models.Calificacion{}, false, 0, err
	}

	var calificacion models.Calificacion
	creada := false

	err := s.db.Where("usuario_id = ? AND lugar_id = ?", usuarioID, lugarID).First(&calificacion).Error
	if err == gorm.ErrRecordNotFound {
		calificacion = models.Calificacion{
			UsuarioID:     usuarioID,
			LugarID:       lugarID,
			Comida:        input.Comida,
			Servicio:      input.Servicio,
			CalidadPrecio: input.CalidadPrecio,
			Comentario:    input.Comentario,
		}
		if err := s.db.Create(&calificacion).Error; err != nil {
			return models.Calificacion{}, false, 0, err
		}
		creada = true
	} else if err != nil {
		return models.Calificacion{}, false, 0, err
	} else {
		calificacion.Comida = input.Comida
		calificacion.Servicio = input.Servicio
		calificacion.CalidadPrecio = input.CalidadPrecio
		calificacion.Comentario = input.Comentario
		if err := s.db.Save(&calificacion).Error; err != nil {
			return models.Calificacion{}, false, 0, err
		}
	}

	rating, err := s.UpdateLugarRating(lugarID)
	if err != nil {
		return models.Calificacion{}, false, 0, err
	}

	return calificacion, creada, rating, nil
}

// UpdateLugarRating recalcula lugar.rating como el promedio del puntaje
// compuesto de todas sus calificaciones, redondeado a un decimal
func (s *LugarService) UpdateLugarRating(lugarID uint) (float64, error) {
	var calificaciones []models.Calificacion
	if err := s.db.Where("lugar_id = ?", lugarID).Find(&calificaciones).Error; err != nil {
		return 0, err
	}

	var total float64
	for _, cal := range calificaciones {
		total += cal.Promedio()
	}

	var promedio float64
	if len(calificaciones) > 0 {
		promedio = total / float64(len(calificaciones))
	}
	promedio = math.Round(promedio*10) / 10

	if err := s.db.Model(&models.Lugar{}).
		Where("id = ?", lugarID).
		Update("rating", promedio).Error; err != nil {
		return 0, err
	}

	return promedio, nil
}

// RecalcularRatings repasa todos los lugares y deja el rating consistente
// con sus calificaciones. Lo usa el cron diario.
func (s *LugarService) RecalcularRatings() error {
	var ids []uint
	if err := s.db.Model(&models.Lugar{}).Pluck("id", &ids).Error; err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := s.UpdateLugarRating(id); err != nil {
			s.logger.Error("no se pudo recalcular el rating del lugar %d: %v", id, err)
			return err
		}
	}

	s.logger.Info("ratings recalculados para %d lugares", len(ids))
	return nil
}

func (s *LugarService) notificar(mensaje string) {
	if s.melody == nil {
		return
	}
	if err := s.melody.Broadcast([]byte(mensaje)); err != nil {
		s.logger.Error("no se pudo emitir la notificación: %v", err)
	}
}
