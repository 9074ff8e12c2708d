package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// RatingResyncer repasa los ratings derivados del catálogo
type RatingResyncer interface {
	RecalcularRatings() error
}

var ratingResyncer RatingResyncer

// SetRatingResyncer fija la implementación usada por el cron
func SetRatingResyncer(resyncer RatingResyncer) {
	ratingResyncer = resyncer
}

// InitCronJobs programa el resync diario de ratings a medianoche
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Ejecutando resync de ratings: %v", now)

		if ratingResyncer == nil {
			log.Printf("RatingResyncer no configurado, se omite el resync")
			return
		}

		if err := ratingResyncer.RecalcularRatings(); err != nil {
			log.Printf("Error en el resync de ratings: %v", err)
			return
		}

		if m != nil {
			mensaje := fmt.Sprintf("Catálogo actualizado: %s", now.Format("02/01/2006"))
			if err := m.Broadcast([]byte(mensaje)); err != nil {
				log.Printf("No se pudo emitir la notificación del resync: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados")
	return nil
}
