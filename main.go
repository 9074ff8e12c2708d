package main

import (
	"log"
	"net/http"
	"os"

	"tuso/config"
	"tuso/jobs"
	"tuso/models"
	"tuso/routes"
	"tuso/services"
	"tuso/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrate() {
	if err := config.DB.AutoMigrate(
		&models.Usuario{},
		&models.Lugar{},
		&models.Visita{},
		&models.Favorito{},
		&models.Calificacion{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar el archivo .env, se usan las variables de entorno existentes: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrate()

	lugarService := services.NewLugarService(services.LugarServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, m)
	jobs.SetRatingResyncer(lugarService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, lugarService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
