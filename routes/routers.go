package routes

import (
	"context"
	"net/http"

	"tuso/constants"
	"tuso/controllers"
	middlewares "tuso/middleware"
	"tuso/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, lugarService *services.LugarService) {

	usuarioController := controllers.NewUsuarioController(db, redisCli)
	accionController := controllers.NewAccionController(lugarService)

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	// Autenticación
	api.POST("/auth/register", controllers.RegisterUser)
	api.POST("/auth/login", controllers.Login)
	api.DELETE("/auth/logout", controllers.Logout)
	api.POST("/auth/google", controllers.AuthGoogle)

	// Perfil y usuarios
	api.GET("/perfil", middlewares.AuthMiddleware(), usuarioController.GetPerfil)
	api.GET("/usuarios", middlewares.AuthMiddleware(constants.RoleAdmin), usuarioController.GetUsuarios)
	api.POST("/usuarios/:id/puntos", middlewares.AuthMiddleware(constants.RoleAdmin), usuarioController.AgregarPuntos)

	// Catálogo de lugares: lectura abierta, escritura solo admin
	api.GET("/lugares", controllers.GetAllLugares)
	api.GET("/lugares/buscar", controllers.BuscarLugares)
	api.GET("/lugares/recomendados", controllers.GetRecomendados)
	api.GET("/lugares/cercanos", controllers.GetCercanos)
	api.GET("/lugares/mis_visitas", middlewares.AuthMiddleware(), accionController.MisVisitas)
	api.GET("/lugares/mis_favoritos", middlewares.AuthMiddleware(), accionController.MisFavoritos)
	api.GET("/lugares/:id", controllers.GetLugarDetail)
	api.POST("/lugares", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateLugar)
	api.PUT("/lugares/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateLugar)
	api.PATCH("/lugares/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateLugar)
	api.DELETE("/lugares/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteLugar)

	// Acciones de usuario sobre un lugar
	api.POST("/lugares/:id/visitar", middlewares.AuthMiddleware(), accionController.Visitar)
	api.POST("/lugares/:id/favorito", middlewares.AuthMiddleware(), accionController.Favorito)
	api.POST("/lugares/:id/calificar", middlewares.AuthMiddleware(), accionController.Calificar)

	// Subida de avatar
	api.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No hay archivo"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error al abrir el archivo"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "La subida falló"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Avatar subido",
			"url":     resp.SecureURL,
		})
	})
}
