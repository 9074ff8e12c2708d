package controllers

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"tuso/config"
	"tuso/constants"
	"tuso/dto"
	"tuso/models"
	"tuso/response"
	"tuso/services"
	"tuso/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	cacheKeyLugares      = "lugares:all"
	cacheKeyRecomendados = "lugares:recomendados"
	cacheTTL             = 10 * time.Minute
)

// fetchLugares devuelve el catálogo completo, desde Redis si está cacheado
func fetchLugares() ([]models.Lugar, error) {
	var lugares []models.Lugar

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyLugares, &lugares); err == nil && len(lugares) > 0 {
			return lugares, nil
		}
	}

	if err := config.DB.Find(&lugares).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKeyLugares, lugares, cacheTTL); err != nil {
			log.Printf("No se pudo guardar el catálogo en Redis: %v", err)
		}
	}

	return lugares, nil
}

// invalidarCacheLugares borra las claves cacheadas del catálogo tras una
// escritura
func invalidarCacheLugares() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, cacheKeyLugares)
	_ = services.DeleteFromRedis(config.Ctx, rdb, cacheKeyRecomendados)
}

// ordenarLugares ordena in-place según el campo pedido; el prefijo "-"
// invierte el orden. El desempate es siempre por nombre ascendente.
func ordenarLugares(lugares []models.Lugar, ordenarPor string) {
	campo := strings.TrimPrefix(ordenarPor, "-")
	desc := strings.HasPrefix(ordenarPor, "-")

	sort.SliceStable(lugares, func(i, j int) bool {
		var menor bool
		var iguales bool
		switch campo {
		case "distancia":
			menor = lugares[i].Distancia < lugares[j].Distancia
			iguales = lugares[i].Distancia == lugares[j].Distancia
		case "nombre":
			menor = lugares[i].Nombre < lugares[j].Nombre
			iguales = lugares[i].Nombre == lugares[j].Nombre
		default: // rating
			menor = lugares[i].Rating < lugares[j].Rating
			iguales = lugares[i].Rating == lugares[j].Rating
		}
		if iguales {
			return lugares[i].Nombre < lugares[j].Nombre
		}
		if desc {
			return !menor
		}
		return menor
	})
}

// paginar aplica page/page_size (1-based, tope 100) sobre la lista ya
// filtrada y ordenada
func paginar(c *gin.Context, lugares []models.Lugar) ([]models.Lugar, int, int, int) {
	total := len(lugares)

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	pageSize := constants.DefaultPageSize
	if sizeStr := c.Query("page_size"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil && parsed > 0 {
			pageSize = parsed
			if pageSize > constants.MaxPageSize {
				pageSize = constants.MaxPageSize
			}
		}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= total {
		return []models.Lugar{}, page, pageSize, total
	}
	if end > total {
		end = total
	}
	return lugares[start:end], page, pageSize, total
}

func toLugarResponse(lugar models.Lugar) dto.LugarResponse {
	return dto.LugarResponse{
		ID:          lugar.ID,
		Nombre:      lugar.Nombre,
		Descripcion: lugar.Descripcion,
		Tipo:        lugar.Tipo,
		TipoComida:  lugar.TipoComida,
		Presupuesto: lugar.Presupuesto,
		Distancia:   lugar.Distancia,
		Rating:      lugar.Rating,
		Puntos:      lugar.Puntos,
		Imagen:      lugar.Imagen,
		Etiquetas:   lugar.Etiquetas,
		Latitud:     lugar.Latitud,
		Longitud:    lugar.Longitud,
		CreatedAt:   lugar.CreateAt,
		UpdatedAt:   lugar.UpdateAt,
	}
}

func toLugarResponses(lugares []models.Lugar) []dto.LugarResponse {
	respuestas := make([]dto.LugarResponse, 0, len(lugares))
	for _, lugar := range lugares {
		respuestas = append(respuestas, toLugarResponse(lugar))
	}
	return respuestas
}

// GetAllLugares lista el catálogo con filtros exactos, búsqueda de texto y
// ordenamiento, paginado con el sobre {count, next, previous, results}
func GetAllLugares(c *gin.Context) {
	lugares, err := fetchLugares()
	if err != nil {
		response.ServerError(c)
		return
	}

	tipoFilter := c.Query("tipo")
	presupuestoFilter := c.Query("presupuesto")

	filtrados := make([]models.Lugar, 0, len(lugares))
	for _, lugar := range lugares {
		if tipoFilter != "" && lugar.Tipo != tipoFilter {
			continue
		}
		if presupuestoFilter != "" && lugar.Presupuesto != presupuestoFilter {
			continue
		}
		filtrados = append(filtrados, lugar)
	}

	if search := c.Query("search"); search != "" {
		// La búsqueda de texto ya entrega los resultados por relevancia
		filtrados = services.FiltrarPorTexto(search, filtrados)
	} else {
		ordenarPor := c.DefaultQuery("ordering", "-rating")
		ordenarLugares(filtrados, ordenarPor)
	}

	pagina, page, pageSize, total := paginar(c, filtrados)
	response.SuccessWithPagination(c, toLugarResponses(pagina), page, pageSize, total)
}

// GetLugarDetail devuelve la representación extendida de un lugar
func GetLugarDetail(c *gin.Context) {
	id := c.Param("id")

	var lugar models.Lugar
	if err := config.DB.Preload("Calificaciones.Usuario").First(&lugar, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var totalVisitas, totalFavoritos int64
	config.DB.Model(&models.Visita{}).Where("lugar_id = ?", lugar.ID).Count(&totalVisitas)
	config.DB.Model(&models.Favorito{}).Where("lugar_id = ?", lugar.ID).Count(&totalFavoritos)

	calificaciones := make([]dto.CalificacionResponse, 0, len(lugar.Calificaciones))
	for _, cal := range lugar.Calificaciones {
		calificaciones = append(calificaciones, toCalificacionResponse(cal))
	}

	detalle := dto.LugarDetailResponse{
		LugarResponse:       toLugarResponse(lugar),
		TotalVisitas:        totalVisitas,
		TotalFavoritos:      totalFavoritos,
		TotalCalificaciones: int64(len(lugar.Calificaciones)),
		Calificaciones:      calificaciones,
	}

	response.Success(c, detalle)
}

// CreateLugar crea una entrada del catálogo (solo administradores)
func CreateLugar(c *gin.Context) {
	var input dto.CreateLugarRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	lugar := models.Lugar{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Tipo:        input.Tipo,
		TipoComida:  input.TipoComida,
		Presupuesto: input.Presupuesto,
		Distancia:   input.Distancia,
		Puntos:      input.Puntos,
		Imagen:      input.Imagen,
		Etiquetas:   input.Etiquetas,
		Latitud:     input.Latitud,
		Longitud:    input.Longitud,
	}

	if err := validator.ValidateLugar(&lugar); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&lugar).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidarCacheLugares()
	response.Created(c, toLugarResponse(lugar))
}

// UpdateLugar actualiza campos presentes en el body (PUT y PATCH)
func UpdateLugar(c *gin.Context) {
	id := c.Param("id")

	var lugar models.Lugar
	if err := config.DB.First(&lugar, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var input dto.UpdateLugarRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	if input.Nombre != nil {
		lugar.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		lugar.Descripcion = *input.Descripcion
	}
	if input.Tipo != nil {
		lugar.Tipo = *input.Tipo
	}
	if input.TipoComida != nil {
		lugar.TipoComida = *input.TipoComida
	}
	if input.Presupuesto != nil {
		lugar.Presupuesto = *input.Presupuesto
	}
	if input.Distancia != nil {
		lugar.Distancia = *input.Distancia
	}
	if input.Puntos != nil {
		lugar.Puntos = *input.Puntos
	}
	if input.Imagen != nil {
		lugar.Imagen = *input.Imagen
	}
	if input.Etiquetas != nil {
		lugar.Etiquetas = *input.Etiquetas
	}
	if input.Latitud != nil {
		lugar.Latitud = *input.Latitud
	}
	if input.Longitud != nil {
		lugar.Longitud = *input.Longitud
	}

	if err := validator.ValidateLugar(&lugar); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&lugar).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidarCacheLugares()
	response.Success(c, toLugarResponse(lugar))
}

// DeleteLugar elimina el lugar junto con sus visitas, favoritos y
// calificaciones
func DeleteLugar(c *gin.Context) {
	id := c.Param("id")

	var lugar models.Lugar
	if err := config.DB.First(&lugar, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lugar_id = ?", lugar.ID).Delete(&models.Visita{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lugar_id = ?", lugar.ID).Delete(&models.Favorito{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lugar_id = ?", lugar.ID).Delete(&models.Calificacion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lugar).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidarCacheLugares()
	response.Success(c, gin.H{"success": true, "message": "Lugar eliminado"})
}

// BuscarLugares aplica los filtros opcionales de la búsqueda avanzada.
// distancia_max que no parsea como float se ignora sin error.
func BuscarLugares(c *gin.Context) {
	var query dto.BuscarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	lugares, err := fetchLugares()
	if err != nil {
		response.ServerError(c)
		return
	}

	var distanciaMax float64
	filtrarDistancia := false
	if query.DistanciaMax != "" {
		if parsed, err := strconv.ParseFloat(query.DistanciaMax, 64); err == nil {
			distanciaMax = parsed
			filtrarDistancia = true
		}
		// Si no parsea se ignora el filtro: política tolerante del cliente
	}

	filtrados := make([]models.Lugar, 0, len(lugares))
	for _, lugar := range lugares {
		if query.Tipo != "" && lugar.Tipo != query.Tipo {
			continue
		}
		if query.Presupuesto != "" && lugar.Presupuesto != query.Presupuesto {
			continue
		}
		if filtrarDistancia && lugar.Distancia > distanciaMax {
			continue
		}
		filtrados = append(filtrados, lugar)
	}

	ordenarPor := query.OrdenarPor
	if ordenarPor == "" {
		ordenarPor = "-rating"
	}
	ordenarLugares(filtrados, ordenarPor)

	pagina, page, pageSize, total := paginar(c, filtrados)
	response.SuccessWithPagination(c, toLugarResponses(pagina), page, pageSize, total)
}

// GetRecomendados devuelve los mejores lugares por rating. El límite viene
// del cliente y no se acota.
func GetRecomendados(c *gin.Context) {
	limit := constants.DefaultRecomendadosLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	var lugares []models.Lugar

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyRecomendados, &lugares); err != nil {
			lugares = nil
		}
	}

	if len(lugares) == 0 {
		var err error
		lugares, err = fetchLugares()
		if err != nil {
			response.ServerError(c)
			return
		}
		ordenarLugares(lugares, "-rating")

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKeyRecomendados, lugares, cacheTTL); err != nil {
				log.Printf("No se pudo guardar los recomendados en Redis: %v", err)
			}
		}
	}

	if limit < len(lugares) {
		lugares = lugares[:limit]
	}

	response.SuccessWithCount(c, toLugarResponses(lugares), len(lugares))
}

// GetCercanos filtra por el campo distancia precalculado contra el radio.
// Las coordenadas se validan y se devuelven en la respuesta pero no entran
// al filtro: aproximación conocida del cliente.
func GetCercanos(c *gin.Context) {
	latitud := c.Query("latitud")
	longitud := c.Query("longitud")

	if latitud == "" || longitud == "" {
		response.BadRequest(c, "latitud y longitud son requeridos")
		return
	}

	lat, errLat := strconv.ParseFloat(latitud, 64)
	lon, errLon := strconv.ParseFloat(longitud, 64)
	if errLat != nil || errLon != nil {
		response.BadRequest(c, "latitud y longitud deben ser números")
		return
	}

	radio := constants.DefaultRadioKm
	if radioStr := c.Query("radio"); radioStr != "" {
		if parsed, err := strconv.ParseFloat(radioStr, 64); err == nil && parsed > 0 {
			radio = parsed
		}
	}

	lugares, err := fetchLugares()
	if err != nil {
		response.ServerError(c)
		return
	}

	cercanos := make([]models.Lugar, 0)
	for _, lugar := range lugares {
		if lugar.Distancia <= radio {
			cercanos = append(cercanos, lugar)
		}
	}
	ordenarLugares(cercanos, "distancia")

	c.JSON(200, gin.H{
		"count":     len(cercanos),
		"ubicacion": gin.H{"latitud": lat, "longitud": lon},
		"radio_km":  radio,
		"results":   toLugarResponses(cercanos),
	})
}
