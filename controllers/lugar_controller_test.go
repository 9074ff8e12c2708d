package controllers_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tuso/config"
	"tuso/models"
	"tuso/routes"
	"tuso/services"
	"tuso/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("no se pudo abrir la base de prueba: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Lugar{},
		&models.Visita{},
		&models.Favorito{},
		&models.Calificacion{},
	); err != nil {
		t.Fatalf("no se pudo migrar: %v", err)
	}

	config.DB = db
	config.RedisClient = nil

	lugarService := services.NewLugarService(services.LugarServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	}, nil)

	router := gin.New()
	routes.SetupRoutes(router, db, nil, nil, lugarService)

	return router, db
}

// tokenFor arma un token con el payload que lee el middleware
func tokenFor(userID uint, role int) string {
	payload := fmt.Sprintf(`{"userinfo":{"userid":%d,"role":%d}}`, userID, role)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return "header." + encoded + ".firma"
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("respuesta no es JSON: %v (%s)", err, w.Body.String())
	}
	return body
}

func seedLugares(t *testing.T, db *gorm.DB, cantidad int) {
	t.Helper()
	for i := 1; i <= cantidad; i++ {
		lugar := models.Lugar{
			Nombre:      fmt.Sprintf("Lugar %02d", i),
			Tipo:        "natural",
			Presupuesto: "bajo",
			Distancia:   float64(i * 5),
			Rating:      float64(i) / 2.0,
			Puntos:      10,
		}
		if err := db.Create(&lugar).Error; err != nil {
			t.Fatalf("no se pudo sembrar el lugar %d: %v", i, err)
		}
	}
}

func TestGetCercanos_CoordenadasRequeridas(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/lugares/cercanos", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, se esperaba 400", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "latitud y longitud son requeridos" {
		t.Errorf("mensaje inesperado: %v", body["error"])
	}
}

func TestGetCercanos_CoordenadasNoNumericas(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/lugares/cercanos?latitud=abc&longitud=-74.1", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, se esperaba 400", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "latitud y longitud deben ser números" {
		t.Errorf("mensaje inesperado: %v", body["error"])
	}
}

func TestGetCercanos_FiltraPorDistanciaYEcoUbicacion(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 10) // distancias 5, 10, ..., 50

	w := doRequest(router, http.MethodGet, "/api/lugares/cercanos?latitud=4.6&longitud=-74.08", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", w.Code)
	}

	body := decodeBody(t, w)

	// radio por defecto 30: lugares con distancia 5..30
	if body["count"] != float64(6) {
		t.Errorf("count = %v, se esperaba 6", body["count"])
	}
	if body["radio_km"] != float64(30) {
		t.Errorf("radio_km = %v, se esperaba 30", body["radio_km"])
	}

	ubicacion := body["ubicacion"].(map[string]interface{})
	if ubicacion["latitud"] != 4.6 || ubicacion["longitud"] != -74.08 {
		t.Errorf("la ubicación debe ser un eco de la consulta: %v", ubicacion)
	}

	// Orden por distancia ascendente
	results := body["results"].([]interface{})
	primera := results[0].(map[string]interface{})
	if primera["distancia"] != float64(5) {
		t.Errorf("el primer resultado debe ser el más cercano, distancia = %v", primera["distancia"])
	}
}

func TestBuscar_DistanciaMaxInvalidaSeIgnora(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 5)

	w := doRequest(router, http.MethodGet, "/api/lugares/buscar?distancia_max=notanumber", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["count"] != float64(5) {
		t.Errorf("count = %v, el filtro inválido debe ignorarse y devolver 5", body["count"])
	}
}

func TestBuscar_FiltraPorDistanciaMaxValida(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 5) // distancias 5, 10, 15, 20, 25

	w := doRequest(router, http.MethodGet, "/api/lugares/buscar?distancia_max=12", "", "")
	body := decodeBody(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, se esperaban 2 lugares con distancia <= 12", body["count"])
	}
}

func TestBuscar_OrdenPorDefectoRatingDescendente(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 3) // ratings 0.5, 1.0, 1.5

	w := doRequest(router, http.MethodGet, "/api/lugares/buscar", "", "")
	body := decodeBody(t, w)

	results := body["results"].([]interface{})
	primero := results[0].(map[string]interface{})
	if primero["rating"] != 1.5 {
		t.Errorf("el primer resultado debe tener el mejor rating, tiene %v", primero["rating"])
	}
}

func TestRecomendados_RespetaElLimite(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 10)

	w := doRequest(router, http.MethodGet, "/api/lugares/recomendados?limit=3", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["count"] != float64(3) {
		t.Errorf("count = %v, se esperaba 3", body["count"])
	}

	results := body["results"].([]interface{})
	if len(results) != 3 {
		t.Fatalf("results tiene %d elementos, se esperaban 3", len(results))
	}

	// Orden por rating descendente: 5.0, 4.5, 4.0
	primero := results[0].(map[string]interface{})
	segundo := results[1].(map[string]interface{})
	if primero["rating"].(float64) < segundo["rating"].(float64) {
		t.Error("los recomendados deben venir ordenados por rating descendente")
	}
}

func TestGetAllLugares_PaginacionYSobre(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 25)

	w := doRequest(router, http.MethodGet, "/api/lugares?page_size=10", "", "")
	body := decodeBody(t, w)

	if body["count"] != float64(25) {
		t.Errorf("count = %v, se esperaba el total 25", body["count"])
	}
	if body["next"] == nil {
		t.Error("next no debe ser null en la primera página")
	}
	if body["previous"] != nil {
		t.Error("previous debe ser null en la primera página")
	}

	results := body["results"].([]interface{})
	if len(results) != 10 {
		t.Errorf("la página tiene %d resultados, se esperaban 10", len(results))
	}
}

func TestGetAllLugares_FiltroPorTipo(t *testing.T) {
	router, db := setupRouter(t)
	seedLugares(t, db, 3)

	museo := models.Lugar{Nombre: "Museo del Oro", Tipo: "cultural", Presupuesto: "medio"}
	if err := db.Create(&museo).Error; err != nil {
		t.Fatalf("no se pudo crear el lugar: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/api/lugares?tipo=cultural", "", "")
	body := decodeBody(t, w)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, se esperaba 1 lugar cultural", body["count"])
	}
}

func TestGetLugarDetail_NoExiste(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/lugares/999", "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, se esperaba 404", w.Code)
	}
}

func TestCreateLugar_SoloAdmin(t *testing.T) {
	router, db := setupRouter(t)

	admin := models.Usuario{Username: "admin", Email: "admin@test.com", Role: 1}
	comun := models.Usuario{Username: "comun", Email: "comun@test.com"}
	db.Create(&admin)
	db.Create(&comun)

	payload := `{"nombre":"Parque Central","tipo":"natural","presupuesto":"bajo","puntos":20}`

	w := doRequest(router, http.MethodPost, "/api/lugares", payload, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("sin token: status = %d, se esperaba 401", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/lugares", payload, tokenFor(comun.ID, 0))
	if w.Code != http.StatusForbidden {
		t.Errorf("usuario común: status = %d, se esperaba 403", w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/lugares", payload, tokenFor(admin.ID, 1))
	if w.Code != http.StatusCreated {
		t.Errorf("admin: status = %d, se esperaba 201 (%s)", w.Code, w.Body.String())
	}
}

func TestCreateLugar_TipoInvalido(t *testing.T) {
	router, db := setupRouter(t)

	admin := models.Usuario{Username: "admin", Email: "admin@test.com", Role: 1}
	db.Create(&admin)

	payload := `{"nombre":"Sitio raro","tipo":"espacial","presupuesto":"bajo"}`
	w := doRequest(router, http.MethodPost, "/api/lugares", payload, tokenFor(admin.ID, 1))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, se esperaba 400 para tipo inválido", w.Code)
	}
}
