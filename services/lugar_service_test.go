package services

import (
	"fmt"
	"testing"

	"tuso/dto"
	"tuso/models"
	"tuso/services/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func newTestService(db *gorm.DB) *LugarService {
	return NewLugarService(LugarServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	}, nil)
}

func crearUsuarioLugar(t *testing.T, db *gorm.DB, puntos int) (models.Usuario, models.Lugar) {
	t.Helper()

	usuario := models.Usuario{Username: "viajero", Email: "viajero@test.com"}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("no se pudo crear el usuario: %v", err)
	}

	lugar := models.Lugar{
		Nombre:      "Mirador del Valle",
		Tipo:        "natural",
		Presupuesto: "bajo",
		Distancia:   12.5,
		Puntos:      puntos,
	}
	if err := db.Create(&lugar).Error; err != nil {
		t.Fatalf("no se pudo crear el lugar: %v", err)
	}

	return usuario, lugar
}

func TestRegistrarVisita_PrimeraVisitaOtorgaPuntos(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 50)

	visita, creada, puntosTotales, err := service.RegistrarVisita(usuario.ID, lugar.ID)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !creada {
		t.Fatal("la primera visita debe crearse")
	}
	if visita.PuntosGanados != 50 {
		t.Errorf("puntos_ganados = %d, se esperaba 50", visita.PuntosGanados)
	}
	if puntosTotales != 50 {
		t.Errorf("puntos_totales = %d, se esperaba 50", puntosTotales)
	}
}

func TestRegistrarVisita_SegundaVisitaNoDuplicaPuntos(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 30)

	if _, _, _, err := service.RegistrarVisita(usuario.ID, lugar.ID); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	visita, creada, puntosTotales, err := service.RegistrarVisita(usuario.ID, lugar.ID)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if creada {
		t.Fatal("la segunda visita no debe crearse")
	}
	if puntosTotales != 30 {
		t.Errorf("puntos_totales = %d, se esperaba 30 (sin duplicar)", puntosTotales)
	}
	if visita.PuntosGanados != 30 {
		t.Errorf("la visita original debe conservar su snapshot de puntos, se obtuvo %d", visita.PuntosGanados)
	}

	var totalVisitas int64
	db.Model(&models.Visita{}).Where("usuario_id = ? AND lugar_id = ?", usuario.ID, lugar.ID).Count(&totalVisitas)
	if totalVisitas != 1 {
		t.Errorf("debe existir exactamente una visita, hay %d", totalVisitas)
	}
}

func TestRegistrarVisita_LugarInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, _ := crearUsuarioLugar(t, db, 10)

	if _, _, _, err := service.RegistrarVisita(usuario.ID, 9999); err == nil {
		t.Fatal("se esperaba un error para un lugar inexistente")
	}
}

func TestToggleFavorito_EsInvolucion(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 10)

	isFavorito, err := service.ToggleFavorito(usuario.ID, lugar.ID)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !isFavorito {
		t.Fatal("el primer toggle debe marcar favorito")
	}

	isFavorito, err = service.ToggleFavorito(usuario.ID, lugar.ID)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if isFavorito {
		t.Fatal("el segundo toggle debe quitar el favorito")
	}

	var total int64
	db.Model(&models.Favorito{}).Where("usuario_id = ? AND lugar_id = ?", usuario.ID, lugar.ID).Count(&total)
	if total != 0 {
		t.Errorf("no debe quedar ninguna fila de favorito, hay %d", total)
	}
}

func TestCalificar_RecalculaRatingConTodasLasFilas(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 10)

	otro := models.Usuario{Username: "otro", Email: "otro@test.com"}
	if err := db.Create(&otro).Error; err != nil {
		t.Fatalf("no se pudo crear el segundo usuario: %v", err)
	}

	_, creada, rating, err := service.Calificar(usuario.ID, lugar.ID, dto.CalificarRequest{
		Comida: 5, Servicio: 4, CalidadPrecio: 5,
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !creada {
		t.Fatal("la primera calificación debe crearse")
	}
	// (5+4+5)/3 = 4.666... -> 4.7
	if rating != 4.7 {
		t.Errorf("rating = %v, se esperaba 4.7", rating)
	}

	_, _, rating, err = service.Calificar(otro.ID, lugar.ID, dto.CalificarRequest{
		Comida: 3, Servicio: 3, CalidadPrecio: 3,
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// promedio de 4.666 y 3.0 = 3.833... -> 3.8
	if rating != 3.8 {
		t.Errorf("rating = %v, se esperaba 3.8", rating)
	}

	var guardado models.Lugar
	db.First(&guardado, lugar.ID)
	if guardado.Rating != rating {
		t.Errorf("lugar.rating = %v, debe coincidir con el agregado %v", guardado.Rating, rating)
	}
}

func TestCalificar_UpsertDejaUnaSolaFila(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 10)

	if _, _, _, err := service.Calificar(usuario.ID, lugar.ID, dto.CalificarRequest{
		Comida: 5, Servicio: 5, CalidadPrecio: 5, Comentario: "Excelente",
	}); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	calificacion, creada, rating, err := service.Calificar(usuario.ID, lugar.ID, dto.CalificarRequest{
		Comida: 1, Servicio: 2, CalidadPrecio: 3, Comentario: "Cambió mi opinión",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if creada {
		t.Fatal("la segunda escritura debe ser una actualización")
	}
	if calificacion.Comida != 1 || calificacion.Servicio != 2 || calificacion.CalidadPrecio != 3 {
		t.Errorf("la fila debe tener los valores de la segunda escritura, tiene (%d,%d,%d)",
			calificacion.Comida, calificacion.Servicio, calificacion.CalidadPrecio)
	}

	var total int64
	db.Model(&models.Calificacion{}).Where("usuario_id = ? AND lugar_id = ?", usuario.ID, lugar.ID).Count(&total)
	if total != 1 {
		t.Errorf("debe quedar exactamente una calificación, hay %d", total)
	}

	// (1+2+3)/3 = 2.0
	if rating != 2.0 {
		t.Errorf("rating = %v, se esperaba 2.0", rating)
	}
}

func TestRecalcularRatings_DejaElCatalogoConsistente(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	usuario, lugar := crearUsuarioLugar(t, db, 10)

	cal := models.Calificacion{
		UsuarioID: usuario.ID, LugarID: lugar.ID,
		Comida: 4, Servicio: 4, CalidadPrecio: 4,
	}
	if err := db.Create(&cal).Error; err != nil {
		t.Fatalf("no se pudo crear la calificación: %v", err)
	}

	// El lugar quedó con rating 0 porque la fila se insertó por fuera
	if err := service.RecalcularRatings(); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	var guardado models.Lugar
	db.First(&guardado, lugar.ID)
	if guardado.Rating != 4.0 {
		t.Errorf("rating = %v, se esperaba 4.0", guardado.Rating)
	}
}
