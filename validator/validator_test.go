package validator

import (
	"testing"

	"tuso/models"
)

func TestValidateUsuario(t *testing.T) {
	base := func() models.Usuario {
		return models.Usuario{
			Username: "viajero",
			Email:    "viajero@test.com",
			Password: "secreto123",
			Telefono: "+573001234567",
		}
	}

	tests := []struct {
		name    string
		mutar   func(*models.Usuario)
		wantErr bool
	}{
		{"usuario válido", func(u *models.Usuario) {}, false},
		{"sin teléfono es válido", func(u *models.Usuario) { u.Telefono = "" }, false},
		{"username vacío", func(u *models.Usuario) { u.Username = "" }, true},
		{"email vacío", func(u *models.Usuario) { u.Email = "" }, true},
		{"email sin dominio", func(u *models.Usuario) { u.Email = "viajero@" }, true},
		{"password vacío", func(u *models.Usuario) { u.Password = "" }, true},
		{"password corto", func(u *models.Usuario) { u.Password = "abc" }, true},
		{"teléfono con letras", func(u *models.Usuario) { u.Telefono = "no-es-numero" }, true},
		{"role fuera de rango", func(u *models.Usuario) { u.Role = 7 }, true},
		{"role admin es válido", func(u *models.Usuario) { u.Role = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usuario := base()
			tt.mutar(&usuario)
			err := ValidateUsuario(&usuario)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsuario() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLugar(t *testing.T) {
	base := func() models.Lugar {
		return models.Lugar{
			Nombre:      "Mirador de la Sierra",
			Tipo:        "natural",
			Presupuesto: "bajo",
			Distancia:   12.5,
			Puntos:      25,
		}
	}

	tests := []struct {
		name    string
		mutar   func(*models.Lugar)
		wantErr bool
	}{
		{"lugar válido", func(l *models.Lugar) {}, false},
		{"nombre vacío", func(l *models.Lugar) { l.Nombre = "" }, true},
		{"tipo desconocido", func(l *models.Lugar) { l.Tipo = "espacial" }, true},
		{"tipo gastronomico", func(l *models.Lugar) { l.Tipo = "gastronomico" }, false},
		{"presupuesto desconocido", func(l *models.Lugar) { l.Presupuesto = "gratis" }, true},
		{"distancia negativa", func(l *models.Lugar) { l.Distancia = -1 }, true},
		{"puntos negativos", func(l *models.Lugar) { l.Puntos = -5 }, true},
		{"distancia cero", func(l *models.Lugar) { l.Distancia = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lugar := base()
			tt.mutar(&lugar)
			err := ValidateLugar(&lugar)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLugar() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
