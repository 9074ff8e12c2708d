package validator

import (
	"regexp"

	"tuso/errors"
	"tuso/models"
)

// ValidateUsuario valida los datos de registro
func ValidateUsuario(usuario *models.Usuario) error {
	if usuario.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El username no puede estar vacío", nil)
	}

	if usuario.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El email no puede estar vacío", nil)
	}

	if !isValidEmail(usuario.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "El email no es válido", nil)
	}

	if usuario.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La contraseña no puede estar vacía", nil)
	}

	if len(usuario.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "La contraseña debe tener al menos 6 caracteres", nil)
	}

	if usuario.Telefono != "" && !isValidTelefono(usuario.Telefono) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "El teléfono no es válido", nil)
	}

	if usuario.Role < 0 || usuario.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role inválido", nil)
	}

	return nil
}

// ValidateLugar valida los campos del catálogo antes de crear o actualizar
func ValidateLugar(lugar *models.Lugar) error {
	if lugar.Nombre == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre no puede estar vacío", nil)
	}

	if err := lugar.ValidateTipo(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidTipo, "Tipo inválido, debe ser gastronomico, natural, cultural, aventura o historico", err)
	}

	if err := lugar.ValidatePresupuesto(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPresupuesto, "Presupuesto inválido, debe ser bajo, medio o alto", err)
	}

	if lugar.Distancia < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidDistancia, "La distancia no puede ser negativa", nil)
	}

	if lugar.Puntos < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPuntos, "Los puntos no pueden ser negativos", nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidTelefono(telefono string) bool {
	re := regexp.MustCompile(`^\+?[0-9]{7,20}$`)
	return re.MatchString(telefono)
}
