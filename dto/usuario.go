package dto

// UsuarioInfo es la vista mínima del autor de una calificación
type UsuarioInfo struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Avatar string `json:"avatar"`
}

// PerfilResponse replica el perfil que consume el cliente móvil
type PerfilResponse struct {
	ID            uint   `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	Avatar        string `json:"avatar"`
	Puntos        int    `json:"puntos"`
	FechaRegistro string `json:"fechaRegistro"`
}
