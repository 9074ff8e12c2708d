package constants

// Roles de usuario
const (
	RoleUsuario = 0
	RoleAdmin   = 1
)

// Tipos de lugar
const (
	TipoGastronomico = "gastronomico"
	TipoNatural      = "natural"
	TipoCultural     = "cultural"
	TipoAventura     = "aventura"
	TipoHistorico    = "historico"
)

// Presupuestos
const (
	PresupuestoBajo  = "bajo"
	PresupuestoMedio = "medio"
	PresupuestoAlto  = "alto"
)

// Paginación del catálogo
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Valores por defecto de las acciones de consulta
const (
	DefaultRecomendadosLimit = 10
	DefaultRadioKm           = 30.0
)
