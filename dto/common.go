package dto

// BuscarQuery son los filtros opcionales de la búsqueda avanzada
type BuscarQuery struct {
	Tipo         string `form:"tipo"`
	Presupuesto  string `form:"presupuesto"`
	DistanciaMax string `form:"distancia_max"`
	OrdenarPor   string `form:"ordenar_por"`
}
