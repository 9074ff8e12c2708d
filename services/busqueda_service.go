package services

import (
	"sort"
	"strings"

	"tuso/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput quita acentos y normaliza a minúsculas para comparar texto
// que el cliente escribe con o sin tildes
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// NewMatcher crea el índice de coincidencia aproximada para una lista de
// términos
func NewMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity mide la similitud entre dos cadenas en [0, 1]
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// PuntuarLugar calcula la relevancia del lugar frente a la consulta.
// Los pesos favorecen nombre > tipo de comida > descripción > etiquetas.
func PuntuarLugar(query string, lugar models.Lugar, cmEtiquetas *closestmatch.ClosestMatch) int {
	score := 0

	nombre := NormalizeInput(lugar.Nombre)
	if strings.Contains(nombre, query) {
		score += 30
	} else {
		for _, palabra := range strings.Fields(nombre) {
			if CalculateSimilarity(query, palabra) >= 0.75 {
				score += 15
				break
			}
		}
	}

	if lugar.TipoComida != "" && strings.Contains(NormalizeInput(lugar.TipoComida), query) {
		score += 20
	}

	if strings.Contains(NormalizeInput(lugar.Descripcion), query) {
		score += 10
	}

	if cmEtiquetas != nil {
		if match := cmEtiquetas.Closest(query); match != "" {
			for _, etiqueta := range lugar.Etiquetas {
				if NormalizeInput(etiqueta) == match && CalculateSimilarity(query, match) >= 0.5 {
					score += 10
					break
				}
			}
		}
	}

	return score
}

// FiltrarPorTexto deja solo los lugares relevantes para la consulta,
// ordenados por relevancia y luego por rating
func FiltrarPorTexto(query string, lugares []models.Lugar) []models.Lugar {
	query = NormalizeInput(query)
	if query == "" {
		return lugares
	}

	etiquetas := make(map[string]bool)
	for _, lugar := range lugares {
		for _, etiqueta := range lugar.Etiquetas {
			etiquetas[NormalizeInput(etiqueta)] = true
		}
	}

	var cmEtiquetas *closestmatch.ClosestMatch
	if len(etiquetas) > 0 {
		lista := make([]string, 0, len(etiquetas))
		for etiqueta := range etiquetas {
			lista = append(lista, etiqueta)
		}
		cmEtiquetas = NewMatcher(lista)
	}

	type puntuado struct {
		lugar models.Lugar
		score int
	}

	var relevantes []puntuado
	for _, lugar := range lugares {
		if score := PuntuarLugar(query, lugar, cmEtiquetas); score > 0 {
			relevantes = append(relevantes, puntuado{lugar: lugar, score: score})
		}
	}

	sort.SliceStable(relevantes, func(i, j int) bool {
		if relevantes[i].score != relevantes[j].score {
			return relevantes[i].score > relevantes[j].score
		}
		return relevantes[i].lugar.Rating > relevantes[j].lugar.Rating
	})

	resultado := make([]models.Lugar, 0, len(relevantes))
	for _, p := range relevantes {
		resultado = append(resultado, p.lugar)
	}
	return resultado
}
