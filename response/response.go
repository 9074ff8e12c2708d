package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaginatedResponse es el sobre estándar de los listados paginados
type PaginatedResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// CountedResponse envuelve listados sin paginar con su cantidad
type CountedResponse struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

// Success responde 200 con el payload tal cual
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created responde 201 con el payload tal cual
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SuccessWithCount responde 200 con {count, results}
func SuccessWithCount(c *gin.Context, results interface{}, count int) {
	c.JSON(http.StatusOK, CountedResponse{
		Count:   count,
		Results: results,
	})
}

// SuccessWithPagination responde 200 con {count, next, previous, results}
func SuccessWithPagination(c *gin.Context, results interface{}, page, pageSize, total int) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Count:    total,
		Next:     pageURL(c, page+1, pageSize, total),
		Previous: pageURL(c, page-1, pageSize, total),
		Results:  results,
	})
}

// pageURL arma el enlace a otra página del mismo listado, o nil si queda
// fuera de rango
func pageURL(c *gin.Context, page, pageSize, total int) *string {
	if page < 1 {
		return nil
	}
	if (page-1)*pageSize >= total {
		return nil
	}

	query := c.Request.URL.Query()
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("page_size", fmt.Sprintf("%d", pageSize))

	url := c.Request.URL.Path + "?" + query.Encode()
	return &url
}

// BadRequest responde 400 con {"error": message}
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Unauthorized responde 401
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "No autenticado"})
}

// Forbidden responde 403
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para esta acción"})
}

// NotFound responde 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
}

// ServerError responde 500
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
}
