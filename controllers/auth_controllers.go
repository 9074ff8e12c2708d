package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"tuso/config"
	"tuso/dto"
	"tuso/models"
	"tuso/response"
	"tuso/services"
	"tuso/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func toUsuarioLoginResponse(usuario models.Usuario) dto.UsuarioLoginResponse {
	return dto.UsuarioLoginResponse{
		ID:            usuario.ID,
		Username:      usuario.Username,
		Nombre:        usuario.Nombre,
		Email:         usuario.Email,
		Telefono:      usuario.Telefono,
		Avatar:        usuario.Avatar,
		Puntos:        usuario.Puntos,
		Role:          usuario.Role,
		FechaRegistro: usuario.FechaRegistro,
		UpdatedAt:     usuario.UpdatedAt,
	}
}

// Login autentica por username o email y entrega el access token
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var usuario models.Usuario
	if err := config.DB.Where("email = ? OR username = ?", input.Identifier, input.Identifier).First(&usuario).Error; err != nil {
		response.BadRequest(c, "Usuario o contraseña inválidos")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Usuario o contraseña inválidos")
		return
	}

	userInfo := services.UserInfo{
		UserId: usuario.ID,
		Role:   usuario.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUsuarioLoginResponse(usuario),
		"accessToken": accessToken,
	})
}

// RegisterUser crea la cuenta y responde con el perfil y el token
func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidato := models.Usuario{
		Username: strings.ToLower(input.Username),
		Email:    strings.ToLower(input.Email),
		Password: input.Password,
		Telefono: input.Telefono,
	}

	if err := validator.ValidateUsuario(&candidato); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	usuario, err := services.CreateUsuario(candidato)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userInfo := services.UserInfo{
		UserId: usuario.ID,
		Role:   usuario.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(201, gin.H{
		"user_info":   toUsuarioLoginResponse(usuario),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, gin.H{"success": true})
}

// AuthGoogle inicia sesión con un ID token de Google; crea la cuenta si no
// existe
func AuthGoogle(c *gin.Context) {
	var body struct {
		TokenId string `json:"tokenId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "tokenId es requerido")
		return
	}

	payload, err := verifyGoogleIDToken(body.TokenId)
	if err != nil {
		response.BadRequest(c, "Token de Google inválido")
		return
	}

	googleUser := dto.GoogleUser{
		Name:          asString(payload.Claims["name"]),
		Email:         asString(payload.Claims["email"]),
		VerifiedEmail: payload.Claims["email_verified"] == true,
		Picture:       asString(payload.Claims["picture"]),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "El email de Google no está verificado")
		return
	}

	var usuario models.Usuario
	result := config.DB.Where("email = ?", googleUser.Email).First(&usuario)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		usuario, err = services.CreateGoogleUsuario(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: usuario.ID,
		Role:   usuario.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		log.Println("Error generando el access token:", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUsuarioLoginResponse(usuario),
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken valida el ID token contra el client ID configurado
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
