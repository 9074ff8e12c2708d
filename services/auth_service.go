package services

import (
	"errors"
	"fmt"
	"time"

	"tuso/config"
	"tuso/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func GetUsuarioByEmail(email string) (models.Usuario, error) {
	var usuario models.Usuario
	result := config.DB.Where("email = ?", email).First(&usuario)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return usuario, fmt.Errorf("no existe un usuario con el email %s", email)
	}

	if result.Error != nil {
		return usuario, result.Error
	}

	return usuario, nil
}

func GetUsuarioByUsername(username string) (models.Usuario, error) {
	var usuario models.Usuario
	result := config.DB.Where("username = ?", username).First(&usuario)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return usuario, fmt.Errorf("no existe un usuario con el username %s", username)
	}

	if result.Error != nil {
		return usuario, result.Error
	}

	return usuario, nil
}

// CreateUsuario registra un usuario nuevo con la contraseña ya hasheada
func CreateUsuario(input models.Usuario) (models.Usuario, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return models.Usuario{}, errors.New("username, email y password son requeridos")
	}

	existingEmail, err := GetUsuarioByEmail(input.Email)
	if err == nil {
		return models.Usuario{}, fmt.Errorf("el email %s ya está en uso", existingEmail.Email)
	}

	existingUsername, err := GetUsuarioByUsername(input.Username)
	if err == nil {
		return models.Usuario{}, fmt.Errorf("el username %s ya está en uso", existingUsername.Username)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.Usuario{}, err
	}

	usuario := models.Usuario{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Nombre:   input.Nombre,
		Telefono: input.Telefono,
		Role:     input.Role,
	}

	if result := config.DB.Create(&usuario); result.Error != nil {
		return usuario, result.Error
	}

	return usuario, nil
}

// CreateGoogleUsuario crea la cuenta a partir del perfil de Google
func CreateGoogleUsuario(name, email, avatar string) (models.Usuario, error) {
	existingEmail, err := GetUsuarioByEmail(email)
	if err == nil {
		return models.Usuario{}, fmt.Errorf("el email %s ya está en uso", existingEmail.Email)
	}

	usuario := models.Usuario{
		Username: email,
		Email:    email,
		Nombre:   name,
		Avatar:   avatar,
	}

	if result := config.DB.Create(&usuario); result.Error != nil {
		return usuario, result.Error
	}

	return usuario, nil
}
