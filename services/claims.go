package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CPU-commits/RedInclusion/models"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ACCESS_TOKEN  = "access"
	REFRESH_TOKEN = "refresh"
)

const CLAIMS_KEY = "user"

type Claims struct {
	// Funcionario id, copied from sub
	ID           string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Rol          string `json:"rol"`
	LineaTrabajo string `json:"linea_trabajo,omitempty"`
	TokenType    string `json:"type"`
	jwt.StandardClaims
}

func NewClaims(funcionario *models.Funcionario, tokenType string, duration time.Duration) *Claims {
	issuedAt := time.Now()
	claims := &Claims{
		ID:        funcionario.ID.Hex(),
		Name:      funcionario.Nombre,
		Email:     funcionario.Email,
		Rol:       funcionario.Rol,
		TokenType: tokenType,
		StandardClaims: jwt.StandardClaims{
			Subject:   funcionario.ID.Hex(),
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(duration).Unix(),
			Id:        uuid.NewString(),
		},
	}
	if !funcionario.LineaTrabajo.IsZero() {
		claims.LineaTrabajo = funcionario.LineaTrabajo.Hex()
	}
	return claims
}

func SignClaims(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
}

func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(settingsData.JWT_SECRET_KEY), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token without subject")
	}
	claims.ID = claims.Subject
	return claims, nil
}

func IsExpiredToken(err error) bool {
	var validationErr *jwt.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Errors&jwt.ValidationErrorExpired != 0
	}
	return false
}

func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	value, exists := ctx.Get(CLAIMS_KEY)
	if !exists {
		return &Claims{}, false
	}
	claims, ok := value.(*Claims)
	if !ok {
		return &Claims{}, false
	}
	return claims, true
}
