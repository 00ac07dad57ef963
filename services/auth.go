package services

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var authService *AuthService

var funcionariosService = NewFuncionarioService()

type AuthService struct{}

func (a *AuthService) accessDuration() time.Duration {
	return time.Duration(settingsData.ACCESS_TOKEN_HOURS) * time.Hour
}

func (a *AuthService) refreshDuration() time.Duration {
	return time.Duration(settingsData.REFRESH_TOKEN_DAYS) * 24 * time.Hour
}

func (a *AuthService) newAccessToken(funcionario *models.Funcionario) (string, *res.ErrorRes) {
	token, err := SignClaims(NewClaims(funcionario, ACCESS_TOKEN, a.accessDuration()))
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return token, nil
}

func (a *AuthService) newRefreshToken(funcionario *models.Funcionario) (string, *res.ErrorRes) {
	claims := NewClaims(funcionario, REFRESH_TOKEN, a.refreshDuration())
	token, err := SignClaims(claims)
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	_, err = refreshTokenModel.NewDocument(models.RefreshToken{
		JTI:           claims.Id,
		FuncionarioID: funcionario.ID,
		ExpiresAt:     primitive.NewDateTimeFromTime(time.Unix(claims.ExpiresAt, 0)),
		CreatedAt:     primitive.NewDateTimeFromTime(time.Now()),
	})
	if err != nil {
		return "", dbError(err)
	}
	return token, nil
}

func (a *AuthService) Login(login *forms.LoginForm) (*LoginRes, *res.ErrorRes) {
	email := strings.ToLower(strings.TrimSpace(login.Email))
	if email == "" || login.Password == "" {
		return nil, &res.ErrorRes{
			Err:        errors.New("Credenciales incompletas"),
			StatusCode: http.StatusBadRequest,
		}
	}

	var funcionario *models.Funcionario
	cursor := funcionarioModel.GetOne(bson.D{{Key: "email", Value: email}})
	if err := cursor.Decode(&funcionario); err != nil {
		return nil, findError(err, "Usuario no encontrado")
	}
	err := bcrypt.CompareHashAndPassword(
		[]byte(funcionario.PasswordHash),
		[]byte(login.Password),
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        errors.New("Contraseña incorrecta"),
			StatusCode: http.StatusUnauthorized,
		}
	}
	if funcionario.Estado == models.INACTIVO {
		return nil, &res.ErrorRes{
			Err:        errors.New("Usuario inactivo"),
			StatusCode: http.StatusForbidden,
		}
	}
	// Tokens
	accessToken, errRes := a.newAccessToken(funcionario)
	if errRes != nil {
		return nil, errRes
	}
	refreshToken, errRes := a.newRefreshToken(funcionario)
	if errRes != nil {
		return nil, errRes
	}
	return &LoginRes{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(a.accessDuration().Seconds()),
		Funcionario:  funcionario.ToSimpleUser(),
	}, nil
}

func (a *AuthService) activeRefreshToken(claims *Claims) (*models.RefreshToken, *res.ErrorRes) {
	if claims.TokenType != REFRESH_TOKEN || claims.Id == "" {
		return nil, &res.ErrorRes{
			Err:        errors.New("Token inválido"),
			StatusCode: http.StatusUnprocessableEntity,
		}
	}
	var refreshToken *models.RefreshToken
	cursor := refreshTokenModel.GetOne(bson.D{{Key: "jti", Value: claims.Id}})
	if err := cursor.Decode(&refreshToken); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("Token revocado"),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return nil, dbError(err)
	}
	if refreshToken.Revoked {
		return nil, &res.ErrorRes{
			Err:        errors.New("Token revocado"),
			StatusCode: http.StatusUnauthorized,
		}
	}
	return refreshToken, nil
}

func (a *AuthService) Refresh(claims *Claims) (*RefreshRes, *res.ErrorRes) {
	if _, errRes := a.activeRefreshToken(claims); errRes != nil {
		return nil, errRes
	}
	funcionario, errRes := funcionariosService.GetFuncionarioDocument(claims.ID)
	if errRes != nil {
		return nil, errRes
	}
	if funcionario.Estado == models.INACTIVO {
		return nil, &res.ErrorRes{
			Err:        errors.New("Usuario inactivo"),
			StatusCode: http.StatusForbidden,
		}
	}
	accessToken, errRes := a.newAccessToken(funcionario)
	if errRes != nil {
		return nil, errRes
	}
	return &RefreshRes{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(a.accessDuration().Seconds()),
	}, nil
}

func (a *AuthService) Logout(claims *Claims) *res.ErrorRes {
	refreshToken, errRes := a.activeRefreshToken(claims)
	if errRes != nil {
		return errRes
	}
	_, err := refreshTokenModel.UpdateByID(refreshToken.ID, bson.D{
		{
			Key:   "$set",
			Value: bson.M{"revoked": true},
		},
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (a *AuthService) Perfil(claims *Claims) (*models.FuncionarioWLookup, *res.ErrorRes) {
	return funcionariosService.GetFuncionario(claims.ID)
}

func NewAuthService() *AuthService {
	if authService == nil {
		authService = &AuthService{}
	}
	return authService
}
