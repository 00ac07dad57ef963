package middlewares

import (
	"net/http"

	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/gin-gonic/gin"
)

func abortToken(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, &res.Response{
		Success: false,
		Message: message,
	})
}

func tokenMiddleware(tokenType string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := services.BearerToken(ctx.GetHeader("Authorization"))
		if token == "" {
			abortToken(ctx, http.StatusUnauthorized, "Token de autenticación requerido")
			return
		}
		claims, err := services.ParseToken(token)
		if err != nil {
			if services.IsExpiredToken(err) {
				abortToken(ctx, http.StatusUnauthorized, "Token expirado")
				return
			}
			abortToken(ctx, http.StatusUnprocessableEntity, "Token inválido")
			return
		}
		if claims.TokenType != tokenType {
			abortToken(ctx, http.StatusUnprocessableEntity, "Token inválido")
			return
		}
		ctx.Set(services.CLAIMS_KEY, claims)
		ctx.Next()
	}
}

// Requires a valid access token, claims are stored under services.CLAIMS_KEY
func JWTMiddleware() gin.HandlerFunc {
	return tokenMiddleware(services.ACCESS_TOKEN)
}

func JWTRefreshMiddleware() gin.HandlerFunc {
	return tokenMiddleware(services.REFRESH_TOKEN)
}
