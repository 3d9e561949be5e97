package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/config"
	"github.com/BruksfildServices01/belezasmart/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// parseToken extrai (userID, email) do header Authorization: Bearer <jwt>.
// present=false quando não há header; code != "" quando o token é inválido.
func parseToken(c *gin.Context, secret string) (userID uint, email string, present bool, code string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, "", false, "missing_authorization_header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, "", true, "invalid_authorization_header"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", true, "invalid_token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", true, "invalid_token_claims"
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, "", true, "invalid_token_payload"
	}
	mail, _ := claims["email"].(string)

	return uint(sub), mail, true, ""
}

// AuthMiddleware exige um token válido.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, _, code := parseToken(c, cfg.JWTSecret)
		if code != "" {
			httperr.Unauthorized(c, code, "Sessão inválida. Faça login novamente.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// OptionalAuthMiddleware identifica o usuário quando há token válido.
// Sem token, ou com token inválido, a requisição segue como anônima
// (OwnerID == 0) e a camada de acesso devolve listas vazias.
func OptionalAuthMiddleware(cfg *config.Config, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, present, code := parseToken(c, cfg.JWTSecret)
		if !present {
			c.Next()
			return
		}
		if code != "" {
			log.WithFields(logrus.Fields{
				"path":   c.FullPath(),
				"reason": code,
			}).Debug("invalid token, continuing as anonymous")
			c.Next()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// OwnerID devolve o dono da conta da requisição, ou 0 se anônima.
func OwnerID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func OwnerEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
