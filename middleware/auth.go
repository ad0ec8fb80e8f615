package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// jwtSecret lê a chave de assinatura do ambiente. Lida a cada uso para
// funcionar com godotenv.Load no main.
func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "labcontrol_chave_de_desenvolvimento"
	}
	return []byte(secret)
}

// Claims personalizados para o JWT
type Claims struct {
	UserID int          `json:"user_id"`
	Email  string       `json:"email"`
	Papel  models.Papel `json:"papel"`
	jwt.RegisteredClaims
}

// AccessTokenTTL é a validade do token de acesso.
const AccessTokenTTL = 2 * time.Hour

// GenerateJWT gera um token JWT para um usuário
func GenerateJWT(userID int, email string, papel models.Papel) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Papel:  papel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// JWTMiddleware valida o token Bearer e guarda os dados do usuário no contexto
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Token de autorização obrigatório",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(401).JSON(fiber.Map{
				"error": "Formato de token inválido",
			})
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			return c.Status(401).JSON(fiber.Map{
				"error": "Token inválido",
			})
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{
				"error": "Claims inválidos",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_papel", claims.Papel)

		return c.Next()
	}
}

// RequirePapel exige que o usuário autenticado tenha um dos papéis informados
func RequirePapel(permitidos ...models.Papel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel, ok := c.Locals("user_papel").(models.Papel)
		if !ok {
			return c.Status(403).JSON(fiber.Map{
				"error": "Papel do usuário não encontrado",
			})
		}

		for _, p := range permitidos {
			if papel == p {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Acesso negado: permissões insuficientes",
		})
	}
}
