package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitConfig configuração para rate limiting
type RateLimitConfig struct {
	Max        int           // Número máximo de requisições
	Expiration time.Duration // Janela de tempo
	Message    string        // Mensagem de erro
}

// DefaultRateLimit configuração padrão para rate limiting
var DefaultRateLimit = RateLimitConfig{
	Max:        100,
	Expiration: 15 * time.Minute,
	Message:    "Muitas requisições, tente novamente mais tarde",
}

// AuthRateLimit configuração para as rotas de autenticação
var AuthRateLimit = RateLimitConfig{
	Max:        20,
	Expiration: 30 * time.Minute,
	Message:    "Muitas tentativas de login, tente novamente mais tarde",
}

// CreateRateLimiter cria um middleware de rate limiting com a configuração dada
func CreateRateLimiter(config RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.Max,
		Expiration: config.Expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       true,
				"message":     config.Message,
				"retry_after": int(config.Expiration.Seconds()),
			})
		},
	})
}

// DefaultRateLimiter middleware de rate limiting padrão
func DefaultRateLimiter() fiber.Handler {
	return CreateRateLimiter(DefaultRateLimit)
}

// AuthRateLimiter middleware de rate limiting para autenticação
func AuthRateLimiter() fiber.Handler {
	return CreateRateLimiter(AuthRateLimit)
}
