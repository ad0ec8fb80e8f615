package middleware

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// LoggingMiddleware registra todas as requisições HTTP na tabela registro
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		responseTime := int(time.Since(start).Milliseconds())
		entrada := criarRegistro(c, responseTime)

		// Gravação assíncrona para não segurar a resposta
		go salvarRegistro(entrada)

		return err
	}
}

// criarRegistro monta a entrada de log a partir da requisição
func criarRegistro(c *fiber.Ctx, responseTime int) models.Registro {
	var email, papel *string
	if userEmail := c.Locals("user_email"); userEmail != nil {
		if emailStr, ok := userEmail.(string); ok {
			email = &emailStr
		}
	}
	if userPapel := c.Locals("user_papel"); userPapel != nil {
		if p, ok := userPapel.(models.Papel); ok {
			papelStr := string(p)
			papel = &papelStr
		}
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.Split(forwarded, ",")[0]
	}

	return models.Registro{
		Method:       c.Method(),
		Path:         c.Path(),
		StatusCode:   c.Response().StatusCode(),
		ResponseTime: &responseTime,
		IP:           ip,
		Email:        email,
		Papel:        papel,
		LogLevel:     nivelDoStatus(c.Response().StatusCode()),
		Timestamp:    time.Now(),
	}
}

// nivelDoStatus determina o nível do log pelo status code
func nivelDoStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return models.LogLevelSuccess
	case statusCode >= 400 && statusCode < 500:
		return models.LogLevelWarning
	case statusCode >= 500:
		return models.LogLevelError
	default:
		return models.LogLevelInfo
	}
}

// salvarRegistro grava a entrada no banco
func salvarRegistro(r models.Registro) {
	db := database.GetDB()
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx,
		`INSERT INTO registro (method, path, status_code, response_time, ip, email, papel, log_level, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.Method, r.Path, r.StatusCode, r.ResponseTime, r.IP, r.Email, r.Papel, r.LogLevel, r.Timestamp)
	if err != nil {
		log.Println("Erro ao gravar registro de requisição:", err)
	}
}
