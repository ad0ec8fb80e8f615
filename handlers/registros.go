package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// ObterRegistros lista os registros de requisição mais recentes
func ObterRegistros(c *fiber.Ctx) error {
	limite, err := strconv.Atoi(c.Query("limite", "100"))
	if err != nil || limite < 1 || limite > 1000 {
		limite = 100
	}

	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id_registro, method, path, status_code, response_time, ip, email, papel, log_level, timestamp
		 FROM registro ORDER BY timestamp DESC LIMIT $1`, limite)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter registros",
		})
	}
	defer rows.Close()

	var registros []models.Registro
	for rows.Next() {
		var r models.Registro
		if err := rows.Scan(&r.IDRegistro, &r.Method, &r.Path, &r.StatusCode, &r.ResponseTime,
			&r.IP, &r.Email, &r.Papel, &r.LogLevel, &r.Timestamp); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar registros",
			})
		}
		registros = append(registros, r)
	}

	return c.JSON(fiber.Map{
		"registros": registros,
		"total":     len(registros),
	})
}
