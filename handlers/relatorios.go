package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
)

// GerarRelatorioUsoLaboratorios totaliza reservas e horários fixos por laboratório
func GerarRelatorioUsoLaboratorios(c *fiber.Ctx) error {
	query := `SELECT l.id_laboratorio, l.numero,
			  COUNT(DISTINCT r.id_reserva) AS reservas,
			  COUNT(DISTINCT h.id_horario_fixo) AS horarios_fixos
			  FROM laboratorio l
			  LEFT JOIN reserva r ON r.id_laboratorio = l.id_laboratorio
			  LEFT JOIN horario_fixo h ON h.id_laboratorio = l.id_laboratorio
			  GROUP BY l.id_laboratorio, l.numero
			  ORDER BY l.numero`

	rows, err := database.GetDB().Query(context.Background(), query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar o relatório",
		})
	}
	defer rows.Close()

	type linhaUso struct {
		IDLaboratorio int    `json:"id_laboratorio"`
		Numero        string `json:"numero"`
		Reservas      int    `json:"reservas"`
		HorariosFixos int    `json:"horarios_fixos"`
	}

	var linhas []linhaUso
	for rows.Next() {
		var l linhaUso
		if err := rows.Scan(&l.IDLaboratorio, &l.Numero, &l.Reservas, &l.HorariosFixos); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar o relatório",
			})
		}
		linhas = append(linhas, l)
	}

	return c.JSON(fiber.Map{
		"relatorio": linhas,
		"total":     len(linhas),
	})
}

// GerarRelatorioReservasPorProfessor totaliza reservas por professor
func GerarRelatorioReservasPorProfessor(c *fiber.Ctx) error {
	query := `SELECT u.id_usuario, u.nome,
			  COUNT(r.id_reserva) AS reservas
			  FROM usuario u
			  LEFT JOIN reserva r ON r.id_usuario = u.id_usuario
			  WHERE u.papel = 'Professor'
			  GROUP BY u.id_usuario, u.nome
			  ORDER BY reservas DESC, u.nome`

	rows, err := database.GetDB().Query(context.Background(), query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar o relatório",
		})
	}
	defer rows.Close()

	type linhaProfessor struct {
		IDUsuario int    `json:"id_usuario"`
		Nome      string `json:"nome"`
		Reservas  int    `json:"reservas"`
	}

	var linhas []linhaProfessor
	for rows.Next() {
		var l linhaProfessor
		if err := rows.Scan(&l.IDUsuario, &l.Nome, &l.Reservas); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar o relatório",
			})
		}
		linhas = append(linhas, l)
	}

	return c.JSON(fiber.Map{
		"relatorio": linhas,
		"total":     len(linhas),
	})
}
