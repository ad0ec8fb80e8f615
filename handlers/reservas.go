package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// CriarReserva admite uma nova reserva avulsa de laboratório
func CriarReserva(c *fiber.Ctx) error {
	var req models.ReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	reserva, err := reservaService.CriarReserva(c.Context(), solicitante(c), req)
	if err != nil {
		return erroJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"mensagem": "Reserva criada com sucesso",
		"reserva":  reserva,
	})
}

// AtualizarJustificativa altera a justificativa de uma reserva existente
func AtualizarJustificativa(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var req models.JustificativaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	reserva, err := reservaService.AtualizarJustificativa(c.Context(), solicitante(c), id, req.Justificativa)
	if err != nil {
		return erroJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensagem": "Justificativa atualizada com sucesso",
		"reserva":  reserva,
	})
}

// ExcluirReserva remove uma reserva definitivamente
func ExcluirReserva(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := reservaService.ExcluirReserva(c.Context(), solicitante(c), id); err != nil {
		return erroJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensagem": "Reserva excluída com sucesso",
	})
}

// ObterReservasPorDia lista as reservas avulsas de uma data concreta
func ObterReservasPorDia(c *fiber.Ctx) error {
	dia := c.Params("dia")

	query := `SELECT r.id_reserva, r.hora, r.dia, r.id_disciplina, r.justificativa,
			  r.id_laboratorio, r.id_usuario, u.nome, d.nome, r.created_at
			  FROM reserva r
			  JOIN usuario u ON r.id_usuario = u.id_usuario
			  LEFT JOIN disciplina d ON r.id_disciplina = d.id_disciplina
			  WHERE r.dia = $1
			  ORDER BY r.id_laboratorio, r.hora`

	rows, err := database.GetDB().Query(context.Background(), query, dia)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter reservas",
		})
	}
	defer rows.Close()

	var reservas []models.Reserva
	for rows.Next() {
		var r models.Reserva
		if err := rows.Scan(&r.IDReserva, &r.Hora, &r.Dia, &r.IDDisciplina, &r.Justificativa,
			&r.IDLaboratorio, &r.IDUsuario, &r.ProfessorNome, &r.DisciplinaNome, &r.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar reservas",
			})
		}
		reservas = append(reservas, r)
	}

	return c.JSON(fiber.Map{
		"reservas": reservas,
		"total":    len(reservas),
	})
}

// ObterReservasPorProfessor lista as reservas de um professor
func ObterReservasPorProfessor(c *fiber.Ctx) error {
	professorID, err := strconv.Atoi(c.Params("professor_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID de professor inválido",
		})
	}

	query := `SELECT r.id_reserva, r.hora, r.dia, r.id_disciplina, r.justificativa,
			  r.id_laboratorio, r.id_usuario, u.nome, d.nome, r.created_at
			  FROM reserva r
			  JOIN usuario u ON r.id_usuario = u.id_usuario
			  LEFT JOIN disciplina d ON r.id_disciplina = d.id_disciplina
			  WHERE r.id_usuario = $1
			  ORDER BY r.dia, r.hora`

	rows, err := database.GetDB().Query(context.Background(), query, professorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter reservas do professor",
		})
	}
	defer rows.Close()

	var reservas []models.Reserva
	for rows.Next() {
		var r models.Reserva
		if err := rows.Scan(&r.IDReserva, &r.Hora, &r.Dia, &r.IDDisciplina, &r.Justificativa,
			&r.IDLaboratorio, &r.IDUsuario, &r.ProfessorNome, &r.DisciplinaNome, &r.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar reservas",
			})
		}
		reservas = append(reservas, r)
	}

	return c.JSON(fiber.Map{
		"reservas":     reservas,
		"total":        len(reservas),
		"professor_id": professorID,
	})
}
