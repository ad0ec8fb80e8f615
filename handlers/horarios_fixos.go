package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// CriarHorarioFixo cria uma reserva semanal recorrente de laboratório
func CriarHorarioFixo(c *fiber.Ctx) error {
	var req models.HorarioFixoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	horario, err := horarioFixoService.CriarHorarioFixo(c.Context(), req)
	if err != nil {
		return erroJSON(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"mensagem":     "Horário fixo criado com sucesso",
		"horario_fixo": horario,
	})
}

// ExcluirHorarioFixo remove um horário fixo. Não há atualização: um horário
// fixo é excluído e recriado.
func ExcluirHorarioFixo(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := horarioFixoService.ExcluirHorarioFixo(c.Context(), id); err != nil {
		return erroJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"mensagem": "Horário fixo excluído com sucesso",
	})
}

// ObterHorariosFixosPorDiaSemana lista os horários fixos de um dia da semana
func ObterHorariosFixosPorDiaSemana(c *fiber.Ctx) error {
	dia, ok := models.ParseDiaSemana(c.Params("dia_semana"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dia da semana inválido",
		})
	}

	query := `SELECT h.id_horario_fixo, h.dia_semana, h.hora, h.id_laboratorio, h.id_usuario, u.nome, h.created_at
			  FROM horario_fixo h
			  JOIN usuario u ON h.id_usuario = u.id_usuario
			  WHERE h.dia_semana = $1
			  ORDER BY h.id_laboratorio, h.hora`

	rows, err := database.GetDB().Query(context.Background(), query, dia)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter horários fixos",
		})
	}
	defer rows.Close()

	var horarios []models.HorarioFixo
	for rows.Next() {
		var h models.HorarioFixo
		if err := rows.Scan(&h.IDHorarioFixo, &h.DiaSemana, &h.Hora, &h.IDLaboratorio,
			&h.IDUsuario, &h.ProfessorNome, &h.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar horários fixos",
			})
		}
		horarios = append(horarios, h)
	}

	return c.JSON(fiber.Map{
		"horarios_fixos": horarios,
		"total":          len(horarios),
		"dia_semana":     dia,
	})
}
