package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// ObterAgendaDoDia devolve a grade de ocupação de uma data: reservas avulsas
// mescladas com os horários fixos daquele dia da semana
func ObterAgendaDoDia(c *fiber.Ctx) error {
	agenda, err := agendaService.OcupacaoDoDia(c.Context(), c.Params("dia"))
	if err != nil {
		return erroJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"agenda": agenda,
	})
}

// ObterHorarios devolve a grade canônica de horários reserváveis, para que os
// clientes possam pré-validar as solicitações
func ObterHorarios(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"horarios": models.HorariosPermitidos,
		"total":    len(models.HorariosPermitidos),
	})
}
