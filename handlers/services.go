package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
	"github.com/Otavio-Emanoel/LabControl-sub000/services"
)

// Serviços do núcleo de reservas, construídos no main sobre o Store Postgres.
var (
	reservaService     *services.ReservaService
	horarioFixoService *services.HorarioFixoService
	agendaService      *services.AgendaService
)

// Init injeta o Store nos serviços usados pelos handlers.
func Init(store services.Store) {
	reservaService = services.NewReservaService(store)
	horarioFixoService = services.NewHorarioFixoService(store)
	agendaService = services.NewAgendaService(store)
}

// solicitante extrai a identidade autenticada do contexto da requisição.
func solicitante(c *fiber.Ctx) services.Solicitante {
	s := services.Solicitante{}
	if id, ok := c.Locals("user_id").(int); ok {
		s.ID = id
	}
	if papel, ok := c.Locals("user_papel").(models.Papel); ok {
		s.Papel = papel
	}
	return s
}

// statusDoErro mapeia cada erro de negócio para o status HTTP correspondente.
// O mapeamento é 1:1 para que o cliente distinga "já reservado" de "entrada
// inválida" de "não encontrado".
func statusDoErro(err error) int {
	switch {
	case errors.Is(err, services.ErrHoraInvalida),
		errors.Is(err, services.ErrDataPassada),
		errors.Is(err, services.ErrDataInvalida),
		errors.Is(err, services.ErrCampoObrigatorio),
		errors.Is(err, services.ErrDiaSemanaInvalido),
		errors.Is(err, services.ErrProfessorObrigatorio),
		errors.Is(err, services.ErrNaoEProfessor):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNaoAutenticado):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNaoAutorizado):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrProfessorNaoEncontrado),
		errors.Is(err, services.ErrDisciplinaNaoEncontrada),
		errors.Is(err, services.ErrNaoEncontrado):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflitoHorario):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// erroJSON devolve o erro no formato padrão das respostas de falha.
func erroJSON(c *fiber.Ctx, err error) error {
	status := statusDoErro(err)
	mensagem := err.Error()
	if status == fiber.StatusInternalServerError {
		mensagem = "Erro interno do servidor"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": mensagem,
	})
}
