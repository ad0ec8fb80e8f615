package services

import "errors"

// Erros de negócio dos motores de reserva. Cada um corresponde a um status
// HTTP distinto na camada de handlers; os handlers mapeiam via errors.Is.
var (
	ErrHoraInvalida            = errors.New("hora fora da grade de horários permitidos")
	ErrDataPassada             = errors.New("não é possível reservar para uma data passada")
	ErrDataInvalida            = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrNaoAutenticado          = errors.New("usuário não autenticado")
	ErrNaoAutorizado           = errors.New("sem permissão para esta operação")
	ErrProfessorObrigatorio    = errors.New("id_professor é obrigatório para este papel")
	ErrProfessorNaoEncontrado  = errors.New("professor não encontrado")
	ErrNaoEProfessor           = errors.New("o usuário informado não tem papel de Professor")
	ErrDisciplinaNaoEncontrada = errors.New("disciplina não encontrada")
	ErrConflitoHorario         = errors.New("já existe uma reserva para este laboratório, dia e horário")
	ErrNaoEncontrado           = errors.New("registro não encontrado")
	ErrCampoObrigatorio        = errors.New("campo obrigatório ausente")
	ErrDiaSemanaInvalido       = errors.New("dia da semana inválido")
)
