package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// HorarioFixoService é o motor de horários fixos semanais. Não existe
// atualização: um horário fixo é excluído e recriado.
type HorarioFixoService struct {
	store Store
}

// NewHorarioFixoService constrói um HorarioFixoService sobre o Store informado.
func NewHorarioFixoService(store Store) *HorarioFixoService {
	return &HorarioFixoService{store: store}
}

// CriarHorarioFixo valida e persiste um horário fixo semanal. Ordem das
// validações: campos obrigatórios → dia da semana → hora → professor → conflito.
func (s *HorarioFixoService) CriarHorarioFixo(ctx context.Context, req models.HorarioFixoRequest) (*models.HorarioFixo, error) {
	if req.DiaSemana == "" || req.Hora == "" || req.IDLaboratorio == 0 || req.IDProfessor == 0 {
		return nil, ErrCampoObrigatorio
	}

	dia, ok := models.ParseDiaSemana(req.DiaSemana)
	if !ok {
		return nil, ErrDiaSemanaInvalido
	}

	if !models.HorarioPermitido(req.Hora) {
		return nil, ErrHoraInvalida
	}

	professor, err := s.store.BuscarUsuarioPorID(ctx, req.IDProfessor)
	if err != nil {
		return nil, fmt.Errorf("buscar professor: %w", err)
	}
	if professor == nil {
		return nil, ErrProfessorNaoEncontrado
	}
	if professor.Papel != models.PapelProfessor {
		return nil, ErrNaoEProfessor
	}

	existente, err := s.store.BuscarHorarioFixo(ctx, req.IDLaboratorio, dia, req.Hora)
	if err != nil {
		return nil, fmt.Errorf("verificar conflito: %w", err)
	}
	if existente != nil {
		return nil, ErrConflitoHorario
	}

	horario := &models.HorarioFixo{
		DiaSemana:     dia,
		Hora:          req.Hora,
		IDLaboratorio: req.IDLaboratorio,
		IDUsuario:     professor.IDUsuario,
	}
	criado, err := s.store.InserirHorarioFixo(ctx, horario)
	if err != nil {
		if errors.Is(err, ErrConflitoHorario) {
			return nil, ErrConflitoHorario
		}
		return nil, fmt.Errorf("inserir horário fixo: %w", err)
	}
	return criado, nil
}

// ExcluirHorarioFixo remove um horário fixo definitivamente.
func (s *HorarioFixoService) ExcluirHorarioFixo(ctx context.Context, id int) error {
	afetadas, err := s.store.ExcluirHorarioFixo(ctx, id)
	if err != nil {
		return fmt.Errorf("excluir horário fixo: %w", err)
	}
	if afetadas == 0 {
		return ErrNaoEncontrado
	}
	return nil
}
