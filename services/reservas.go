package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// ReservaService é o motor de admissão de reservas avulsas: valida a
// solicitação contra as regras de negócio e o estado existente antes de
// persistir. O Store é injetado para permitir testes com armazenamento em
// memória.
type ReservaService struct {
	store Store
	agora func() time.Time
}

// NewReservaService constrói um ReservaService sobre o Store informado.
func NewReservaService(store Store) *ReservaService {
	return &ReservaService{store: store, agora: time.Now}
}

// CriarReserva valida e persiste uma nova reserva. A ordem das validações é
// fixa para que o erro devolvido seja determinístico:
// hora → data → autenticação → professor responsável → disciplina → conflito.
func (s *ReservaService) CriarReserva(ctx context.Context, solicitante Solicitante, req models.ReservaRequest) (*models.Reserva, error) {
	if !models.HorarioPermitido(req.Hora) {
		return nil, ErrHoraInvalida
	}

	if _, err := time.Parse("2006-01-02", req.Dia); err != nil {
		return nil, ErrDataInvalida
	}
	// Comparação lexicográfica: válida enquanto o formato for ISO de largura fixa.
	hoje := s.agora().Format("2006-01-02")
	if req.Dia < hoje {
		return nil, ErrDataPassada
	}

	if solicitante.ID == 0 {
		return nil, ErrNaoAutenticado
	}

	usuarioID, err := s.resolverProfessor(ctx, solicitante, req.IDProfessor)
	if err != nil {
		return nil, err
	}

	if req.IDDisciplina != nil {
		disciplina, err := s.store.BuscarDisciplinaPorID(ctx, *req.IDDisciplina)
		if err != nil {
			return nil, fmt.Errorf("buscar disciplina: %w", err)
		}
		if disciplina == nil {
			return nil, ErrDisciplinaNaoEncontrada
		}
	}

	existente, err := s.store.BuscarReserva(ctx, req.IDLaboratorio, req.Dia, req.Hora)
	if err != nil {
		return nil, fmt.Errorf("verificar conflito: %w", err)
	}
	if existente != nil {
		return nil, ErrConflitoHorario
	}

	// A restrição UNIQUE (laboratório, dia, hora) no banco fecha a janela
	// entre a verificação acima e o insert; o repositório devolve
	// ErrConflitoHorario na violação.
	reserva := &models.Reserva{
		Hora:          req.Hora,
		Dia:           req.Dia,
		IDDisciplina:  req.IDDisciplina,
		Justificativa: req.Justificativa,
		IDLaboratorio: req.IDLaboratorio,
		IDUsuario:     usuarioID,
	}
	criada, err := s.store.InserirReserva(ctx, reserva)
	if err != nil {
		if errors.Is(err, ErrConflitoHorario) {
			return nil, ErrConflitoHorario
		}
		return nil, fmt.Errorf("inserir reserva: %w", err)
	}
	return criada, nil
}

// resolverProfessor determina o professor responsável pela reserva.
// Professor reserva sempre para si mesmo, ignorando qualquer id_professor do
// payload; Coordenador e Auxiliar_Docente reservam em nome de um professor
// existente.
func (s *ReservaService) resolverProfessor(ctx context.Context, solicitante Solicitante, professorID int) (int, error) {
	switch solicitante.Papel {
	case models.PapelProfessor:
		return solicitante.ID, nil
	case models.PapelCoordenador, models.PapelAuxiliarDocente:
		if professorID == 0 {
			return 0, ErrProfessorObrigatorio
		}
		alvo, err := s.store.BuscarUsuarioPorID(ctx, professorID)
		if err != nil {
			return 0, fmt.Errorf("buscar professor: %w", err)
		}
		if alvo == nil {
			return 0, ErrProfessorNaoEncontrado
		}
		if alvo.Papel != models.PapelProfessor {
			return 0, ErrNaoEProfessor
		}
		return alvo.IDUsuario, nil
	}
	return 0, ErrNaoAutorizado
}

// AtualizarJustificativa altera somente a justificativa de uma reserva.
// Os demais campos são imutáveis após a criação. Professor só altera as
// próprias reservas; Coordenador e Auxiliar_Docente alteram qualquer uma.
func (s *ReservaService) AtualizarJustificativa(ctx context.Context, solicitante Solicitante, id int, texto *string) (*models.Reserva, error) {
	if solicitante.ID == 0 {
		return nil, ErrNaoAutenticado
	}
	reserva, err := s.store.BuscarReservaPorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar reserva: %w", err)
	}
	if reserva == nil {
		return nil, ErrNaoEncontrado
	}
	if err := s.autorizarAlteracao(solicitante, reserva); err != nil {
		return nil, err
	}
	afetadas, err := s.store.AtualizarJustificativaReserva(ctx, id, texto)
	if err != nil {
		return nil, fmt.Errorf("atualizar justificativa: %w", err)
	}
	if afetadas == 0 {
		return nil, ErrNaoEncontrado
	}
	reserva.Justificativa = texto
	return reserva, nil
}

// ExcluirReserva remove uma reserva definitivamente, sob a mesma política de
// autorização de AtualizarJustificativa.
func (s *ReservaService) ExcluirReserva(ctx context.Context, solicitante Solicitante, id int) error {
	if solicitante.ID == 0 {
		return ErrNaoAutenticado
	}
	reserva, err := s.store.BuscarReservaPorID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar reserva: %w", err)
	}
	if reserva == nil {
		return ErrNaoEncontrado
	}
	if err := s.autorizarAlteracao(solicitante, reserva); err != nil {
		return err
	}
	afetadas, err := s.store.ExcluirReserva(ctx, id)
	if err != nil {
		return fmt.Errorf("excluir reserva: %w", err)
	}
	if afetadas == 0 {
		return ErrNaoEncontrado
	}
	return nil
}

// autorizarAlteracao aplica a política de edição/exclusão: o professor dono da
// reserva, ou qualquer Coordenador/Auxiliar_Docente.
func (s *ReservaService) autorizarAlteracao(solicitante Solicitante, reserva *models.Reserva) error {
	switch solicitante.Papel {
	case models.PapelProfessor:
		if reserva.IDUsuario != solicitante.ID {
			return ErrNaoAutorizado
		}
		return nil
	case models.PapelCoordenador, models.PapelAuxiliarDocente:
		return nil
	}
	return ErrNaoAutorizado
}
