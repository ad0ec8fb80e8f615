package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// AgendaService monta a grade de ocupação de um dia, mesclando reservas
// avulsas com os horários fixos daquele dia da semana.
type AgendaService struct {
	store Store
}

// NewAgendaService constrói um AgendaService sobre o Store informado.
func NewAgendaService(store Store) *AgendaService {
	return &AgendaService{store: store}
}

// OcupacaoDoDia devolve a ocupação efetiva de uma data concreta. Reservas
// avulsas têm precedência: um horário fixo só aparece se a célula
// (laboratório, hora) não estiver tomada por uma reserva. O resultado é
// recalculado a cada chamada, sem cache.
func (s *AgendaService) OcupacaoDoDia(ctx context.Context, dia string) (*models.AgendaDia, error) {
	data, err := time.Parse("2006-01-02", dia)
	if err != nil {
		return nil, ErrDataInvalida
	}
	diaSemana := models.DiaSemanaDe(data)

	reservas, err := s.store.ListarReservasPorDia(ctx, dia)
	if err != nil {
		return nil, fmt.Errorf("listar reservas do dia: %w", err)
	}
	fixos, err := s.store.ListarHorariosFixosPorDiaSemana(ctx, diaSemana)
	if err != nil {
		return nil, fmt.Errorf("listar horários fixos: %w", err)
	}

	type chave struct {
		lab  int
		hora string
	}
	ocupadas := make(map[chave]bool, len(reservas))

	agenda := &models.AgendaDia{
		Dia:       dia,
		DiaSemana: diaSemana,
		Horarios:  models.HorariosPermitidos,
		Celulas:   make([]models.CelulaAgenda, 0, len(reservas)+len(fixos)),
	}

	for i := range reservas {
		r := &reservas[i]
		ocupadas[chave{r.IDLaboratorio, r.Hora}] = true
		id := r.IDReserva
		agenda.Celulas = append(agenda.Celulas, models.CelulaAgenda{
			IDLaboratorio:  r.IDLaboratorio,
			Hora:           r.Hora,
			Fixo:           false,
			IDReserva:      &id,
			IDUsuario:      r.IDUsuario,
			ProfessorNome:  r.ProfessorNome,
			DisciplinaNome: r.DisciplinaNome,
			Justificativa:  r.Justificativa,
		})
	}

	for i := range fixos {
		f := &fixos[i]
		if ocupadas[chave{f.IDLaboratorio, f.Hora}] {
			continue
		}
		id := f.IDHorarioFixo
		agenda.Celulas = append(agenda.Celulas, models.CelulaAgenda{
			IDLaboratorio: f.IDLaboratorio,
			Hora:          f.Hora,
			Fixo:          true,
			IDHorarioFixo: &id,
			IDUsuario:     f.IDUsuario,
			ProfessorNome: f.ProfessorNome,
		})
	}

	return agenda, nil
}
