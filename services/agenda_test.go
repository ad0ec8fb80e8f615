package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// 2099-01-12 cai numa segunda-feira
const segundaFutura = "2099-01-12"

func TestOcupacaoDoDiaSomenteHorarioFixo(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	fixoSvc := NewHorarioFixoService(store)
	agendaSvc := NewAgendaService(store)

	if _, err := fixoSvc.CriarHorarioFixo(context.Background(), horarioFixoValido()); err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}

	agenda, err := agendaSvc.OcupacaoDoDia(context.Background(), segundaFutura)
	if err != nil {
		t.Fatalf("OcupacaoDoDia: %v", err)
	}
	if agenda.DiaSemana != models.Segunda {
		t.Fatalf("DiaSemana = %q, esperado segunda", agenda.DiaSemana)
	}
	if len(agenda.Celulas) != 1 {
		t.Fatalf("células = %d, esperado 1", len(agenda.Celulas))
	}

	celula := agenda.Celulas[0]
	if !celula.Fixo {
		t.Error("célula de horário fixo deveria vir marcada como fixo")
	}
	if celula.IDLaboratorio != 2 || celula.Hora != "10:00:00" {
		t.Errorf("célula = (%d, %s), esperado (2, 10:00:00)", celula.IDLaboratorio, celula.Hora)
	}
	if celula.ProfessorNome != "P2" {
		t.Errorf("ProfessorNome = %q, esperado P2", celula.ProfessorNome)
	}
}

func TestOcupacaoDoDiaReservaTemPrecedencia(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(1, "P1", models.PapelProfessor)
	store.addUsuario(2, "P2", models.PapelProfessor)
	reservaSvc := novoReservaService(store)
	fixoSvc := NewHorarioFixoService(store)
	agendaSvc := NewAgendaService(store)

	// Horário fixo e reserva avulsa disputando a mesma célula (lab 2, 10:00)
	if _, err := fixoSvc.CriarHorarioFixo(context.Background(), horarioFixoValido()); err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}
	req := models.ReservaRequest{
		Hora:          "10:00:00",
		Dia:           segundaFutura,
		IDLaboratorio: 2,
	}
	reserva, err := reservaSvc.CriarReserva(context.Background(), Solicitante{ID: 1, Papel: models.PapelProfessor}, req)
	if err != nil {
		t.Fatalf("CriarReserva: %v", err)
	}

	agenda, err := agendaSvc.OcupacaoDoDia(context.Background(), segundaFutura)
	if err != nil {
		t.Fatalf("OcupacaoDoDia: %v", err)
	}
	if len(agenda.Celulas) != 1 {
		t.Fatalf("células = %d, esperado exatamente 1 para a célula disputada", len(agenda.Celulas))
	}

	celula := agenda.Celulas[0]
	if celula.Fixo {
		t.Error("a reserva avulsa deveria ter precedência sobre o horário fixo")
	}
	if celula.IDReserva == nil || *celula.IDReserva != reserva.IDReserva {
		t.Errorf("IDReserva = %v, esperado %d", celula.IDReserva, reserva.IDReserva)
	}
	if celula.ProfessorNome != "P1" {
		t.Errorf("ProfessorNome = %q, esperado o professor da reserva", celula.ProfessorNome)
	}
}

func TestOcupacaoDoDiaMesclaCelulasDistintas(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(1, "P1", models.PapelProfessor)
	store.addUsuario(2, "P2", models.PapelProfessor)
	reservaSvc := novoReservaService(store)
	fixoSvc := NewHorarioFixoService(store)
	agendaSvc := NewAgendaService(store)

	if _, err := fixoSvc.CriarHorarioFixo(context.Background(), horarioFixoValido()); err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}
	req := models.ReservaRequest{
		Hora:          "08:00:00",
		Dia:           segundaFutura,
		IDLaboratorio: 1,
	}
	if _, err := reservaSvc.CriarReserva(context.Background(), Solicitante{ID: 1, Papel: models.PapelProfessor}, req); err != nil {
		t.Fatalf("CriarReserva: %v", err)
	}

	agenda, err := agendaSvc.OcupacaoDoDia(context.Background(), segundaFutura)
	if err != nil {
		t.Fatalf("OcupacaoDoDia: %v", err)
	}
	if len(agenda.Celulas) != 2 {
		t.Fatalf("células = %d, esperado 2", len(agenda.Celulas))
	}

	fixos := 0
	for _, celula := range agenda.Celulas {
		if celula.Fixo {
			fixos++
		}
	}
	if fixos != 1 {
		t.Errorf("células fixas = %d, esperado 1", fixos)
	}
}

func TestOcupacaoDoDiaHorarioFixoDeOutroDiaNaoAparece(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	fixoSvc := NewHorarioFixoService(store)
	agendaSvc := NewAgendaService(store)

	req := horarioFixoValido()
	req.DiaSemana = "quarta"
	if _, err := fixoSvc.CriarHorarioFixo(context.Background(), req); err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}

	agenda, err := agendaSvc.OcupacaoDoDia(context.Background(), segundaFutura)
	if err != nil {
		t.Fatalf("OcupacaoDoDia: %v", err)
	}
	if len(agenda.Celulas) != 0 {
		t.Errorf("células = %d, horário fixo de quarta não pertence à segunda", len(agenda.Celulas))
	}
}

func TestOcupacaoDoDiaGradeCompleta(t *testing.T) {
	store := newFakeStore()
	agendaSvc := NewAgendaService(store)

	agenda, err := agendaSvc.OcupacaoDoDia(context.Background(), segundaFutura)
	if err != nil {
		t.Fatalf("OcupacaoDoDia: %v", err)
	}
	if len(agenda.Horarios) != len(models.HorariosPermitidos) {
		t.Errorf("grade com %d horários, esperado %d", len(agenda.Horarios), len(models.HorariosPermitidos))
	}
	if agenda.Dia != segundaFutura {
		t.Errorf("Dia = %q, esperado %q", agenda.Dia, segundaFutura)
	}
}

func TestOcupacaoDoDiaDataInvalida(t *testing.T) {
	store := newFakeStore()
	agendaSvc := NewAgendaService(store)

	_, err := agendaSvc.OcupacaoDoDia(context.Background(), "12/01/2099")
	if !errors.Is(err, ErrDataInvalida) {
		t.Errorf("erro = %v, esperado ErrDataInvalida", err)
	}
}
