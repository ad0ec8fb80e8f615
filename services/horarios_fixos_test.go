package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

func horarioFixoValido() models.HorarioFixoRequest {
	return models.HorarioFixoRequest{
		DiaSemana:     "segunda",
		Hora:          "10:00:00",
		IDLaboratorio: 2,
		IDProfessor:   2,
	}
}

func TestCriarHorarioFixo(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	horario, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido())
	if err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}
	if horario.IDHorarioFixo == 0 {
		t.Error("horário fixo criado sem ID")
	}
	if horario.DiaSemana != models.Segunda {
		t.Errorf("DiaSemana = %q, esperado segunda", horario.DiaSemana)
	}
}

func TestCriarHorarioFixoDuplicadoConflita(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	if _, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido()); err != nil {
		t.Fatalf("primeiro horário fixo: %v", err)
	}
	_, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido())
	if !errors.Is(err, ErrConflitoHorario) {
		t.Errorf("erro = %v, esperado ErrConflitoHorario", err)
	}
}

func TestCriarHorarioFixoCamposObrigatorios(t *testing.T) {
	store := newFakeStore()
	svc := NewHorarioFixoService(store)

	casos := []models.HorarioFixoRequest{
		{Hora: "10:00:00", IDLaboratorio: 2, IDProfessor: 2},
		{DiaSemana: "segunda", IDLaboratorio: 2, IDProfessor: 2},
		{DiaSemana: "segunda", Hora: "10:00:00", IDProfessor: 2},
		{DiaSemana: "segunda", Hora: "10:00:00", IDLaboratorio: 2},
	}
	for _, req := range casos {
		if _, err := svc.CriarHorarioFixo(context.Background(), req); !errors.Is(err, ErrCampoObrigatorio) {
			t.Errorf("req %+v: erro = %v, esperado ErrCampoObrigatorio", req, err)
		}
	}
}

func TestCriarHorarioFixoDiaSemanaInvalido(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	req := horarioFixoValido()
	req.DiaSemana = "monday"
	_, err := svc.CriarHorarioFixo(context.Background(), req)
	if !errors.Is(err, ErrDiaSemanaInvalido) {
		t.Errorf("erro = %v, esperado ErrDiaSemanaInvalido", err)
	}
}

func TestCriarHorarioFixoNormalizaDiaSemana(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	req := horarioFixoValido()
	req.DiaSemana = "Terça"
	horario, err := svc.CriarHorarioFixo(context.Background(), req)
	if err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}
	if horario.DiaSemana != models.Terca {
		t.Errorf("DiaSemana = %q, esperado terca", horario.DiaSemana)
	}
}

func TestCriarHorarioFixoHoraForaDaGrade(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	req := horarioFixoValido()
	req.Hora = "10:15:00"
	_, err := svc.CriarHorarioFixo(context.Background(), req)
	if !errors.Is(err, ErrHoraInvalida) {
		t.Errorf("erro = %v, esperado ErrHoraInvalida", err)
	}
}

func TestCriarHorarioFixoProfessorInexistente(t *testing.T) {
	store := newFakeStore()
	svc := NewHorarioFixoService(store)

	_, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido())
	if !errors.Is(err, ErrProfessorNaoEncontrado) {
		t.Errorf("erro = %v, esperado ErrProfessorNaoEncontrado", err)
	}
}

func TestCriarHorarioFixoExigePapelProfessor(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "C1", models.PapelCoordenador)
	svc := NewHorarioFixoService(store)

	_, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido())
	if !errors.Is(err, ErrNaoEProfessor) {
		t.Errorf("erro = %v, esperado ErrNaoEProfessor", err)
	}
}

func TestExcluirHorarioFixo(t *testing.T) {
	store := newFakeStore()
	store.addUsuario(2, "P2", models.PapelProfessor)
	svc := NewHorarioFixoService(store)

	horario, err := svc.CriarHorarioFixo(context.Background(), horarioFixoValido())
	if err != nil {
		t.Fatalf("CriarHorarioFixo: %v", err)
	}

	if err := svc.ExcluirHorarioFixo(context.Background(), horario.IDHorarioFixo); err != nil {
		t.Fatalf("ExcluirHorarioFixo: %v", err)
	}
	if err := svc.ExcluirHorarioFixo(context.Background(), horario.IDHorarioFixo); !errors.Is(err, ErrNaoEncontrado) {
		t.Errorf("erro = %v, esperado ErrNaoEncontrado após exclusão", err)
	}
}

func TestExcluirHorarioFixoInexistente(t *testing.T) {
	store := newFakeStore()
	svc := NewHorarioFixoService(store)

	if err := svc.ExcluirHorarioFixo(context.Background(), 42); !errors.Is(err, ErrNaoEncontrado) {
		t.Errorf("erro = %v, esperado ErrNaoEncontrado", err)
	}
}
