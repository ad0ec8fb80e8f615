package models

import "testing"

func TestGradeTemNoveHorarios(t *testing.T) {
	if len(HorariosPermitidos) != 9 {
		t.Fatalf("grade com %d horários, esperado 9", len(HorariosPermitidos))
	}
	if HorariosPermitidos[0].Inicio != "08:00:00" {
		t.Errorf("primeiro horário = %q, esperado 08:00:00", HorariosPermitidos[0].Inicio)
	}
	if HorariosPermitidos[8].Inicio != "15:10:00" {
		t.Errorf("último horário = %q, esperado 15:10:00", HorariosPermitidos[8].Inicio)
	}
}

func TestHorarioPermitido(t *testing.T) {
	for _, h := range HorariosPermitidos {
		if !HorarioPermitido(h.Inicio) {
			t.Errorf("HorarioPermitido(%q) = false, horário da grade", h.Inicio)
		}
	}

	invalidos := []string{"", "08:05:00", "07:00:00", "16:00:00", "08:00", "8:00:00"}
	for _, hora := range invalidos {
		if HorarioPermitido(hora) {
			t.Errorf("HorarioPermitido(%q) = true, hora fora da grade", hora)
		}
	}
}
