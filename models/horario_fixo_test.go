package models

import (
	"testing"
	"time"
)

func TestParseDiaSemana(t *testing.T) {
	casos := []struct {
		entrada string
		dia     DiaSemana
	}{
		{"segunda", Segunda},
		{"SEGUNDA", Segunda},
		{"Terça", Terca},
		{"terca", Terca},
		{"sábado", Sabado},
		{" domingo ", Domingo},
		{"Quinta", Quinta},
	}
	for _, caso := range casos {
		dia, ok := ParseDiaSemana(caso.entrada)
		if !ok {
			t.Errorf("ParseDiaSemana(%q) não reconheceu o dia", caso.entrada)
			continue
		}
		if dia != caso.dia {
			t.Errorf("ParseDiaSemana(%q) = %q, esperado %q", caso.entrada, dia, caso.dia)
		}
	}
}

func TestParseDiaSemanaInvalido(t *testing.T) {
	invalidos := []string{"", "monday", "segunda-feira", "7"}
	for _, entrada := range invalidos {
		if _, ok := ParseDiaSemana(entrada); ok {
			t.Errorf("ParseDiaSemana(%q) aceitou token inválido", entrada)
		}
	}
}

func TestDiaSemanaDe(t *testing.T) {
	// 2099-01-12 é segunda-feira
	data := time.Date(2099, time.January, 12, 0, 0, 0, 0, time.UTC)
	for i, esperado := range []DiaSemana{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo} {
		dia := DiaSemanaDe(data.AddDate(0, 0, i))
		if dia != esperado {
			t.Errorf("DiaSemanaDe(+%d) = %q, esperado %q", i, dia, esperado)
		}
	}
}
