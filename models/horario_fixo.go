package models

import (
	"strings"
	"time"
)

// DiaSemana é o conjunto fechado dos sete dias da semana. Os tokens em
// minúsculas e sem acento fazem parte do contrato com os clientes.
type DiaSemana string

const (
	Domingo DiaSemana = "domingo"
	Segunda DiaSemana = "segunda"
	Terca   DiaSemana = "terca"
	Quarta  DiaSemana = "quarta"
	Quinta  DiaSemana = "quinta"
	Sexta   DiaSemana = "sexta"
	Sabado  DiaSemana = "sabado"
)

var normalizadorDia = strings.NewReplacer("ç", "c", "á", "a", "ã", "a", "é", "e", "í", "i")

// ParseDiaSemana normaliza a entrada (minúsculas, sem acento) e devolve o dia
// correspondente. O booleano indica se o token era reconhecido.
func ParseDiaSemana(s string) (DiaSemana, bool) {
	dia := DiaSemana(normalizadorDia.Replace(strings.ToLower(strings.TrimSpace(s))))
	switch dia {
	case Domingo, Segunda, Terca, Quarta, Quinta, Sexta, Sabado:
		return dia, true
	}
	return "", false
}

// DiaSemanaDe converte o dia da semana de uma data concreta para o token interno.
func DiaSemanaDe(t time.Time) DiaSemana {
	switch t.Weekday() {
	case time.Sunday:
		return Domingo
	case time.Monday:
		return Segunda
	case time.Tuesday:
		return Terca
	case time.Wednesday:
		return Quarta
	case time.Thursday:
		return Quinta
	case time.Friday:
		return Sexta
	case time.Saturday:
		return Sabado
	}
	return Domingo
}

// HorarioFixo representa a tabela horario_fixo: uma reserva semanal recorrente
// de um laboratório por um professor.
type HorarioFixo struct {
	IDHorarioFixo int       `json:"id_horario_fixo" db:"id_horario_fixo"`
	DiaSemana     DiaSemana `json:"dia_semana" db:"dia_semana"`
	Hora          string    `json:"hora" db:"hora"`
	IDLaboratorio int       `json:"id_laboratorio" db:"id_laboratorio"`
	IDUsuario     int       `json:"id_usuario" db:"id_usuario"`
	ProfessorNome string    `json:"professor_nome,omitempty" db:"professor_nome"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// HorarioFixoRequest representa a solicitação de criação de um horário fixo
type HorarioFixoRequest struct {
	DiaSemana     string `json:"dia_semana"`
	Hora          string `json:"hora"`
	IDLaboratorio int    `json:"id_laboratorio"`
	IDProfessor   int    `json:"id_professor"`
}
