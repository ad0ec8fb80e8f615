package models

// Horario é uma faixa fixa da grade de aulas. A identidade de um horário é a
// string de início no formato "HH:MM:SS".
type Horario struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// HorariosPermitidos é a grade canônica de 9 horários reserváveis por dia:
// aulas de 50 minutos, com intervalo de 09:40 às 10:00 e almoço após as 13:20.
// A lista é imutável durante a vida do processo.
var HorariosPermitidos = []Horario{
	{Inicio: "08:00:00", Fim: "08:50:00"},
	{Inicio: "08:50:00", Fim: "09:40:00"},
	{Inicio: "10:00:00", Fim: "10:50:00"},
	{Inicio: "10:50:00", Fim: "11:40:00"},
	{Inicio: "11:40:00", Fim: "12:30:00"},
	{Inicio: "12:30:00", Fim: "13:20:00"},
	{Inicio: "13:30:00", Fim: "14:20:00"},
	{Inicio: "14:20:00", Fim: "15:10:00"},
	{Inicio: "15:10:00", Fim: "16:00:00"},
}

// HorarioPermitido informa se a hora informada é o início de algum horário da grade.
func HorarioPermitido(hora string) bool {
	for _, h := range HorariosPermitidos {
		if h.Inicio == hora {
			return true
		}
	}
	return false
}
