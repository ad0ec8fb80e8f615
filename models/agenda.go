package models

// CelulaAgenda é uma célula ocupada da grade (laboratório × horário) de um dia.
// Fixo indica que a ocupação vem de um horário fixo semanal e não de uma
// reserva avulsa.
type CelulaAgenda struct {
	IDLaboratorio  int       `json:"id_laboratorio"`
	Hora           string    `json:"hora"`
	Fixo           bool      `json:"fixo"`
	IDReserva      *int      `json:"id_reserva,omitempty"`
	IDHorarioFixo  *int      `json:"id_horario_fixo,omitempty"`
	IDUsuario      int       `json:"id_usuario"`
	ProfessorNome  string    `json:"professor_nome"`
	DisciplinaNome *string   `json:"disciplina_nome,omitempty"`
	Justificativa  *string   `json:"justificativa,omitempty"`
}

// AgendaDia é a ocupação efetiva de um dia: reservas avulsas mescladas com os
// horários fixos daquele dia da semana. Combinações (laboratório, horário)
// ausentes de Celulas estão livres.
type AgendaDia struct {
	Dia       string         `json:"dia"`
	DiaSemana DiaSemana      `json:"dia_semana"`
	Horarios  []Horario      `json:"horarios"`
	Celulas   []CelulaAgenda `json:"celulas"`
}
