package models

import (
	"time"
)

// Reserva representa a tabela reserva no banco de dados: uma reserva avulsa de
// laboratório para uma data e um horário da grade.
type Reserva struct {
	IDReserva      int       `json:"id_reserva" db:"id_reserva"`
	Hora           string    `json:"hora" db:"hora"`
	Dia            string    `json:"dia" db:"dia"` // formato YYYY-MM-DD
	IDDisciplina   *int      `json:"id_disciplina,omitempty" db:"id_disciplina"`
	Justificativa  *string   `json:"justificativa,omitempty" db:"justificativa"`
	IDLaboratorio  int       `json:"id_laboratorio" db:"id_laboratorio"`
	IDUsuario      int       `json:"id_usuario" db:"id_usuario"`
	ProfessorNome  string    `json:"professor_nome,omitempty" db:"professor_nome"`
	DisciplinaNome *string   `json:"disciplina_nome,omitempty" db:"disciplina_nome"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ReservaRequest representa a solicitação de criação de uma reserva
type ReservaRequest struct {
	Hora          string  `json:"hora"`
	Dia           string  `json:"dia"`
	IDDisciplina  *int    `json:"id_disciplina,omitempty"`
	Justificativa *string `json:"justificativa,omitempty"`
	IDLaboratorio int     `json:"id_laboratorio"`
	IDProfessor   int     `json:"id_professor,omitempty"`
}

// JustificativaRequest atualiza somente a justificativa de uma reserva
type JustificativaRequest struct {
	Justificativa *string `json:"justificativa"`
}
