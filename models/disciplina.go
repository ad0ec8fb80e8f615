package models

import (
	"time"
)

// Disciplina representa a tabela disciplina no banco de dados
type Disciplina struct {
	IDDisciplina int       `json:"id_disciplina" db:"id_disciplina"`
	Nome         string    `json:"nome" db:"nome"`
	IDCurso      *int      `json:"id_curso,omitempty" db:"id_curso"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
