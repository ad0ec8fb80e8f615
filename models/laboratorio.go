package models

import (
	"time"
)

// Laboratorio representa a tabela laboratorio no banco de dados
type Laboratorio struct {
	IDLaboratorio int       `json:"id_laboratorio" db:"id_laboratorio"`
	Numero        string    `json:"numero" db:"numero"`
	Descricao     *string   `json:"descricao,omitempty" db:"descricao"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
