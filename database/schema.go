package database

import (
	"context"
	"log"
	"time"
)

// As restrições UNIQUE em reserva (id_laboratorio, dia, hora) e em
// horario_fixo (id_laboratorio, dia_semana, hora) são o que garante "no
// máximo uma reserva por célula" mesmo com requisições concorrentes: a
// verificação de existência feita pelos serviços não é atômica com o insert.
const schema = `
CREATE TABLE IF NOT EXISTS curso (
	id_curso SERIAL PRIMARY KEY,
	nome VARCHAR(120) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS usuario (
	id_usuario SERIAL PRIMARY KEY,
	nome VARCHAR(120) NOT NULL,
	email VARCHAR(120) NOT NULL UNIQUE,
	password VARCHAR(200) NOT NULL,
	papel VARCHAR(30) NOT NULL CHECK (papel IN ('Professor', 'Coordenador', 'Auxiliar_Docente')),
	mfa_habilitado BOOLEAN NOT NULL DEFAULT FALSE,
	mfa_segredo VARCHAR(64) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS laboratorio (
	id_laboratorio SERIAL PRIMARY KEY,
	numero VARCHAR(30) NOT NULL UNIQUE,
	descricao TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS disciplina (
	id_disciplina SERIAL PRIMARY KEY,
	nome VARCHAR(120) NOT NULL,
	id_curso INTEGER REFERENCES curso(id_curso) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reserva (
	id_reserva SERIAL PRIMARY KEY,
	hora VARCHAR(8) NOT NULL,
	dia VARCHAR(10) NOT NULL,
	id_disciplina INTEGER REFERENCES disciplina(id_disciplina) ON DELETE SET NULL,
	justificativa TEXT,
	id_laboratorio INTEGER NOT NULL REFERENCES laboratorio(id_laboratorio),
	id_usuario INTEGER NOT NULL REFERENCES usuario(id_usuario),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (id_laboratorio, dia, hora)
);

CREATE TABLE IF NOT EXISTS horario_fixo (
	id_horario_fixo SERIAL PRIMARY KEY,
	dia_semana VARCHAR(10) NOT NULL CHECK (dia_semana IN
		('domingo', 'segunda', 'terca', 'quarta', 'quinta', 'sexta', 'sabado')),
	hora VARCHAR(8) NOT NULL,
	id_laboratorio INTEGER NOT NULL REFERENCES laboratorio(id_laboratorio),
	id_usuario INTEGER NOT NULL REFERENCES usuario(id_usuario),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (id_laboratorio, dia_semana, hora)
);

CREATE TABLE IF NOT EXISTS tokens_atualizacao (
	id SERIAL PRIMARY KEY,
	usuario_id INTEGER NOT NULL REFERENCES usuario(id_usuario) ON DELETE CASCADE,
	token VARCHAR(64) NOT NULL UNIQUE,
	expira_em TIMESTAMPTZ NOT NULL,
	revogado BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS registro (
	id_registro SERIAL PRIMARY KEY,
	method VARCHAR(10) NOT NULL,
	path VARCHAR(500) NOT NULL,
	status_code INTEGER NOT NULL,
	response_time INTEGER,
	ip VARCHAR(45) NOT NULL,
	email VARCHAR(120),
	papel VARCHAR(30),
	log_level VARCHAR(10) NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema cria as tabelas que ainda não existem.
func EnsureSchema() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := DB.Exec(ctx, schema); err != nil {
		log.Fatalf("Erro ao criar o esquema do banco: %v", err)
	}
	log.Println("Esquema do banco verificado")
}
