// Package repository implementa o Store dos serviços sobre PostgreSQL via pgx,
// com SQL parametrizado e sem ORM.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
	"github.com/Otavio-Emanoel/LabControl-sub000/services"
)

// codigo de violação de unicidade do PostgreSQL
const uniqueViolation = "23505"

// PostgresStore implementa services.Store sobre um pool pgx.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constrói um PostgresStore.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// conflitoDeUnicidade traduz violação de restrição UNIQUE no erro de conflito
// do domínio. É o que fecha a corrida entre a verificação de existência e o
// insert nos motores de reserva.
func conflitoDeUnicidade(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *PostgresStore) BuscarUsuarioPorID(ctx context.Context, id int) (*models.Usuario, error) {
	var u models.Usuario
	err := s.db.QueryRow(ctx,
		`SELECT id_usuario, nome, email, papel, mfa_habilitado, created_at
		 FROM usuario WHERE id_usuario = $1`, id).Scan(
		&u.IDUsuario, &u.Nome, &u.Email, &u.Papel, &u.MFAHabilitado, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario %d: %w", id, err)
	}
	return &u, nil
}

func (s *PostgresStore) BuscarDisciplinaPorID(ctx context.Context, id int) (*models.Disciplina, error) {
	var d models.Disciplina
	err := s.db.QueryRow(ctx,
		`SELECT id_disciplina, nome, id_curso, created_at
		 FROM disciplina WHERE id_disciplina = $1`, id).Scan(
		&d.IDDisciplina, &d.Nome, &d.IDCurso, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar disciplina %d: %w", id, err)
	}
	return &d, nil
}

func (s *PostgresStore) BuscarReserva(ctx context.Context, labID int, dia, hora string) (*models.Reserva, error) {
	var r models.Reserva
	err := s.db.QueryRow(ctx,
		`SELECT id_reserva, hora, dia, id_disciplina, justificativa, id_laboratorio, id_usuario, created_at
		 FROM reserva WHERE id_laboratorio = $1 AND dia = $2 AND hora = $3`,
		labID, dia, hora).Scan(
		&r.IDReserva, &r.Hora, &r.Dia, &r.IDDisciplina, &r.Justificativa,
		&r.IDLaboratorio, &r.IDUsuario, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar reserva: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) BuscarReservaPorID(ctx context.Context, id int) (*models.Reserva, error) {
	var r models.Reserva
	err := s.db.QueryRow(ctx,
		`SELECT id_reserva, hora, dia, id_disciplina, justificativa, id_laboratorio, id_usuario, created_at
		 FROM reserva WHERE id_reserva = $1`, id).Scan(
		&r.IDReserva, &r.Hora, &r.Dia, &r.IDDisciplina, &r.Justificativa,
		&r.IDLaboratorio, &r.IDUsuario, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar reserva %d: %w", id, err)
	}
	return &r, nil
}

func (s *PostgresStore) InserirReserva(ctx context.Context, r *models.Reserva) (*models.Reserva, error) {
	err := s.db.QueryRow(ctx,
		`INSERT INTO reserva (hora, dia, id_disciplina, justificativa, id_laboratorio, id_usuario)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id_reserva, created_at`,
		r.Hora, r.Dia, r.IDDisciplina, r.Justificativa, r.IDLaboratorio, r.IDUsuario).Scan(
		&r.IDReserva, &r.CreatedAt)
	if conflitoDeUnicidade(err) {
		return nil, services.ErrConflitoHorario
	}
	if err != nil {
		return nil, fmt.Errorf("inserir reserva: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListarReservasPorDia(ctx context.Context, dia string) ([]models.Reserva, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id_reserva, r.hora, r.dia, r.id_disciplina, r.justificativa,
		        r.id_laboratorio, r.id_usuario, u.nome, d.nome, r.created_at
		 FROM reserva r
		 JOIN usuario u ON r.id_usuario = u.id_usuario
		 LEFT JOIN disciplina d ON r.id_disciplina = d.id_disciplina
		 WHERE r.dia = $1
		 ORDER BY r.id_laboratorio, r.hora`, dia)
	if err != nil {
		return nil, fmt.Errorf("listar reservas do dia: %w", err)
	}
	defer rows.Close()

	var reservas []models.Reserva
	for rows.Next() {
		var r models.Reserva
		if err := rows.Scan(&r.IDReserva, &r.Hora, &r.Dia, &r.IDDisciplina, &r.Justificativa,
			&r.IDLaboratorio, &r.IDUsuario, &r.ProfessorNome, &r.DisciplinaNome, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ler reserva: %w", err)
		}
		reservas = append(reservas, r)
	}
	return reservas, rows.Err()
}

func (s *PostgresStore) AtualizarJustificativaReserva(ctx context.Context, id int, texto *string) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE reserva SET justificativa = $1 WHERE id_reserva = $2`, texto, id)
	if err != nil {
		return 0, fmt.Errorf("atualizar justificativa: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) ExcluirReserva(ctx context.Context, id int) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM reserva WHERE id_reserva = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("excluir reserva: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) BuscarHorarioFixo(ctx context.Context, labID int, dia models.DiaSemana, hora string) (*models.HorarioFixo, error) {
	var h models.HorarioFixo
	err := s.db.QueryRow(ctx,
		`SELECT id_horario_fixo, dia_semana, hora, id_laboratorio, id_usuario, created_at
		 FROM horario_fixo WHERE id_laboratorio = $1 AND dia_semana = $2 AND hora = $3`,
		labID, dia, hora).Scan(
		&h.IDHorarioFixo, &h.DiaSemana, &h.Hora, &h.IDLaboratorio, &h.IDUsuario, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar horário fixo: %w", err)
	}
	return &h, nil
}

func (s *PostgresStore) InserirHorarioFixo(ctx context.Context, h *models.HorarioFixo) (*models.HorarioFixo, error) {
	err := s.db.QueryRow(ctx,
		`INSERT INTO horario_fixo (dia_semana, hora, id_laboratorio, id_usuario)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id_horario_fixo, created_at`,
		h.DiaSemana, h.Hora, h.IDLaboratorio, h.IDUsuario).Scan(
		&h.IDHorarioFixo, &h.CreatedAt)
	if conflitoDeUnicidade(err) {
		return nil, services.ErrConflitoHorario
	}
	if err != nil {
		return nil, fmt.Errorf("inserir horário fixo: %w", err)
	}
	return h, nil
}

func (s *PostgresStore) ListarHorariosFixosPorDiaSemana(ctx context.Context, dia models.DiaSemana) ([]models.HorarioFixo, error) {
	rows, err := s.db.Query(ctx,
		`SELECT h.id_horario_fixo, h.dia_semana, h.hora, h.id_laboratorio, h.id_usuario, u.nome, h.created_at
		 FROM horario_fixo h
		 JOIN usuario u ON h.id_usuario = u.id_usuario
		 WHERE h.dia_semana = $1
		 ORDER BY h.id_laboratorio, h.hora`, dia)
	if err != nil {
		return nil, fmt.Errorf("listar horários fixos: %w", err)
	}
	defer rows.Close()

	var horarios []models.HorarioFixo
	for rows.Next() {
		var h models.HorarioFixo
		if err := rows.Scan(&h.IDHorarioFixo, &h.DiaSemana, &h.Hora, &h.IDLaboratorio,
			&h.IDUsuario, &h.ProfessorNome, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("ler horário fixo: %w", err)
		}
		horarios = append(horarios, h)
	}
	return horarios, rows.Err()
}

func (s *PostgresStore) ExcluirHorarioFixo(ctx context.Context, id int) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM horario_fixo WHERE id_horario_fixo = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("excluir horário fixo: %w", err)
	}
	return tag.RowsAffected(), nil
}
