package services

import (
	"context"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// Store é o contrato de persistência consumido pelos motores de reserva.
// As buscas pontuais devolvem (nil, nil) quando o registro não existe;
// erro não-nulo indica falha do armazenamento. A implementação Postgres deve
// mapear violação de unicidade em Inserir* para ErrConflitoHorario.
type Store interface {
	BuscarUsuarioPorID(ctx context.Context, id int) (*models.Usuario, error)
	BuscarDisciplinaPorID(ctx context.Context, id int) (*models.Disciplina, error)

	BuscarReserva(ctx context.Context, labID int, dia, hora string) (*models.Reserva, error)
	BuscarReservaPorID(ctx context.Context, id int) (*models.Reserva, error)
	InserirReserva(ctx context.Context, r *models.Reserva) (*models.Reserva, error)
	ListarReservasPorDia(ctx context.Context, dia string) ([]models.Reserva, error)
	AtualizarJustificativaReserva(ctx context.Context, id int, texto *string) (int64, error)
	ExcluirReserva(ctx context.Context, id int) (int64, error)

	BuscarHorarioFixo(ctx context.Context, labID int, dia models.DiaSemana, hora string) (*models.HorarioFixo, error)
	InserirHorarioFixo(ctx context.Context, h *models.HorarioFixo) (*models.HorarioFixo, error)
	ListarHorariosFixosPorDiaSemana(ctx context.Context, dia models.DiaSemana) ([]models.HorarioFixo, error)
	ExcluirHorarioFixo(ctx context.Context, id int) (int64, error)
}

// Solicitante identifica quem está executando a operação, extraído do token
// pela camada HTTP.
type Solicitante struct {
	ID    int
	Papel models.Papel
}
