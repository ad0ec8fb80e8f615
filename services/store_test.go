package services

import (
	"context"

	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// fakeStore é um Store em memória para os testes dos serviços.
// falha, quando definido, é devolvido por todas as operações para simular
// indisponibilidade do armazenamento.
type fakeStore struct {
	usuarios    map[int]*models.Usuario
	disciplinas map[int]*models.Disciplina
	reservas    map[int]*models.Reserva
	fixos       map[int]*models.HorarioFixo
	proxID      int
	falha       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usuarios:    make(map[int]*models.Usuario),
		disciplinas: make(map[int]*models.Disciplina),
		reservas:    make(map[int]*models.Reserva),
		fixos:       make(map[int]*models.HorarioFixo),
	}
}

func (f *fakeStore) addUsuario(id int, nome string, papel models.Papel) {
	f.usuarios[id] = &models.Usuario{IDUsuario: id, Nome: nome, Papel: papel}
}

func (f *fakeStore) addDisciplina(id int, nome string) {
	f.disciplinas[id] = &models.Disciplina{IDDisciplina: id, Nome: nome}
}

func (f *fakeStore) BuscarUsuarioPorID(ctx context.Context, id int) (*models.Usuario, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	return f.usuarios[id], nil
}

func (f *fakeStore) BuscarDisciplinaPorID(ctx context.Context, id int) (*models.Disciplina, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	return f.disciplinas[id], nil
}

func (f *fakeStore) BuscarReserva(ctx context.Context, labID int, dia, hora string) (*models.Reserva, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	for _, r := range f.reservas {
		if r.IDLaboratorio == labID && r.Dia == dia && r.Hora == hora {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) BuscarReservaPorID(ctx context.Context, id int) (*models.Reserva, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	return f.reservas[id], nil
}

func (f *fakeStore) InserirReserva(ctx context.Context, r *models.Reserva) (*models.Reserva, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	for _, e := range f.reservas {
		if e.IDLaboratorio == r.IDLaboratorio && e.Dia == r.Dia && e.Hora == r.Hora {
			return nil, ErrConflitoHorario
		}
	}
	f.proxID++
	r.IDReserva = f.proxID
	f.reservas[r.IDReserva] = r
	return r, nil
}

func (f *fakeStore) ListarReservasPorDia(ctx context.Context, dia string) ([]models.Reserva, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	var out []models.Reserva
	for _, r := range f.reservas {
		if r.Dia == dia {
			c := *r
			if u := f.usuarios[r.IDUsuario]; u != nil {
				c.ProfessorNome = u.Nome
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) AtualizarJustificativaReserva(ctx context.Context, id int, texto *string) (int64, error) {
	if f.falha != nil {
		return 0, f.falha
	}
	r, ok := f.reservas[id]
	if !ok {
		return 0, nil
	}
	r.Justificativa = texto
	return 1, nil
}

func (f *fakeStore) ExcluirReserva(ctx context.Context, id int) (int64, error) {
	if f.falha != nil {
		return 0, f.falha
	}
	if _, ok := f.reservas[id]; !ok {
		return 0, nil
	}
	delete(f.reservas, id)
	return 1, nil
}

func (f *fakeStore) BuscarHorarioFixo(ctx context.Context, labID int, dia models.DiaSemana, hora string) (*models.HorarioFixo, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	for _, h := range f.fixos {
		if h.IDLaboratorio == labID && h.DiaSemana == dia && h.Hora == hora {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InserirHorarioFixo(ctx context.Context, h *models.HorarioFixo) (*models.HorarioFixo, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	for _, e := range f.fixos {
		if e.IDLaboratorio == h.IDLaboratorio && e.DiaSemana == h.DiaSemana && e.Hora == h.Hora {
			return nil, ErrConflitoHorario
		}
	}
	f.proxID++
	h.IDHorarioFixo = f.proxID
	f.fixos[h.IDHorarioFixo] = h
	return h, nil
}

func (f *fakeStore) ListarHorariosFixosPorDiaSemana(ctx context.Context, dia models.DiaSemana) ([]models.HorarioFixo, error) {
	if f.falha != nil {
		return nil, f.falha
	}
	var out []models.HorarioFixo
	for _, h := range f.fixos {
		if h.DiaSemana == dia {
			c := *h
			if u := f.usuarios[h.IDUsuario]; u != nil {
				c.ProfessorNome = u.Nome
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ExcluirHorarioFixo(ctx context.Context, id int) (int64, error) {
	if f.falha != nil {
		return 0, f.falha
	}
	if _, ok := f.fixos[id]; !ok {
		return 0, nil
	}
	delete(f.fixos, id)
	return 1, nil
}
