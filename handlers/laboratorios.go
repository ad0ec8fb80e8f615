package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// CriarLaboratorio cadastra um novo laboratório
func CriarLaboratorio(c *fiber.Ctx) error {
	var lab models.Laboratorio
	if err := c.BodyParser(&lab); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	if lab.Numero == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Número do laboratório é obrigatório",
		})
	}

	err := database.GetDB().QueryRow(context.Background(),
		`INSERT INTO laboratorio (numero, descricao) VALUES ($1, $2)
		 RETURNING id_laboratorio, created_at`,
		lab.Numero, lab.Descricao).Scan(&lab.IDLaboratorio, &lab.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{
				"error": "Já existe um laboratório com este número",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao criar o laboratório",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"mensagem":    "Laboratório criado com sucesso",
		"laboratorio": lab,
	})
}

// ObterLaboratorios lista todos os laboratórios
func ObterLaboratorios(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id_laboratorio, numero, descricao, created_at
		 FROM laboratorio ORDER BY numero`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter laboratórios",
		})
	}
	defer rows.Close()

	var labs []models.Laboratorio
	for rows.Next() {
		var lab models.Laboratorio
		if err := rows.Scan(&lab.IDLaboratorio, &lab.Numero, &lab.Descricao, &lab.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar laboratórios",
			})
		}
		labs = append(labs, lab)
	}

	return c.JSON(fiber.Map{
		"laboratorios": labs,
		"total":        len(labs),
	})
}

// ObterLaboratorioPorID busca um laboratório pelo ID
func ObterLaboratorioPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var lab models.Laboratorio
	err = database.GetDB().QueryRow(context.Background(),
		`SELECT id_laboratorio, numero, descricao, created_at
		 FROM laboratorio WHERE id_laboratorio = $1`, id).Scan(
		&lab.IDLaboratorio, &lab.Numero, &lab.Descricao, &lab.CreatedAt)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Laboratório não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"laboratorio": lab,
	})
}

// AtualizarLaboratorio atualiza número e descrição de um laboratório
func AtualizarLaboratorio(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var lab models.Laboratorio
	if err := c.BodyParser(&lab); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	if lab.Numero == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Número do laboratório é obrigatório",
		})
	}

	result, err := database.GetDB().Exec(context.Background(),
		`UPDATE laboratorio SET numero = $1, descricao = $2 WHERE id_laboratorio = $3`,
		lab.Numero, lab.Descricao, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{
				"error": "Já existe um laboratório com este número",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao atualizar o laboratório",
		})
	}

	if result.RowsAffected() == 0 {
		return c.Status(404).JSON(fiber.Map{
			"error": "Laboratório não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "Laboratório atualizado com sucesso",
	})
}

// ExcluirLaboratorio remove um laboratório sem reservas associadas
func ExcluirLaboratorio(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	// Laboratório com reservas ou horários fixos não pode ser removido
	var emUso bool
	err = database.GetDB().QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM reserva WHERE id_laboratorio = $1)
		 OR EXISTS(SELECT 1 FROM horario_fixo WHERE id_laboratorio = $1)`, id).Scan(&emUso)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao verificar reservas associadas",
		})
	}
	if emUso {
		return c.Status(409).JSON(fiber.Map{
			"error": "O laboratório possui reservas ou horários fixos associados",
		})
	}

	result, err := database.GetDB().Exec(context.Background(),
		`DELETE FROM laboratorio WHERE id_laboratorio = $1`, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao excluir o laboratório",
		})
	}

	if result.RowsAffected() == 0 {
		return c.Status(404).JSON(fiber.Map{
			"error": "Laboratório não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "Laboratório excluído com sucesso",
	})
}
