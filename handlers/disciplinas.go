package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// CriarDisciplina cadastra uma nova disciplina
func CriarDisciplina(c *fiber.Ctx) error {
	var disciplina models.Disciplina
	if err := c.BodyParser(&disciplina); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	if disciplina.Nome == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nome da disciplina é obrigatório",
		})
	}

	// Se houver curso vinculado, ele precisa existir
	if disciplina.IDCurso != nil {
		var cursoExiste bool
		err := database.GetDB().QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM curso WHERE id_curso = $1)`, *disciplina.IDCurso).Scan(&cursoExiste)
		if err != nil || !cursoExiste {
			return c.Status(404).JSON(fiber.Map{
				"error": "Curso não encontrado",
			})
		}
	}

	err := database.GetDB().QueryRow(context.Background(),
		`INSERT INTO disciplina (nome, id_curso) VALUES ($1, $2)
		 RETURNING id_disciplina, created_at`,
		disciplina.Nome, disciplina.IDCurso).Scan(&disciplina.IDDisciplina, &disciplina.CreatedAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao criar a disciplina",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"mensagem":   "Disciplina criada com sucesso",
		"disciplina": disciplina,
	})
}

// ObterDisciplinas lista todas as disciplinas
func ObterDisciplinas(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id_disciplina, nome, id_curso, created_at
		 FROM disciplina ORDER BY nome`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter disciplinas",
		})
	}
	defer rows.Close()

	var disciplinas []models.Disciplina
	for rows.Next() {
		var d models.Disciplina
		if err := rows.Scan(&d.IDDisciplina, &d.Nome, &d.IDCurso, &d.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar disciplinas",
			})
		}
		disciplinas = append(disciplinas, d)
	}

	return c.JSON(fiber.Map{
		"disciplinas": disciplinas,
		"total":       len(disciplinas),
	})
}

// ObterDisciplinaPorID busca uma disciplina pelo ID
func ObterDisciplinaPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var d models.Disciplina
	err = database.GetDB().QueryRow(context.Background(),
		`SELECT id_disciplina, nome, id_curso, created_at
		 FROM disciplina WHERE id_disciplina = $1`, id).Scan(
		&d.IDDisciplina, &d.Nome, &d.IDCurso, &d.CreatedAt)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Disciplina não encontrada",
		})
	}

	return c.JSON(fiber.Map{
		"disciplina": d,
	})
}

// ExcluirDisciplina remove uma disciplina
func ExcluirDisciplina(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	result, err := database.GetDB().Exec(context.Background(),
		`DELETE FROM disciplina WHERE id_disciplina = $1`, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao excluir a disciplina",
		})
	}

	if result.RowsAffected() == 0 {
		return c.Status(404).JSON(fiber.Map{
			"error": "Disciplina não encontrada",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "Disciplina excluída com sucesso",
	})
}
