package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// SetupMFA gera um segredo TOTP para o usuário autenticado. O MFA só passa a
// valer depois de VerifyMFA confirmar um código gerado com o segredo.
func SetupMFA(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var req models.MFASetupRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Senha é obrigatória",
		})
	}

	var email, senha string
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT email, password FROM usuario WHERE id_usuario = $1", userID).Scan(&email, &senha)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Usuário não encontrado",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(senha), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Senha incorreta",
		})
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "LabControl",
		AccountName: email,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar o segredo MFA",
		})
	}

	_, err = database.GetDB().Exec(context.Background(),
		"UPDATE usuario SET mfa_segredo = $1 WHERE id_usuario = $2", key.Secret(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao salvar o segredo MFA",
		})
	}

	return c.JSON(models.MFASetupResponse{
		Segredo:   key.Secret(),
		QRCodeURL: key.URL(),
	})
}

// VerifyMFA confirma o primeiro código TOTP e habilita o MFA na conta
func VerifyMFA(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var req models.MFAVerifyRequest
	if err := c.BodyParser(&req); err != nil || len(req.Code) != 6 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Código de 6 dígitos é obrigatório",
		})
	}

	var segredo string
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT mfa_segredo FROM usuario WHERE id_usuario = $1", userID).Scan(&segredo)
	if err != nil || segredo == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Configure o MFA antes de verificar",
		})
	}

	if !totp.Validate(req.Code, segredo) {
		return c.Status(401).JSON(fiber.Map{
			"error": "Código MFA inválido",
		})
	}

	_, err = database.GetDB().Exec(context.Background(),
		"UPDATE usuario SET mfa_habilitado = TRUE WHERE id_usuario = $1", userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao habilitar o MFA",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "MFA habilitado com sucesso",
	})
}

// DisableMFA desabilita o MFA mediante um código válido
func DisableMFA(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var req models.MFAVerifyRequest
	if err := c.BodyParser(&req); err != nil || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Código MFA é obrigatório",
		})
	}

	var segredo string
	var habilitado bool
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT mfa_segredo, mfa_habilitado FROM usuario WHERE id_usuario = $1", userID).Scan(&segredo, &habilitado)
	if err != nil || !habilitado {
		return c.Status(400).JSON(fiber.Map{
			"error": "MFA não está habilitado",
		})
	}

	if !totp.Validate(req.Code, segredo) {
		return c.Status(401).JSON(fiber.Map{
			"error": "Código MFA inválido",
		})
	}

	_, err = database.GetDB().Exec(context.Background(),
		"UPDATE usuario SET mfa_habilitado = FALSE, mfa_segredo = '' WHERE id_usuario = $1", userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao desabilitar o MFA",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "MFA desabilitado com sucesso",
	})
}
