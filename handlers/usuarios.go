package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/middleware"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// validade do refresh token
const refreshTokenTTL = 7 * 24 * time.Hour

// RegistrarUsuario cria um novo usuário no sistema
func RegistrarUsuario(c *fiber.Ctx) error {
	var usuario models.Usuario
	if err := c.BodyParser(&usuario); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	if !usuario.Papel.Valido() {
		return c.Status(400).JSON(fiber.Map{
			"error": "Papel inválido: use Professor, Coordenador ou Auxiliar_Docente",
		})
	}

	if usuario.Nome == "" || usuario.Email == "" || usuario.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nome, email e senha são obrigatórios",
		})
	}

	// Verificar se o email já está cadastrado
	var emailExiste bool
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM usuario WHERE email = $1)", usuario.Email).Scan(&emailExiste)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro interno do servidor",
		})
	}
	if emailExiste {
		return c.Status(409).JSON(fiber.Map{
			"error": "O email já está cadastrado",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(usuario.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao processar a senha",
		})
	}

	var novoID int
	var createdAt time.Time
	err = database.GetDB().QueryRow(context.Background(),
		`INSERT INTO usuario (nome, email, password, papel)
		 VALUES ($1, $2, $3, $4) RETURNING id_usuario, created_at`,
		usuario.Nome, usuario.Email, string(hashedPassword), usuario.Papel).Scan(&novoID, &createdAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao criar o usuário",
		})
	}

	resposta := models.UsuarioResponse{
		ID:        novoID,
		Nome:      usuario.Nome,
		Email:     usuario.Email,
		Papel:     usuario.Papel,
		CreatedAt: createdAt,
	}

	return c.Status(201).JSON(fiber.Map{
		"mensagem": "Usuário criado com sucesso",
		"usuario":  resposta,
	})
}

// Login autentica um usuário e devolve os tokens de acesso e atualização
func Login(c *fiber.Ctx) error {
	var loginReq models.LoginRequest
	if err := c.BodyParser(&loginReq); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Dados inválidos",
		})
	}

	var usuario models.Usuario
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT id_usuario, nome, email, password, papel, mfa_habilitado, mfa_segredo, created_at
		 FROM usuario WHERE email = $1`, loginReq.Email).Scan(
		&usuario.IDUsuario, &usuario.Nome, &usuario.Email, &usuario.Password,
		&usuario.Papel, &usuario.MFAHabilitado, &usuario.MFASegredo, &usuario.CreatedAt)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciais inválidas",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(loginReq.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Credenciais inválidas",
		})
	}

	// Com MFA habilitado o código TOTP é obrigatório
	if usuario.MFAHabilitado {
		if loginReq.MFACode == "" {
			return c.Status(401).JSON(fiber.Map{
				"error":        "Código MFA obrigatório",
				"requires_mfa": true,
			})
		}
		if !totp.Validate(loginReq.MFACode, usuario.MFASegredo) {
			return c.Status(401).JSON(fiber.Map{
				"error": "Código MFA inválido",
			})
		}
	}

	accessToken, err := middleware.GenerateJWT(usuario.IDUsuario, usuario.Email, usuario.Papel)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar token",
		})
	}

	refreshToken, err := emitirRefreshToken(usuario.IDUsuario)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar refresh token",
		})
	}

	return c.JSON(models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(middleware.AccessTokenTTL.Seconds()),
		Usuario: models.UsuarioResponse{
			ID:        usuario.IDUsuario,
			Nome:      usuario.Nome,
			Email:     usuario.Email,
			Papel:     usuario.Papel,
			CreatedAt: usuario.CreatedAt,
		},
	})
}

// emitirRefreshToken cria e persiste um novo refresh token para o usuário
func emitirRefreshToken(usuarioID int) (string, error) {
	token := uuid.NewString()
	_, err := database.GetDB().Exec(context.Background(),
		`INSERT INTO tokens_atualizacao (usuario_id, token, expira_em)
		 VALUES ($1, $2, $3)`,
		usuarioID, token, time.Now().Add(refreshTokenTTL))
	if err != nil {
		return "", err
	}
	return token, nil
}

// RefreshToken troca um refresh token válido por um novo par de tokens
func RefreshToken(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "refresh_token é obrigatório",
		})
	}

	var registro models.TokenAtualizacao
	var usuario models.Usuario
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT t.id, t.usuario_id, t.expira_em, t.revogado,
		        u.nome, u.email, u.papel, u.created_at
		 FROM tokens_atualizacao t
		 JOIN usuario u ON t.usuario_id = u.id_usuario
		 WHERE t.token = $1`, req.RefreshToken).Scan(
		&registro.ID, &registro.UsuarioID, &registro.ExpiraEm, &registro.Revogado,
		&usuario.Nome, &usuario.Email, &usuario.Papel, &usuario.CreatedAt)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": "Refresh token inválido",
		})
	}

	if registro.Revogado || time.Now().After(registro.ExpiraEm) {
		return c.Status(401).JSON(fiber.Map{
			"error": "Refresh token expirado ou revogado",
		})
	}

	// Rotação: revoga o token usado e emite um novo
	_, err = database.GetDB().Exec(context.Background(),
		`UPDATE tokens_atualizacao SET revogado = TRUE WHERE id = $1`, registro.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao rotacionar o refresh token",
		})
	}

	accessToken, err := middleware.GenerateJWT(registro.UsuarioID, usuario.Email, usuario.Papel)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar token",
		})
	}

	novoRefresh, err := emitirRefreshToken(registro.UsuarioID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao gerar refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": novoRefresh,
		"expires_in":    int(middleware.AccessTokenTTL.Seconds()),
	})
}

// Logout revoga todos os refresh tokens ativos do usuário autenticado
func Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	_, err := database.GetDB().Exec(context.Background(),
		`UPDATE tokens_atualizacao SET revogado = TRUE WHERE usuario_id = $1 AND revogado = FALSE`, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao encerrar a sessão",
		})
	}

	return c.JSON(fiber.Map{
		"mensagem": "Sessão encerrada com sucesso",
	})
}

// ObterPerfil devolve os dados do usuário autenticado
func ObterPerfil(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var usuario models.UsuarioResponse
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT id_usuario, nome, email, papel, created_at
		 FROM usuario WHERE id_usuario = $1`, userID).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Papel, &usuario.CreatedAt)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Usuário não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"usuario": usuario,
	})
}

// ObterUsuarios lista todos os usuários
func ObterUsuarios(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id_usuario, nome, email, papel, created_at
		 FROM usuario ORDER BY nome`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter usuários",
		})
	}
	defer rows.Close()

	var usuarios []models.UsuarioResponse
	for rows.Next() {
		var u models.UsuarioResponse
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Papel, &u.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar usuários",
			})
		}
		usuarios = append(usuarios, u)
	}

	return c.JSON(fiber.Map{
		"usuarios": usuarios,
		"total":    len(usuarios),
	})
}

// ObterUsuarioPorID busca um usuário pelo ID
func ObterUsuarioPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var usuario models.UsuarioResponse
	err = database.GetDB().QueryRow(context.Background(),
		`SELECT id_usuario, nome, email, papel, created_at
		 FROM usuario WHERE id_usuario = $1`, id).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Papel, &usuario.CreatedAt)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Usuário não encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"usuario": usuario,
	})
}

// ObterProfessores lista os usuários com papel de Professor, para os
// seletores de professor alvo de Coordenador e Auxiliar_Docente
func ObterProfessores(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id_usuario, nome, email, papel, created_at
		 FROM usuario WHERE papel = $1 ORDER BY nome`, models.PapelProfessor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Erro ao obter professores",
		})
	}
	defer rows.Close()

	var professores []models.UsuarioResponse
	for rows.Next() {
		var u models.UsuarioResponse
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Papel, &u.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Erro ao processar professores",
			})
		}
		professores = append(professores, u)
	}

	return c.JSON(fiber.Map{
		"professores": professores,
		"total":       len(professores),
	})
}
