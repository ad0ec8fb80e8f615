package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Otavio-Emanoel/LabControl-sub000/handlers"
	"github.com/Otavio-Emanoel/LabControl-sub000/middleware"
	"github.com/Otavio-Emanoel/LabControl-sub000/models"
)

// SetupRoutes configura todas as rotas da aplicação
func SetupRoutes(app *fiber.App) {
	// Middleware global
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(middleware.LoggingMiddleware())
	app.Use(middleware.DefaultRateLimiter())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Rota de saúde do sistema
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "LabControl API",
			"version": "1.0.0",
		})
	})

	// Grupo de API
	api := app.Group("/api/v1")

	// Grade de horários, pública para pré-validação nos clientes
	api.Get("/horarios", handlers.ObterHorarios)

	// === ROTAS PÚBLICAS (sem autenticação) ===
	auth := api.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/register", handlers.RegistrarUsuario)
	auth.Post("/login", handlers.Login)
	auth.Post("/refresh", handlers.RefreshToken)
	auth.Post("/logout", middleware.JWTMiddleware(), handlers.Logout)

	// === ROTAS PROTEGIDAS (exigem autenticação) ===
	protected := api.Group("/", middleware.JWTMiddleware())

	// --- USUÁRIOS ---
	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", handlers.ObterUsuarios)
	usuarios.Get("/perfil", handlers.ObterPerfil)
	usuarios.Get("/professores", handlers.ObterProfessores)
	usuarios.Get("/:id", handlers.ObterUsuarioPorID)

	// --- MFA ---
	mfa := protected.Group("/mfa")
	mfa.Post("/setup", handlers.SetupMFA)
	mfa.Post("/verify", handlers.VerifyMFA)
	mfa.Post("/disable", handlers.DisableMFA)

	// --- LABORATÓRIOS ---
	laboratorios := protected.Group("/laboratorios")
	laboratorios.Get("/", handlers.ObterLaboratorios)
	laboratorios.Get("/:id", handlers.ObterLaboratorioPorID)
	laboratorios.Post("/", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente), handlers.CriarLaboratorio)
	laboratorios.Put("/:id", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente), handlers.AtualizarLaboratorio)
	laboratorios.Delete("/:id", middleware.RequirePapel(models.PapelCoordenador), handlers.ExcluirLaboratorio)

	// --- DISCIPLINAS ---
	disciplinas := protected.Group("/disciplinas")
	disciplinas.Get("/", handlers.ObterDisciplinas)
	disciplinas.Get("/:id", handlers.ObterDisciplinaPorID)
	disciplinas.Post("/", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente), handlers.CriarDisciplina)
	disciplinas.Delete("/:id", middleware.RequirePapel(models.PapelCoordenador), handlers.ExcluirDisciplina)

	// --- RESERVAS ---
	reservas := protected.Group("/reservas")
	reservas.Post("/", handlers.CriarReserva)
	reservas.Put("/:id/justificativa", handlers.AtualizarJustificativa)
	reservas.Delete("/:id", handlers.ExcluirReserva)
	reservas.Get("/dia/:dia", handlers.ObterReservasPorDia)
	reservas.Get("/professor/:professor_id", handlers.ObterReservasPorProfessor)

	// --- HORÁRIOS FIXOS ---
	horariosFixos := protected.Group("/horarios-fixos")
	horariosFixos.Get("/dia/:dia_semana", handlers.ObterHorariosFixosPorDiaSemana)
	horariosFixos.Post("/", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente), handlers.CriarHorarioFixo)
	horariosFixos.Delete("/:id", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente), handlers.ExcluirHorarioFixo)

	// --- AGENDA ---
	protected.Get("/agenda/:dia", handlers.ObterAgendaDoDia)

	// --- RELATÓRIOS ---
	relatorios := protected.Group("/relatorios", middleware.RequirePapel(models.PapelCoordenador, models.PapelAuxiliarDocente))
	relatorios.Get("/laboratorios", handlers.GerarRelatorioUsoLaboratorios)
	relatorios.Get("/professores", handlers.GerarRelatorioReservasPorProfessor)

	// --- REGISTROS ---
	protected.Get("/registros", middleware.RequirePapel(models.PapelCoordenador), handlers.ObterRegistros)
}
