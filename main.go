package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Otavio-Emanoel/LabControl-sub000/database"
	"github.com/Otavio-Emanoel/LabControl-sub000/handlers"
	"github.com/Otavio-Emanoel/LabControl-sub000/repository"
	"github.com/Otavio-Emanoel/LabControl-sub000/routes"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: não foi possível carregar o arquivo .env")
	}

	// Conectar ao banco de dados e garantir o esquema
	database.ConnectDB()
	defer database.CloseDB()
	database.EnsureSchema()

	// Injetar o armazenamento nos serviços de reserva
	handlers.Init(repository.NewPostgresStore(database.GetDB()))

	// Criar a instância do Fiber
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
		AppName: "LabControl API v1.0.0",
	})

	// Configurar rotas
	routes.SetupRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{
			"error":   "Rota não encontrada",
			"message": "A rota solicitada não existe neste servidor",
			"path":    c.Path(),
			"method":  c.Method(),
		})
	})

	// Porta do ambiente ou 3000 por padrão
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Servidor LabControl iniciado na porta %s", port)
	log.Fatal(app.Listen(":" + port))
}
