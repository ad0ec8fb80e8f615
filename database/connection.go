package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB é a instância global do pool de conexões
var DB *pgxpool.Pool

// ConnectDB estabelece a conexão com o banco de dados usando um pool
func ConnectDB() {
	config, err := pgxpool.ParseConfig(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Erro ao interpretar a URL do banco de dados: %v", err)
	}
	config.MaxConns = 30
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	DB, err = pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalf("Erro ao criar o pool de conexões: %v", err)
	}

	// Consulta rápida para confirmar que o banco está vivo
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var version string
	if err := DB.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		log.Fatalf("Erro ao testar a conexão: %v", err)
	}
	log.Println("Conectado ao banco de dados:", version)
}

// CloseDB encerra o pool de conexões
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Pool de conexões encerrado")
	}
}

// GetDB retorna a instância do pool de conexões
func GetDB() *pgxpool.Pool {
	return DB
}
