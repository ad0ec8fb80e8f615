package models

import (
	"time"
)

// Registro é uma entrada da tabela registro com o log de uma requisição HTTP.
type Registro struct {
	IDRegistro   int       `json:"id_registro" db:"id_registro"`
	Method       string    `json:"method" db:"method"`
	Path         string    `json:"path" db:"path"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	ResponseTime *int      `json:"response_time" db:"response_time"`
	IP           string    `json:"ip" db:"ip"`
	Email        *string   `json:"email" db:"email"`
	Papel        *string   `json:"papel" db:"papel"`
	LogLevel     string    `json:"log_level" db:"log_level"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// Constantes para níveis de log
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogLevelSuccess = "success"
)
