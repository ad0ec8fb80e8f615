package models

import (
	"time"
)

// Papel é o conjunto fechado de papéis do sistema. Os valores são exatamente
// os tokens gravados no banco e trafegados no JSON — não alterar.
type Papel string

const (
	PapelProfessor       Papel = "Professor"
	PapelCoordenador     Papel = "Coordenador"
	PapelAuxiliarDocente Papel = "Auxiliar_Docente"
)

// Valido informa se o papel é um dos três conhecidos.
func (p Papel) Valido() bool {
	switch p {
	case PapelProfessor, PapelCoordenador, PapelAuxiliarDocente:
		return true
	}
	return false
}

// PodeReservarParaOutro informa se o papel agenda em nome de um professor.
// Professor reserva apenas para si; os demais papéis indicam o professor alvo.
func (p Papel) PodeReservarParaOutro() bool {
	switch p {
	case PapelCoordenador, PapelAuxiliarDocente:
		return true
	}
	return false
}

// Usuario representa a tabela usuario no banco de dados
type Usuario struct {
	IDUsuario     int       `json:"id_usuario" db:"id_usuario"`
	Nome          string    `json:"nome" db:"nome"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"password,omitempty" db:"password"`
	Papel         Papel     `json:"papel" db:"papel"`
	MFAHabilitado bool      `json:"mfa_habilitado" db:"mfa_habilitado"`
	MFASegredo    string    `json:"-" db:"mfa_segredo"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// UsuarioResponse representa a resposta sem dados sensíveis
type UsuarioResponse struct {
	ID        int       `json:"id_usuario"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Papel     Papel     `json:"papel"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest representa a solicitação de login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MFACode  string `json:"mfa_code,omitempty"`
}

// TokenAtualizacao representa um refresh token persistido
type TokenAtualizacao struct {
	ID        int       `json:"id" db:"id"`
	UsuarioID int       `json:"usuario_id" db:"usuario_id"`
	Token     string    `json:"token" db:"token"`
	ExpiraEm  time.Time `json:"expira_em" db:"expira_em"`
	Revogado  bool      `json:"revogado" db:"revogado"`
}

// LoginResponse representa a resposta do login com os tokens
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"` // segundos
	Usuario      UsuarioResponse `json:"usuario"`
}

// RefreshRequest para solicitar um novo par de tokens
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MFASetupRequest confirma a senha antes de habilitar o MFA
type MFASetupRequest struct {
	Password string `json:"password"`
}

// MFASetupResponse devolve o segredo e a URL de provisionamento
type MFASetupResponse struct {
	Segredo   string `json:"segredo"`
	QRCodeURL string `json:"qr_code_url"`
}

// MFAVerifyRequest carrega o código TOTP de 6 dígitos
type MFAVerifyRequest struct {
	Code string `json:"code"`
}
