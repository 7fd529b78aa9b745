package schemas

import "invest/src/validation"

// IssuesResponse is the 400 body: every violation found in the request.
type IssuesResponse struct {
	Issues validation.Violations `json:"issues"`
}

// MessageResponse is the body of 409 and 500 responses.
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

const (
	InvalidBodyMessage   = "Corpo da requisição inválido"
	InvalidIDMessage     = "Identificador inválido"
	InternalErrorMessage = "Erro interno no servidor"
	UpdateErrorMessage   = "Erro ao atualizar cliente."
)
