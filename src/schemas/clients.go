package schemas

import (
	"invest/src/models"
	"invest/src/validation"
)

const (
	ClientNameRequired   = "O nome é obrigatório"
	ClientEmailRequired  = "O email é obrigatório"
	ClientEmailInvalid   = "Digite um email válido"
	ClientStatusRequired = "O status é obrigatório"
	ClientStatusInvalid  = "O status deve ser verdadeiro ou falso"
)

// ClientSchema validates both the create and the full-replace update payloads.
var ClientSchema = validation.Schema{
	{Name: "name", Kind: validation.String, RequiredMessage: ClientNameRequired},
	{Name: "email", Kind: validation.Email, RequiredMessage: ClientEmailRequired, InvalidMessage: ClientEmailInvalid},
	{Name: "status", Kind: validation.Bool, RequiredMessage: ClientStatusRequired, InvalidMessage: ClientStatusInvalid},
}

type ClientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status bool   `json:"status"`
}

func ClientRequestFromRecord(record validation.Record) ClientRequest {
	return ClientRequest{
		Name:   record.String("name"),
		Email:  record.String("email"),
		Status: record.Bool("status"),
	}
}

func (r ClientRequest) ToModel() *models.Client {
	return &models.Client{
		Name:   r.Name,
		Email:  r.Email,
		Status: r.Status,
	}
}
