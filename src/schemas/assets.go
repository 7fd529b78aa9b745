package schemas

import (
	"invest/src/models"
	"invest/src/validation"

	"github.com/shopspring/decimal"
)

const (
	AssetNameRequired   = "O nome é obrigatório"
	AssetValueRequired  = "O valor é obrigatório"
	AssetValueInvalid   = "O valor deve ser numérico"
	AssetClientRequired = "O cliente é obrigatório"
	AssetClientInvalid  = "O cliente informado é inválido"
)

var AssetSchema = validation.Schema{
	{Name: "name", Kind: validation.String, RequiredMessage: AssetNameRequired},
	{Name: "value", Kind: validation.Number, RequiredMessage: AssetValueRequired, InvalidMessage: AssetValueInvalid, Coerce: validation.NumericText},
	{Name: "clientId", Kind: validation.Integer, RequiredMessage: AssetClientRequired, InvalidMessage: AssetClientInvalid, Coerce: validation.NumericText},
}

type AssetRequest struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	ClientID int64           `json:"clientId"`
}

func AssetRequestFromRecord(record validation.Record) AssetRequest {
	return AssetRequest{
		Name:     record.String("name"),
		Value:    record.Decimal("value"),
		ClientID: record.Int64("clientId"),
	}
}

func (r AssetRequest) ToModel() *models.Asset {
	return &models.Asset{
		Name:     r.Name,
		Value:    models.NewAmount(r.Value),
		ClientID: r.ClientID,
	}
}
