package models_test

import (
	"encoding/json"
	"testing"

	"invest/src/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountJSON(t *testing.T) {
	t.Run("asset value renders as a number", func(t *testing.T) {
		body, err := json.Marshal(models.AssetSummary{ID: 1, Name: "Ações XYZ", Value: models.NewAmount(decimal.RequireFromString("1000.50"))})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"Ações XYZ","value":1000.5}`, string(body))
	})

	t.Run("zero value", func(t *testing.T) {
		body, err := json.Marshal(models.Amount{})
		require.NoError(t, err)
		assert.Equal(t, "0", string(body))
	})

	t.Run("reads numbers and numeric strings", func(t *testing.T) {
		var assets []models.Asset
		err := json.Unmarshal([]byte(`[{"id":1,"value":1000.50},{"id":2,"value":"2.25"}]`), &assets)
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.True(t, assets[0].Value.Equal(decimal.RequireFromString("1000.5")))
		assert.True(t, assets[1].Value.Equal(decimal.RequireFromString("2.25")))
	})

	t.Run("plain decimals keep the library default", func(t *testing.T) {
		body, err := json.Marshal(decimal.RequireFromString("1.5"))
		require.NoError(t, err)
		assert.Equal(t, `"1.5"`, string(body))
	})
}
