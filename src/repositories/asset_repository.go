package repositories

import (
	"context"

	"invest/src/models"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetAll(ctx context.Context) ([]models.AssetSummary, error)
}

const assetEntity = "asset"

type assetRepo struct {
	db DBTX
}

func NewAssetRepository(db DBTX) AssetRepository {
	return &assetRepo{db: db}
}

// Create relies on assets_client_id_fkey for the owning client check; a
// dangling clientId comes back as a StoreError.
func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO assets (name, value, client_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, value, created_at`,
		asset.Name, asset.Value, asset.ClientID,
	).Scan(&asset.ID, &asset.Value, &asset.CreatedAt)
	return TranslateError("Create", assetEntity, err)
}

func (r *assetRepo) GetAll(ctx context.Context) ([]models.AssetSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, value FROM assets ORDER BY id`)
	if err != nil {
		return nil, TranslateError("GetAll", assetEntity, err)
	}
	defer rows.Close()

	assets := make([]models.AssetSummary, 0)
	for rows.Next() {
		var asset models.AssetSummary
		if err := rows.Scan(&asset.ID, &asset.Name, &asset.Value); err != nil {
			return nil, TranslateError("GetAll", assetEntity, err)
		}
		assets = append(assets, asset)
	}
	return assets, TranslateError("GetAll", assetEntity, rows.Err())
}
