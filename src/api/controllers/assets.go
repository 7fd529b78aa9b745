package controllers

import (
	"context"

	"invest/src/models"
	"invest/src/repositories"
	"invest/src/schemas"
	"invest/src/validation"
)

type AssetsControllerI interface {
	CreateAsset(ctx context.Context, raw map[string]any) (*models.Asset, error)
	GetAllAssets(ctx context.Context) ([]models.AssetSummary, error)
}

type AssetsController struct {
	Repository repositories.AssetRepository
}

func NewAssetsController(repo repositories.AssetRepository) *AssetsController {
	return &AssetsController{Repository: repo}
}

func (c *AssetsController) CreateAsset(ctx context.Context, raw map[string]any) (*models.Asset, error) {
	record, err := validation.Validate(schemas.AssetSchema, raw)
	if err != nil {
		return nil, err
	}
	asset := schemas.AssetRequestFromRecord(record).ToModel()
	if err := c.Repository.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (c *AssetsController) GetAllAssets(ctx context.Context) ([]models.AssetSummary, error) {
	return c.Repository.GetAll(ctx)
}
