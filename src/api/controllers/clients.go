package controllers

import (
	"context"

	"invest/src/models"
	"invest/src/repositories"
	"invest/src/schemas"
	"invest/src/validation"
)

type ClientsControllerI interface {
	CreateClient(ctx context.Context, raw map[string]any) (*models.Client, error)
	UpdateClient(ctx context.Context, id int64, raw map[string]any) (*models.Client, error)
	GetAllClients(ctx context.Context) ([]models.ClientWithAssets, error)
	GetActiveClients(ctx context.Context) ([]models.Client, error)
	GetClientByID(ctx context.Context, id int64) (*models.ClientWithAssets, error)
}

type ClientsController struct {
	Repository repositories.ClientRepository
}

func NewClientsController(repo repositories.ClientRepository) *ClientsController {
	return &ClientsController{Repository: repo}
}

func (c *ClientsController) CreateClient(ctx context.Context, raw map[string]any) (*models.Client, error) {
	record, err := validation.Validate(schemas.ClientSchema, raw)
	if err != nil {
		return nil, err
	}
	client := schemas.ClientRequestFromRecord(record).ToModel()
	if err := c.Repository.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClient fully replaces name, email and status of client id.
func (c *ClientsController) UpdateClient(ctx context.Context, id int64, raw map[string]any) (*models.Client, error) {
	record, err := validation.Validate(schemas.ClientSchema, raw)
	if err != nil {
		return nil, err
	}
	client := schemas.ClientRequestFromRecord(record).ToModel()
	client.ID = id
	if err := c.Repository.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *ClientsController) GetAllClients(ctx context.Context) ([]models.ClientWithAssets, error) {
	return c.Repository.GetAll(ctx)
}

func (c *ClientsController) GetActiveClients(ctx context.Context) ([]models.Client, error) {
	return c.Repository.GetByStatus(ctx, true)
}

// GetClientByID returns nil without error when the client does not exist.
func (c *ClientsController) GetClientByID(ctx context.Context, id int64) (*models.ClientWithAssets, error) {
	return c.Repository.GetByID(ctx, id)
}
