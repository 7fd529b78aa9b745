package repositories

import (
	"context"
	"errors"

	"invest/src/models"

	"github.com/jackc/pgx/v5"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id int64) (*models.ClientWithAssets, error)
	GetAll(ctx context.Context) ([]models.ClientWithAssets, error)
	GetByStatus(ctx context.Context, status bool) ([]models.Client, error)
}

const clientEntity = "client"

// Assets are folded into a JSON array so a client and its assets come back
// from a single statement.
const selectClientWithAssets = `
	SELECT c.id, c.name, c.email, c.status, c.created_at, c.updated_at,
		COALESCE(
			json_agg(json_build_object(
				'id', a.id,
				'name', a.name,
				'value', a.value,
				'clientId', a.client_id,
				'createdAt', a.created_at
			) ORDER BY a.id) FILTER (WHERE a.id IS NOT NULL),
			'[]'::json
		) AS assets
	FROM clients c
	LEFT JOIN assets a ON a.client_id = c.id`

type clientRepo struct {
	db DBTX
}

func NewClientRepository(db DBTX) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (name, email, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		client.Name, client.Email, client.Status,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	return TranslateError("Create", clientEntity, err)
}

func (r *clientRepo) Update(ctx context.Context, client *models.Client) error {
	err := r.db.QueryRow(ctx,
		`UPDATE clients
		 SET name = $1, email = $2, status = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING id, name, email, status, created_at, updated_at`,
		client.Name, client.Email, client.Status, client.ID,
	).Scan(&client.ID, &client.Name, &client.Email, &client.Status, &client.CreatedAt, &client.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return TranslateError("Update", clientEntity, err)
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*models.ClientWithAssets, error) {
	client, err := scanClientWithAssets(r.db.QueryRow(ctx, selectClientWithAssets+`
	WHERE c.id = $1
	GROUP BY c.id`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, TranslateError("GetByID", clientEntity, err)
	}
	return client, nil
}

func (r *clientRepo) GetAll(ctx context.Context) ([]models.ClientWithAssets, error) {
	rows, err := r.db.Query(ctx, selectClientWithAssets+`
	GROUP BY c.id
	ORDER BY c.id`)
	if err != nil {
		return nil, TranslateError("GetAll", clientEntity, err)
	}
	defer rows.Close()

	clients := make([]models.ClientWithAssets, 0)
	for rows.Next() {
		client, err := scanClientWithAssets(rows)
		if err != nil {
			return nil, TranslateError("GetAll", clientEntity, err)
		}
		clients = append(clients, *client)
	}
	return clients, TranslateError("GetAll", clientEntity, rows.Err())
}

func (r *clientRepo) GetByStatus(ctx context.Context, status bool) ([]models.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, status, created_at, updated_at
		 FROM clients
		 WHERE status = $1
		 ORDER BY id`, status)
	if err != nil {
		return nil, TranslateError("GetByStatus", clientEntity, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		var client models.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Email, &client.Status, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, TranslateError("GetByStatus", clientEntity, err)
		}
		clients = append(clients, client)
	}
	return clients, TranslateError("GetByStatus", clientEntity, rows.Err())
}

func scanClientWithAssets(row pgx.Row) (*models.ClientWithAssets, error) {
	var client models.ClientWithAssets
	err := row.Scan(
		&client.ID, &client.Name, &client.Email, &client.Status, &client.CreatedAt, &client.UpdatedAt,
		&client.Assets,
	)
	if err != nil {
		return nil, err
	}
	if client.Assets == nil {
		client.Assets = []models.Asset{}
	}
	return &client, nil
}
