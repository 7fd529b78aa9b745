// Package mock provides in-memory repositories that mimic the PostgreSQL
// constraints of the invest schema. Constraint violations are raised as
// *pgconn.PgError and classified with repositories.TranslateError, the same
// way the pgx-backed repositories do.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"invest/src/models"
	"invest/src/repositories"

	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	mu           sync.Mutex
	clients      map[int64]models.Client
	assets       map[int64]models.Asset
	nextClientID int64
	nextAssetID  int64
	// Err, when set, is returned by every call as a store failure.
	Err error
}

func NewStore() *Store {
	return &Store{
		clients: make(map[int64]models.Client),
		assets:  make(map[int64]models.Asset),
	}
}

func (s *Store) Clients() repositories.ClientRepository {
	return &clientRepo{store: s}
}

func (s *Store) Assets() repositories.AssetRepository {
	return &assetRepo{store: s}
}

func (s *Store) emailTaken(email string, except int64) bool {
	for id, c := range s.clients {
		if id != except && c.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) assetsOf(clientID int64) []models.Asset {
	assets := make([]models.Asset, 0)
	for _, a := range s.assets {
		if a.ClientID == clientID {
			assets = append(assets, a)
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return assets
}

func (s *Store) sortedClients() []models.Client {
	clients := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients
}

var emailViolation = &pgconn.PgError{
	Code:           "23505",
	Message:        "duplicate key value violates unique constraint \"clients_email_key\"",
	ConstraintName: "clients_email_key",
}

var clientFKViolation = &pgconn.PgError{
	Code:           "23503",
	Message:        "insert or update on table \"assets\" violates foreign key constraint \"assets_client_id_fkey\"",
	ConstraintName: "assets_client_id_fkey",
}

type clientRepo struct {
	store *Store
}

func (r *clientRepo) Create(_ context.Context, client *models.Client) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return repositories.TranslateError("Create", "client", s.Err)
	}
	if s.emailTaken(client.Email, 0) {
		return repositories.TranslateError("Create", "client", emailViolation)
	}
	s.nextClientID++
	now := time.Now()
	client.ID = s.nextClientID
	client.CreatedAt = now
	client.UpdatedAt = now
	s.clients[client.ID] = *client
	return nil
}

func (r *clientRepo) Update(_ context.Context, client *models.Client) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return repositories.TranslateError("Update", "client", s.Err)
	}
	stored, ok := s.clients[client.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if s.emailTaken(client.Email, client.ID) {
		return repositories.TranslateError("Update", "client", emailViolation)
	}
	stored.Name = client.Name
	stored.Email = client.Email
	stored.Status = client.Status
	stored.UpdatedAt = time.Now()
	s.clients[client.ID] = stored
	*client = stored
	return nil
}

func (r *clientRepo) GetByID(_ context.Context, id int64) (*models.ClientWithAssets, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, repositories.TranslateError("GetByID", "client", s.Err)
	}
	client, ok := s.clients[id]
	if !ok {
		return nil, nil
	}
	return &models.ClientWithAssets{Client: client, Assets: s.assetsOf(id)}, nil
}

func (r *clientRepo) GetAll(_ context.Context) ([]models.ClientWithAssets, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, repositories.TranslateError("GetAll", "client", s.Err)
	}
	clients := make([]models.ClientWithAssets, 0, len(s.clients))
	for _, c := range s.sortedClients() {
		clients = append(clients, models.ClientWithAssets{Client: c, Assets: s.assetsOf(c.ID)})
	}
	return clients, nil
}

func (r *clientRepo) GetByStatus(_ context.Context, status bool) ([]models.Client, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, repositories.TranslateError("GetByStatus", "client", s.Err)
	}
	clients := make([]models.Client, 0)
	for _, c := range s.sortedClients() {
		if c.Status == status {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

type assetRepo struct {
	store *Store
}

func (r *assetRepo) Create(_ context.Context, asset *models.Asset) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return repositories.TranslateError("Create", "asset", s.Err)
	}
	if _, ok := s.clients[asset.ClientID]; !ok {
		return repositories.TranslateError("Create", "asset", clientFKViolation)
	}
	s.nextAssetID++
	asset.ID = s.nextAssetID
	asset.CreatedAt = time.Now()
	s.assets[asset.ID] = *asset
	return nil
}

func (r *assetRepo) GetAll(_ context.Context) ([]models.AssetSummary, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, repositories.TranslateError("GetAll", "asset", s.Err)
	}
	assets := make([]models.AssetSummary, 0, len(s.assets))
	for _, a := range s.assets {
		assets = append(assets, models.AssetSummary{ID: a.ID, Name: a.Name, Value: a.Value})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return assets, nil
}
