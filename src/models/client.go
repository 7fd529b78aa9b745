package models

import "time"

type Client struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Status    bool      `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ClientWithAssets is a client together with every asset it owns. Assets is
// never nil so it always renders as a JSON array.
type ClientWithAssets struct {
	Client
	Assets []Asset `json:"assets"`
}
