package models

import "time"

type Asset struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Value     Amount    `db:"value" json:"value"`
	ClientID  int64     `db:"client_id" json:"clientId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AssetSummary is the projection served by the asset listing.
type AssetSummary struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Value Amount `db:"value" json:"value"`
}
