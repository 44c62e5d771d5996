package domain

import "context"

// ShopType categorises a listing. The catalog carries government thekas,
// bars, and private liquor stores.
type ShopType string

const (
	TypeTheka ShopType = "theka"
	TypeBar   ShopType = "bar"
	TypeStore ShopType = "store"
)

// UserReported is the latest raw crowd report for a shop. It is a fast
// fallback for clients that do not consume the full report summary.
type UserReported string

const (
	ReportedNone   UserReported = ""
	ReportedOpen   UserReported = "open"
	ReportedClosed UserReported = "closed"
)

type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

type Shop struct {
	ID           int          `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Area         string       `json:"area" db:"area"`
	Address      string       `json:"address" db:"address"`
	Phone        string       `json:"phone" db:"phone"`
	Type         ShopType     `json:"type" db:"type"`
	Speciality   string       `json:"speciality" db:"speciality"`
	IsPremium    bool         `json:"isPremium" db:"is_premium"`
	Rating       float64      `json:"rating" db:"rating"`
	OpenTime     string       `json:"openTime" db:"open_time"`   // HH:MM, 24h
	CloseTime    string       `json:"closeTime" db:"close_time"` // HH:MM, 24h
	Coordinates  Coordinates  `json:"coordinates"`
	UserReported UserReported `json:"userReported,omitempty" db:"user_reported"`
}

// ShopRepository is the catalog boundary. Implementations: Postgres for the
// real deployment, an in-memory seed for tests and DB-less development.
type ShopRepository interface {
	List(ctx context.Context) ([]Shop, error)
	GetByID(ctx context.Context, id int) (*Shop, error)
	SetUserReported(ctx context.Context, id int, reported UserReported) (*Shop, error)
}
