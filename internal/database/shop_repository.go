package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/domain"
)

const shopColumns = `id, name, area, address, phone, type, speciality, is_premium,
	rating, open_time, close_time, lat, lng, user_reported`

// ShopRepo implements domain.ShopRepository on PostgreSQL.
type ShopRepo struct {
	db *sql.DB
}

func NewShopRepo(db *sql.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

func (r *ShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shops: %w", err)
	}

	return shops, nil
}

func (r *ShopRepo) GetByID(ctx context.Context, id int) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	shop, err := scanShop(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

func (r *ShopRepo) SetUserReported(ctx context.Context, id int, reported domain.UserReported) (*domain.Shop, error) {
	query := `UPDATE shops
		SET user_reported = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + shopColumns

	shop, err := scanShop(r.db.QueryRowContext(ctx, query, id, string(reported)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update shop report: %w", err)
	}

	return &shop, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (domain.Shop, error) {
	var shop domain.Shop
	var reported string
	err := row.Scan(
		&shop.ID, &shop.Name, &shop.Area, &shop.Address, &shop.Phone,
		&shop.Type, &shop.Speciality, &shop.IsPremium, &shop.Rating,
		&shop.OpenTime, &shop.CloseTime,
		&shop.Coordinates.Lat, &shop.Coordinates.Lng, &reported,
	)
	if err != nil {
		return domain.Shop{}, err
	}
	shop.UserReported = domain.UserReported(reported)
	return shop, nil
}

// seedShops inserts the bundled catalog, skipping rows that already exist so
// crowd-reported state survives restarts.
func seedShops(ctx context.Context, db *sql.DB) error {
	query := `INSERT INTO shops (id, name, area, address, phone, type, speciality,
			is_premium, rating, open_time, close_time, lat, lng, user_reported)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO NOTHING`

	for _, shop := range catalog.Seed() {
		_, err := db.ExecContext(ctx, query,
			shop.ID, shop.Name, shop.Area, shop.Address, shop.Phone,
			string(shop.Type), shop.Speciality, shop.IsPremium, shop.Rating,
			shop.OpenTime, shop.CloseTime,
			shop.Coordinates.Lat, shop.Coordinates.Lng, string(shop.UserReported),
		)
		if err != nil {
			return fmt.Errorf("failed to seed shop %d: %w", shop.ID, err)
		}
	}

	return nil
}
