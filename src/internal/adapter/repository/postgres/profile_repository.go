package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	logger.Info("profile repository create", logger.Fields{
		"role":       profile.Role,
		"profession": profile.Profession,
	})

	const query = `
INSERT INTO profiles (
	role,
	first_name,
	last_name,
	profession,
	password_hash,
	balance
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	var (
		id        int64
		createdAt time.Time
		updatedAt time.Time
	)

	if err := r.db.QueryRowContext(
		ctx,
		query,
		profile.Role,
		profile.FirstName,
		profile.LastName,
		profile.Profession,
		profile.PasswordHash,
		profile.Balance,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		logger.Error("profile repository create failed", err, logger.Fields{
			"role": profile.Role,
		})
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	profile.ID = id
	profile.CreatedAt = createdAt
	profile.UpdatedAt = updatedAt

	logger.Info("profile repository create success", logger.Fields{
		"profileId": profile.ID,
	})

	return profile, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID int64) (domain.Profile, error) {
	const query = `
SELECT id,
       role,
       first_name,
       last_name,
       profession,
       password_hash,
       balance,
       created_at,
       updated_at
FROM profiles
WHERE id = $1`

	var profile domain.Profile
	if err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&profile.ID,
		&profile.Role,
		&profile.FirstName,
		&profile.LastName,
		&profile.Profession,
		&profile.PasswordHash,
		&profile.Balance,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, domain.ErrRecordNotFound
		}
		logger.Error("profile repository get failed", err, logger.Fields{
			"profileId": profileID,
		})
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}
