package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careerpath/careerpath-go/internal/model"
)

// ProfileRepository handles profile persistence operations on MySQL.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// upsertProfileQuery replaces every column of an existing row, so the stored
// profile is always exactly the last one written.
const upsertProfileQuery = `
	INSERT INTO user_profiles (user_id, academic_level, current_class, stream, subjects, grades, interests, strengths, career_goals, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		academic_level = VALUES(academic_level),
		current_class  = VALUES(current_class),
		stream         = VALUES(stream),
		subjects       = VALUES(subjects),
		grades         = VALUES(grades),
		interests      = VALUES(interests),
		strengths      = VALUES(strengths),
		career_goals   = VALUES(career_goals),
		updated_at     = VALUES(updated_at)`

// Upsert writes the profile and marks the owning user's profile as completed
// in one transaction.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	subjects, err := json.Marshal(profile.Subjects)
	if err != nil {
		return fmt.Errorf("encoding subjects: %w", err)
	}
	grades, err := json.Marshal(profile.Grades)
	if err != nil {
		return fmt.Errorf("encoding grades: %w", err)
	}
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return fmt.Errorf("encoding interests: %w", err)
	}
	strengths, err := json.Marshal(profile.Strengths)
	if err != nil {
		return fmt.Errorf("encoding strengths: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertProfileQuery,
		profile.UserID,
		profile.AcademicLevel,
		profile.CurrentClass,
		profile.Stream,
		subjects,
		grades,
		interests,
		strengths,
		profile.CareerGoals,
		profile.UpdatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET profile_completed = TRUE WHERE id = ?`, profile.UserID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByUserID retrieves the profile owned by userID.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	query := `SELECT user_id, academic_level, current_class, stream, subjects, grades, interests, strengths, career_goals, updated_at
		FROM user_profiles WHERE user_id = ?`

	var (
		p                                      model.Profile
		subjects, grades, interests, strengths []byte
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.AcademicLevel, &p.CurrentClass, &p.Stream,
		&subjects, &grades, &interests, &strengths,
		&p.CareerGoals, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	for _, col := range []struct {
		raw []byte
		dst any
	}{
		{subjects, &p.Subjects},
		{grades, &p.Grades},
		{interests, &p.Interests},
		{strengths, &p.Strengths},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("decoding profile column: %w", err)
		}
	}

	return &p, nil
}
