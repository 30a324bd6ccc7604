package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Profile is the account state returned to the frontend, premium tier
// included.
type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Company      string     `json:"company,omitempty"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

// ProjectSummary is one row of the saved-project listing.
type ProjectSummary struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project is a saved duct system. Payload is the client's designer state
// stored verbatim as JSONB.
type Project struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, login, company string) (int64, error)
	SetPremiumUntil(ctx context.Context, id int, until time.Time) error
	ClearPremium(ctx context.Context, id int) error

	SaveProject(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]ProjectSummary, error)
	GetProject(ctx context.Context, userID, id int) (*Project, error)
	DeleteProject(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

// GetByLogin returns the user id and password hash, or zero values when
// the login is unknown.
func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (*Profile, error) {
	var p Profile
	query := "SELECT id, login, email, company, is_premium, premium_until FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &p.Company, &p.IsPremium, &p.PremiumUntil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, company string) (int64, error) {
	query := "UPDATE users SET login=$2, company=$3 WHERE id=$1"
	res, err := r.db.ExecContext(ctx, query, id, login, company)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) SetPremiumUntil(ctx context.Context, id int, until time.Time) error {
	query := "UPDATE users SET is_premium=TRUE, premium_until=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, until)
	return err
}

func (r *PostgresRepository) ClearPremium(ctx context.Context, id int) error {
	query := "UPDATE users SET is_premium=FALSE, premium_until=NULL WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *PostgresRepository) SaveProject(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO projects (user_id, name, payload) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, []byte(payload)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]ProjectSummary, error) {
	query := "SELECT id, name, updated_at FROM projects WHERE user_id=$1 ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectSummary
	for rows.Next() {
		var s ProjectSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, id int) (*Project, error) {
	var p Project
	var payload []byte
	query := "SELECT id, name, payload, updated_at FROM projects WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&p.ID, &p.Name, &payload, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Payload = json.RawMessage(payload)
	return &p, nil
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, userID, id int) error {
	query := "DELETE FROM projects WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
