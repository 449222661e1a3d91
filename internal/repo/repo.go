package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Project is a saved building design. The survey itself is stored as a
// JSON document so the schema does not chase the calculation model.
type Project struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Building  json.RawMessage `json:"building"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, userID int, name string, building json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, projectID int) (Project, error)
	DeleteProject(ctx context.Context, userID, projectID int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
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

func (r *PostgresUserRepository) SaveProject(ctx context.Context, userID int, name string, building json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO projects (user_id, name, building, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, name)
		DO UPDATE SET building = EXCLUDED.building, updated_at = now()
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, []byte(building)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := "SELECT id, name, updated_at FROM projects WHERE user_id=$1 ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresUserRepository) GetProject(ctx context.Context, userID, projectID int) (Project, error) {
	var p Project
	var raw []byte
	query := "SELECT id, name, building, updated_at FROM projects WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, projectID).Scan(&p.ID, &p.Name, &raw, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	p.Building = json.RawMessage(raw)
	return p, nil
}

func (r *PostgresUserRepository) DeleteProject(ctx context.Context, userID, projectID int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE user_id=$1 AND id=$2", userID, projectID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
