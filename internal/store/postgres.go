package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/wellnesstracker/internal"
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(dsn string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (p *PostgresStore) Close() {
	p.pool.Close()
}

// --- UserRepository ---

func (p *PostgresStore) CreateUser(ctx context.Context, u *internal.UserRecord) error {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, u.Email).Scan(&exists)
	if err != nil {
		p.logger.Errorf("failed to check user existence: %v", err)
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		u.ID, u.Email, u.PasswordHash)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*internal.UserRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, email, password_hash FROM users WHERE email = $1`, email)
	var u internal.UserRecord
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to query user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (p *PostgresStore) GetUserByID(ctx context.Context, id string) (*internal.UserRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, email, password_hash FROM users WHERE id = $1`, id)
	var u internal.UserRecord
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to query user: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- WellnessLogRepository ---

func (p *PostgresStore) SaveLog(ctx context.Context, log *internal.WellnessLog) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO wellness_logs (id, user_id, mood, sleep_duration, activity_notes, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.UserID, log.Mood, log.SleepDuration, log.ActivityNotes, log.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert wellness log: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListLogs(ctx context.Context, userID string) ([]internal.WellnessLog, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, mood, sleep_duration, activity_notes, created_at FROM wellness_logs WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query wellness logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := []internal.WellnessLog{}
	for rows.Next() {
		var l internal.WellnessLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Mood, &l.SleepDuration, &l.ActivityNotes, &l.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan wellness log: %v", err)
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (p *PostgresStore) UpdateLog(ctx context.Context, id string, patch internal.WellnessLogPatch) (*internal.WellnessLog, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, mood, sleep_duration, activity_notes, created_at FROM wellness_logs WHERE id = $1`, id)
	var l internal.WellnessLog
	if err := row.Scan(&l.ID, &l.UserID, &l.Mood, &l.SleepDuration, &l.ActivityNotes, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to query wellness log: %v", err)
		return nil, err
	}
	patch.Apply(&l)
	_, err := p.pool.Exec(ctx, `UPDATE wellness_logs SET mood = $2, sleep_duration = $3, activity_notes = $4 WHERE id = $1`,
		l.ID, l.Mood, l.SleepDuration, l.ActivityNotes)
	if err != nil {
		p.logger.Errorf("failed to update wellness log: %v", err)
		return nil, err
	}
	return &l, nil
}

func (p *PostgresStore) DeleteLog(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM wellness_logs WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete wellness log: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ UserRepository = (*PostgresStore)(nil)
var _ WellnessLogRepository = (*PostgresStore)(nil)
