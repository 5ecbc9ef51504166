package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"jobchat/internal/model"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int, logger *zap.Logger) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db, logger: logger}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// jobRow is the flat shape of the jobs/employers join.
type jobRow struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Position     sql.NullString `db:"position"`
	Requirements sql.NullString `db:"requirements"`
	Location     sql.NullString `db:"location"`
	Salary       sql.NullString `db:"salary"`
	EmployerID   int64          `db:"employer_id"`
	CompanyName  string         `db:"company_name"`
	CompanyLogo  sql.NullString `db:"company_logo"`
	Industry     sql.NullString `db:"industry"`
	Website      sql.NullString `db:"website"`
	Description  sql.NullString `db:"description"`
}

func (row jobRow) toJob() model.Job {
	return model.Job{
		ID:           row.ID,
		Title:        row.Title,
		Position:     row.Position.String,
		Requirements: row.Requirements.String,
		Location:     row.Location.String,
		Salary:       row.Salary.String,
		Employer: model.Employer{
			ID:          row.EmployerID,
			CompanyName: row.CompanyName,
			CompanyLogo: row.CompanyLogo.String,
			Industry:    row.Industry.String,
			Website:     row.Website.String,
		},
	}
}

const jobSelectColumns = `
	j.id, j.title, j.position, j.requirements, j.location, j.salary,
	e.id AS employer_id, e.company_name, e.company_logo, e.industry,
	e.website, e.description`

// FetchOpenJobs returns the candidate job pool: non-expired jobs joined with
// their employer, optionally narrowed by a requirements substring at the
// storage level, capped at limit rows.
func (r *PostgresRepository) FetchOpenJobs(ctx context.Context, requirementsLike string, limit int) ([]model.Job, error) {
	whereClauses := []string{"j.is_expired = false"}
	args := []interface{}{}
	argIndex := 1

	if requirementsLike != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("j.requirements ILIKE $%d", argIndex))
		args = append(args, "%"+requirementsLike+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE %s
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $%d
	`, jobSelectColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	jobs := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, row.toJob())
	}
	return jobs, nil
}

// GetJobByID retrieves a single open job. Returns (nil, nil) when the job
// does not exist or has expired.
func (r *PostgresRepository) GetJobByID(ctx context.Context, jobID int64) (*model.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE j.id = $1 AND j.is_expired = false
	`, jobSelectColumns)

	var row jobRow
	if err := r.db.GetContext(ctx, &row, query, jobID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	job := row.toJob()
	return &job, nil
}

// FetchCompanyJobRows returns employers inner-joined with their non-expired
// jobs; employers with no open job never appear. Optional substring
// predicates narrow by industry and company name.
func (r *PostgresRepository) FetchCompanyJobRows(ctx context.Context, industryLike, nameLike string, limit int) ([]model.CompanyJobRow, error) {
	whereClauses := []string{"j.is_expired = false"}
	args := []interface{}{}
	argIndex := 1

	if industryLike != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.industry ILIKE $%d", argIndex))
		args = append(args, "%"+industryLike+"%")
		argIndex++
	}
	if nameLike != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.company_name ILIKE $%d", argIndex))
		args = append(args, "%"+nameLike+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE %s
		ORDER BY e.id, j.id
		LIMIT $%d
	`, jobSelectColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch company rows: %w", err)
	}

	out := make([]model.CompanyJobRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CompanyJobRow{
			EmployerID:  row.EmployerID,
			CompanyName: row.CompanyName,
			CompanyLogo: row.CompanyLogo.String,
			Industry:    row.Industry.String,
			Website:     row.Website.String,
			Description: row.Description.String,
			Job:         row.toJob(),
		})
	}
	return out, nil
}

// AppendConversation persists one chat exchange. Callers treat this as
// best-effort; a failure here must never surface to the chat caller.
func (r *PostgresRepository) AppendConversation(ctx context.Context, conv *model.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	query := `
		INSERT INTO conversations (id, user_id, user_message, bot_message, intent, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		conv.ID, conv.UserID, conv.UserMessage, conv.BotMessage, conv.Intent, conv.Metadata)
	if err != nil {
		return fmt.Errorf("failed to append conversation: %w", err)
	}
	return nil
}

// RecentConversations returns the latest exchanges for a user, newest first.
func (r *PostgresRepository) RecentConversations(ctx context.Context, userID string, limit int) ([]model.Conversation, error) {
	query := `
		SELECT id, user_id, user_message, bot_message, intent, metadata, created_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var conversations []model.Conversation
	if err := r.db.SelectContext(ctx, &conversations, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	return conversations, nil
}
