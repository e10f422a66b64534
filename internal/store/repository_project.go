package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/logger"
	"github.com/MKhiriev/go-secret-custody/models"
)

type projectRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("ProjectRepository created")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	metadataJSON, err := encodeMetadata(project.Metadata)
	if err != nil {
		return models.Project{}, fmt.Errorf("encode project metadata: %w", err)
	}

	// NULL secret_data when the project is created without a secret.
	var secret any
	if project.SecretData != "" {
		secret = project.SecretData
	}

	query, args, err := buildInsertProjectQuery(r.db.builder, project, metadataJSON, secret)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&project.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Project{}, ErrSlugTaken
		}
		r.logger.Err(err).Str("func", "*projectRepository.CreateProject").Str("slug", project.Slug).Msg("error inserting project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return project, nil
}

func (r *projectRepository) FindProjectByID(ctx context.Context, id int64) (models.Project, error) {
	query, args, err := buildSelectProjectQuery(r.db.builder, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		project   models.Project
		metadata  sql.NullString
		secret    sql.NullString
		createdAt int64
		updatedAt int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&project.ID, &project.Slug, &project.Name, &project.Owner,
		&metadata, &secret, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*projectRepository.FindProjectByID").Int64("project_id", id).Msg("error scanning project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	project.Metadata, err = decodeMetadata(metadata)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	project.SecretData = secret.String
	project.CreatedAt = fromEpoch(createdAt)
	project.UpdatedAt = fromEpoch(updatedAt)

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, "")
}

func (r *projectRepository) ListProjectsByOwner(ctx context.Context, owner string) ([]models.Project, error) {
	return r.list(ctx, owner)
}

// list runs the owner-scoped or unscoped project listing. The query never
// selects secret_data, so listings cannot leak envelopes regardless of what
// callers do with the result.
func (r *projectRepository) list(ctx context.Context, owner string) ([]models.Project, error) {
	query, args, err := buildListProjectsQuery(r.db.builder, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*projectRepository.list").Msg("error listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var (
			project   models.Project
			metadata  sql.NullString
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(&project.ID, &project.Slug, &project.Name,
			&project.Owner, &metadata, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		project.Metadata, err = decodeMetadata(metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		project.CreatedAt = fromEpoch(createdAt)
		project.UpdatedAt = fromEpoch(updatedAt)
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (r *projectRepository) UpdateProjectSecret(ctx context.Context, id int64, envelope string, updatedAt time.Time) error {
	query, args, err := buildUpdateProjectSecretQuery(r.db.builder, id, envelope, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*projectRepository.UpdateProjectSecret").Int64("project_id", id).Msg("error updating project secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id int64) error {
	query, args, err := buildDeleteProjectQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("project_id", id).Msg("error deleting project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) CountProjects(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, models.Project{}.TableName())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

func encodeMetadata(metadata map[string]any) (string, error) {
	if metadata == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeMetadata(column sql.NullString) (map[string]any, error) {
	if !column.Valid || column.String == "" {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(column.String), &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}
