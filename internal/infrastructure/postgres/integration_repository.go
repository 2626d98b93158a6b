package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

var _ repository.IntegrationRepository = (*IntegrationRepo)(nil)

const integrationColumns = `id, lead_id, integration_status, start_date, end_date, feedback, created_at, updated_at`

// IntegrationRepo implementación de IntegrationRepository sobre PostgreSQL (usable con pool o tx).
type IntegrationRepo struct {
	q Querier
}

// NewIntegrationRepository construye el adaptador de integraciones. Pasar pool o tx (Querier).
func NewIntegrationRepository(q Querier) *IntegrationRepo {
	return &IntegrationRepo{q: q}
}

// Create persiste una integración nueva.
func (r *IntegrationRepo) Create(integration *entity.Integration) error {
	query := `
		INSERT INTO integrations (` + integrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		integration.ID, integration.LeadID, string(integration.Status),
		integration.StartDate, integration.EndDate, integration.Feedback,
		integration.CreatedAt, integration.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrLeadNotFound
		}
		return fmt.Errorf("insert integration: %w", err)
	}
	return nil
}

// GetByID obtiene una integración por ID. Sin fila retorna (nil, nil).
func (r *IntegrationRepo) GetByID(id string) (*entity.Integration, error) {
	return r.scanOne(`SELECT `+integrationColumns+` FROM integrations WHERE id = $1`, id)
}

// GetByLeadID obtiene la integración de un lead.
func (r *IntegrationRepo) GetByLeadID(leadID string) (*entity.Integration, error) {
	return r.scanOne(`SELECT `+integrationColumns+` FROM integrations WHERE lead_id = $1 LIMIT 1`, leadID)
}

// List todas las integraciones, más reciente primero.
func (r *IntegrationRepo) List() ([]*entity.Integration, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+integrationColumns+` FROM integrations ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Integration
	for rows.Next() {
		var i entity.Integration
		var status string
		if err := rows.Scan(
			&i.ID, &i.LeadID, &status, &i.StartDate, &i.EndDate, &i.Feedback,
			&i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan integration: %w", err)
		}
		i.Status = entity.IntegrationStatus(status)
		out = append(out, &i)
	}
	return out, rows.Err()
}

// ListWithLead integraciones con el contacto del lead.
func (r *IntegrationRepo) ListWithLead() ([]*repository.IntegrationWithLead, error) {
	query := `
		SELECT i.id, i.lead_id, i.integration_status, i.start_date, i.end_date,
		       i.feedback, i.created_at, i.updated_at,
		       l.name, l.phone, l.email
		FROM integrations i
		JOIN leads l ON l.id = i.lead_id
		ORDER BY i.start_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list integrations with lead: %w", err)
	}
	defer rows.Close()

	var out []*repository.IntegrationWithLead
	for rows.Next() {
		var row repository.IntegrationWithLead
		var status string
		if err := rows.Scan(
			&row.ID, &row.LeadID, &status, &row.StartDate, &row.EndDate,
			&row.Feedback, &row.CreatedAt, &row.UpdatedAt,
			&row.LeadName, &row.LeadPhone, &row.LeadEmail,
		); err != nil {
			return nil, fmt.Errorf("scan integration with lead: %w", err)
		}
		row.Status = entity.IntegrationStatus(status)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// Update actualiza todos los campos editables de la integración.
func (r *IntegrationRepo) Update(integration *entity.Integration) error {
	query := `
		UPDATE integrations
		SET integration_status = $2, start_date = $3, end_date = $4,
		    feedback = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		integration.ID, string(integration.Status), integration.StartDate,
		integration.EndDate, integration.Feedback, integration.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update integration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una integración.
func (r *IntegrationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM integrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete integration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IntegrationRepo) scanOne(query string, args ...any) (*entity.Integration, error) {
	var i entity.Integration
	var status string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.LeadID, &status, &i.StartDate, &i.EndDate, &i.Feedback,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get integration: %w", err)
	}
	i.Status = entity.IntegrationStatus(status)
	return &i, nil
}
