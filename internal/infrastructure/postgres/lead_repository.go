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

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, name, email, phone, source, campaign, status, remarks, last_response, date_added, updated_at`

// LeadRepo implementación de LeadRepository sobre PostgreSQL (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador de leads. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un lead nuevo. Teléfono repetido -> ErrDuplicatePhone.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source, lead.Campaign,
		string(lead.Status), lead.Remarks, lead.LastResponse, lead.DateAdded, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID. Sin fila retorna (nil, nil).
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByPhone obtiene un lead por teléfono (clave natural de deduplicación).
func (r *LeadRepo) GetByPhone(phone string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE phone = $1 LIMIT 1`
	return r.scanOne(query, phone)
}

// List todos los leads, más reciente primero.
func (r *LeadRepo) List() ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY date_added DESC`
	return r.scanMany(query)
}

// ListByStatus leads filtrados por estado.
func (r *LeadRepo) ListByStatus(status entity.LeadStatus) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 ORDER BY date_added DESC`
	return r.scanMany(query, string(status))
}

// Update actualiza todos los campos editables del lead.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, source = $5, campaign = $6,
		    status = $7, remarks = $8, last_response = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source, lead.Campaign,
		string(lead.Status), lead.Remarks, lead.LastResponse, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePhone
		}
		return fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

// Delete elimina el lead; demos, integraciones y pagos caen por ON DELETE CASCADE.
func (r *LeadRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepo) scanOne(query string, args ...any) (*entity.Lead, error) {
	var l entity.Lead
	var status string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Campaign,
		&status, &l.Remarks, &l.LastResponse, &l.DateAdded, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	l.Status = entity.LeadStatus(status)
	return &l, nil
}

func (r *LeadRepo) scanMany(query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		var status string
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Campaign,
			&status, &l.Remarks, &l.LastResponse, &l.DateAdded, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.Status = entity.LeadStatus(status)
		out = append(out, &l)
	}
	return out, rows.Err()
}
