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

var _ repository.DemoRepository = (*DemoRepo)(nil)

const demoColumns = `id, lead_id, demo_type, start_date, end_date, status, remarks, feedback, created_at, updated_at`

// DemoRepo implementación de DemoRepository sobre PostgreSQL (usable con pool o tx).
type DemoRepo struct {
	q Querier
}

// NewDemoRepository construye el adaptador de demos. Pasar pool o tx (Querier).
func NewDemoRepository(q Querier) *DemoRepo {
	return &DemoRepo{q: q}
}

// ReplaceForLead borra la demo previa del lead (si la hay) e inserta la nueva
// en la misma llamada. Un lead tiene a lo sumo una demo vigente.
func (r *DemoRepo) ReplaceForLead(demo *entity.Demo) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM demos WHERE lead_id = $1`, demo.LeadID); err != nil {
		return fmt.Errorf("delete previous demo: %w", err)
	}
	query := `
		INSERT INTO demos (` + demoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		demo.ID, demo.LeadID, string(demo.Type), demo.StartDate, demo.EndDate,
		demo.Status, demo.Remarks, demo.Feedback, demo.CreatedAt, demo.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrLeadNotFound
		}
		return fmt.Errorf("insert demo: %w", err)
	}
	return nil
}

// GetByID obtiene una demo por ID. Sin fila retorna (nil, nil).
func (r *DemoRepo) GetByID(id string) (*entity.Demo, error) {
	return r.scanOne(`SELECT `+demoColumns+` FROM demos WHERE id = $1`, id)
}

// GetByLeadID obtiene la demo vigente de un lead.
func (r *DemoRepo) GetByLeadID(leadID string) (*entity.Demo, error) {
	return r.scanOne(`SELECT `+demoColumns+` FROM demos WHERE lead_id = $1 LIMIT 1`, leadID)
}

// List todas las demos, la que vence antes primero.
func (r *DemoRepo) List() ([]*entity.Demo, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+demoColumns+` FROM demos ORDER BY end_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list demos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Demo
	for rows.Next() {
		d, err := scanDemo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListWithLead demos con el contacto del lead, la que vence antes primero.
func (r *DemoRepo) ListWithLead() ([]*repository.DemoWithLead, error) {
	query := `
		SELECT d.id, d.lead_id, d.demo_type, d.start_date, d.end_date, d.status,
		       d.remarks, d.feedback, d.created_at, d.updated_at,
		       l.name, l.phone, l.email
		FROM demos d
		JOIN leads l ON l.id = d.lead_id
		ORDER BY d.end_date ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list demos with lead: %w", err)
	}
	defer rows.Close()

	var out []*repository.DemoWithLead
	for rows.Next() {
		var row repository.DemoWithLead
		var demoType string
		if err := rows.Scan(
			&row.ID, &row.LeadID, &demoType, &row.StartDate, &row.EndDate, &row.Status,
			&row.Remarks, &row.Feedback, &row.CreatedAt, &row.UpdatedAt,
			&row.LeadName, &row.LeadPhone, &row.LeadEmail,
		); err != nil {
			return nil, fmt.Errorf("scan demo with lead: %w", err)
		}
		row.Type = entity.DemoType(demoType)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// Update actualiza todos los campos editables de la demo.
func (r *DemoRepo) Update(demo *entity.Demo) error {
	query := `
		UPDATE demos
		SET demo_type = $2, start_date = $3, end_date = $4, status = $5,
		    remarks = $6, feedback = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		demo.ID, string(demo.Type), demo.StartDate, demo.EndDate, demo.Status,
		demo.Remarks, demo.Feedback, demo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update demo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una demo.
func (r *DemoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM demos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete demo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DemoRepo) scanOne(query string, args ...any) (*entity.Demo, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	d, err := scanDemo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func scanDemo(row pgx.Row) (*entity.Demo, error) {
	var d entity.Demo
	var demoType string
	if err := row.Scan(
		&d.ID, &d.LeadID, &demoType, &d.StartDate, &d.EndDate, &d.Status,
		&d.Remarks, &d.Feedback, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan demo: %w", err)
	}
	d.Type = entity.DemoType(demoType)
	return &d, nil
}
