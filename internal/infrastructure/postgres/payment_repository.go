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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, lead_id, amount, status, method, payment_date, invoice_id, created_at, updated_at`

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
// Los montos viajan como NUMERIC y llegan como decimal gracias al codec del pool.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago nuevo.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.LeadID, payment.Amount, string(payment.Status),
		payment.Method, payment.PaymentDate, payment.InvoiceID,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrLeadNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID. Sin fila retorna (nil, nil).
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	var p entity.Payment
	var status string
	err := r.q.QueryRow(context.Background(), `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id).Scan(
		&p.ID, &p.LeadID, &p.Amount, &status, &p.Method, &p.PaymentDate,
		&p.InvoiceID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	p.Status = entity.PaymentStatus(status)
	return &p, nil
}

// List todos los pagos, más reciente primero.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+paymentColumns+` FROM payments ORDER BY payment_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		var status string
		if err := rows.Scan(
			&p.ID, &p.LeadID, &p.Amount, &status, &p.Method, &p.PaymentDate,
			&p.InvoiceID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Status = entity.PaymentStatus(status)
		out = append(out, &p)
	}
	return out, rows.Err()
}

// ListWithLead pagos con el contacto del lead, más reciente primero.
func (r *PaymentRepo) ListWithLead() ([]*repository.PaymentWithLead, error) {
	query := `
		SELECT p.id, p.lead_id, p.amount, p.status, p.method, p.payment_date,
		       p.invoice_id, p.created_at, p.updated_at,
		       l.name, l.phone, l.email
		FROM payments p
		JOIN leads l ON l.id = p.lead_id
		ORDER BY p.payment_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments with lead: %w", err)
	}
	defer rows.Close()

	var out []*repository.PaymentWithLead
	for rows.Next() {
		var row repository.PaymentWithLead
		var status string
		if err := rows.Scan(
			&row.ID, &row.LeadID, &row.Amount, &status, &row.Method, &row.PaymentDate,
			&row.InvoiceID, &row.CreatedAt, &row.UpdatedAt,
			&row.LeadName, &row.LeadPhone, &row.LeadEmail,
		); err != nil {
			return nil, fmt.Errorf("scan payment with lead: %w", err)
		}
		row.Status = entity.PaymentStatus(status)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// Update actualiza todos los campos editables del pago.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET amount = $2, status = $3, method = $4, payment_date = $5,
		    invoice_id = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Amount, string(payment.Status), payment.Method,
		payment.PaymentDate, payment.InvoiceID, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pago.
func (r *PaymentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
