package billto

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bill-to records.
type Repository interface {
	List(ctx context.Context) ([]BillTo, error)
	Get(ctx context.Context, id string) (BillTo, error)
	Create(ctx context.Context, record BillTo) error
	Update(ctx context.Context, id string, patch Patch) (BillTo, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const billToColumns = `id, company_name, address1, address2, address3, contact_person,
	phone, email, gstin, notes, created_at`

func (r *repository) List(ctx context.Context) ([]BillTo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+billToColumns+` FROM bill_to_parties ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("billto: list: %w", err)
	}
	defer rows.Close()

	records := []BillTo{}
	for rows.Next() {
		var b BillTo
		if err := rows.Scan(&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
			&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (BillTo, error) {
	var b BillTo
	err := r.db.QueryRow(ctx, `SELECT `+billToColumns+` FROM bill_to_parties WHERE id = $1`, id).Scan(
		&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
		&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return BillTo{}, ErrNotFound
	}
	return b, err
}

func (r *repository) Create(ctx context.Context, record BillTo) error {
	query := `INSERT INTO bill_to_parties (` + billToColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query, record.ID, record.CompanyName, record.Address1,
		record.Address2, record.Address3, record.ContactPerson, record.Phone,
		record.Email, record.GSTIN, record.Notes, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("billto: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, patch Patch) (BillTo, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if patch.CompanyName != nil {
		add("company_name", *patch.CompanyName)
	}
	if patch.Address1 != nil {
		add("address1", *patch.Address1)
	}
	if patch.Address2 != nil {
		add("address2", *patch.Address2)
	}
	if patch.Address3 != nil {
		add("address3", *patch.Address3)
	}
	if patch.ContactPerson != nil {
		add("contact_person", *patch.ContactPerson)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.GSTIN != nil {
		add("gstin", *patch.GSTIN)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE bill_to_parties SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + billToColumns

	var b BillTo
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
		&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return BillTo{}, ErrNotFound
	}
	if err != nil {
		return BillTo{}, fmt.Errorf("billto: update: %w", err)
	}
	return b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bill_to_parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("billto: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
