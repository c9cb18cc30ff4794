package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists supplier records.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id string) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) error
	Update(ctx context.Context, id string, patch Patch) (Supplier, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const supplierColumns = `id, company_name, address1, address2, address3, contact_person,
	phone, email, gstin, notes, created_at`

func (r *repository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("suppliers: list: %w", err)
	}
	defer rows.Close()

	records := []Supplier{}
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.CompanyName, &s.Address1, &s.Address2, &s.Address3,
			&s.ContactPerson, &s.Phone, &s.Email, &s.GSTIN, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id).Scan(
		&s.ID, &s.CompanyName, &s.Address1, &s.Address2, &s.Address3,
		&s.ContactPerson, &s.Phone, &s.Email, &s.GSTIN, &s.Notes, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, ErrNotFound
	}
	return s, err
}

func (r *repository) Create(ctx context.Context, supplier Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.CompanyName, supplier.Address1,
		supplier.Address2, supplier.Address3, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.GSTIN, supplier.Notes, supplier.CreatedAt)
	if err != nil {
		return fmt.Errorf("suppliers: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, patch Patch) (Supplier, error) {
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
	query := `UPDATE suppliers SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + supplierColumns

	var s Supplier
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.CompanyName, &s.Address1, &s.Address2, &s.Address3,
		&s.ContactPerson, &s.Phone, &s.Email, &s.GSTIN, &s.Notes, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, ErrNotFound
	}
	if err != nil {
		return Supplier{}, fmt.Errorf("suppliers: update: %w", err)
	}
	return s, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("suppliers: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
