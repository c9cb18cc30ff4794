package buyers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists buyer records.
type Repository interface {
	List(ctx context.Context) ([]Buyer, error)
	Get(ctx context.Context, id string) (Buyer, error)
	Create(ctx context.Context, buyer Buyer) error
	Update(ctx context.Context, id string, patch Patch) (Buyer, error)
	Delete(ctx context.Context, id string) error
	// ClearDefaults unsets IsDefaultBuyer on every record except exceptID.
	ClearDefaults(ctx context.Context, exceptID string) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const buyerColumns = `id, company_name, address1, address2, address3, contact_person,
	phone, email, gstin, notes, is_default_buyer, created_at`

func (r *repository) List(ctx context.Context) ([]Buyer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+buyerColumns+` FROM buyers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("buyers: list: %w", err)
	}
	defer rows.Close()

	records := []Buyer{}
	for rows.Next() {
		var b Buyer
		if err := rows.Scan(&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
			&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.IsDefaultBuyer, &b.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Buyer, error) {
	var b Buyer
	err := r.db.QueryRow(ctx, `SELECT `+buyerColumns+` FROM buyers WHERE id = $1`, id).Scan(
		&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
		&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.IsDefaultBuyer, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Buyer{}, ErrNotFound
	}
	return b, err
}

func (r *repository) Create(ctx context.Context, buyer Buyer) error {
	query := `INSERT INTO buyers (` + buyerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query, buyer.ID, buyer.CompanyName, buyer.Address1, buyer.Address2,
		buyer.Address3, buyer.ContactPerson, buyer.Phone, buyer.Email, buyer.GSTIN, buyer.Notes,
		buyer.IsDefaultBuyer, buyer.CreatedAt)
	if err != nil {
		return fmt.Errorf("buyers: create: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, patch Patch) (Buyer, error) {
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
	if patch.IsDefaultBuyer != nil {
		add("is_default_buyer", *patch.IsDefaultBuyer)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE buyers SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + buyerColumns

	var b Buyer
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.CompanyName, &b.Address1, &b.Address2, &b.Address3,
		&b.ContactPerson, &b.Phone, &b.Email, &b.GSTIN, &b.Notes, &b.IsDefaultBuyer, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Buyer{}, ErrNotFound
	}
	if err != nil {
		return Buyer{}, fmt.Errorf("buyers: update: %w", err)
	}
	return b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buyers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("buyers: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ClearDefaults(ctx context.Context, exceptID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE buyers SET is_default_buyer = FALSE WHERE is_default_buyer AND id <> $1`, exceptID)
	if err != nil {
		return fmt.Errorf("buyers: clear defaults: %w", err)
	}
	return nil
}
