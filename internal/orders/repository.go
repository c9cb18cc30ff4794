package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repository struct {
	db *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed Repository. Nested document
// fields are stored as JSONB.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const poColumns = `id, doc_type, po_number, po_date, delivery_date, delivery_terms, payment_terms,
	currency, bill_to, buyer, supplier, order_lines, size_colour_breakdown,
	packing_instructions, other_terms, authorisation, logo_url, created_at, updated_at`

func (r *repository) Insert(ctx context.Context, po PurchaseOrder) error {
	query := `INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	args, err := insertArgs(po)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		n := strconv.Itoa(argCount)
		query += ` AND (po_number ILIKE $` + n + ` OR supplier->>'company' ILIKE $` + n + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Supplier != "" {
		argCount++
		query += ` AND supplier->>'company' ILIKE $` + strconv.Itoa(argCount)
		args = append(args, "%"+filters.Supplier+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	defer rows.Close()

	pos := []PurchaseOrder{}
	for rows.Next() {
		po, err := scanPO(rows)
		if err != nil {
			return nil, err
		}
		pos = append(pos, po)
	}
	return pos, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	po, err := scanPO(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return PurchaseOrder{}, ErrNotFound
	}
	return po, err
}

func (r *repository) Update(ctx context.Context, id string, patch UpdateInput, updatedAt time.Time) (PurchaseOrder, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	addJSON := func(column string, value interface{}) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("orders: marshal %s: %w", column, err)
		}
		add(column, data)
		return nil
	}

	if patch.PONumber != nil {
		add("po_number", *patch.PONumber)
	}
	if patch.PODate != nil {
		add("po_date", *patch.PODate)
	}
	if patch.DeliveryDate != nil {
		add("delivery_date", *patch.DeliveryDate)
	}
	if patch.DeliveryTerms != nil {
		add("delivery_terms", *patch.DeliveryTerms)
	}
	if patch.PaymentTerms != nil {
		add("payment_terms", *patch.PaymentTerms)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.LogoURL != nil {
		add("logo_url", *patch.LogoURL)
	}
	jsonPatches := []struct {
		column string
		value  interface{}
		set    bool
	}{
		{"bill_to", patch.BillTo, patch.BillTo != nil},
		{"buyer", patch.Buyer, patch.Buyer != nil},
		{"supplier", patch.Supplier, patch.Supplier != nil},
		{"order_lines", patch.OrderLines, patch.OrderLines != nil},
		{"size_colour_breakdown", patch.SizeColourBreakdown, patch.SizeColourBreakdown != nil},
		{"packing_instructions", patch.PackingInstructions, patch.PackingInstructions != nil},
		{"other_terms", patch.OtherTerms, patch.OtherTerms != nil},
		{"authorisation", patch.Authorisation, patch.Authorisation != nil},
	}
	for _, jp := range jsonPatches {
		if !jp.set {
			continue
		}
		if err := addJSON(jp.column, jp.value); err != nil {
			return PurchaseOrder{}, err
		}
	}
	add("updated_at", updatedAt)

	args = append(args, id)
	query := `UPDATE purchase_orders SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + poColumns

	po, err := scanPO(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return PurchaseOrder{}, ErrNotFound
	}
	if err != nil {
		return PurchaseOrder{}, fmt.Errorf("orders: update: %w", err)
	}
	return po, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("orders: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertArgs(po PurchaseOrder) ([]interface{}, error) {
	jsonFields := map[string]interface{}{
		"bill_to":               po.BillTo,
		"buyer":                 po.Buyer,
		"supplier":              po.Supplier,
		"order_lines":           po.OrderLines,
		"size_colour_breakdown": po.SizeColourBreakdown,
		"packing_instructions":  po.PackingInstructions,
		"other_terms":           po.OtherTerms,
		"authorisation":         po.Authorisation,
	}
	encoded := make(map[string][]byte, len(jsonFields))
	for name, value := range jsonFields {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("orders: marshal %s: %w", name, err)
		}
		encoded[name] = data
	}
	return []interface{}{
		po.ID, string(po.DocType), po.PONumber, po.PODate, po.DeliveryDate, po.DeliveryTerms,
		po.PaymentTerms, po.Currency, encoded["bill_to"], encoded["buyer"], encoded["supplier"],
		encoded["order_lines"], encoded["size_colour_breakdown"], encoded["packing_instructions"],
		encoded["other_terms"], encoded["authorisation"], nullable(po.LogoURL), po.CreatedAt, po.UpdatedAt,
	}, nil
}

func scanPO(row pgx.Row) (PurchaseOrder, error) {
	var (
		po       PurchaseOrder
		docType  string
		logoURL  *string
		billTo   []byte
		buyer    []byte
		supplier []byte
		lines    []byte
		bd       []byte
		packing  []byte
		terms    []byte
		auth     []byte
	)
	err := row.Scan(&po.ID, &docType, &po.PONumber, &po.PODate, &po.DeliveryDate, &po.DeliveryTerms,
		&po.PaymentTerms, &po.Currency, &billTo, &buyer, &supplier, &lines, &bd,
		&packing, &terms, &auth, &logoURL, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		return PurchaseOrder{}, err
	}
	po.DocType = DocType(docType)
	if logoURL != nil {
		po.LogoURL = *logoURL
	}
	for _, field := range []struct {
		name string
		data []byte
		dst  interface{}
	}{
		{"bill_to", billTo, &po.BillTo},
		{"buyer", buyer, &po.Buyer},
		{"supplier", supplier, &po.Supplier},
		{"order_lines", lines, &po.OrderLines},
		{"size_colour_breakdown", bd, &po.SizeColourBreakdown},
		{"packing_instructions", packing, &po.PackingInstructions},
		{"other_terms", terms, &po.OtherTerms},
		{"authorisation", auth, &po.Authorisation},
	} {
		if len(field.data) == 0 {
			continue
		}
		if err := json.Unmarshal(field.data, field.dst); err != nil {
			return PurchaseOrder{}, fmt.Errorf("orders: unmarshal %s: %w", field.name, err)
		}
	}
	return po, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
