package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hoperaise/internal/domain"
	"hoperaise/internal/sqlinline"
)

func TestCreateCommitsIncrementAndInsertTogether(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	sql := &fakeSQL{rowByQuery: map[string]fakeRow{
		sqlinline.QAddToCampaignTotal: {vals: []any{1250.0}},
		sqlinline.QInsertDonation:     {vals: []any{int64(7), createdAt}},
	}}
	tx := &fakeTx{sql: sql}
	r := NewDonationRepository(sql, &fakeTxBeginner{tx: tx})

	created, err := r.Create(context.Background(), &domain.Donation{
		DonorID:    1,
		CampaignID: 2,
		Amount:     250.0,
		Message:    "Good luck",
		Donor:      &domain.Donor{ID: 1, Name: "Asha"},
		Campaign:   &domain.Campaign{ID: 2, Title: "Clean Water", CollectedAmount: 1000.0},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("ID mismatch: got %d want 7", created.ID)
	}
	if !created.CreatedAt.Equal(createdAt) {
		t.Fatalf("CreatedAt mismatch: got %v", created.CreatedAt)
	}
	if created.Campaign.CollectedAmount != 1250.0 {
		t.Fatalf("campaign total mismatch: got %v want 1250", created.Campaign.CollectedAmount)
	}
	if !tx.committed {
		t.Fatal("expected transaction commit")
	}
	if tx.rolledBack {
		t.Fatal("unexpected rollback after commit")
	}
}

func TestCreateUnknownCampaignRollsBack(t *testing.T) {
	sql := &fakeSQL{rowByQuery: map[string]fakeRow{
		sqlinline.QAddToCampaignTotal: {err: pgx.ErrNoRows},
	}}
	tx := &fakeTx{sql: sql}
	r := NewDonationRepository(sql, &fakeTxBeginner{tx: tx})

	_, err := r.Create(context.Background(), &domain.Donation{DonorID: 1, CampaignID: 99, Amount: 50})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tx.committed {
		t.Fatal("unexpected commit")
	}
	if !tx.rolledBack {
		t.Fatal("expected rollback")
	}
	for _, q := range sql.queries {
		if q == sqlinline.QInsertDonation {
			t.Fatal("donation inserted despite missing campaign")
		}
	}
}

func TestGetByIDMapsNoRowsToNotFound(t *testing.T) {
	sql := &fakeSQL{rowByQuery: map[string]fakeRow{
		sqlinline.QGetDonation: {err: pgx.ErrNoRows},
	}}
	r := NewDonationRepository(sql, &fakeTxBeginner{})

	_, err := r.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByDonorPopulatesAssociations(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	sql := &fakeSQL{rowsByQuery: map[string][][]any{
		sqlinline.QListDonationsByDonor: {{
			int64(7), int64(1), int64(2), 250.0, "Good luck", createdAt,
			"Asha", "asha@example.com", createdAt,
			"Clean Water", "wells", 5000.0, 1250.0, createdAt,
		}},
	}}
	r := NewDonationRepository(sql, &fakeTxBeginner{})

	items, err := r.ListByDonor(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByDonor returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 donation, got %d", len(items))
	}
	donation := items[0]
	if donation.Donor == nil || donation.Donor.ID != 1 || donation.Donor.Name != "Asha" {
		t.Fatalf("donor not populated: %#v", donation.Donor)
	}
	if donation.Campaign == nil || donation.Campaign.ID != 2 || donation.Campaign.Title != "Clean Water" {
		t.Fatalf("campaign not populated: %#v", donation.Campaign)
	}
}

func TestListByDonorEmpty(t *testing.T) {
	sql := &fakeSQL{rowsByQuery: map[string][][]any{}}
	r := NewDonationRepository(sql, &fakeTxBeginner{})

	items, err := r.ListByDonor(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByDonor returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no donations, got %d", len(items))
	}
}

func TestTotalByDonor(t *testing.T) {
	sql := &fakeSQL{rowByQuery: map[string]fakeRow{
		sqlinline.QTotalByDonor: {vals: []any{250.0}},
	}}
	r := NewDonationRepository(sql, &fakeTxBeginner{})

	total, err := r.TotalByDonor(context.Background(), 1)
	if err != nil {
		t.Fatalf("TotalByDonor returned error: %v", err)
	}
	if total != 250.0 {
		t.Fatalf("total mismatch: got %v want 250", total)
	}
}

// --- fakes over the SQLExecutor / TxBeginner seams ---

type fakeRow struct {
	vals []any
	err  error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	return assign(dest, f.vals)
}

type fakeSQL struct {
	rowByQuery  map[string]fakeRow
	rowsByQuery map[string][][]any
	queries     []string
}

func (f *fakeSQL) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, query)
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	f.queries = append(f.queries, query)
	return f.rowByQuery[query]
}

func (f *fakeSQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, query)
	return &fakeRows{vals: f.rowsByQuery[query]}, nil
}

// fakeRows embeds pgx.Rows for interface completeness; only the iteration
// methods are implemented.
type fakeRows struct {
	pgx.Rows
	vals [][]any
	idx  int
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.vals) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.idx == 0 || f.idx > len(f.vals) {
		return pgx.ErrNoRows
	}
	return assign(dest, f.vals[f.idx-1])
}

func (f *fakeRows) Err() error { return nil }

func (f *fakeRows) Close() {}

type fakeTx struct {
	pgx.Tx
	sql        *fakeSQL
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return t.sql.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeTxBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeTxBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan arity mismatch: %d dests, %d values", len(dest), len(vals))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *float64:
			*d = v.(float64)
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("unsupported scan dest %T", dest[i])
		}
	}
	return nil
}
