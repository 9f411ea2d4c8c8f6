package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bitfantasy/fmea/internal/fmea/entity"
	"github.com/bitfantasy/fmea/internal/fmea/testutil"
)

func TestFMEARepositoryCreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewFMEARepository(db)
	ctx := context.Background()

	header := &entity.FMEAHeader{
		ProductName: "Bracket",
		FMEANumber:  "F-001",
		Rows: []entity.FMEARow{
			{SortOrder: 0, Item: "支架", Severity: 5, Occurrence: 4, Detection: 10, RPN: 200,
				NewSeverity: 1, NewOccurrence: 1, NewDetection: 1, NewRPN: 1},
			{SortOrder: 1, Item: "螺栓", Severity: 1, Occurrence: 1, Detection: 1, RPN: 1,
				NewSeverity: 1, NewOccurrence: 1, NewDetection: 1, NewRPN: 1},
		},
	}
	if err := repo.Create(ctx, header); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if header.ID < 1 {
		t.Fatalf("Expected assigned id, got %d", header.ID)
	}

	found, err := repo.FindByID(ctx, header.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.ProductName != "Bracket" {
		t.Errorf("Expected ProductName 'Bracket', got %q", found.ProductName)
	}
	if len(found.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(found.Rows))
	}
	// 按 sort_order 返回
	if found.Rows[0].Item != "支架" || found.Rows[1].Item != "螺栓" {
		t.Errorf("Rows out of order: %q, %q", found.Rows[0].Item, found.Rows[1].Item)
	}
}

func TestFMEARepositoryNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewFMEARepository(db)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := repo.FindLatest(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on empty table, got %v", err)
	}
}

func TestFMEARepositoryFindLatestAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewFMEARepository(db)
	ctx := context.Background()

	for _, name := range []string{"Bracket", "Housing"} {
		header := &entity.FMEAHeader{
			ProductName: name,
			Rows:        []entity.FMEARow{{Severity: 1, Occurrence: 1, Detection: 1, RPN: 1, NewSeverity: 1, NewOccurrence: 1, NewDetection: 1, NewRPN: 1}},
		}
		if err := repo.Create(ctx, header); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	latest, err := repo.FindLatest(ctx)
	if err != nil {
		t.Fatalf("FindLatest failed: %v", err)
	}
	if latest.ProductName != "Housing" {
		t.Errorf("Expected latest 'Housing', got %q", latest.ProductName)
	}

	headers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(headers))
	}
	if headers[0].ProductName != "Housing" || headers[1].ProductName != "Bracket" {
		t.Errorf("Expected id-descending order, got %q, %q", headers[0].ProductName, headers[1].ProductName)
	}
}
