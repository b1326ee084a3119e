package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/bistro-api/internal/domain"
)

func TestCartQuantityValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.carts.Add(ctx, &domain.CartEntry{Email: "a@b.com", Quantity: -1}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Add(-1) error = %v, want ErrValidation", err)
	}

	item := f.addMenuItem(t, "Caesar", 10)
	entry := &domain.CartEntry{Email: "a@b.com", MenuID: item.ID.Hex()}
	if err := f.carts.Add(ctx, entry); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if entry.Quantity != 1 {
		t.Errorf("default quantity = %d, want 1", entry.Quantity)
	}

	tests := []struct {
		quantity int
		wantErr  error
	}{
		{3, nil},
		{0, nil},
		{-2, domain.ErrValidation},
	}
	for _, tt := range tests {
		got, err := f.carts.UpdateQuantity(ctx, entry.ID, tt.quantity)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("UpdateQuantity(%d) error = %v, want %v", tt.quantity, err, tt.wantErr)
			continue
		}
		if err == nil && got.Quantity != tt.quantity {
			t.Errorf("UpdateQuantity(%d) quantity = %d", tt.quantity, got.Quantity)
		}
	}
}

func TestCartByEmailIsInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.addCart(t, "a@b.com", "Caesar", 10)
	f.addCart(t, "other@b.com", "Soup", 4)

	if entries, _ := f.carts.ListByEmail(ctx, "a@b.com"); len(entries) != 1 {
		t.Fatalf("cart = %d, want 1", len(entries))
	}

	f.addCart(t, "a@b.com", "Greek", 9)
	if entries, _ := f.carts.ListByEmail(ctx, "a@b.com"); len(entries) != 2 {
		t.Errorf("cart after add = %d, want 2", len(entries))
	}

	f.carts.UpdateQuantity(ctx, first.ID, 5)
	entries, _ := f.carts.ListByEmail(ctx, "a@b.com")
	for _, e := range entries {
		if e.ID == first.ID && e.Quantity != 5 {
			t.Errorf("quantity after update = %d, want 5", e.Quantity)
		}
	}

	if err := f.carts.Remove(ctx, first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if entries, _ := f.carts.ListByEmail(ctx, "a@b.com"); len(entries) != 1 {
		t.Errorf("cart after remove = %d, want 1", len(entries))
	}
	if all, _ := f.carts.List(ctx); len(all) != 2 {
		t.Errorf("all carts = %d, want 2", len(all))
	}
}

func TestCartAddCopiesMenuItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.addMenuItem(t, "Caesar", 10)

	entry := &domain.CartEntry{
		Email:    "a@b.com",
		MenuID:   item.ID.Hex(),
		Title:    "Free lunch",
		Category: "gifts",
		Price:    0.01,
	}
	if err := f.carts.Add(ctx, entry); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if entry.Title != "Caesar" || entry.Category != "salad" || entry.Price != 10 {
		t.Errorf("entry = %+v, want the menu's title, category and price", entry)
	}

	stored, err := f.store.Carts().GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Price != 10 {
		t.Errorf("stored price = %v, want 10", stored.Price)
	}

	tests := []struct {
		name    string
		menuID  string
		wantErr error
	}{
		{"malformed id", "m1", domain.ErrInvalidID},
		{"unknown item", "64b7f0c2e4b0a1a2b3c4d5e6", domain.ErrNotFound},
	}
	for _, tt := range tests {
		err := f.carts.Add(ctx, &domain.CartEntry{Email: "a@b.com", MenuID: tt.menuID, Price: 1})
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	if all, _ := f.carts.List(ctx); len(all) != 1 {
		t.Errorf("carts = %d, want 1", len(all))
	}
}
