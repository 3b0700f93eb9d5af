package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

func TestDraftBasics(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	draft := core.NewEmailDraft("bob@example.com", "Re: Hello", "Thanks for reaching out.")
	id, err := stores.Drafts.SaveDraft(ctx, draft)
	if err != nil {
		t.Fatalf("Failed to save draft: %v", err)
	}

	retrieved, err := stores.Drafts.GetDraft(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get draft: %v", err)
	}
	if retrieved.Recipient != draft.Recipient ||
		retrieved.Subject != draft.Subject ||
		retrieved.Body != draft.Body {
		t.Fatalf("Draft fields changed on round trip")
	}
	if !retrieved.CreatedAt.Equal(draft.CreatedAt) || !retrieved.UpdatedAt.Equal(draft.UpdatedAt) {
		t.Fatalf("Draft timestamps changed on round trip")
	}
}

func TestDraftListOrder(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	stale := core.NewEmailDraft("a@example.com", "Old", "old body")
	stale.UpdatedAt = now.Add(-1 * time.Hour)
	fresh := core.NewEmailDraft("b@example.com", "New", "new body")
	fresh.UpdatedAt = now

	for _, draft := range []*core.EmailDraft{stale, fresh} {
		if _, err := stores.Drafts.SaveDraft(ctx, draft); err != nil {
			t.Fatalf("Failed to save draft: %v", err)
		}
	}

	drafts, err := stores.Drafts.ListDrafts(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Failed to list drafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("Expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].Subject != "New" {
		t.Fatalf("Expected most recently updated draft first, got '%s'", drafts[0].Subject)
	}

	page, err := stores.Drafts.ListDrafts(ctx, 1, 5)
	if err != nil {
		t.Fatalf("Failed to list drafts page: %v", err)
	}
	if len(page) != 1 || page[0].Subject != "Old" {
		t.Fatalf("Pagination returned wrong drafts")
	}
}

func TestDraftDelete(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	draft := core.NewEmailDraft("bob@example.com", "Bye", "deleting this")
	id, err := stores.Drafts.SaveDraft(ctx, draft)
	if err != nil {
		t.Fatalf("Failed to save draft: %v", err)
	}

	if err := stores.Drafts.DeleteDraft(ctx, id); err != nil {
		t.Fatalf("Failed to delete draft: %v", err)
	}

	_, err = stores.Drafts.GetDraft(ctx, id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	err = stores.Drafts.DeleteDraft(ctx, id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound deleting twice, got %v", err)
	}
}
