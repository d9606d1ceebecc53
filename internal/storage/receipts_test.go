package storage

import (
	"os"
	"strings"
	"testing"
)

func TestSaveDerivesNameFromExpenseID(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save(42, "scan of receipt.PDF", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "expense_42.pdf" {
		t.Fatalf("stored name = %q, want expense_42.pdf", name)
	}

	p, err := store.Path(name)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("content = %q", data)
	}
}

func TestSaveDropsSuspiciousExtension(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save(7, "../../etc/passwd.p df", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "expense_7" {
		t.Fatalf("stored name = %q, want expense_7", name)
	}
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Remove("expense_999.pdf"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}

	name, err := store.Save(1, "a.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Remove(name); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Exists(name) {
		t.Fatalf("file still present after remove")
	}
}
