package cache

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutGet(t *testing.T) {
	c := openTestCache(t)
	key := Key{
		Provider:   "openai",
		Model:      "gpt-4o-mini",
		SourceCode: "egy",
		TargetCode: "tnt",
		SourceText: "𓀀 𓀁",
	}

	if err := c.Put(key, "nfr"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	prediction, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("stored prediction not found")
	}
	if prediction != "nfr" {
		t.Errorf("prediction = %q, want %q", prediction, "nfr")
	}
}

func TestGet_Missing(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get(Key{Provider: "openai", Model: "m", SourceText: "never stored"})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("found a prediction that was never stored")
	}
}

func TestPut_Replaces(t *testing.T) {
	c := openTestCache(t)
	key := Key{Provider: "openai", Model: "m", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀀"}

	if err := c.Put(key, "first"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(key, "second"); err != nil {
		t.Fatal(err)
	}

	prediction, _, err := c.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if prediction != "second" {
		t.Errorf("prediction = %q, want %q", prediction, "second")
	}

	n, err := c.Size()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Size = %d, want 1", n)
	}
}

func TestKeyIsolation(t *testing.T) {
	c := openTestCache(t)
	base := Key{Provider: "openai", Model: "m", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀀"}
	if err := c.Put(base, "nfr"); err != nil {
		t.Fatal(err)
	}

	// Changing any key component must miss.
	variants := []Key{
		{Provider: "gemini", Model: "m", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀀"},
		{Provider: "openai", Model: "other", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀀"},
		{Provider: "openai", Model: "m", SourceCode: "egy", TargetCode: "en", SourceText: "𓀀"},
		{Provider: "openai", Model: "m", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀁"},
	}
	for _, key := range variants {
		if _, ok, err := c.Get(key); err != nil {
			t.Fatal(err)
		} else if ok {
			t.Errorf("key %+v unexpectedly hit", key)
		}
	}
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	key := Key{Provider: "openai", Model: "m", SourceCode: "egy", TargetCode: "tnt", SourceText: "𓀀"}

	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Put(key, "nfr"); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	prediction, ok, err := second.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || prediction != "nfr" {
		t.Errorf("prediction after reopen = %q, %v", prediction, ok)
	}
}
