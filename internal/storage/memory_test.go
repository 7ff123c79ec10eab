package storage

import (
	"errors"
	"testing"
)

func TestMemoryState(t *testing.T) {
	testStateStore(t, NewMemory())
}

func TestMemoryScores(t *testing.T) {
	testScoreBoard(t, NewMemory())
}

func TestWithPrefix(t *testing.T) {
	mem := NewMemory()
	alice := WithPrefix(mem, "alice")
	bob := WithPrefix(mem, "bob")

	testStateStore(t, alice)

	if err := alice.Set("2048:bestScore", "64"); err != nil {
		t.Fatal(err)
	}
	if _, err := bob.Get("2048:bestScore"); !errors.Is(err, ErrNotFound) {
		t.Errorf("prefixes should isolate keys, got %v", err)
	}
	if v, _ := mem.Get("alice:2048:bestScore"); v != "64" {
		t.Errorf("underlying key = %q, expected 64", v)
	}

	if WithPrefix(mem, "") != StateStore(mem) {
		t.Error("empty prefix should return the inner store")
	}
}
