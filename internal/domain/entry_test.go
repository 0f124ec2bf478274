package domain

import "testing"

func TestBucket_Put_LastWriteWins(t *testing.T) {
	t.Parallel()

	b := Bucket{}
	if b.Put(Entry{Name: "bank", Tokens: []string{"a", "river", "side"}}) {
		t.Fatal("first Put should not report a replacement")
	}
	if !b.Put(Entry{Name: "bank", Tokens: []string{"a", "financial", "institution"}}) {
		t.Fatal("second Put should report a replacement")
	}

	got := b["bank"]
	if len(got) != 3 || got[1] != "financial" {
		t.Fatalf("bank = %v, want the later definition", got)
	}
}

func TestBucket_Put_NilTokensBecomeEmpty(t *testing.T) {
	t.Parallel()

	b := Bucket{}
	b.Put(Entry{Name: "x"})
	if b["x"] == nil {
		t.Fatal("tokens should be an empty slice, not nil")
	}
}
