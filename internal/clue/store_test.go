package clue

import (
	"testing"
)

func TestApplyIdempotent(t *testing.T) {
	tests := []struct {
		name string
		u    Update
	}{
		{"letter-count", Update{Kind: KindLetterCount, Count: 6}},
		{"prefix", Update{Kind: KindPrefix, Letters: "zodi", Source: SourcePrimary}},
		{"suffix", Update{Kind: KindSuffix, Letters: "ac", Source: SourcePrimary}},
		{"pinned", Update{Kind: KindPinned, Pos: 4, Char: 'k'}},
		{"refine-last", Update{Kind: KindSuffix, Letters: "t", Source: SourceBackup, RefineLast: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := NewStore()
			once.Apply(tt.u)
			twice := NewStore()
			twice.Apply(tt.u)
			twice.Apply(tt.u)

			if once.LetterCount() != twice.LetterCount() {
				t.Errorf("letter count: once %d, twice %d", once.LetterCount(), twice.LetterCount())
			}
			if once.Prefix() != twice.Prefix() {
				t.Errorf("prefix: once %q, twice %q", once.Prefix(), twice.Prefix())
			}
			if once.Suffix() != twice.Suffix() {
				t.Errorf("suffix: once %q, twice %q", once.Suffix(), twice.Suffix())
			}
		})
	}
}

func TestApplyLastWriteWins(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindPrefix, Letters: "zod", Source: SourcePrimary})
	s.Apply(Update{Kind: KindPrefix, Letters: "zodi", Source: SourcePrimary})
	if got := s.Prefix(); got != "zodi" {
		t.Errorf("prefix: got %q, want %q", got, "zodi")
	}

	s.Apply(Update{Kind: KindPinned, Pos: 2, Char: 'x'})
	s.Apply(Update{Kind: KindPinned, Pos: 2, Char: 'o'})
	if ch, ok := s.PinnedAt(2); !ok || ch != 'o' {
		t.Errorf("pinned[2]: got %q %v, want 'o' true", ch, ok)
	}
}

func TestApplyBackupPreferred(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindPrefix, Letters: "zod", Source: SourcePrimary})
	s.Apply(Update{Kind: KindPrefix, Letters: "zodi", Source: SourceBackup})
	if got := s.Prefix(); got != "zodi" {
		t.Errorf("prefix: got %q, want backup %q", got, "zodi")
	}

	s.Apply(Update{Kind: KindSuffix, Letters: "iac", Source: SourceBackup})
	s.Apply(Update{Kind: KindSuffix, Letters: "ac", Source: SourcePrimary})
	if got := s.Suffix(); got != "iac" {
		t.Errorf("suffix: got %q, want backup %q", got, "iac")
	}
}

func TestPrefixValues(t *testing.T) {
	s := NewStore()
	if got := s.PrefixValues(); len(got) != 0 {
		t.Errorf("empty store: got %v", got)
	}

	s.Apply(Update{Kind: KindPrefix, Letters: "zodi", Source: SourcePrimary})
	s.Apply(Update{Kind: KindPrefix, Letters: "zod", Source: SourceBackup})
	got := s.PrefixValues()
	if len(got) != 2 || got[0] != "zod" || got[1] != "zodi" {
		t.Errorf("got %v, want backup first [zod zodi]", got)
	}

	// Identical values collapse to one entry.
	s.Apply(Update{Kind: KindPrefix, Letters: "zodi", Source: SourceBackup})
	if got := s.PrefixValues(); len(got) != 1 || got[0] != "zodi" {
		t.Errorf("got %v, want [zodi]", got)
	}
}

func TestRefineLastLetter(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		refine  string
		want    string
	}{
		// Same final letter: suffix unchanged.
		{"same-letter", "et", "t", "et"},
		// Differing final letter: only the last character is replaced.
		{"different-letter", "et", "d", "ed"},
		// Multi-letter refinement uses only its own final character.
		{"multi-letter-refine", "ing", "gg", "ing"},
		// No prior suffix: the character becomes the suffix.
		{"no-prior-suffix", "", "t", "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.initial != "" {
				s.Apply(Update{Kind: KindSuffix, Letters: tt.initial, Source: SourcePrimary})
			}
			s.Apply(Update{Kind: KindSuffix, Letters: tt.refine, Source: SourceBackup, RefineLast: true})
			if got := s.Suffix(); got != tt.want {
				t.Errorf("suffix: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRefineLastPrefersBackupSlot(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindSuffix, Letters: "ac", Source: SourcePrimary})
	s.Apply(Update{Kind: KindSuffix, Letters: "iac", Source: SourceBackup})
	s.Apply(Update{Kind: KindSuffix, Letters: "k", Source: SourceBackup, RefineLast: true})
	if got := s.Suffix(); got != "iak" {
		t.Errorf("suffix: got %q, want %q", got, "iak")
	}
}

func TestPinnedBounds(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindLetterCount, Count: 4})

	// Beyond the known length: ignored.
	s.Apply(Update{Kind: KindPinned, Pos: 9, Char: 'z'})
	if _, ok := s.PinnedAt(9); ok {
		t.Error("pin beyond letter count should be ignored")
	}

	// Position zero: ignored.
	s.Apply(Update{Kind: KindPinned, Pos: 0, Char: 'z'})
	if len(s.Pinned()) != 0 {
		t.Errorf("pinned: got %d entries, want 0", len(s.Pinned()))
	}

	// In range: kept.
	s.Apply(Update{Kind: KindPinned, Pos: 4, Char: 'k'})
	if ch, ok := s.PinnedAt(4); !ok || ch != 'k' {
		t.Errorf("pinned[4]: got %q %v, want 'k' true", ch, ok)
	}
}

func TestLetterCountPrunesPins(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindPinned, Pos: 7, Char: 'x'})
	s.Apply(Update{Kind: KindPinned, Pos: 3, Char: 'r'})
	s.Apply(Update{Kind: KindLetterCount, Count: 5})

	if _, ok := s.PinnedAt(7); ok {
		t.Error("pin at 7 should be pruned after count drops to 5")
	}
	if ch, ok := s.PinnedAt(3); !ok || ch != 'r' {
		t.Errorf("pinned[3]: got %q %v, want 'r' true", ch, ok)
	}
}

func TestCloneIndependence(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindLetterCount, Count: 6})
	s.Apply(Update{Kind: KindPrefix, Letters: "zod", Source: SourcePrimary})
	s.Apply(Update{Kind: KindPinned, Pos: 5, Char: 'a'})

	c := s.Clone()
	c.Apply(Update{Kind: KindPrefix, Letters: "xyz", Source: SourcePrimary})
	c.Apply(Update{Kind: KindPinned, Pos: 5, Char: 'q'})

	if got := s.Prefix(); got != "zod" {
		t.Errorf("original prefix mutated: got %q", got)
	}
	if ch, _ := s.PinnedAt(5); ch != 'a' {
		t.Errorf("original pin mutated: got %q", ch)
	}
	if got := c.Prefix(); got != "xyz" {
		t.Errorf("clone prefix: got %q, want %q", got, "xyz")
	}
}

func TestWithLetterCount(t *testing.T) {
	s := NewStore()
	s.Apply(Update{Kind: KindLetterCount, Count: 7})
	s.Apply(Update{Kind: KindPinned, Pos: 7, Char: 'y'})
	s.Apply(Update{Kind: KindPinned, Pos: 2, Char: 'e'})

	shorter := s.WithLetterCount(6)
	if got := shorter.LetterCount(); got != 6 {
		t.Errorf("letter count: got %d, want 6", got)
	}
	if _, ok := shorter.PinnedAt(7); ok {
		t.Error("pin at 7 should be pruned in the 6-letter variant")
	}
	if got := s.LetterCount(); got != 7 {
		t.Errorf("receiver modified: got %d, want 7", got)
	}
	if _, ok := s.PinnedAt(7); !ok {
		t.Error("receiver pin at 7 should survive")
	}
}

func TestEmpty(t *testing.T) {
	s := NewStore()
	if !s.Empty() {
		t.Error("fresh store should be empty")
	}
	s.Apply(Update{Kind: KindLetterCount, Count: 6})
	if s.Empty() {
		t.Error("store with a letter count should not be empty")
	}
}
