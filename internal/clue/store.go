// Package clue holds the evidence accumulated about one target word.
// The store is pure evidence, not a solution: it knows letter positions,
// never candidate words.
package clue

// #region store-struct

// Store is the mutable state of one puzzle-solving attempt. One value per
// slot; a later write for the same slot replaces the earlier one, except the
// last-letter refinement merge handled in Apply.
type Store struct {
	letterCount int // 0 = unknown

	prefix       string
	prefixBackup string
	suffix       string
	suffixBackup string

	pinned map[int]byte // 1-indexed position → letter
}

// NewStore returns an empty store for a fresh attempt.
func NewStore() *Store {
	return &Store{pinned: make(map[int]byte)}
}

// #endregion

// #region apply

// Apply merges one update into the store. Applying the same update twice
// leaves the store identical to applying it once.
func (s *Store) Apply(u Update) {
	switch u.Kind {
	case KindLetterCount:
		if u.Count > 0 {
			s.letterCount = u.Count
			s.prunePinned()
		}
	case KindPrefix:
		if u.Letters == "" {
			return
		}
		if u.Source == SourceBackup {
			s.prefixBackup = u.Letters
		} else {
			s.prefix = u.Letters
		}
	case KindSuffix:
		if u.Letters == "" {
			return
		}
		if u.RefineLast {
			s.refineLastLetter(u.Letters[len(u.Letters)-1])
			return
		}
		if u.Source == SourceBackup {
			s.suffixBackup = u.Letters
		} else {
			s.suffix = u.Letters
		}
	case KindPinned:
		if u.Pos < 1 {
			return
		}
		if s.letterCount > 0 && u.Pos > s.letterCount {
			return // out of range for a known length
		}
		s.pinned[u.Pos] = u.Char
	}
}

// ApplyAll merges a batch of updates in order.
func (s *Store) ApplyAll(updates []Update) {
	for _, u := range updates {
		s.Apply(u)
	}
}

// #endregion

// #region refine

// refineLastLetter replaces only the final character of the effective suffix,
// preserving any longer suffix already known. With no suffix at all the
// single character becomes the suffix.
func (s *Store) refineLastLetter(ch byte) {
	switch {
	case s.suffixBackup != "":
		s.suffixBackup = s.suffixBackup[:len(s.suffixBackup)-1] + string(ch)
	case s.suffix != "":
		s.suffix = s.suffix[:len(s.suffix)-1] + string(ch)
	default:
		s.suffix = string(ch)
	}
}

// #endregion

// #region accessors

// LetterCount returns the known word length, 0 if unknown.
func (s *Store) LetterCount() int { return s.letterCount }

// Prefix returns the effective prefix, preferring the backup value.
func (s *Store) Prefix() string {
	if s.prefixBackup != "" {
		return s.prefixBackup
	}
	return s.prefix
}

// PrefixValues returns every known prefix value, backup first. Both slots
// matter to reconstruction: a four-letter primary still outranks a shorter
// backup for the positions it covers.
func (s *Store) PrefixValues() []string {
	var out []string
	if s.prefixBackup != "" {
		out = append(out, s.prefixBackup)
	}
	if s.prefix != "" && s.prefix != s.prefixBackup {
		out = append(out, s.prefix)
	}
	return out
}

// Suffix returns the effective suffix, preferring the backup value.
func (s *Store) Suffix() string {
	if s.suffixBackup != "" {
		return s.suffixBackup
	}
	return s.suffix
}

// Pinned returns a copy of the individually pinned positions. Positions
// beyond a known letter count are excluded.
func (s *Store) Pinned() map[int]byte {
	out := make(map[int]byte, len(s.pinned))
	for pos, ch := range s.pinned {
		if s.letterCount > 0 && pos > s.letterCount {
			continue
		}
		out[pos] = ch
	}
	return out
}

// PinnedAt returns the pinned letter at pos, if any.
func (s *Store) PinnedAt(pos int) (byte, bool) {
	if s.letterCount > 0 && pos > s.letterCount {
		return 0, false
	}
	ch, ok := s.pinned[pos]
	return ch, ok
}

// Empty reports whether no evidence has been recorded yet.
func (s *Store) Empty() bool {
	return s.letterCount == 0 && s.prefix == "" && s.prefixBackup == "" &&
		s.suffix == "" && s.suffixBackup == "" && len(s.pinned) == 0
}

// #endregion

// #region clone

// Clone returns an independent deep copy. The backup phase works on a clone
// so that acquisition-phase evidence survives a failed guess.
func (s *Store) Clone() *Store {
	c := &Store{
		letterCount:  s.letterCount,
		prefix:       s.prefix,
		prefixBackup: s.prefixBackup,
		suffix:       s.suffix,
		suffixBackup: s.suffixBackup,
		pinned:       make(map[int]byte, len(s.pinned)),
	}
	for pos, ch := range s.pinned {
		c.pinned[pos] = ch
	}
	return c
}

// WithLetterCount returns a clone with the length overridden. Used by the
// length-variation fallback; the receiver is not modified.
func (s *Store) WithLetterCount(n int) *Store {
	c := s.Clone()
	c.letterCount = n
	c.prunePinned()
	return c
}

// #endregion

// #region prune

func (s *Store) prunePinned() {
	if s.letterCount == 0 {
		return
	}
	for pos := range s.pinned {
		if pos > s.letterCount {
			delete(s.pinned, pos)
		}
	}
}

// #endregion
