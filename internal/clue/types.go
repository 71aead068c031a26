package clue

// #region source

// Source distinguishes where a prefix or suffix value came from.
// Backup values are obtained during the backup questioning phase and are
// preferred over primary values at reconstruction time.
type Source string

const (
	SourcePrimary Source = "primary"
	SourceBackup  Source = "backup"
)

// #endregion

// #region kind

// Kind identifies which slot of the store an Update writes.
type Kind string

const (
	KindLetterCount Kind = "letter_count"
	KindPrefix      Kind = "prefix"
	KindSuffix      Kind = "suffix"
	KindPinned      Kind = "pinned"
)

// #endregion

// #region update

// Update is one extracted piece of evidence about the target word.
// Exactly the fields relevant to Kind are set.
type Update struct {
	Kind    Kind
	Count   int    // KindLetterCount
	Letters string // KindPrefix / KindSuffix, already lower-cased
	Source  Source // KindPrefix / KindSuffix
	Pos     int    // KindPinned, 1-indexed
	Char    byte   // KindPinned, lower-cased ASCII letter

	// RefineLast marks a KindSuffix update that replaces only the final
	// character of the existing suffix instead of overwriting it.
	RefineLast bool
}

// #endregion
