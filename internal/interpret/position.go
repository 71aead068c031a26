package interpret

// #region imports
import (
	"regexp"
	"strconv"
	"strings"
)

// #endregion

// #region tables

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// positionPatterns match "the 4th letter is 'k'", "fourth letter of the
// password is F", "letter 5 is e", "position 3 is 'd'". Quoted forms first.
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th)\s+letter\s+(?:of\s+the\s+password\s+)?is\s+['"]([a-zA-Z])['"]`),
	regexp.MustCompile(`(?i)(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s+letter\s+(?:of\s+the\s+password\s+)?is\s+['"]([a-zA-Z])['"]`),
	regexp.MustCompile(`(?i)letter\s+(\d+)\s+is\s+['"]?([a-zA-Z])['"]?(?:[^a-zA-Z]|$)`),
	regexp.MustCompile(`(?i)position\s+(\d+)\s+is\s+['"]?([a-zA-Z])['"]?(?:[^a-zA-Z]|$)`),
	regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th)\s+letter\s+(?:of\s+the\s+password\s+)?is\s+([a-zA-Z])(?:[^a-zA-Z]|$)`),
	regexp.MustCompile(`(?i)(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s+letter\s+(?:of\s+the\s+password\s+)?is\s+([a-zA-Z])(?:[^a-zA-Z]|$)`),
}

// #endregion

// #region extract

// extractPinned finds a single pinned-position clue: an ordinal (numeric or
// spelled) next to "letter ... is X".
func extractPinned(answer string) (int, byte, bool) {
	for _, re := range positionPatterns {
		m := re.FindStringSubmatch(answer)
		if m == nil {
			continue
		}
		pos := ordinalToInt(m[1])
		if pos < 1 {
			continue
		}
		ch := strings.ToLower(m[2])[0]
		return pos, ch, true
	}
	return 0, 0, false
}

func ordinalToInt(s string) int {
	s = strings.ToLower(s)
	if n, ok := ordinalWords[s]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// #endregion
