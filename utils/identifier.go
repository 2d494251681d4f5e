package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CompanyInitials derives the tenant prefix from the display name:
// the uppercased first letter of each whitespace-separated word, so
// "Web Blaze" becomes "WB".
func CompanyInitials(companyName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(companyName) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NumericSuffix extracts the trailing integer of an identifier like
// "WB-TSK-012". The second return is false when the id has no numeric
// tail.
func NumericSuffix(id string) (int64, bool) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(id[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxNumericSuffix scans identifiers for the highest trailing integer.
// Comparison is numeric, not lexicographic, so "X-10" outranks "X-2".
func MaxNumericSuffix(ids []string) int64 {
	var max int64
	for _, id := range ids {
		if n, ok := NumericSuffix(id); ok && n > max {
			max = n
		}
	}
	return max
}

// PaddedID formats zero-padded identifiers like "WS-001" and
// "WB-TSK-001".
func PaddedID(prefix string, n int64) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}
