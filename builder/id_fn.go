package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// NameFn turns the zero-based position of a generated member into its
// nodeName. It must be deterministic; a panic means the scheme was asked for
// more names than it can produce.
type NameFn func(idx int) string

// DefaultNameFn yields n0, n1, n2 and so on.
func DefaultNameFn(idx int) string {
	return "n" + strconv.Itoa(idx)
}

// SymbolNameFn yields single letters A..Z and panics past the 26th member.
func SymbolNameFn(idx int) string {
	if idx < 0 || idx >= 26 {
		panic(fmt.Sprintf("builder: symbol name out of range: %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnNameFn numbers like spreadsheet columns: A..Z, AA, AB, ...
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: negative column index %d", idx))
	}
	var b strings.Builder
	letters := make([]byte, 0, 4)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		letters = append(letters, byte('A'+(n-1)%26))
	}
	for k := len(letters) - 1; k >= 0; k-- {
		b.WriteByte(letters[k])
	}

	return b.String()
}

// PrefixNameFn yields prefix0, prefix1, ... such as host0, host1.
func PrefixNameFn(prefix string) NameFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: negative name index %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixNames names members prefix0, prefix1, ...
func WithPrefixNames(prefix string) BuilderOption {
	return WithNameScheme(PrefixNameFn(prefix))
}

// WithSymbolNames names members A..Z.
func WithSymbolNames() BuilderOption {
	return WithNameScheme(SymbolNameFn)
}

// WithExcelColumnNames names members A, B, ..., Z, AA, AB, ...
func WithExcelColumnNames() BuilderOption {
	return WithNameScheme(ExcelColumnNameFn)
}
