package game

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseLeaves parses a list of integer utilities separated by commas and/or spaces.
func ParseLeaves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, errors.New("no leaf values")
	}
	leaves := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "leaf %d", i)
		}
		leaves = append(leaves, v)
	}
	return leaves, nil
}

// FormatLeaves renders leaves as [3, 5, 2].
func FormatLeaves(leaves []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range leaves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
