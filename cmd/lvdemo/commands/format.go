package commands

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/exp/constraints"
)

// joinInts renders values space separated.
func joinInts[T constraints.Integer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, " ")
}

// parseInts converts every arg to an int, reporting the first bad one.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "invalid integer argument"), "arg", a)
			return nil, zerr.With(err, "position", strconv.Itoa(i))
		}
		out = append(out, v)
	}
	return out, nil
}
