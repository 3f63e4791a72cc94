// Package springs counts the ways damaged springs can be arranged to match a
// condition record and its list of contiguous damaged groups.
package springs

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped by every TokenError.
var ErrMalformed = errors.New("malformed condition record")

// Condition is the known state of one spring.
type Condition uint8

const (
	Operational Condition = iota // '.'
	Damaged                      // '#'
	Unknown                      // '?'
)

func (c Condition) String() string {
	switch c {
	case Operational:
		return "."
	case Damaged:
		return "#"
	default:
		return "?"
	}
}

// TokenError names the part of a line that could not be parsed.
type TokenError struct {
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %s: %q", ErrMalformed, e.Reason, e.Token)
}

func (e *TokenError) Unwrap() error { return ErrMalformed }

// Entry is one row of the condition records.
type Entry struct {
	Record []Condition
	Groups []int
}

// ParseEntry reads a line such as "???.### 1,1,3".
func ParseEntry(line string) (Entry, error) {
	record, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Entry{}, &TokenError{Token: line, Reason: "missing group list"}
	}
	var e Entry
	for _, r := range record {
		switch r {
		case '.':
			e.Record = append(e.Record, Operational)
		case '#':
			e.Record = append(e.Record, Damaged)
		case '?':
			e.Record = append(e.Record, Unknown)
		default:
			return Entry{}, &TokenError{Token: string(r), Reason: "unknown condition"}
		}
	}
	for _, f := range strings.Split(strings.TrimSpace(groups), ",") {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return Entry{}, &TokenError{Token: f, Reason: "group size must be a positive integer"}
		}
		e.Groups = append(e.Groups, n)
	}
	return e, nil
}

func (e Entry) String() string {
	var b strings.Builder
	for _, c := range e.Record {
		b.WriteString(c.String())
	}
	b.WriteByte(' ')
	for i, g := range e.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(g))
	}
	return b.String()
}

// Unfold joins n copies of the record with unknown springs between them and
// repeats the group list n times.
func (e Entry) Unfold(n int) Entry {
	var out Entry
	for i := range n {
		if i > 0 {
			out.Record = append(out.Record, Unknown)
		}
		out.Record = append(out.Record, e.Record...)
		out.Groups = append(out.Groups, e.Groups...)
	}
	return out
}

// Arrangements counts the assignments of unknown springs that produce exactly
// the entry's damaged groups, in order.
func (e Entry) Arrangements() int {
	rec, groups := e.Record, e.Groups
	n := len(rec)
	// run[i] is the number of consecutive springs from i that could be damaged.
	run := make([]int, n+1)
	// damagedAfter[i] reports whether any spring at or after i is known damaged.
	damagedAfter := make([]bool, n+1)
	for i := n - 1; i >= 0; i-- {
		if rec[i] != Operational {
			run[i] = run[i+1] + 1
		}
		damagedAfter[i] = damagedAfter[i+1] || rec[i] == Damaged
	}

	// memo[i*(len(groups)+1)+g] caches count(i, g); -1 is unset.
	stride := len(groups) + 1
	memo := slices.Repeat([]int{-1}, (n+1)*stride)

	var count func(i, g int) int
	count = func(i, g int) int {
		if g == len(groups) {
			if damagedAfter[min(i, n)] {
				return 0
			}
			return 1
		}
		if i >= n {
			return 0
		}
		key := i*stride + g
		if memo[key] >= 0 {
			return memo[key]
		}
		total := 0
		if rec[i] != Damaged {
			total += count(i+1, g)
		}
		if size := groups[g]; rec[i] != Operational && run[i] >= size {
			end := i + size
			if end == n {
				total += count(end, g+1)
			} else if rec[end] != Damaged {
				total += count(end+1, g+1)
			}
		}
		memo[key] = total
		return total
	}
	return count(0, 0)
}
