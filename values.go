package enums

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// Selection chooses which members the iteration and counting methods cover.
type Selection uint8

const (
	// SelectDistinct covers only canonical members, one per distinct value.
	SelectDistinct Selection = iota

	// SelectAll additionally covers aliases, ordered by value and then by
	// declaration, with the canonical member first among equals.
	SelectAll
)

// String returns the selection's name.
func (s Selection) String() string {
	switch s {
	case SelectDistinct:
		return "Distinct"
	case SelectAll:
		return "All"
	}
	return "Selection(" + strconv.Itoa(int(s)) + ")"
}

func (t *Type[T]) checkSelection(op string, sel Selection) {
	if sel > SelectAll {
		panic(&Error{Op: op, Type: t.name, Err: fmt.Errorf("unknown selection %d", sel)})
	}
}

// Count returns the number of members covered by sel.
func (t *Type[T]) Count(sel Selection) int {
	t.checkSelection("Count", sel)
	n := len(t.members)
	if sel == SelectAll {
		n += len(t.dups)
	}
	return n
}

// Members returns the members covered by sel in value order.
func (t *Type[T]) Members(sel Selection) iter.Seq[Member[T]] {
	t.checkSelection("Members", sel)
	if sel == SelectDistinct {
		return func(yield func(Member[T]) bool) {
			for i := range t.members {
				if !yield(Member[T]{owner: t, data: &t.members[i]}) {
					return
				}
			}
		}
	}
	return func(yield func(Member[T]) bool) {
		i, j := 0, 0
		for i < len(t.members) || j < len(t.dups) {
			var d *memberData[T]
			if i < len(t.members) && (j >= len(t.dups) || t.members[i].value <= t.dups[j].value) {
				d = &t.members[i]
				i++
			} else {
				d = &t.dups[j]
				j++
			}
			if !yield(Member[T]{owner: t, data: d}) {
				return
			}
		}
	}
}

// Names returns the member names covered by sel in value order.
func (t *Type[T]) Names(sel Selection) iter.Seq[string] {
	members := t.Members(sel)
	return func(yield func(string) bool) {
		for m := range members {
			if !yield(m.Name()) {
				return
			}
		}
	}
}

// Values returns the member values covered by sel in value order. With
// SelectAll a value appears once per member declared with it.
func (t *Type[T]) Values(sel Selection) iter.Seq[T] {
	members := t.Members(sel)
	return func(yield func(T) bool) {
		for m := range members {
			if !yield(m.Value()) {
				return
			}
		}
	}
}

// AppendMembers appends the members covered by sel to dst, growing it at
// most once, and returns the extended slice.
func (t *Type[T]) AppendMembers(dst []Member[T], sel Selection) []Member[T] {
	dst = slices.Grow(dst, t.Count(sel))
	for m := range t.Members(sel) {
		dst = append(dst, m)
	}
	return dst
}

// AppendNames appends the member names covered by sel to dst, growing it at
// most once, and returns the extended slice.
func (t *Type[T]) AppendNames(dst []string, sel Selection) []string {
	dst = slices.Grow(dst, t.Count(sel))
	for s := range t.Names(sel) {
		dst = append(dst, s)
	}
	return dst
}

// AppendValues appends the member values covered by sel to dst, growing it
// at most once, and returns the extended slice.
func (t *Type[T]) AppendValues(dst []T, sel Selection) []T {
	dst = slices.Grow(dst, t.Count(sel))
	for v := range t.Values(sel) {
		dst = append(dst, v)
	}
	return dst
}
