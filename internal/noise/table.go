package noise

import (
	"errors"
	"fmt"

	"valnoise/internal/core"
)

const (
	// TableSize is the number of distinct entries in a permutation.
	TableSize = 256
	// PaddedSize is the stored length. Composed lookups add a masked
	// coordinate (at most 256 once the +1 neighbour is taken) to an entry
	// (at most 255), so indices stay below 512.
	PaddedSize = 2 * TableSize

	tableMask = TableSize - 1
)

// ErrInvalidTable is returned when a supplied table breaks the permutation
// or padding invariant. Callers must not fall back to a default table.
var ErrInvalidTable = errors.New("noise: invalid permutation table")

var tableMagic = [4]byte{'V', 'N', 'T', '1'}

// Table is an immutable permutation of 0..255 stored twice back to back.
// A *Table may be shared by any number of goroutines without locking.
type Table struct {
	p [PaddedSize]uint8
}

// BuildTable returns the table for seed. The identity sequence 0..255 is
// shuffled with Fisher-Yates, drawing swap indices from a PCG stream seeded
// with (seed, 0) and reduced by multiply-high, then padded by duplication.
// The same seed yields the same bytes on every platform and Go release.
func BuildTable(seed int64) *Table {
	var base [TableSize]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	rng := core.NewRNG(seed)
	for i := TableSize - 1; i > 0; i-- {
		j := rng.Bounded(uint64(i + 1))
		base[i], base[j] = base[j], base[i]
	}
	return padded(base)
}

// FromPermutation pads a bare permutation into a table. It fails when a value
// appears more than once.
func FromPermutation(base [TableSize]uint8) (*Table, error) {
	var seen [TableSize]bool
	for i, v := range base {
		if seen[v] {
			return nil, fmt.Errorf("%w: value %d repeated at index %d", ErrInvalidTable, v, i)
		}
		seen[v] = true
	}
	return padded(base), nil
}

// LoadTable validates an externally supplied padded table. The first 256
// entries must be a permutation of 0..255 and entries 256..511 must repeat
// them. Entries past 511 are ignored.
func LoadTable(entries []int) (*Table, error) {
	if len(entries) < PaddedSize {
		return nil, fmt.Errorf("%w: %d entries, need at least %d", ErrInvalidTable, len(entries), PaddedSize)
	}
	var base [TableSize]uint8
	for i, v := range entries[:PaddedSize] {
		if v < 0 || v > tableMask {
			return nil, fmt.Errorf("%w: entry %d out of range at index %d", ErrInvalidTable, v, i)
		}
		if i < TableSize {
			base[i] = uint8(v)
			continue
		}
		if want := entries[i&tableMask]; v != want {
			return nil, fmt.Errorf("%w: padding entry %d is %d, want %d", ErrInvalidTable, i, v, want)
		}
	}
	return FromPermutation(base)
}

func padded(base [TableSize]uint8) *Table {
	t := &Table{}
	for i := range t.p {
		t.p[i] = base[i&tableMask]
	}
	return t
}

// Perm returns the stored entry at i. The index wraps at PaddedSize.
func (t *Table) Perm(i int) uint8 { return t.p[i&(PaddedSize-1)] }

// Values returns a copy of the 256-entry permutation.
func (t *Table) Values() []uint8 {
	out := make([]uint8, TableSize)
	copy(out, t.p[:TableSize])
	return out
}

// Entries returns a copy of the full padded storage as ints, the form
// LoadTable accepts.
func (t *Table) Entries() []int {
	out := make([]int, PaddedSize)
	for i, v := range t.p {
		out[i] = int(v)
	}
	return out
}

// Equal reports whether two tables hold the same permutation.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.p == o.p
}

// Hash2 returns the lattice hash T[T[j&255] + (i&255)].
func (t *Table) Hash2(i, j int) uint8 {
	return t.p[int(t.p[j&tableMask])+(i&tableMask)]
}

// Hash3 returns the lattice hash T[T[T[k&255] + (j&255)] + (i&255)].
// The z axis is looked up first and x last, matching Hash2's y-then-x order.
func (t *Table) Hash3(i, j, k int) uint8 {
	return t.p[int(t.p[int(t.p[k&tableMask])+(j&tableMask)])+(i&tableMask)]
}

// MarshalBinary encodes the table as the magic "VNT1" followed by the 512
// stored bytes.
func (t *Table) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, len(tableMagic)+PaddedSize)
	out = append(out, tableMagic[:]...)
	out = append(out, t.p[:]...)
	return out, nil
}

// DecodeTable parses data produced by MarshalBinary, validating the
// permutation and padding.
func DecodeTable(data []byte) (*Table, error) {
	if len(data) < len(tableMagic) || [4]byte(data[:4]) != tableMagic {
		return nil, fmt.Errorf("%w: missing VNT1 header", ErrInvalidTable)
	}
	body := data[len(tableMagic):]
	if len(body) != PaddedSize {
		return nil, fmt.Errorf("%w: body is %d bytes, want %d", ErrInvalidTable, len(body), PaddedSize)
	}
	entries := make([]int, PaddedSize)
	for i, b := range body {
		entries[i] = int(b)
	}
	return LoadTable(entries)
}
