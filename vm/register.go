package vm

import (
	"iter"
	"slices"
)

// Bank is a fixed set of named integer registers.
type Bank struct {
	names []string
	index map[string]int
	value []int64
}

// NewBank creates a register bank with every register set to 0.
// Duplicate names are collapsed, keeping the first position.
func NewBank(names ...string) (bank *Bank) {
	bank = &Bank{
		index: make(map[string]int, len(names)),
	}

	for _, name := range names {
		if _, ok := bank.index[name]; ok {
			continue
		}
		bank.index[name] = len(bank.names)
		bank.names = append(bank.names, name)
	}
	bank.value = make([]int64, len(bank.names))

	return
}

// Names returns the register names, in construction order.
func (bank *Bank) Names() []string {
	return slices.Clone(bank.names)
}

// Get returns the value of a register.
func (bank *Bank) Get(name string) (value int64, err error) {
	n, ok := bank.index[name]
	if !ok {
		err = ErrRegister(name)
		return
	}

	value = bank.value[n]
	return
}

// Set sets the value of a register.
func (bank *Bank) Set(name string, value int64) (err error) {
	n, ok := bank.index[name]
	if !ok {
		err = ErrRegister(name)
		return
	}

	bank.value[n] = value
	return
}

// Reset sets every register to 0.
func (bank *Bank) Reset() {
	clear(bank.value)
}

// All iterates over the registers in construction order.
func (bank *Bank) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for n, name := range bank.names {
			if !yield(name, bank.value[n]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the current register state.
func (bank *Bank) Snapshot() Snapshot {
	return Snapshot{
		Names:  slices.Clone(bank.names),
		Values: slices.Clone(bank.value),
	}
}

// Snapshot is the register state at a point in time.
// Values[n] is the value of the register Names[n].
type Snapshot struct {
	Names  []string
	Values []int64
}

// Get returns the value of a named register.
func (snap Snapshot) Get(name string) (value int64, ok bool) {
	n := slices.Index(snap.Names, name)
	if n < 0 {
		return
	}

	return snap.Values[n], true
}

// Map returns the snapshot as a name to value map.
func (snap Snapshot) Map() map[string]int64 {
	m := make(map[string]int64, len(snap.Names))
	for n, name := range snap.Names {
		m[name] = snap.Values[n]
	}
	return m
}

// All iterates over the registers in snapshot order.
func (snap Snapshot) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for n, name := range snap.Names {
			if !yield(name, snap.Values[n]) {
				return
			}
		}
	}
}
