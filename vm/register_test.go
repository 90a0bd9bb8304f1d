package vm

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBank(t *testing.T) {
	assert := assert.New(t)

	bank := NewBank("dx", "ax", "dx", "bx")
	assert.Equal([]string{"dx", "ax", "bx"}, bank.Names())

	for _, name := range bank.Names() {
		value, err := bank.Get(name)
		assert.NoError(err)
		assert.Equal(int64(0), value)
	}

	assert.NoError(bank.Set("ax", 42))
	assert.NoError(bank.Set("bx", -7))
	value, err := bank.Get("ax")
	assert.NoError(err)
	assert.Equal(int64(42), value)

	_, err = bank.Get("cx")
	assert.ErrorIs(err, ErrUnknownRegister)
	assert.ErrorContains(err, "cx")
	err = bank.Set("cx", 1)
	assert.ErrorIs(err, ErrUnknownRegister)

	// No register was created by the failed Set.
	assert.Equal([]string{"dx", "ax", "bx"}, bank.Names())

	assert.Equal(map[string]int64{"dx": 0, "ax": 42, "bx": -7}, maps.Collect(bank.All()))

	snap := bank.Snapshot()
	assert.Equal([]int64{0, 42, -7}, snap.Values)

	// The snapshot is not a live view.
	assert.NoError(bank.Set("ax", 1))
	got, ok := snap.Get("ax")
	assert.True(ok)
	assert.Equal(int64(42), got)
	_, ok = snap.Get("cx")
	assert.False(ok)

	bank.Reset()
	value, _ = bank.Get("ax")
	assert.Equal(int64(0), value)
	assert.Equal([]string{"dx", "ax", "bx"}, bank.Names())
}

func TestSnapshotOrder(t *testing.T) {
	assert := assert.New(t)

	bank := NewBank("cx", "ax", "bx")
	assert.NoError(bank.Set("cx", 3))
	assert.NoError(bank.Set("ax", 1))

	snap := bank.Snapshot()

	var names []string
	var values []int64
	for name, value := range snap.All() {
		names = append(names, name)
		values = append(values, value)
	}
	assert.Equal([]string{"cx", "ax", "bx"}, names)
	assert.Equal([]int64{3, 1, 0}, values)
	assert.Equal(map[string]int64{"cx": 3, "ax": 1, "bx": 0}, snap.Map())
}
