package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regasm/vm"
)

func TestPrintSnapshot(t *testing.T) {
	assert := assert.New(t)

	snap := vm.Snapshot{
		Names:  []string{"ax", "bx"},
		Values: []int64{5, -1},
	}

	buff := &bytes.Buffer{}
	printSnapshot(buff, snap, "plain")
	assert.Equal("ax=5\nbx=-1\n", buff.String())

	buff.Reset()
	printSnapshot(buff, snap, "table")
	text := buff.String()
	assert.Contains(text, "REGISTER")
	assert.Contains(text, "VALUE")
	lines := strings.Split(strings.TrimSpace(text), "\n")
	// top, header, separator, two rows, bottom
	assert.Len(lines, 6)
	assert.Contains(lines[3], "ax")
	assert.Contains(lines[3], "5")
	assert.Contains(lines[4], "bx")
	assert.Contains(lines[4], "-1")
}
