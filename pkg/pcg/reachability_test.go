package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/cluso-pcg/pkg/bitset"
)

func TestDFSAndPostOrder(t *testing.T) {
	pcg := chain(t)

	reached := pcg.DFS(pcg.Start, Down)
	assert.Len(t, reached, 4)
	assert.True(t, reached[pcg.End])

	order := pcg.PostOrder(pcg.Start, Down)
	assert.Equal(t, []uint32{EndID, 3, 2, StartID}, order)

	upReached := pcg.DFS(pcg.End, Up)
	assert.Len(t, upReached, 4)
}

func TestSrcAccepting(t *testing.T) {
	pcg := chain(t)
	pcg.G.SetValue(uint32(2), CgState{Id: 2, Accept: bitset.Singleton(1)})
	pcg.G.SetValue(uint32(3), CgState{Id: 3, Accept: bitset.Singleton(2)})

	acc := pcg.SrcAccepting(pcg.Start, Down)
	assert.True(t, acc.Contains(1))
	assert.True(t, acc.Contains(2))
	assert.False(t, acc.Contains(3))
}
