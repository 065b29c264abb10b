package gencx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldUpper(t *testing.T) {
	assert.Equal(t, byte('T'), foldUpper('t'))
	assert.Equal(t, byte('T'), foldUpper('T'))
	assert.Equal(t, byte('X'), foldUpper('x'))

	// non-letters pass through untouched
	assert.Equal(t, byte('\n'), foldUpper('\n'))
	assert.Equal(t, byte('0'), foldUpper('0'))
	assert.Equal(t, byte(0x00), foldUpper(0x00))
	assert.Equal(t, byte(0xFF), foldUpper(0xFF))
}

func TestQuadFold(t *testing.T) {
	q := Quad{'t', 'c', 'G', 'a'}
	assert.Equal(t, Quad{'T', 'C', 'G', 'A'}, q.fold())
	assert.Equal(t, "TCGA", q.fold().String())
}
