package hybriddeque

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOptionsInit(t *testing.T) {
	opts := &Options{}
	opts.Init()

	assert.Equal(t, DefaultBlockSize, opts.BlockSize)
	assert.Equal(t, uint64(DefaultLogMaxSize), opts.LogMaxSize)
	assert.Equal(t, uint64(DefaultLogMaxBackups), opts.LogMaxBackups)
	assert.Nil(t, opts.Validate())
}

func TestOptionsInvalidBlockSize(t *testing.T) {
	for _, bs := range []int{-4, 1} {
		_, err := New[int](&Options{BlockSize: bs})
		assert.True(t, errors.Is(err, ErrInvalidOptions))
	}

	_, err := New[int](&Options{LogLevel: 42})
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestOptionsCopied(t *testing.T) {
	opts := &Options{BlockSize: 8}
	d, err := New[int](opts)
	assert.Nil(t, err)

	opts.BlockSize = 2
	assert.Equal(t, 8, d.BlockSize())

	// the caller's options are left untouched
	empty := &Options{}
	_, err = New[int](empty)
	assert.Nil(t, err)
	assert.Equal(t, 0, empty.BlockSize)
}

func TestOptionsCustomLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	d, err := New[int](&Options{BlockSize: 2, Logger: &logger})
	assert.Nil(t, err)
	assert.True(t, strings.Contains(buf.String(), "deque bootstrap"))

	for i := 0; i < 4; i++ {
		assert.Nil(t, d.InsertLast(i))
	}
	assert.True(t, strings.Contains(buf.String(), "link new right block"))

	d.Clear()
	assert.True(t, strings.Contains(buf.String(), "deque clear"))
}

func TestOptionsFileLogger(t *testing.T) {
	dir := t.TempDir()

	d, err := New[int](&Options{
		LogDir:   dir,
		LogFile:  "deque.log",
		LogLevel: int8(zerolog.DebugLevel),
	})
	assert.Nil(t, err)
	assert.Nil(t, d.InsertFirst(1))

	data, err := os.ReadFile(filepath.Join(dir, "deque.log"))
	assert.Nil(t, err)
	assert.True(t, strings.Contains(string(data), "deque bootstrap"))
	assert.True(t, strings.Contains(string(data), "block_size=4"))
}
