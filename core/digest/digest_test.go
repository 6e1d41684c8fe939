package digest_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"game-catalog/core/digest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

// maxReadRecorder records the largest buffer it was asked to fill.
type maxReadRecorder struct {
	r   io.Reader
	max int
}

func (m *maxReadRecorder) Read(p []byte) (int, error) {
	if len(p) > m.max {
		m.max = len(p)
	}
	return m.r.Read(p)
}

func TestReader(t *testing.T) {
	t.Run("KnownDigest", func(t *testing.T) {
		sum, err := digest.Reader(strings.NewReader("abc"), 0)
		require.NoError(t, err)
		assert.Equal(t, abcSHA256, sum.Hex)
		assert.Equal(t, int64(3), sum.Size)
	})

	t.Run("Empty", func(t *testing.T) {
		sum, err := digest.Reader(strings.NewReader(""), 0)
		require.NoError(t, err)
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sum.Hex)
		assert.Zero(t, sum.Size)
	})

	t.Run("ChunkSizeDoesNotChangeDigest", func(t *testing.T) {
		data := bytes.Repeat([]byte("wii"), 10000)

		small, err := digest.Reader(bytes.NewReader(data), 7)
		require.NoError(t, err)
		large, err := digest.Reader(bytes.NewReader(data), digest.DefaultChunkSize)
		require.NoError(t, err)

		assert.Equal(t, small, large)
		assert.Equal(t, int64(len(data)), large.Size)
	})

	t.Run("ReadsAreBounded", func(t *testing.T) {
		rec := &maxReadRecorder{r: bytes.NewReader(make([]byte, 100000))}

		_, err := digest.Reader(rec, digest.DefaultChunkSize)
		require.NoError(t, err)
		assert.Equal(t, digest.DefaultChunkSize, rec.max)
	})

	t.Run("ReadError", func(t *testing.T) {
		boom := errors.New("disk gone")
		_, err := digest.Reader(iotest.ErrReader(boom), 0)
		assert.ErrorIs(t, err, boom)
	})
}

func TestFile(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mario.iso")
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

		sum, err := digest.File(path, digest.DefaultChunkSize)
		require.NoError(t, err)
		assert.Equal(t, abcSHA256, sum.Hex)
		assert.Equal(t, int64(3), sum.Size)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := digest.File(filepath.Join(t.TempDir(), "gone.iso"), 0)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
