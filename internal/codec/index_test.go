package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killerpack/internal/codec"
	"killerpack/internal/domain"
)

func TestEncodeIndex_LittleEndian(t *testing.T) {
	got := codec.EncodeIndex([]uint32{0, 5, 0x01020304})
	want := []byte{
		0, 0, 0, 0,
		5, 0, 0, 0,
		4, 3, 2, 1,
	}
	assert.Equal(t, want, got)
}

func TestEncodeIndex_Empty(t *testing.T) {
	assert.Empty(t, codec.EncodeIndex(nil))
}

func TestOffsetAt(t *testing.T) {
	idx := codec.EncodeIndex([]uint32{0, 5, 12})

	for i, want := range []uint32{0, 5, 12} {
		got, err := codec.OffsetAt(idx, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := codec.OffsetAt(idx, 3)
	assert.Error(t, err)
	_, err = codec.OffsetAt(idx, -1)
	assert.Error(t, err)
	_, err = codec.OffsetAt(idx[:5], 0)
	assert.Error(t, err)
}

func TestSpan(t *testing.T) {
	idx := codec.EncodeIndex([]uint32{0, 5, 12})

	start, end, err := codec.Span(idx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(5), end)

	start, end, err = codec.Span(idx, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(12), start)
	assert.Equal(t, int64(20), end)

	_, _, err = codec.Span(idx, 2, 10)
	assert.Error(t, err)
}

func TestIndexOffset(t *testing.T) {
	off, err := codec.IndexOffset(15)
	require.NoError(t, err)
	assert.Equal(t, uint32(15), off)

	off, err = codec.IndexOffset(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), off)

	_, err = codec.IndexOffset(math.MaxUint32 + 1)
	var ee *domain.EncodingError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "offset", ee.Field)
	assert.Equal(t, int64(math.MaxUint32+1), ee.Value)
}
