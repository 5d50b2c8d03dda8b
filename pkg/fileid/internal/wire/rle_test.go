package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRLE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{name: "empty", in: nil, want: []byte{}},
		{name: "no zeros", in: []byte{1, 2, 3}, want: []byte{1, 2, 3}},
		{name: "single zero", in: []byte{1, 0, 2}, want: []byte{1, 0, 1, 2}},
		{name: "three zeros", in: []byte{0, 0, 0, 7}, want: []byte{0, 3, 7}},
		{name: "trailing run", in: []byte{9, 0, 0}, want: []byte{9, 0, 2}},
		{name: "run of 255", in: make([]byte, 255), want: []byte{0, 255}},
		{name: "run of 300", in: make([]byte, 300), want: []byte{0, 255, 0, 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeRLE(tt.in))
		})
	}
}

func TestDecodeRLE(t *testing.T) {
	got, err := DecodeRLE([]byte{5, 0, 3, 6, 0, 0, 7})
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 0, 0, 0, 6, 7}, got)

	got, err = DecodeRLE([]byte{0, 255, 0, 45})
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 300), got)
}

func TestDecodeRLE_MissingCount(t *testing.T) {
	_, err := DecodeRLE([]byte{1, 2, 0})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestRLE_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0},
		{0, 0},
		{1, 0, 0, 0, 0, 2, 0},
		bytes.Repeat([]byte{0, 0, 0, 1}, 100),
		append(make([]byte, 511), 1),
		make([]byte, 510),
	}
	for _, in := range inputs {
		out, err := DecodeRLE(EncodeRLE(in))
		require.NoError(t, err)
		assert.Equal(t, len(in), len(out))
		assert.True(t, bytes.Equal(in, out))
	}
}

func TestEncodeRLE_NeverEmitsEmptyRun(t *testing.T) {
	in := append(make([]byte, 255), 1, 0)
	encoded := EncodeRLE(in)
	for i := 0; i < len(encoded); i++ {
		if encoded[i] == 0 {
			require.Less(t, i+1, len(encoded))
			assert.NotZero(t, encoded[i+1])
			i++
		}
	}
}
