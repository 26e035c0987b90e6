package taimeta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalValueRoundTrip(t *testing.T) {
	for id, v := range sampleValues {
		meta := widgetMeta(t, id)
		t.Run(meta.HumanName(), func(t *testing.T) {
			data, err := MarshalValue(meta, v)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			got, err := UnmarshalValue(data, meta, nil)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}

func TestMarshalValueScalars(t *testing.T) {
	tests := []struct {
		name string
		meta *AttrMetadata
		v    Value
	}{
		{"u64", &AttrMetadata{ValueType: ValueTypeU64}, U64(1 << 40)},
		{"s8", &AttrMetadata{ValueType: ValueTypeS8}, S8(-5)},
		{"u16", &AttrMetadata{ValueType: ValueTypeU16}, U16(65535)},
		{"s16", &AttrMetadata{ValueType: ValueTypeS16}, S16(-300)},
		{"s64", &AttrMetadata{ValueType: ValueTypeS64}, S64(-1 << 40)},
		{"object id", &AttrMetadata{ValueType: ValueTypeObjectID}, ObjectID(0xdeadbeef)},
		{"u32 range", &AttrMetadata{ValueType: ValueTypeU32Range}, U32Range{Min: 100, Max: 1000}},
		{"charlist", &AttrMetadata{ValueType: ValueTypeCharList}, CharList("hello")},
		{"s16 list", &AttrMetadata{ValueType: ValueTypeS16List}, S16List{-1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalValue(tt.meta, tt.v)
			require.NoError(t, err)
			got, err := UnmarshalValue(data, tt.meta, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestMarshalValueDeterministic(t *testing.T) {
	meta := widgetMeta(t, widgetLanes)
	v := AttrList{U32List{1, 2}, U32List{3}}

	a, err := MarshalValue(meta, v)
	require.NoError(t, err)
	b, err := MarshalValue(meta, v)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUnmarshalValueIntoBuffer(t *testing.T) {
	meta := widgetMeta(t, widgetColors)
	data, err := MarshalValue(meta, S32List{1, 2, 4})
	require.NoError(t, err)

	buf := make(S32List, 8)
	got, err := UnmarshalValue(data, meta, buf)
	require.NoError(t, err)
	assert.Equal(t, S32List{1, 2, 4}, got)
	assert.Same(t, &buf[0], &got.(S32List)[0])

	small := S32List{0, 0}
	got, err = UnmarshalValue(data, meta, small)
	require.ErrorIs(t, err, ErrBufferOverflow)
	var overflow *BufferOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 3, overflow.Needed)
	assert.Equal(t, S32List{0, 0}, got)
}

func TestUnmarshalValueErrors(t *testing.T) {
	meta := widgetMeta(t, widgetIndex)

	_, err := UnmarshalValue([]byte{0xff, 0x00}, meta, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	text, err := MarshalValue(widgetMeta(t, widgetLabel), CharData("eth0"))
	require.NoError(t, err)
	_, err = UnmarshalValue(text, meta, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter, "string decoded as u32")

	_, err = UnmarshalValue(nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MarshalValue(meta, S32(1))
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = MarshalValue(widgetMeta(t, widgetLanes), AttrList{S8List{1}})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
