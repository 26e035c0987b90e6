package taimeta

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	optDefault        = &SerializeOption{}
	optHuman          = &SerializeOption{Human: true}
	optValue          = &SerializeOption{ValueOnly: true}
	optHumanValue     = &SerializeOption{ValueOnly: true, Human: true}
	optJSON           = &SerializeOption{JSON: true}
	optHumanJSON      = &SerializeOption{Human: true, JSON: true}
	optValueJSON      = &SerializeOption{ValueOnly: true, JSON: true}
	optHumanValueJSON = &SerializeOption{ValueOnly: true, Human: true, JSON: true}
)

func TestFormatAttribute(t *testing.T) {
	tests := []struct {
		name     string
		id       AttrID
		value    Value
		opt      *SerializeOption
		expected string
	}{
		{"scalar default mode", widgetIndex, U32(7), optDefault, "TEST_WIDGET_ATTR_INDEX = 7"},
		{"scalar nil option", widgetIndex, U32(7), nil, "TEST_WIDGET_ATTR_INDEX = 7"},
		{"scalar human", widgetIndex, U32(7), optHuman, "index | 7"},
		{"scalar value only", widgetIndex, U32(7), optValue, "7"},

		{"enum default mode", widgetColor, S32(2), optDefault, "TEST_WIDGET_ATTR_COLOR = TEST_COLOR_GREEN"},
		{"enum human", widgetColor, S32(4), optHuman, "color | light-blue"},
		{"enum value only", widgetColor, S32(2), optValue, "TEST_COLOR_GREEN"},
		{"enum human value only", widgetColor, S32(2), optHumanValue, "green"},
		{"unknown enum prints the number", widgetColor, S32(3), optValue, "3"},

		{"enum list human", widgetColors, S32List{1, 4}, optHuman, "colors | red|light-blue"},
		{"enum list value only", widgetColors, S32List{1, 2}, optValue, "TEST_COLOR_RED|TEST_COLOR_GREEN"},
		{"enum list json", widgetColors, S32List{1, 4}, optHumanJSON, `{"colors":["red","light-blue"]}`},
		{"enum list json value only", widgetColors, S32List{1, 4}, optHumanValueJSON, `["red","light-blue"]`},

		{"u8 list", widgetBytes, U8List{1, 2, 3}, optValue, "1,2,3"},
		{"u8 list json", widgetBytes, U8List{1, 2, 3}, optValueJSON, "[1,2,3]"},
		{"empty list", widgetBytes, U8List{}, optValue, ""},
		{"nil list", widgetBytes, nil, optValue, ""},
		{"empty list human", widgetBytes, U8List{}, optHuman, "bytes | "},
		{"empty list json", widgetBytes, U8List{}, optValueJSON, "[]"},
		{"nil list json", widgetBytes, nil, optValueJSON, "[]"},

		{"float", widgetPower, Float(1.10), optValue, "1.100000"},
		{"negative float", widgetPower, Float(-3.5), optHuman, "power | -3.500000"},
		{"float list", widgetGains, FloatList{1.1, 2.5}, optValue, "1.100000,2.500000"},

		{"attr list", widgetLanes, AttrList{U32List{1, 2}, U32List{3}}, optHuman, "lanes | 1,2, 3"},
		{"attr list json", widgetLanes, AttrList{U32List{1, 2}, U32List{3}}, optValueJSON, "[[1,2],[3]]"},
		{"attr list with empty element", widgetLanes, AttrList{U32List{}, U32List{3}}, optValue, ", 3"},

		{"signed range", widgetRange, S32Range{Min: -100, Max: -1000}, optHumanValue, "-100,-1000"},
		{"range json", widgetRange, S32Range{Min: 1, Max: 2}, optValueJSON, "[1,2]"},

		{"chardata", widgetLabel, CharData("eth0"), optHuman, "label | eth0"},
		{"chardata json", widgetLabel, CharData("eth0"), optHumanJSON, `{"label":"eth0"}`},
		{"chardata json value only", widgetLabel, CharData("eth0"), optValueJSON, "eth0"},

		{"object list", widgetPeers, ObjList{0x10, 0xff}, optValue, "0x10,0xff"},
		{"object list json", widgetPeers, ObjList{0x10, 0xff}, optValueJSON, `["0x10","0xff"]`},

		{"bool", widgetEnabled, Bool(true), optHuman, "enabled | true"},
		{"bool json", widgetEnabled, Bool(false), optJSON, `{"TEST_WIDGET_ATTR_ENABLED":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := &Attribute{ID: tt.id, Value: tt.value}
			got, err := FormatAttribute(widgetMeta(t, tt.id), attr, tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatAttributeJSONIsValid(t *testing.T) {
	for id, v := range sampleValues {
		meta := widgetMeta(t, id)
		for _, opt := range []*SerializeOption{optJSON, optHumanJSON} {
			got, err := FormatAttribute(meta, &Attribute{ID: id, Value: v}, opt)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(got)), got)
		}
	}

	nonFinite := []struct {
		id AttrID
		v  Value
	}{
		{widgetGains, FloatList{float32(math.NaN())}},
		{widgetGains, FloatList{1, float32(math.Inf(-1))}},
		{widgetPower, Float(math.Inf(1))},
	}
	for _, tt := range nonFinite {
		meta := widgetMeta(t, tt.id)
		for _, opt := range []*SerializeOption{optJSON, optHumanJSON, optValueJSON} {
			_, err := FormatAttribute(meta, &Attribute{ID: tt.id, Value: tt.v}, opt)
			assert.ErrorIs(t, err, ErrInvalidParameter, "%v", tt.v)
		}
	}
}

func TestFormatNonFiniteFloatText(t *testing.T) {
	got, err := FormatValue(widgetMeta(t, widgetGains), FloatList{float32(math.NaN()), float32(math.Inf(1))}, optValue)
	require.NoError(t, err)
	assert.Equal(t, "NaN,+Inf", got)
}

func TestFormatAttrListSingleEmptyElement(t *testing.T) {
	meta := widgetMeta(t, widgetLanes)

	for _, v := range []AttrList{{U32List{}}, {nil}} {
		_, err := FormatValue(meta, v, optValue)
		assert.ErrorIs(t, err, ErrInvalidParameter)

		_, err = FormatAttribute(meta, &Attribute{ID: widgetLanes, Value: v}, optHuman)
		assert.ErrorIs(t, err, ErrInvalidParameter)

		got, err := FormatValue(meta, v, optJSON)
		require.NoError(t, err)
		assert.Equal(t, "[[]]", got)
	}
}

func TestRenderAttributeFillsPooledBuffer(t *testing.T) {
	meta := widgetMeta(t, widgetGains)
	gains := make(FloatList, 64)
	want, err := FormatValue(meta, gains, optValue)
	require.NoError(t, err)
	require.Greater(t, len(want), 128)

	buf, err := renderAttribute(meta, &Attribute{ID: widgetGains, Value: gains}, optValue)
	require.NoError(t, err)
	defer bufferPool.Put(buf)

	assert.Equal(t, want, buf.String())
	assert.GreaterOrEqual(t, buf.Cap(), len(want))
}

func TestFormatAttributeErrors(t *testing.T) {
	_, err := FormatAttribute(widgetMeta(t, widgetColor), &Attribute{Value: S32(3)}, optHuman)
	require.ErrorIs(t, err, ErrUnknownEnumValue)
	var unknown *UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, int32(3), unknown.Value)
	assert.Equal(t, "test_color_t", unknown.Enum)

	_, err = FormatAttribute(widgetMeta(t, widgetColors), &Attribute{Value: S32List{1, 8}}, optHumanValue)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = FormatAttribute(widgetMeta(t, widgetColor), &Attribute{Value: U32(1)}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = FormatAttribute(widgetMeta(t, widgetColor), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = FormatAttribute(nil, &Attribute{Value: U32(1)}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = FormatAttribute(widgetMeta(t, widgetLanes), &Attribute{Value: AttrList{S8List{1}}}, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSerializeAttributeSizeNegotiation(t *testing.T) {
	meta := widgetMeta(t, widgetColors)
	attr := &Attribute{ID: widgetColors, Value: S32List{1, 4}}
	const want = "colors | red|light-blue"

	n, err := SerializeAttribute(nil, meta, attr, optHuman)
	require.ErrorIs(t, err, ErrBufferOverflow)
	assert.Equal(t, len(want), n)

	var overflow *BufferOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, len(want), overflow.Needed)
	assert.Equal(t, 0, overflow.Capacity)

	small := []byte("xxxx")
	_, err = SerializeAttribute(small, meta, attr, optHuman)
	require.ErrorIs(t, err, ErrBufferOverflow)
	assert.Equal(t, []byte("xxxx"), small, "buffer untouched")

	buf := make([]byte, n)
	n, err = SerializeAttribute(buf, meta, attr, optHuman)
	require.NoError(t, err)
	assert.Equal(t, want, string(buf[:n]))
}

func TestWriteAttribute(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAttribute(&buf, widgetMeta(t, widgetRange), &Attribute{Value: S32Range{Min: -1, Max: 1}}, optHuman)
	require.NoError(t, err)
	assert.Equal(t, "range | -1,1", buf.String())
}

func TestAppendAttributeExtendsBuffer(t *testing.T) {
	dst := []byte("prefix: ")
	dst, err := AppendAttribute(dst, widgetMeta(t, widgetBytes), &Attribute{Value: U8List{4, 5}}, optValue)
	require.NoError(t, err)
	assert.Equal(t, "prefix: 4,5", string(dst))
}

func TestFormatValue(t *testing.T) {
	got, err := FormatValue(widgetMeta(t, widgetColor), S32(1), optHuman)
	require.NoError(t, err)
	assert.Equal(t, "red", got)
}

func TestSerializeEnum(t *testing.T) {
	got, err := SerializeEnum(colorEnum, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, "TEST_COLOR_LIGHT_BLUE", got)

	got, err = SerializeEnum(colorEnum, 4, optHuman)
	require.NoError(t, err)
	assert.Equal(t, "light-blue", got)

	got, err = SerializeEnum(colorEnum, 9, nil)
	require.NoError(t, err)
	assert.Equal(t, "9", got)

	_, err = SerializeEnum(colorEnum, 9, optHuman)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = SerializeEnum(nil, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func BenchmarkFormatAttribute(b *testing.B) {
	meta := widgetMeta(b, widgetColors)
	attr := &Attribute{ID: widgetColors, Value: S32List{1, 2, 4}}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := FormatAttribute(meta, attr, optHuman)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendAttribute_AttrList(b *testing.B) {
	meta := widgetMeta(b, widgetLanes)
	attr := &Attribute{ID: widgetLanes, Value: AttrList{U32List{1, 2, 3, 4}, U32List{5, 6, 7, 8}}}
	buf := make([]byte, 0, 256)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var err error
		buf, err = AppendAttribute(buf[:0], meta, attr, optHuman)
		if err != nil {
			b.Fatal(err)
		}
	}
}
