package taimeta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	widgetType ObjectType = 1
	gadgetType ObjectType = 2
)

const (
	widgetIndex AttrID = iota
	widgetColor
	widgetColors
	widgetBytes
	widgetGains
	widgetLanes
	widgetRange
	widgetLabel
	widgetPeers
	widgetEnabled
	widgetPower
	widgetAttrEnd AttrID = 16
)

var colorEnum = &EnumMetadata{
	Name:   "test_color_t",
	Prefix: "TEST_COLOR_",
	Flags:  true,
	Values: []EnumValue{
		{Value: 1, Name: "TEST_COLOR_RED"},
		{Value: 2, Name: "TEST_COLOR_GREEN"},
		{Value: 4, Name: "TEST_COLOR_LIGHT_BLUE"},
	},
}

func testObjects() []ObjectInfo {
	return []ObjectInfo{
		{
			Type:       widgetType,
			Name:       "TEST_OBJECT_TYPE_WIDGET",
			AttrPrefix: "TEST_WIDGET_ATTR_",
			AttrStart:  0,
			AttrEnd:    widgetAttrEnd,
			Attributes: []*AttrMetadata{
				{AttrID: widgetIndex, Name: "TEST_WIDGET_ATTR_INDEX", ValueType: ValueTypeU32, Flags: FlagMandatoryOnCreate | FlagCreateOnly},
				{AttrID: widgetColor, Name: "TEST_WIDGET_ATTR_COLOR", ValueType: ValueTypeS32, Enum: colorEnum, Default: S32(1)},
				{AttrID: widgetColors, Name: "TEST_WIDGET_ATTR_COLORS", ValueType: ValueTypeS32List, Enum: colorEnum},
				{AttrID: widgetBytes, Name: "TEST_WIDGET_ATTR_BYTES", ValueType: ValueTypeU8List, DefaultListSize: 4},
				{AttrID: widgetGains, Name: "TEST_WIDGET_ATTR_GAINS", ValueType: ValueTypeFloatList},
				{AttrID: widgetLanes, Name: "TEST_WIDGET_ATTR_LANES", ValueType: ValueTypeAttrList, ElemValueType: ValueTypeU32List, DefaultListSize: 2},
				{AttrID: widgetRange, Name: "TEST_WIDGET_ATTR_RANGE", ValueType: ValueTypeS32Range},
				{AttrID: widgetLabel, Name: "TEST_WIDGET_ATTR_LABEL", ValueType: ValueTypeCharData},
				{AttrID: widgetPeers, Name: "TEST_WIDGET_ATTR_PEERS", ValueType: ValueTypeObjList},
				{AttrID: widgetEnabled, Name: "TEST_WIDGET_ATTR_ENABLED", ValueType: ValueTypeBool, Flags: FlagReadOnly},
				{AttrID: widgetPower, Name: "TEST_WIDGET_ATTR_POWER", ValueType: ValueTypeFloat},
			},
		},
		{
			Type:       gadgetType,
			Name:       "TEST_OBJECT_TYPE_GADGET",
			AttrPrefix: "TEST_GADGET_ATTR_",
			AttrStart:  0,
			AttrEnd:    2,
			Attributes: []*AttrMetadata{
				{AttrID: 0, Name: "TEST_GADGET_ATTR_INDEX", ValueType: ValueTypeU32},
			},
		},
	}
}

func testRegistry(t testing.TB) *Registry {
	t.Helper()
	r, err := NewRegistry(testObjects())
	require.NoError(t, err)
	return r
}

func widgetMeta(t testing.TB, id AttrID) *AttrMetadata {
	t.Helper()
	m, err := testRegistry(t).Metadata(widgetType, id)
	require.NoError(t, err)
	return m
}

// sampleValues holds one non-empty value per widget attribute.
var sampleValues = map[AttrID]Value{
	widgetIndex:   U32(7),
	widgetColor:   S32(2),
	widgetColors:  S32List{1, 4},
	widgetBytes:   U8List{1, 2, 3},
	widgetGains:   FloatList{1.5, 2.25},
	widgetLanes:   AttrList{U32List{1, 2}, U32List{3}},
	widgetRange:   S32Range{Min: -100, Max: -1000},
	widgetLabel:   CharData("eth0"),
	widgetPeers:   ObjList{0x10, 0xff},
	widgetEnabled: Bool(true),
	widgetPower:   Float(-3.5),
}
