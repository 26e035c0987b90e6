package taimeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vendorTable = `
attributes:
  - object: widget
    id: 0x10000000
    name: TEST_WIDGET_ATTR_CUSTOM_MODE
    type: s32
    flags: [create_only]
    brief: Vendor specific mode
    default: shallow
    enum:
      name: vendor_mode_t
      prefix: VENDOR_MODE_
      values:
        - {value: 0, name: VENDOR_MODE_NONE}
        - {value: 1, name: VENDOR_MODE_SHALLOW}
  - object: TEST_OBJECT_TYPE_GADGET
    id: 0x10000001
    name: TEST_GADGET_ATTR_CUSTOM_TAPS
    type: attrlist
    element_type: s16list
    list_size: 4
  - object: 1
    id: 0x10000002
    name: TEST_WIDGET_ATTR_CUSTOM_LABEL
    type: chardata
    default: vendor
`

func TestParseAttributesYAML(t *testing.T) {
	attrs, err := ParseAttributesYAML([]byte(vendorTable), testObjects())
	require.NoError(t, err)
	require.Len(t, attrs, 3)

	mode := attrs[0]
	assert.Equal(t, CustomRangeStart, mode.AttrID)
	assert.Equal(t, widgetType, mode.ObjectType)
	assert.Equal(t, ValueTypeS32, mode.ValueType)
	assert.True(t, mode.IsCreateOnly())
	assert.Equal(t, "Vendor specific mode", mode.Brief)
	require.NotNil(t, mode.Enum)
	assert.Equal(t, []string{"none", "shallow"}, mode.Enum.Names(true))
	assert.Equal(t, S32(1), mode.Default)

	taps := attrs[1]
	assert.Equal(t, gadgetType, taps.ObjectType)
	assert.Equal(t, ValueTypeAttrList, taps.ValueType)
	assert.Equal(t, ValueTypeS16List, taps.ElemValueType)
	assert.Equal(t, 4, taps.DefaultListSize)

	assert.Equal(t, CharData("vendor"), attrs[2].Default)
}

func TestParseAttributesYAMLRegistry(t *testing.T) {
	attrs, err := ParseAttributesYAML([]byte(vendorTable), testObjects())
	require.NoError(t, err)

	r, err := NewRegistry(testObjects(), WithCustomAttributes(attrs...))
	require.NoError(t, err)

	m, err := r.MetadataByObjectName(widgetType, "custom-mode", optHuman)
	require.NoError(t, err)
	assert.True(t, m.IsCustom())

	var attr Attribute
	require.NoError(t, Alloc(m, &attr, nil))
	got, err := FormatAttribute(m, &attr, optHuman)
	require.NoError(t, err)
	assert.Equal(t, "custom-mode | shallow", got)

	taps, err := r.Metadata(gadgetType, CustomRangeStart+1)
	require.NoError(t, err)
	var tapsAttr Attribute
	require.NoError(t, DeserializeAttribute("custom-taps | -1,2, 3", taps, &tapsAttr, optHuman))
	assert.Equal(t, AttrList{S16List{-1, 2}, S16List{3}}, tapsAttr.Value)
}

func TestLoadAttributesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vendorTable), 0o600))

	attrs, err := LoadAttributesYAML(path, testObjects())
	require.NoError(t, err)
	assert.Len(t, attrs, 3)

	_, err = LoadAttributesYAML(filepath.Join(t.TempDir(), "missing.yaml"), testObjects())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseAttributesYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "attributes: [\n"},
		{"unknown object", "attributes:\n  - {object: gizmo, id: 0x10000000, name: X, type: u8}\n"},
		{"unknown object number", "attributes:\n  - {object: 9, id: 0x10000000, name: X, type: u8}\n"},
		{"unknown type", "attributes:\n  - {object: widget, id: 0x10000000, name: X, type: u128}\n"},
		{"unknown element type", "attributes:\n  - {object: widget, id: 0x10000000, name: X, type: attrlist, element_type: list}\n"},
		{"unknown flag", "attributes:\n  - {object: widget, id: 0x10000000, name: X, type: u8, flags: [sometimes]}\n"},
		{"negative id", "attributes:\n  - {object: widget, id: -1, name: X, type: u8}\n"},
		{"id at end of custom band", "attributes:\n  - {object: widget, id: 0x20000000, name: X, type: u8}\n"},
		{"id past custom band", "attributes:\n  - {object: widget, id: 0x30000000, name: X, type: u8}\n"},
		{"bad default", "attributes:\n  - {object: widget, id: 0x10000000, name: X, type: u8, default: '300'}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := ParseAttributesYAML([]byte(tt.yaml), testObjects())
			assert.Nil(t, attrs)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}
