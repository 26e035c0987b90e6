package taimeta

import (
	"strings"
)

// ObjectType identifies a category of hardware object that declares its own
// attribute id namespace.
type ObjectType int32

// AttrID is an attribute id, unique within an ObjectType.
type AttrID int32

// Attribute id band reserved for vendor extensions.
const (
	CustomRangeStart AttrID = 0x10000000
	CustomRangeEnd   AttrID = 0x20000000
)

// AttrFlags describes how an attribute may be used.
type AttrFlags uint32

const (
	// FlagMandatoryOnCreate marks attributes required when creating the object.
	FlagMandatoryOnCreate AttrFlags = 1 << iota

	// FlagCreateOnly marks attributes that can only be given at creation.
	FlagCreateOnly

	// FlagReadOnly marks attributes that can only be read.
	FlagReadOnly

	// FlagKey marks attributes that identify the object on its parent.
	FlagKey
)

var attrFlagNames = []struct {
	flag AttrFlags
	name string
}{
	{FlagMandatoryOnCreate, "MANDATORY_ON_CREATE"},
	{FlagCreateOnly, "CREATE_ONLY"},
	{FlagReadOnly, "READ_ONLY"},
	{FlagKey, "KEY"},
}

// String renders the flags the way attribute headers document them,
// e.g. "MANDATORY_ON_CREATE|CREATE_ONLY".
func (f AttrFlags) String() string {
	var names []string
	for _, fn := range attrFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseAttrFlag returns the flag named by s, case-insensitively.
func ParseAttrFlag(s string) (AttrFlags, error) {
	for _, fn := range attrFlagNames {
		if strings.EqualFold(fn.name, s) {
			return fn.flag, nil
		}
	}
	return 0, invalidParameter("unknown attribute flag %q", s)
}

// EnumValue is one symbolic constant of an enum type.
type EnumValue struct {
	Value int32
	Name  string // canonical constant name, e.g. TAI_MODULE_OPER_STATUS_READY
}

// EnumMetadata is the symbolic name table of an enum type.
type EnumMetadata struct {
	// Name of the enum type, e.g. tai_module_oper_status_t
	Name string

	// Prefix shared by all constant names and stripped to form the
	// human-readable names, e.g. TAI_MODULE_OPER_STATUS_
	Prefix string

	Values []EnumValue

	// Flags marks enums whose values are OR-able bits. Lists of them are
	// joined with "|", lists of other enums with ",".
	Flags bool
}

// NameOf returns the canonical constant name of v.
func (e *EnumMetadata) NameOf(v int32) (string, bool) {
	// Linear scan: enum tables are short.
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	return "", false
}

// HumanNameOf returns the human-readable name of v, e.g. "ready".
func (e *EnumMetadata) HumanNameOf(v int32) (string, bool) {
	name, ok := e.NameOf(v)
	if !ok {
		return "", false
	}
	return e.humanName(name), true
}

func (e *EnumMetadata) humanName(name string) string {
	return HumanizeName(strings.TrimPrefix(name, e.Prefix))
}

// ValueOf returns the value named by token, which may be either the canonical
// constant name or the human-readable name. Matching is exact.
func (e *EnumMetadata) ValueOf(token string) (int32, bool) {
	for _, ev := range e.Values {
		if ev.Name == token {
			return ev.Value, true
		}
	}
	for _, ev := range e.Values {
		if e.humanName(ev.Name) == token {
			return ev.Value, true
		}
	}
	return 0, false
}

// Names returns the values' names, canonical or human-readable.
func (e *EnumMetadata) Names(human bool) []string {
	names := make([]string, len(e.Values))
	for i, ev := range e.Values {
		if human {
			names[i] = e.humanName(ev.Name)
		} else {
			names[i] = ev.Name
		}
	}
	return names
}

// AttrMetadata describes one attribute of one object type.
//
// Metadata is reference data: it is built once and never mutated, so the same
// *AttrMetadata may be shared freely across goroutines.
type AttrMetadata struct {
	AttrID     AttrID
	ObjectType ObjectType

	// Name is the canonical constant name, e.g. TAI_MODULE_ATTR_OPER_STATUS.
	Name string

	ValueType ValueType

	// ElemValueType is the type of each element of an attrlist attribute.
	ElemValueType ValueType

	Flags AttrFlags

	// Enum is the symbolic name table of enum attributes, nil otherwise.
	// For enum lists and attrlists of enum lists it applies to the elements.
	Enum *EnumMetadata

	// Default is the value used by Alloc, nil for none.
	Default Value

	// DefaultListSize overrides the package DefaultListSize for Alloc.
	DefaultListSize int

	Brief string
}

func (m *AttrMetadata) IsReadOnly() bool          { return m.Flags&FlagReadOnly != 0 }
func (m *AttrMetadata) IsMandatoryOnCreate() bool { return m.Flags&FlagMandatoryOnCreate != 0 }
func (m *AttrMetadata) IsCreateOnly() bool        { return m.Flags&FlagCreateOnly != 0 }
func (m *AttrMetadata) IsKey() bool               { return m.Flags&FlagKey != 0 }

// IsEnum reports whether the attribute (or its list elements) are enum constants.
func (m *AttrMetadata) IsEnum() bool { return m.Enum != nil }

// IsCustom reports whether the attribute lives in the vendor custom band.
func (m *AttrMetadata) IsCustom() bool {
	return m.AttrID >= CustomRangeStart && m.AttrID < CustomRangeEnd
}

// HumanName returns the dashed attribute name: the canonical name with its
// object prefix stripped, lower-cased, underscores replaced by dashes.
//
//	TAI_NETWORK_INTERFACE_ATTR_TX_LASER_FREQ -> tx-laser-freq
func (m *AttrMetadata) HumanName() string {
	name := m.Name
	if i := strings.Index(name, attrMarker); i >= 0 {
		name = name[i+len(attrMarker):]
	}
	return HumanizeName(name)
}

const attrMarker = "_ATTR_"

// elem returns the metadata describing one element of an attrlist attribute.
func (m *AttrMetadata) elem() *AttrMetadata {
	return &AttrMetadata{
		AttrID:          m.AttrID,
		ObjectType:      m.ObjectType,
		Name:            m.Name,
		ValueType:       m.ElemValueType,
		Enum:            m.Enum,
		DefaultListSize: m.DefaultListSize,
	}
}

// Usage renders a short hint of the accepted value text: the human enum
// names for enums, "[true|false]" for booleans and "<type>" otherwise.
func (m *AttrMetadata) Usage() string {
	switch {
	case m.Enum != nil:
		return "[" + strings.Join(m.Enum.Names(true), "|") + "]"
	case m.ValueType == ValueTypeBool:
		return "[true|false]"
	case m.ValueType == ValueTypeAttrList:
		return "<" + m.ElemValueType.String() + "-list>"
	default:
		return "<" + m.ValueType.String() + ">"
	}
}

// HumanizeName lower-cases a constant name and replaces underscores with dashes.
func HumanizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// CanonicalizeName is the inverse of HumanizeName.
func CanonicalizeName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), "-", "_")
}
