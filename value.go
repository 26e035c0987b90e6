package taimeta

import "fmt"

// ValueType is the tag identifying the shape of an attribute value.
type ValueType int32

const (
	ValueTypeUnspecified ValueType = iota
	ValueTypeBool
	ValueTypeCharData
	ValueTypeU8
	ValueTypeS8
	ValueTypeU16
	ValueTypeS16
	ValueTypeU32
	ValueTypeS32
	ValueTypeU64
	ValueTypeS64
	ValueTypeFloat
	ValueTypeObjectID
	ValueTypeObjList
	ValueTypeCharList
	ValueTypeU8List
	ValueTypeS8List
	ValueTypeU16List
	ValueTypeS16List
	ValueTypeU32List
	ValueTypeS32List
	ValueTypeFloatList
	ValueTypeU32Range
	ValueTypeS32Range
	ValueTypeAttrList
	valueTypeEnd
)

var valueTypeNames = [...]string{
	ValueTypeUnspecified: "unspecified",
	ValueTypeBool:        "bool",
	ValueTypeCharData:    "chardata",
	ValueTypeU8:          "u8",
	ValueTypeS8:          "s8",
	ValueTypeU16:         "u16",
	ValueTypeS16:         "s16",
	ValueTypeU32:         "u32",
	ValueTypeS32:         "s32",
	ValueTypeU64:         "u64",
	ValueTypeS64:         "s64",
	ValueTypeFloat:       "float",
	ValueTypeObjectID:    "oid",
	ValueTypeObjList:     "objlist",
	ValueTypeCharList:    "charlist",
	ValueTypeU8List:      "u8list",
	ValueTypeS8List:      "s8list",
	ValueTypeU16List:     "u16list",
	ValueTypeS16List:     "s16list",
	ValueTypeU32List:     "u32list",
	ValueTypeS32List:     "s32list",
	ValueTypeFloatList:   "floatlist",
	ValueTypeU32Range:    "u32range",
	ValueTypeS32Range:    "s32range",
	ValueTypeAttrList:    "attrlist",
}

func (t ValueType) String() string {
	if t.Valid() || t == ValueTypeUnspecified {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int32(t))
}

// Valid reports whether t is a known, specified tag.
func (t ValueType) Valid() bool {
	return t > ValueTypeUnspecified && t < valueTypeEnd
}

// IsList reports whether values of type t own a variable-length buffer.
func (t ValueType) IsList() bool {
	switch t {
	case ValueTypeObjList, ValueTypeCharList, ValueTypeU8List, ValueTypeS8List,
		ValueTypeU16List, ValueTypeS16List, ValueTypeU32List, ValueTypeS32List,
		ValueTypeFloatList, ValueTypeAttrList:
		return true
	}
	return false
}

// IsRange reports whether t is a (min,max) pair.
func (t ValueType) IsRange() bool {
	return t == ValueTypeU32Range || t == ValueTypeS32Range
}

// ParseValueType returns the tag named by s, as printed by ValueType.String.
func ParseValueType(s string) (ValueType, error) {
	for t := ValueTypeBool; t < valueTypeEnd; t++ {
		if valueTypeNames[t] == s {
			return t, nil
		}
	}
	return ValueTypeUnspecified, invalidParameter("unknown value type %q", s)
}

// CharDataSize is the capacity of a CharData value, terminator included.
const CharDataSize = 32

// Value is an attribute value. The set of implementations is closed:
// the concrete type of a Value always corresponds to exactly one ValueType.
//
// Lists are slices. len is the number of populated elements and cap is the
// capacity of the buffer; operations that write into an existing list treat
// cap as the limit and leave len as the population.
type Value interface {
	ValueType() ValueType
	isValue()
}

type (
	Bool     bool
	CharData string
	U8       uint8
	S8       int8
	U16      uint16
	S16      int16
	U32      uint32
	S32      int32
	U64      uint64
	S64      int64
	Float    float32
	ObjectID uint64

	ObjList   []ObjectID
	CharList  []byte
	U8List    []uint8
	S8List    []int8
	U16List   []uint16
	S16List   []int16
	U32List   []uint32
	S32List   []int32
	FloatList []float32

	// AttrList is a nested list of values, each described by the element
	// metadata of the owning attribute.
	AttrList []Value
)

// U32Range is an unsigned (min,max) pair.
type U32Range struct {
	Min, Max uint32
}

// S32Range is a signed (min,max) pair.
type S32Range struct {
	Min, Max int32
}

func (Bool) ValueType() ValueType      { return ValueTypeBool }
func (CharData) ValueType() ValueType  { return ValueTypeCharData }
func (U8) ValueType() ValueType        { return ValueTypeU8 }
func (S8) ValueType() ValueType        { return ValueTypeS8 }
func (U16) ValueType() ValueType       { return ValueTypeU16 }
func (S16) ValueType() ValueType       { return ValueTypeS16 }
func (U32) ValueType() ValueType       { return ValueTypeU32 }
func (S32) ValueType() ValueType       { return ValueTypeS32 }
func (U64) ValueType() ValueType       { return ValueTypeU64 }
func (S64) ValueType() ValueType       { return ValueTypeS64 }
func (Float) ValueType() ValueType     { return ValueTypeFloat }
func (ObjectID) ValueType() ValueType  { return ValueTypeObjectID }
func (ObjList) ValueType() ValueType   { return ValueTypeObjList }
func (CharList) ValueType() ValueType  { return ValueTypeCharList }
func (U8List) ValueType() ValueType    { return ValueTypeU8List }
func (S8List) ValueType() ValueType    { return ValueTypeS8List }
func (U16List) ValueType() ValueType   { return ValueTypeU16List }
func (S16List) ValueType() ValueType   { return ValueTypeS16List }
func (U32List) ValueType() ValueType   { return ValueTypeU32List }
func (S32List) ValueType() ValueType   { return ValueTypeS32List }
func (FloatList) ValueType() ValueType { return ValueTypeFloatList }
func (U32Range) ValueType() ValueType  { return ValueTypeU32Range }
func (S32Range) ValueType() ValueType  { return ValueTypeS32Range }
func (AttrList) ValueType() ValueType  { return ValueTypeAttrList }

func (Bool) isValue()      {}
func (CharData) isValue()  {}
func (U8) isValue()        {}
func (S8) isValue()        {}
func (U16) isValue()       {}
func (S16) isValue()       {}
func (U32) isValue()       {}
func (S32) isValue()       {}
func (U64) isValue()       {}
func (S64) isValue()       {}
func (Float) isValue()     {}
func (ObjectID) isValue()  {}
func (ObjList) isValue()   {}
func (CharList) isValue()  {}
func (U8List) isValue()    {}
func (S8List) isValue()    {}
func (U16List) isValue()   {}
func (S16List) isValue()   {}
func (U32List) isValue()   {}
func (S32List) isValue()   {}
func (FloatList) isValue() {}
func (U32Range) isValue()  {}
func (S32Range) isValue()  {}
func (AttrList) isValue()  {}

// Attribute pairs an attribute id with its value.
type Attribute struct {
	ID    AttrID
	Value Value
}

// TypeOf returns the tag of v, or ValueTypeUnspecified for nil.
func TypeOf(v Value) ValueType {
	if v == nil {
		return ValueTypeUnspecified
	}
	return v.ValueType()
}

// Len returns the number of populated elements of a list value, 0 otherwise.
func Len(v Value) int {
	switch l := v.(type) {
	case ObjList:
		return len(l)
	case CharList:
		return len(l)
	case U8List:
		return len(l)
	case S8List:
		return len(l)
	case U16List:
		return len(l)
	case S16List:
		return len(l)
	case U32List:
		return len(l)
	case S32List:
		return len(l)
	case FloatList:
		return len(l)
	case AttrList:
		return len(l)
	}
	return 0
}

// Cap returns the capacity of a list value, 0 otherwise.
func Cap(v Value) int {
	switch l := v.(type) {
	case ObjList:
		return cap(l)
	case CharList:
		return cap(l)
	case U8List:
		return cap(l)
	case S8List:
		return cap(l)
	case U16List:
		return cap(l)
	case S16List:
		return cap(l)
	case U32List:
		return cap(l)
	case S32List:
		return cap(l)
	case FloatList:
		return cap(l)
	case AttrList:
		return cap(l)
	}
	return 0
}

// zeroValue returns the zero value for t. Lists are nil.
func zeroValue(t ValueType) (Value, bool) {
	switch t {
	case ValueTypeBool:
		return Bool(false), true
	case ValueTypeCharData:
		return CharData(""), true
	case ValueTypeU8:
		return U8(0), true
	case ValueTypeS8:
		return S8(0), true
	case ValueTypeU16:
		return U16(0), true
	case ValueTypeS16:
		return S16(0), true
	case ValueTypeU32:
		return U32(0), true
	case ValueTypeS32:
		return S32(0), true
	case ValueTypeU64:
		return U64(0), true
	case ValueTypeS64:
		return S64(0), true
	case ValueTypeFloat:
		return Float(0), true
	case ValueTypeObjectID:
		return ObjectID(0), true
	case ValueTypeObjList:
		return ObjList(nil), true
	case ValueTypeCharList:
		return CharList(nil), true
	case ValueTypeU8List:
		return U8List(nil), true
	case ValueTypeS8List:
		return S8List(nil), true
	case ValueTypeU16List:
		return U16List(nil), true
	case ValueTypeS16List:
		return S16List(nil), true
	case ValueTypeU32List:
		return U32List(nil), true
	case ValueTypeS32List:
		return S32List(nil), true
	case ValueTypeFloatList:
		return FloatList(nil), true
	case ValueTypeU32Range:
		return U32Range{}, true
	case ValueTypeS32Range:
		return S32Range{}, true
	case ValueTypeAttrList:
		return AttrList(nil), true
	}
	return nil, false
}

// CheckValue reports an error unless v is a value of the type described by meta.
// A nil v is accepted only for list types, where it is an empty list.
func CheckValue(meta *AttrMetadata, v Value) error {
	if meta == nil {
		return invalidParameter("nil metadata")
	}
	if !meta.ValueType.Valid() {
		return invalidParameter("unsupported value type %v", meta.ValueType)
	}
	if v == nil {
		if meta.ValueType.IsList() {
			return nil
		}
		return invalidParameter("nil value for %v attribute", meta.ValueType)
	}
	if got := v.ValueType(); got != meta.ValueType {
		return invalidParameter("value of type %v for %v attribute", got, meta.ValueType)
	}
	return nil
}
