package taimeta

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/oopt-tai/taimeta/internal/bufpool"
)

// SerializeOption controls how values are rendered as text.
// A nil *SerializeOption is the zero value.
type SerializeOption struct {
	// ValueOnly suppresses the attribute name prefix.
	ValueOnly bool

	// Human substitutes human-readable names: "ready" instead of
	// TAI_MODULE_OPER_STATUS_READY, "oper-status" instead of
	// TAI_MODULE_ATTR_OPER_STATUS.
	Human bool

	// JSON renders lists, ranges and attribute lists as JSON arrays and a
	// name-prefixed attribute as a JSON object. A value-only scalar is
	// rendered exactly as without JSON.
	JSON bool
}

func optionOf(opt *SerializeOption) SerializeOption {
	if opt == nil {
		return SerializeOption{}
	}
	return *opt
}

// Wire delimiters
const (
	// HumanNameDelimiter separates the attribute name from its value in human mode.
	HumanNameDelimiter = " | "

	// NameDelimiter separates the canonical attribute name from its value.
	NameDelimiter = " = "

	// ListSeparator joins numeric list elements and range bounds.
	ListSeparator = ","

	// EnumListSeparator joins the elements of a list of flag enums (OR'd
	// symbolic names). Lists of other enums use ListSeparator.
	EnumListSeparator = "|"

	// AttrListSeparator joins the elements of an attribute list.
	AttrListSeparator = ", "
)

var bufferPool = bufpool.New(128)

// AppendAttribute appends the text form of attr to dst and returns the
// extended buffer.
//
// Format: [<name><delimiter>]<value>
//
// The name is the dashed human name followed by " | " in human mode and the
// canonical constant name followed by " = " otherwise. In JSON mode a named
// attribute is rendered as {"<name>":<value>}.
func AppendAttribute(dst []byte, meta *AttrMetadata, attr *Attribute, opt *SerializeOption) ([]byte, error) {
	if attr == nil {
		return dst, invalidParameter("nil attribute")
	}
	if err := CheckValue(meta, attr.Value); err != nil {
		return dst, err
	}
	o := optionOf(opt)

	if o.ValueOnly {
		return appendValue(dst, meta, attr.Value, o, false)
	}

	name := meta.Name
	if o.Human {
		name = meta.HumanName()
	}
	if name == "" {
		return dst, invalidParameter("attribute %d has no name", meta.AttrID)
	}

	if o.JSON {
		dst = append(dst, '{')
		dst = strconv.AppendQuote(dst, name)
		dst = append(dst, ':')
		var err error
		dst, err = appendValue(dst, meta, attr.Value, o, true)
		if err != nil {
			return dst, err
		}
		return append(dst, '}'), nil
	}

	dst = append(dst, name...)
	if o.Human {
		dst = append(dst, HumanNameDelimiter...)
	} else {
		dst = append(dst, NameDelimiter...)
	}
	return appendValue(dst, meta, attr.Value, o, false)
}

// AppendValue appends the text form of v, without any name prefix.
func AppendValue(dst []byte, meta *AttrMetadata, v Value, opt *SerializeOption) ([]byte, error) {
	if err := CheckValue(meta, v); err != nil {
		return dst, err
	}
	return appendValue(dst, meta, v, optionOf(opt), false)
}

// FormatAttribute returns the text form of attr.
func FormatAttribute(meta *AttrMetadata, attr *Attribute, opt *SerializeOption) (string, error) {
	buf, err := renderAttribute(meta, attr, opt)
	if err != nil {
		return "", err
	}
	defer bufferPool.Put(buf)
	return buf.String(), nil
}

// renderAttribute renders attr into a pooled buffer, which the caller hands
// back with bufferPool.Put.
func renderAttribute(meta *AttrMetadata, attr *Attribute, opt *SerializeOption) (*bytes.Buffer, error) {
	buf := bufferPool.Get()
	b, err := AppendAttribute(buf.AvailableBuffer(), meta, attr, opt)
	if err != nil {
		bufferPool.Put(buf)
		return nil, err
	}
	buf.Write(b)
	return buf, nil
}

// FormatValue returns the text form of v, without any name prefix.
func FormatValue(meta *AttrMetadata, v Value, opt *SerializeOption) (string, error) {
	b, err := AppendValue(nil, meta, v, opt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SerializeAttribute renders attr into buf and returns the length of the
// full text.
//
// When the text does not fit, buf is left untouched and the returned error
// is a *BufferOverflowError whose Needed field equals the returned length.
// Passing a zero-length buf sizes the output.
func SerializeAttribute(buf []byte, meta *AttrMetadata, attr *Attribute, opt *SerializeOption) (int, error) {
	pooled, err := renderAttribute(meta, attr, opt)
	if err != nil {
		return 0, err
	}
	defer bufferPool.Put(pooled)

	if n := pooled.Len(); n > len(buf) {
		return n, &BufferOverflowError{Needed: n, Capacity: len(buf)}
	}
	return copy(buf, pooled.Bytes()), nil
}

// WriteAttribute writes the text form of attr to w.
func WriteAttribute(w io.Writer, meta *AttrMetadata, attr *Attribute, opt *SerializeOption) error {
	buf, err := renderAttribute(meta, attr, opt)
	if err != nil {
		return err
	}
	defer bufferPool.Put(buf)

	_, err = buf.WriteTo(w)
	return err
}

// SerializeEnum renders one enum constant: the human name in human mode, the
// canonical name otherwise. Unknown values are printed as numbers unless
// human mode asks for a name, which is ErrUnknownEnumValue.
func SerializeEnum(enum *EnumMetadata, v int32, opt *SerializeOption) (string, error) {
	if enum == nil {
		return "", invalidParameter("nil enum metadata")
	}
	b, err := appendEnum(nil, enum, v, optionOf(opt), false)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// appendValue renders v. quote asks for string-like scalars to be JSON
// strings; it is set for every value nested in JSON output.
func appendValue(dst []byte, meta *AttrMetadata, v Value, o SerializeOption, quote bool) ([]byte, error) {
	switch x := v.(type) {
	case Bool:
		return strconv.AppendBool(dst, bool(x)), nil
	case CharData:
		if quote {
			return strconv.AppendQuote(dst, string(x)), nil
		}
		return append(dst, x...), nil
	case U8:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case S8:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case U16:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case S16:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case U32:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case S32:
		if meta.Enum != nil {
			return appendEnum(dst, meta.Enum, int32(x), o, quote)
		}
		return strconv.AppendInt(dst, int64(x), 10), nil
	case U64:
		return strconv.AppendUint(dst, uint64(x), 10), nil
	case S64:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case Float:
		return appendFloat(dst, float32(x), o)
	case ObjectID:
		return appendObjectID(dst, x, quote), nil
	case U32Range:
		return appendRange(dst, strconv.AppendUint(nil, uint64(x.Min), 10), strconv.AppendUint(nil, uint64(x.Max), 10), o), nil
	case S32Range:
		return appendRange(dst, strconv.AppendInt(nil, int64(x.Min), 10), strconv.AppendInt(nil, int64(x.Max), 10), o), nil
	case CharList:
		if o.JSON {
			return strconv.AppendQuote(dst, string(x)), nil
		}
		return append(dst, x...), nil
	case ObjList:
		return appendList(dst, x, o, func(dst []byte, e ObjectID) ([]byte, error) {
			return appendObjectID(dst, e, o.JSON), nil
		})
	case U8List:
		return appendList(dst, x, o, appendUint[uint8])
	case S8List:
		return appendList(dst, x, o, appendInt[int8])
	case U16List:
		return appendList(dst, x, o, appendUint[uint16])
	case S16List:
		return appendList(dst, x, o, appendInt[int16])
	case U32List:
		return appendList(dst, x, o, appendUint[uint32])
	case S32List:
		if meta.Enum != nil {
			return appendEnumList(dst, meta.Enum, x, o)
		}
		return appendList(dst, x, o, appendInt[int32])
	case FloatList:
		return appendList(dst, x, o, func(dst []byte, e float32) ([]byte, error) {
			return appendFloat(dst, e, o)
		})
	case AttrList:
		return appendAttrList(dst, meta, x, o)
	case nil:
		// Empty list: CheckValue only lets nil through for list types.
		if o.JSON {
			return append(dst, "[]"...), nil
		}
		return dst, nil
	}
	return dst, invalidParameter("unsupported value %T", v)
}

// appendFloat renders f with six decimals. JSON has no NaN or infinities.
func appendFloat(dst []byte, f float32, o SerializeOption) ([]byte, error) {
	if o.JSON && !isFinite(f) {
		return dst, invalidParameter("float %v has no JSON form", f)
	}
	return strconv.AppendFloat(dst, float64(f), 'f', 6, 32), nil
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func appendObjectID(dst []byte, id ObjectID, quote bool) []byte {
	if quote {
		dst = append(dst, '"')
	}
	dst = append(dst, "0x"...)
	dst = strconv.AppendUint(dst, uint64(id), 16)
	if quote {
		dst = append(dst, '"')
	}
	return dst
}

func appendUint[T uint8 | uint16 | uint32](dst []byte, v T) ([]byte, error) {
	return strconv.AppendUint(dst, uint64(v), 10), nil
}

func appendInt[T int8 | int16 | int32](dst []byte, v T) ([]byte, error) {
	return strconv.AppendInt(dst, int64(v), 10), nil
}

func appendRange(dst, lo, hi []byte, o SerializeOption) []byte {
	if o.JSON {
		dst = append(dst, '[')
	}
	dst = append(dst, lo...)
	dst = append(dst, ListSeparator...)
	dst = append(dst, hi...)
	if o.JSON {
		dst = append(dst, ']')
	}
	return dst
}

func appendList[E any](dst []byte, list []E, o SerializeOption, appendElem func([]byte, E) ([]byte, error)) ([]byte, error) {
	if o.JSON {
		dst = append(dst, '[')
	}
	var err error
	for i, e := range list {
		if i > 0 {
			dst = append(dst, ListSeparator...)
		}
		if dst, err = appendElem(dst, e); err != nil {
			return dst, err
		}
	}
	if o.JSON {
		dst = append(dst, ']')
	}
	return dst, nil
}

func appendEnumList(dst []byte, enum *EnumMetadata, list []int32, o SerializeOption) ([]byte, error) {
	sep := ListSeparator
	if enum.Flags {
		sep = EnumListSeparator
	}
	if o.JSON {
		dst = append(dst, '[')
		sep = ListSeparator
	}
	var err error
	for i, e := range list {
		if i > 0 {
			dst = append(dst, sep...)
		}
		if dst, err = appendEnum(dst, enum, e, o, o.JSON); err != nil {
			return dst, err
		}
	}
	if o.JSON {
		dst = append(dst, ']')
	}
	return dst, nil
}

func appendEnum(dst []byte, enum *EnumMetadata, v int32, o SerializeOption, quote bool) ([]byte, error) {
	var (
		name string
		ok   bool
	)
	if o.Human {
		name, ok = enum.HumanNameOf(v)
		if !ok {
			return dst, &UnknownEnumValueError{Enum: enum.Name, Value: v}
		}
	} else {
		name, ok = enum.NameOf(v)
		if !ok {
			return strconv.AppendInt(dst, int64(v), 10), nil
		}
	}
	if quote {
		return strconv.AppendQuote(dst, name), nil
	}
	return append(dst, name...), nil
}

func appendAttrList(dst []byte, meta *AttrMetadata, list AttrList, o SerializeOption) ([]byte, error) {
	elem := meta.elem()
	sep := AttrListSeparator
	if o.JSON {
		dst = append(dst, '[')
		sep = ListSeparator
	}
	var err error
	for i, e := range list {
		if i > 0 {
			dst = append(dst, sep...)
		}
		if err = CheckValue(elem, e); err != nil {
			return dst, err
		}
		start := len(dst)
		if dst, err = appendValue(dst, elem, e, o, o.JSON); err != nil {
			return dst, err
		}
		// "" already means an empty attribute list.
		if len(list) == 1 && len(dst) == start && !o.JSON {
			return dst[:start], invalidParameter("attribute list with a single empty element has no text form; use JSON")
		}
	}
	if o.JSON {
		dst = append(dst, ']')
	}
	return dst, nil
}
