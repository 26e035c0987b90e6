package taimeta

import (
	"github.com/fxamacker/cbor/v2"
)

// Binary form of values, for passing attributes between processes.
//
// Scalars encode as the matching CBOR major type, lists as CBOR arrays (or
// byte strings for charlist and u8list), ranges as the two-element array
// [min, max] and attrlists as an array of encoded elements. The value tag is
// not encoded: like the text form, the binary form is read back with the
// attribute's metadata.

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2), so the same value
// always produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("taimeta: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: MaxListSize,
	}.DecMode()
	if err != nil {
		panic("taimeta: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalValue encodes v, a value of the type described by meta.
func MarshalValue(meta *AttrMetadata, v Value) ([]byte, error) {
	if err := CheckValue(meta, v); err != nil {
		return nil, err
	}
	return marshalValue(meta, v)
}

func marshalValue(meta *AttrMetadata, v Value) ([]byte, error) {
	switch x := v.(type) {
	case U32Range:
		return encMode.Marshal([2]uint32{x.Min, x.Max})
	case S32Range:
		return encMode.Marshal([2]int32{x.Min, x.Max})
	case AttrList:
		if x == nil {
			return encMode.Marshal(x)
		}
		elem := meta.elem()
		raws := make([]cbor.RawMessage, len(x))
		for i, e := range x {
			if err := CheckValue(elem, e); err != nil {
				return nil, err
			}
			b, err := marshalValue(elem, e)
			if err != nil {
				return nil, err
			}
			raws[i] = b
		}
		return encMode.Marshal(raws)
	}
	return encMode.Marshal(v)
}

// UnmarshalValue decodes data produced by MarshalValue.
//
// dst follows the capacity rules of DeserializeValue: list elements are copied
// into dst's buffer, a nil dst gets a fresh list, and an overflow leaves dst
// unchanged.
func UnmarshalValue(data []byte, meta *AttrMetadata, dst Value) (Value, error) {
	if meta == nil {
		return dst, invalidParameter("nil metadata")
	}
	if dst != nil {
		if err := CheckValue(meta, dst); err != nil {
			return dst, err
		}
	}
	v, err := unmarshalValue(data, meta)
	if err != nil {
		return dst, err
	}
	if !meta.ValueType.IsList() || dst == nil {
		return v, nil
	}
	if err := checkCopy(v, dst); err != nil {
		return dst, err
	}
	return copyValue(v, dst)
}

func unmarshalValue(data []byte, meta *AttrMetadata) (Value, error) {
	switch meta.ValueType {
	case ValueTypeBool:
		return decodeAs[Bool](data)
	case ValueTypeCharData:
		v, err := decodeAs[CharData](data)
		if err == nil && len(v.(CharData)) >= CharDataSize {
			return nil, &BufferOverflowError{Needed: len(v.(CharData)) + 1, Capacity: CharDataSize}
		}
		return v, err
	case ValueTypeU8:
		return decodeAs[U8](data)
	case ValueTypeS8:
		return decodeAs[S8](data)
	case ValueTypeU16:
		return decodeAs[U16](data)
	case ValueTypeS16:
		return decodeAs[S16](data)
	case ValueTypeU32:
		return decodeAs[U32](data)
	case ValueTypeS32:
		return decodeAs[S32](data)
	case ValueTypeU64:
		return decodeAs[U64](data)
	case ValueTypeS64:
		return decodeAs[S64](data)
	case ValueTypeFloat:
		return decodeAs[Float](data)
	case ValueTypeObjectID:
		return decodeAs[ObjectID](data)
	case ValueTypeObjList:
		return decodeAs[ObjList](data)
	case ValueTypeCharList:
		return decodeAs[CharList](data)
	case ValueTypeU8List:
		return decodeAs[U8List](data)
	case ValueTypeS8List:
		return decodeAs[S8List](data)
	case ValueTypeU16List:
		return decodeAs[U16List](data)
	case ValueTypeS16List:
		return decodeAs[S16List](data)
	case ValueTypeU32List:
		return decodeAs[U32List](data)
	case ValueTypeS32List:
		return decodeAs[S32List](data)
	case ValueTypeFloatList:
		return decodeAs[FloatList](data)
	case ValueTypeU32Range:
		var r [2]uint32
		if err := decMode.Unmarshal(data, &r); err != nil {
			return nil, cborError(err)
		}
		return U32Range{Min: r[0], Max: r[1]}, nil
	case ValueTypeS32Range:
		var r [2]int32
		if err := decMode.Unmarshal(data, &r); err != nil {
			return nil, cborError(err)
		}
		return S32Range{Min: r[0], Max: r[1]}, nil
	case ValueTypeAttrList:
		var raws []cbor.RawMessage
		if err := decMode.Unmarshal(data, &raws); err != nil {
			return nil, cborError(err)
		}
		if raws == nil {
			return AttrList(nil), nil
		}
		elem := meta.elem()
		list := make(AttrList, len(raws))
		for i, raw := range raws {
			v, err := unmarshalValue(raw, elem)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	}
	return nil, invalidParameter("unsupported value type %v", meta.ValueType)
}

func decodeAs[T Value](data []byte) (Value, error) {
	var v T
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, cborError(err)
	}
	return v, nil
}

func cborError(err error) error {
	return &ParseError{Message: "invalid CBOR value", Err: err}
}
