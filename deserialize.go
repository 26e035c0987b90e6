package taimeta

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// DeserializeValue parses text into a value of the type described by meta.
//
// For list types dst is the destination buffer and cap(dst) its capacity:
// the parsed elements are copied into it and the returned list has the
// parsed length. A nil dst means no caller buffer, and a fresh list is
// returned; an empty list such as one released by Free has capacity zero.
// When the parsed list does not fit, DeserializeValue returns dst unchanged
// and a *BufferOverflowError whose Needed field is the parsed element count.
// Each element of an attrlist destination must itself be allocated (Alloc
// does this).
//
// Scalar tags ignore dst.
func DeserializeValue(text string, meta *AttrMetadata, dst Value, opt *SerializeOption) (Value, error) {
	if meta == nil {
		return dst, invalidParameter("nil metadata")
	}
	if dst != nil {
		if err := CheckValue(meta, dst); err != nil {
			return dst, err
		}
	}
	v, err := parseValue(text, meta, optionOf(opt))
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

// DeserializeAttribute parses text as produced by AppendAttribute with the
// same options and stores the result in attr, using attr.Value as the
// destination buffer (see DeserializeValue).
//
// Unless opt.ValueOnly is set, text must start with the attribute name
// (canonical or human) and the delimiter of the selected mode. On error attr
// is left unchanged.
func DeserializeAttribute(text string, meta *AttrMetadata, attr *Attribute, opt *SerializeOption) error {
	if meta == nil || attr == nil {
		return invalidParameter("nil metadata or attribute")
	}
	o := optionOf(opt)

	valueText := text
	if !o.ValueOnly {
		var err error
		if valueText, err = stripName(text, meta, o); err != nil {
			return err
		}
	}

	v, err := DeserializeValue(valueText, meta, attr.Value, &o)
	if err != nil {
		return err
	}
	attr.ID = meta.AttrID
	attr.Value = v
	return nil
}

// stripName removes the name prefix from text and returns the value text.
func stripName(text string, meta *AttrMetadata, o SerializeOption) (string, error) {
	var name, rest string
	if o.JSON {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), &obj); err != nil {
			return "", &ParseError{Input: text, Message: "expected a JSON object", Err: err}
		}
		if len(obj) != 1 {
			return "", &ParseError{Input: text, Message: "expected exactly one attribute"}
		}
		for k, v := range obj {
			name, rest = k, string(v)
		}
	} else {
		delim := NameDelimiter
		if o.Human {
			delim = HumanNameDelimiter
		}
		var ok bool
		name, rest, ok = strings.Cut(text, delim)
		if !ok {
			return "", &ParseError{Input: text, Message: "missing attribute name"}
		}
		name = strings.TrimSpace(name)
	}
	if name != meta.Name && name != meta.HumanName() {
		return "", &ParseError{Input: text, Message: "attribute name does not match " + meta.Name}
	}
	return rest, nil
}

func parseValue(text string, meta *AttrMetadata, o SerializeOption) (Value, error) {
	t := meta.ValueType
	switch {
	case !t.Valid():
		return nil, invalidParameter("unsupported value type %v", t)
	case t == ValueTypeAttrList:
		return parseAttrList(text, meta, o)
	case t == ValueTypeCharList:
		s, err := jsonString(text, o)
		if err != nil {
			return nil, err
		}
		return CharList(s), nil
	case t.IsList():
		return parseList(text, meta, o)
	case t.IsRange():
		return parseRange(text, t, o)
	}
	if o.JSON {
		tok, err := jsonScalar(text)
		if err != nil {
			return nil, err
		}
		return parseScalar(tok, meta, o)
	}
	return parseScalar(strings.TrimSpace(text), meta, o)
}

func parseScalar(tok string, meta *AttrMetadata, o SerializeOption) (Value, error) {
	switch meta.ValueType {
	case ValueTypeBool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return nil, numError(tok, err)
		}
		return Bool(b), nil
	case ValueTypeCharData:
		if len(tok) >= CharDataSize {
			return nil, &BufferOverflowError{Needed: len(tok) + 1, Capacity: CharDataSize}
		}
		return CharData(tok), nil
	case ValueTypeU8:
		n, err := parseUint[uint8](tok, 8)
		return U8(n), err
	case ValueTypeS8:
		n, err := parseInt[int8](tok, 8)
		return S8(n), err
	case ValueTypeU16:
		n, err := parseUint[uint16](tok, 16)
		return U16(n), err
	case ValueTypeS16:
		n, err := parseInt[int16](tok, 16)
		return S16(n), err
	case ValueTypeU32:
		n, err := parseUint[uint32](tok, 32)
		return U32(n), err
	case ValueTypeS32:
		if meta.Enum != nil {
			n, err := parseEnum(tok, meta.Enum)
			return S32(n), err
		}
		n, err := parseInt[int32](tok, 32)
		return S32(n), err
	case ValueTypeU64:
		n, err := parseUint[uint64](tok, 64)
		return U64(n), err
	case ValueTypeS64:
		n, err := parseInt[int64](tok, 64)
		return S64(n), err
	case ValueTypeFloat:
		f, err := floatParser(o)(tok)
		return Float(f), err
	case ValueTypeObjectID:
		n, err := parseObjectID(tok)
		return n, err
	}
	return nil, invalidParameter("%v is not a scalar type", meta.ValueType)
}

func parseUint[T uint8 | uint16 | uint32 | uint64](tok string, bits int) (T, error) {
	n, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return 0, numError(tok, err)
	}
	return T(n), nil
}

func parseInt[T int8 | int16 | int32 | int64](tok string, bits int) (T, error) {
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return 0, numError(tok, err)
	}
	return T(n), nil
}

func parseFloat(tok string) (float32, error) {
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, numError(tok, err)
	}
	return float32(f), nil
}

func parseObjectID(tok string) (ObjectID, error) {
	n, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		return 0, numError(tok, err)
	}
	return ObjectID(n), nil
}

// floatParser returns the float parser for o: JSON input has no NaN or
// infinities, matching what AppendValue writes.
func floatParser(o SerializeOption) func(string) (float32, error) {
	if !o.JSON {
		return parseFloat
	}
	return func(tok string) (float32, error) {
		f, err := parseFloat(tok)
		if err == nil && !isFinite(f) {
			return 0, &ParseError{Input: tok, Message: "non-finite number in JSON"}
		}
		return f, err
	}
}

func numError(tok string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseError{Input: tok, Message: "invalid number", Err: err}
}

// parseEnum accepts a numeric literal, the canonical constant name or the
// human name.
func parseEnum(tok string, enum *EnumMetadata) (int32, error) {
	if v, ok := enum.ValueOf(tok); ok {
		return v, nil
	}
	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return int32(n), nil
	}
	return 0, &UnknownValueError{Enum: enum.Name, Token: tok}
}

// listTokens splits the text of a list into element tokens.
func listTokens(text string, meta *AttrMetadata, o SerializeOption) ([]string, error) {
	if o.JSON {
		return jsonArray(text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	split := text
	if meta.Enum != nil {
		// Flag enums are written with "|", others with ","; read both.
		split = strings.ReplaceAll(text, EnumListSeparator, ListSeparator)
	}
	toks := strings.Split(split, ListSeparator)
	for i, tok := range toks {
		toks[i] = strings.TrimSpace(tok)
		if toks[i] == "" {
			return nil, &ParseError{Input: text, Message: "empty list element"}
		}
	}
	return toks, nil
}

func parseList(text string, meta *AttrMetadata, o SerializeOption) (Value, error) {
	toks, err := listTokens(text, meta, o)
	if err != nil {
		return nil, err
	}
	switch meta.ValueType {
	case ValueTypeObjList:
		return parseTokens[ObjList](toks, parseObjectID)
	case ValueTypeU8List:
		return parseTokens[U8List](toks, func(tok string) (uint8, error) { return parseUint[uint8](tok, 8) })
	case ValueTypeS8List:
		return parseTokens[S8List](toks, func(tok string) (int8, error) { return parseInt[int8](tok, 8) })
	case ValueTypeU16List:
		return parseTokens[U16List](toks, func(tok string) (uint16, error) { return parseUint[uint16](tok, 16) })
	case ValueTypeS16List:
		return parseTokens[S16List](toks, func(tok string) (int16, error) { return parseInt[int16](tok, 16) })
	case ValueTypeU32List:
		return parseTokens[U32List](toks, func(tok string) (uint32, error) { return parseUint[uint32](tok, 32) })
	case ValueTypeS32List:
		if meta.Enum != nil {
			return parseTokens[S32List](toks, func(tok string) (int32, error) { return parseEnum(tok, meta.Enum) })
		}
		return parseTokens[S32List](toks, func(tok string) (int32, error) { return parseInt[int32](tok, 32) })
	case ValueTypeFloatList:
		return parseTokens[FloatList](toks, floatParser(o))
	}
	return nil, invalidParameter("%v is not a list type", meta.ValueType)
}

func parseTokens[S ~[]E, E any](toks []string, parse func(string) (E, error)) (S, error) {
	out := make(S, len(toks))
	for i, tok := range toks {
		e, err := parse(tok)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parseRange(text string, t ValueType, o SerializeOption) (Value, error) {
	var (
		toks []string
		err  error
	)
	if o.JSON {
		if toks, err = jsonArray(text); err != nil {
			return nil, err
		}
	} else {
		toks = strings.Split(text, ListSeparator)
	}
	if len(toks) != 2 {
		return nil, invalidParameter("range %q: want exactly two values, got %d", text, len(toks))
	}
	lo, hi := strings.TrimSpace(toks[0]), strings.TrimSpace(toks[1])
	if t == ValueTypeU32Range {
		a, err := parseUint[uint32](lo, 32)
		if err != nil {
			return nil, err
		}
		b, err := parseUint[uint32](hi, 32)
		if err != nil {
			return nil, err
		}
		return U32Range{Min: a, Max: b}, nil
	}
	a, err := parseInt[int32](lo, 32)
	if err != nil {
		return nil, err
	}
	b, err := parseInt[int32](hi, 32)
	if err != nil {
		return nil, err
	}
	return S32Range{Min: a, Max: b}, nil
}

func parseAttrList(text string, meta *AttrMetadata, o SerializeOption) (Value, error) {
	var elems []string
	if o.JSON {
		var err error
		if elems, err = jsonArray(text); err != nil {
			return nil, err
		}
	} else if strings.TrimSpace(text) != "" {
		elems = strings.Split(text, AttrListSeparator)
	}

	elem := meta.elem()
	list := make(AttrList, len(elems))
	for i, s := range elems {
		v, err := parseValue(s, elem, o)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}

// jsonArray decodes a JSON (or JSONC) array and returns its elements as
// tokens: strings are unquoted, anything else is kept as raw JSON text.
func jsonArray(text string) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), &raw); err != nil {
		return nil, &ParseError{Input: text, Message: "expected a JSON array", Err: err}
	}
	toks := make([]string, len(raw))
	for i, r := range raw {
		tok, err := jsonScalar(string(r))
		if err != nil {
			return nil, err
		}
		toks[i] = tok
	}
	return toks, nil
}

// jsonScalar unquotes a JSON string and returns any other JSON text trimmed.
func jsonScalar(text string) (string, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, `"`) {
		return text, nil
	}
	var s string
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return "", &ParseError{Input: text, Message: "invalid JSON string", Err: err}
	}
	return s, nil
}

func jsonString(text string, o SerializeOption) (string, error) {
	if o.JSON {
		return jsonScalar(text)
	}
	return text, nil
}

// DeserializeEnum parses one enum token: a numeric literal, the canonical
// constant name or the human name.
func DeserializeEnum(text string, enum *EnumMetadata) (int32, error) {
	if enum == nil {
		return 0, invalidParameter("nil enum metadata")
	}
	return parseEnum(strings.TrimSpace(text), enum)
}

// listMeta is the metadata the standalone list helpers parse against.
func listMeta(t ValueType) *AttrMetadata {
	return &AttrMetadata{ValueType: t}
}

// deserializeList maps a nil dst to no caller buffer. DeserializeValue tells
// the two apart by the interface: there a typed nil list, such as one released
// by Free, is a buffer of capacity zero.
func deserializeList[S ~[]E, E any](text string, t ValueType, dst S, opt *SerializeOption) (S, error) {
	var d Value
	if dst != nil {
		d, _ = any(dst).(Value)
	}
	v, err := DeserializeValue(text, listMeta(t), d, opt)
	if err != nil {
		return dst, err
	}
	return v.(S), nil
}

// DeserializeU8List parses "1,2,3" into dst; see DeserializeValue for the
// capacity rules. Unlike DeserializeValue, a nil dst always allocates; pass
// make(U8List, 0, n) to bound the output. The other list helpers behave the
// same way.
func DeserializeU8List(text string, dst U8List, opt *SerializeOption) (U8List, error) {
	return deserializeList(text, ValueTypeU8List, dst, opt)
}

func DeserializeS8List(text string, dst S8List, opt *SerializeOption) (S8List, error) {
	return deserializeList(text, ValueTypeS8List, dst, opt)
}

func DeserializeU16List(text string, dst U16List, opt *SerializeOption) (U16List, error) {
	return deserializeList(text, ValueTypeU16List, dst, opt)
}

func DeserializeS16List(text string, dst S16List, opt *SerializeOption) (S16List, error) {
	return deserializeList(text, ValueTypeS16List, dst, opt)
}

func DeserializeU32List(text string, dst U32List, opt *SerializeOption) (U32List, error) {
	return deserializeList(text, ValueTypeU32List, dst, opt)
}

func DeserializeS32List(text string, dst S32List, opt *SerializeOption) (S32List, error) {
	return deserializeList(text, ValueTypeS32List, dst, opt)
}

func DeserializeFloatList(text string, dst FloatList, opt *SerializeOption) (FloatList, error) {
	return deserializeList(text, ValueTypeFloatList, dst, opt)
}

// DeserializeObjList parses object ids, written in hex ("0x1a") or decimal.
func DeserializeObjList(text string, dst ObjList, opt *SerializeOption) (ObjList, error) {
	return deserializeList(text, ValueTypeObjList, dst, opt)
}

// DeserializeU32Range parses "min,max".
func DeserializeU32Range(text string, opt *SerializeOption) (U32Range, error) {
	v, err := parseRange(text, ValueTypeU32Range, optionOf(opt))
	if err != nil {
		return U32Range{}, err
	}
	return v.(U32Range), nil
}

// DeserializeS32Range parses "min,max".
func DeserializeS32Range(text string, opt *SerializeOption) (S32Range, error) {
	v, err := parseRange(text, ValueTypeS32Range, optionOf(opt))
	if err != nil {
		return S32Range{}, err
	}
	return v.(S32Range), nil
}
