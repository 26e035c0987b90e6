package taimeta

// DefaultListSize is the capacity Alloc gives a list when neither the caller
// nor the metadata asks for another size.
const DefaultListSize = 16

// MaxListSize bounds the capacity Alloc accepts. Larger requests fail with
// ErrNoMemory.
const MaxListSize = 1 << 20

// AllocInfo sizes the lists allocated by Alloc.
type AllocInfo struct {
	// ListSize is the capacity of the allocated list. Zero means the
	// metadata (or package) default.
	ListSize int

	// Reference, when set and ListSize is zero, sizes the allocation like
	// this value: a list gets len(Reference) elements, and each element of
	// an attrlist gets the length of the matching reference element.
	Reference Value
}

// Alloc initializes attr.Value for the attribute described by meta.
//
// Scalars are set to the metadata default, or to zero. Lists get a fresh,
// zeroed buffer whose length equals its capacity; each element of an attrlist
// is itself allocated with the element type. attr.ID is set to meta.AttrID.
func Alloc(meta *AttrMetadata, attr *Attribute, info *AllocInfo) error {
	if meta == nil || attr == nil {
		return invalidParameter("nil metadata or attribute")
	}
	if !meta.ValueType.Valid() {
		return invalidParameter("unsupported value type %v", meta.ValueType)
	}

	attr.ID = meta.AttrID
	if !meta.ValueType.IsList() {
		if meta.Default != nil {
			attr.Value = meta.Default
			return nil
		}
		attr.Value, _ = zeroValue(meta.ValueType)
		return nil
	}

	size := allocSize(meta, info)
	if size > MaxListSize {
		return ErrNoMemory
	}

	if meta.ValueType != ValueTypeAttrList {
		attr.Value = makeList(meta.ValueType, size)
		return nil
	}

	elem := meta.elem()
	ref, _ := referenceOf(info).(AttrList)
	list := make(AttrList, size)
	for i := range list {
		elemInfo := &AllocInfo{}
		if i < len(ref) {
			elemInfo.Reference = ref[i]
		}
		var a Attribute
		if err := Alloc(elem, &a, elemInfo); err != nil {
			return err
		}
		list[i] = a.Value
	}
	attr.Value = list
	return nil
}

func referenceOf(info *AllocInfo) Value {
	if info == nil {
		return nil
	}
	return info.Reference
}

func allocSize(meta *AttrMetadata, info *AllocInfo) int {
	if info != nil {
		if info.ListSize > 0 {
			return info.ListSize
		}
		if info.Reference != nil {
			return Len(info.Reference)
		}
	}
	if meta.DefaultListSize > 0 {
		return meta.DefaultListSize
	}
	return DefaultListSize
}

func makeList(t ValueType, n int) Value {
	switch t {
	case ValueTypeObjList:
		return make(ObjList, n)
	case ValueTypeCharList:
		return make(CharList, n)
	case ValueTypeU8List:
		return make(U8List, n)
	case ValueTypeS8List:
		return make(S8List, n)
	case ValueTypeU16List:
		return make(U16List, n)
	case ValueTypeS16List:
		return make(S16List, n)
	case ValueTypeU32List:
		return make(U32List, n)
	case ValueTypeS32List:
		return make(S32List, n)
	case ValueTypeFloatList:
		return make(FloatList, n)
	case ValueTypeAttrList:
		return make(AttrList, n)
	}
	return nil
}

// Free releases the buffers owned by attr.Value and leaves an empty list of
// the right type behind (length 0, nil buffer).
//
// Elements of an attrlist are released first, each according to its own
// type. Scalars need no release. Freeing an already freed value is a no-op.
func Free(meta *AttrMetadata, attr *Attribute) error {
	if meta == nil || attr == nil {
		return invalidParameter("nil metadata or attribute")
	}
	if !meta.ValueType.IsList() {
		return nil
	}
	if err := CheckValue(meta, attr.Value); err != nil {
		return err
	}
	if l, ok := attr.Value.(AttrList); ok {
		l = l[:cap(l)]
		for i, v := range l {
			l[i] = freeValue(v)
		}
	}
	attr.Value, _ = zeroValue(meta.ValueType)
	return nil
}

// freeValue releases an attrlist element. Elements of any shape are
// accepted so that heterogeneous lists are released correctly.
func freeValue(v Value) Value {
	if v == nil {
		return nil
	}
	t := v.ValueType()
	if !t.IsList() {
		return v
	}
	if l, ok := v.(AttrList); ok {
		l = l[:cap(l)]
		for i, e := range l {
			l[i] = freeValue(e)
		}
	}
	zero, _ := zeroValue(t)
	return zero
}

// DeepCopy copies src.Value into dst.Value.
//
// Scalars are assigned. Lists are copied into the buffer dst already owns:
// cap(dst) is the capacity and on success len(dst) == len(src). When any list
// (including any element of an attrlist) lacks capacity, DeepCopy returns a
// *BufferOverflowError carrying the needed size and leaves dst untouched.
func DeepCopy(meta *AttrMetadata, src, dst *Attribute) error {
	if meta == nil || src == nil || dst == nil {
		return invalidParameter("nil metadata or attribute")
	}
	if err := CheckValue(meta, src.Value); err != nil {
		return err
	}
	if !meta.ValueType.IsList() {
		dst.ID = src.ID
		dst.Value = src.Value
		return nil
	}
	if err := CheckValue(meta, dst.Value); err != nil {
		return err
	}

	sv, dv := src.Value, dst.Value
	if sv == nil {
		sv, _ = zeroValue(meta.ValueType)
	}
	if dv == nil {
		dv, _ = zeroValue(meta.ValueType)
	}

	if err := checkCopy(sv, dv); err != nil {
		return err
	}
	v, err := copyValue(sv, dv)
	if err != nil {
		return err
	}
	dst.ID = src.ID
	dst.Value = v
	return nil
}

// Clone returns a deep copy of v in freshly allocated buffers sized exactly
// to the source.
func Clone(meta *AttrMetadata, v Value) (Value, error) {
	if err := CheckValue(meta, v); err != nil {
		return nil, err
	}
	return cloneValue(v), nil
}

func cloneValue(v Value) Value {
	switch l := v.(type) {
	case ObjList:
		return cloneSlice(l)
	case CharList:
		return cloneSlice(l)
	case U8List:
		return cloneSlice(l)
	case S8List:
		return cloneSlice(l)
	case U16List:
		return cloneSlice(l)
	case S16List:
		return cloneSlice(l)
	case U32List:
		return cloneSlice(l)
	case S32List:
		return cloneSlice(l)
	case FloatList:
		return cloneSlice(l)
	case AttrList:
		if l == nil {
			return l
		}
		out := make(AttrList, len(l))
		for i, e := range l {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return append(make(S, 0, len(s)), s...)
}

// checkCopy verifies that copyValue(src, dst) will succeed without writing.
func checkCopy(src, dst Value) error {
	st := TypeOf(src)
	if !st.IsList() {
		return nil
	}
	if dst != nil && dst.ValueType() != st {
		return invalidParameter("cannot copy %v into %v", st, dst.ValueType())
	}
	n, c := Len(src), Cap(dst)
	if c < n {
		return &BufferOverflowError{Needed: n, Capacity: c}
	}
	if s, ok := src.(AttrList); ok {
		var d AttrList
		if dst != nil {
			d = dst.(AttrList)
		}
		d = d[:cap(d)]
		for i, e := range s {
			if err := checkCopy(e, d[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyValue(src, dst Value) (Value, error) {
	switch s := src.(type) {
	case ObjList:
		d, _ := dst.(ObjList)
		return copyInto(s, d)
	case CharList:
		d, _ := dst.(CharList)
		return copyInto(s, d)
	case U8List:
		d, _ := dst.(U8List)
		return copyInto(s, d)
	case S8List:
		d, _ := dst.(S8List)
		return copyInto(s, d)
	case U16List:
		d, _ := dst.(U16List)
		return copyInto(s, d)
	case S16List:
		d, _ := dst.(S16List)
		return copyInto(s, d)
	case U32List:
		d, _ := dst.(U32List)
		return copyInto(s, d)
	case S32List:
		d, _ := dst.(S32List)
		return copyInto(s, d)
	case FloatList:
		d, _ := dst.(FloatList)
		return copyInto(s, d)
	case AttrList:
		d, _ := dst.(AttrList)
		if cap(d) < len(s) {
			return d, &BufferOverflowError{Needed: len(s), Capacity: cap(d)}
		}
		d = d[:len(s)]
		for i, e := range s {
			v, err := copyValue(e, d[i])
			if err != nil {
				return nil, err
			}
			d[i] = v
		}
		return d, nil
	}
	return src, nil
}

// copyInto copies src into the buffer of dst, treating cap(dst) as capacity.
func copyInto[S ~[]E, E any](src, dst S) (S, error) {
	if cap(dst) < len(src) {
		return dst, &BufferOverflowError{Needed: len(src), Capacity: cap(dst)}
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst, nil
}
