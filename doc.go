// Package taimeta is a metadata-driven codec for the attribute values of
// Transponder Abstraction Interface (TAI) objects.
//
// Every object type exposes a fixed set of attributes, and every attribute is
// described by an AttrMetadata: its value type, flags, enum names and default.
// Given only that descriptor, the package allocates, copies and frees
// attribute values, and converts them to and from text.
//
// # Values
//
// Value is a closed set of concrete types, one per ValueType tag. Lists are Go
// slices: len is the number of populated elements and cap the capacity of the
// buffer. Operations that write into a caller's list (DeepCopy,
// DeserializeValue, UnmarshalValue) never grow it; when the result does not
// fit they return a *BufferOverflowError and leave the destination unchanged.
//
// # Registry
//
// A Registry maps (object type, attribute id) pairs and canonical names to
// metadata. It is immutable once built and safe for concurrent use. The tai
// package provides the registry of the standard TAI objects:
//
//	meta, err := tai.Registry().Metadata(tai.ObjectTypeModule, tai.ModuleAttrOperStatus)
//
// # Lifecycle
//
//	var attr taimeta.Attribute
//	if err := taimeta.Alloc(meta, &attr, nil); err != nil {
//	    return err
//	}
//	defer taimeta.Free(meta, &attr)
//
// # Text form
//
// AppendAttribute, FormatAttribute, SerializeAttribute and WriteAttribute
// render an attribute; DeserializeAttribute and DeserializeValue parse it
// back. SerializeOption selects the form:
//
//	TAI_MODULE_ATTR_OPER_STATUS = TAI_MODULE_OPER_STATUS_READY    (default)
//	oper-status | ready                                           (Human)
//	ready                                                         (Human, ValueOnly)
//	{"oper-status":"ready"}                                       (Human, JSON)
//
// Numeric lists are joined with ",", lists of flag enums with "|", attribute
// lists with ", ", and ranges are written "min,max". Floats always carry six
// decimals. An attribute list holding a single empty element can only be
// written as JSON ([[]]); NaN and infinite floats cannot be written as JSON.
//
// # Binary form
//
// MarshalValue and UnmarshalValue encode values as deterministic CBOR.
//
// # Slots
//
// A SlotPool keeps allocated values of one attribute and hands each to one
// owner at a time, so hot paths can deserialize into a reused buffer.
//
// # Error Handling
//
// Every error matches one of ErrInvalidParameter, ErrNotFound,
// ErrUnknownEnumValue, ErrUnknownAttrValue, ErrBufferOverflow or ErrNoMemory
// with errors.Is. StatusOf returns the matching Status.
package taimeta
