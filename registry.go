package taimeta

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// ObjectInfo declares an object type and its attributes.
type ObjectInfo struct {
	Type ObjectType

	// Name is the canonical constant name, e.g. TAI_OBJECT_TYPE_MODULE.
	Name string

	// AttrPrefix is the prefix of every attribute name, e.g. TAI_MODULE_ATTR_.
	AttrPrefix string

	// AttrStart and AttrEnd bound the standard id band: [AttrStart, AttrEnd).
	// Ids in [CustomRangeStart, CustomRangeEnd) are always accepted as custom.
	AttrStart AttrID
	AttrEnd   AttrID

	Attributes []*AttrMetadata
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	custom []*AttrMetadata
}

// WithCustomAttributes adds vendor attributes to the object types they name.
// Their ids must lie in the custom band.
func WithCustomAttributes(attrs ...*AttrMetadata) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.custom = append(cfg.custom, attrs...)
	}
}

type objectTable struct {
	info     ObjectInfo
	standard []*AttrMetadata // indexed by id - AttrStart
	custom   map[AttrID]*AttrMetadata
}

// Registry is the immutable table of attribute metadata for a set of object
// types. It is safe for concurrent use: nothing is mutated after NewRegistry
// returns.
type Registry struct {
	objects map[ObjectType]*objectTable
	order   []ObjectType

	// byName indexes metadata by the xxh3 hash of the canonical name.
	// Collisions are resolved by comparing names.
	byName map[uint64][]*AttrMetadata
}

// NewRegistry validates objects and builds a registry over them.
//
// Metadata is copied; the registry never shares or modifies the caller's
// *AttrMetadata values.
func NewRegistry(objects []ObjectInfo, opts ...RegistryOption) (*Registry, error) {
	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry{
		objects: make(map[ObjectType]*objectTable, len(objects)),
		byName:  make(map[uint64][]*AttrMetadata),
	}

	for _, info := range objects {
		if _, dup := r.objects[info.Type]; dup {
			return nil, invalidParameter("duplicate object type %d (%s)", info.Type, info.Name)
		}
		if info.AttrEnd < info.AttrStart || info.AttrEnd > CustomRangeStart {
			return nil, invalidParameter("object %s: invalid attribute band [%d, %d)", info.Name, info.AttrStart, info.AttrEnd)
		}
		table := &objectTable{
			info:     info,
			standard: make([]*AttrMetadata, info.AttrEnd-info.AttrStart),
			custom:   make(map[AttrID]*AttrMetadata),
		}
		table.info.Attributes = nil
		r.objects[info.Type] = table
		r.order = append(r.order, info.Type)

		for _, m := range info.Attributes {
			if err := r.add(table, m); err != nil {
				return nil, err
			}
		}
	}

	for _, m := range cfg.custom {
		if m == nil {
			return nil, invalidParameter("nil custom attribute")
		}
		table, ok := r.objects[m.ObjectType]
		if !ok {
			return nil, invalidParameter("custom attribute %s: unknown object type %d", m.Name, m.ObjectType)
		}
		if !m.IsCustom() {
			return nil, invalidParameter("custom attribute %s: id %#x outside the custom band", m.Name, m.AttrID)
		}
		if err := r.add(table, m); err != nil {
			return nil, err
		}
	}

	for _, table := range r.objects {
		sort.Slice(table.info.Attributes, func(i, j int) bool {
			return table.info.Attributes[i].AttrID < table.info.Attributes[j].AttrID
		})
	}

	return r, nil
}

func (r *Registry) add(table *objectTable, src *AttrMetadata) error {
	if src == nil {
		return invalidParameter("object %s: nil attribute", table.info.Name)
	}
	if err := validateMetadata(src); err != nil {
		return fmt.Errorf("object %s: %w", table.info.Name, err)
	}

	m := *src
	m.ObjectType = table.info.Type

	switch {
	case m.AttrID >= table.info.AttrStart && m.AttrID < table.info.AttrEnd:
		idx := m.AttrID - table.info.AttrStart
		if table.standard[idx] != nil {
			return invalidParameter("object %s: duplicate attribute id %d", table.info.Name, m.AttrID)
		}
		table.standard[idx] = &m
	case m.IsCustom():
		if _, dup := table.custom[m.AttrID]; dup {
			return invalidParameter("object %s: duplicate custom attribute id %#x", table.info.Name, m.AttrID)
		}
		table.custom[m.AttrID] = &m
	default:
		return invalidParameter("object %s: attribute %s id %d out of range", table.info.Name, m.Name, m.AttrID)
	}

	if _, dup := r.MetadataByName(m.Name); dup {
		return invalidParameter("duplicate attribute name %s", m.Name)
	}
	h := xxh3.HashString(m.Name)
	r.byName[h] = append(r.byName[h], &m)
	table.info.Attributes = append(table.info.Attributes, &m)
	return nil
}

func validateMetadata(m *AttrMetadata) error {
	if m.Name == "" {
		return invalidParameter("attribute %d has no name", m.AttrID)
	}
	if !m.ValueType.Valid() {
		return invalidParameter("attribute %s: invalid value type %v", m.Name, m.ValueType)
	}
	if m.ValueType == ValueTypeAttrList {
		if !m.ElemValueType.Valid() || m.ElemValueType == ValueTypeAttrList {
			return invalidParameter("attribute %s: invalid element type %v", m.Name, m.ElemValueType)
		}
	}
	if m.Enum != nil {
		switch enumCarrier(m) {
		case ValueTypeS32, ValueTypeS32List:
		default:
			return invalidParameter("attribute %s: enum on %v value", m.Name, m.ValueType)
		}
	}
	if m.DefaultListSize < 0 || m.DefaultListSize > MaxListSize {
		return invalidParameter("attribute %s: default list size %d", m.Name, m.DefaultListSize)
	}
	if m.Default != nil {
		if err := CheckValue(m, m.Default); err != nil {
			return fmt.Errorf("attribute %s default: %w", m.Name, err)
		}
	}
	return nil
}

// enumCarrier returns the type holding the enum constants of m.
func enumCarrier(m *AttrMetadata) ValueType {
	if m.ValueType == ValueTypeAttrList {
		return m.ElemValueType
	}
	return m.ValueType
}

// Metadata returns the descriptor of attribute id of object type ot.
//
// An unknown object type, or an id outside both the standard and the custom
// band, is ErrInvalidParameter. An in-band id with no attribute is ErrNotFound.
func (r *Registry) Metadata(ot ObjectType, id AttrID) (*AttrMetadata, error) {
	table, ok := r.objects[ot]
	if !ok {
		return nil, invalidParameter("unknown object type %d", ot)
	}
	switch {
	case id >= table.info.AttrStart && id < table.info.AttrEnd:
		if m := table.standard[id-table.info.AttrStart]; m != nil {
			return m, nil
		}
	case id >= CustomRangeStart && id < CustomRangeEnd:
		if m, ok := table.custom[id]; ok {
			return m, nil
		}
	default:
		return nil, invalidParameter("attribute id %d out of range for %s", id, table.info.Name)
	}
	return nil, fmt.Errorf("%w: attribute %#x of %s", ErrNotFound, id, table.info.Name)
}

// MetadataByName returns the descriptor whose canonical name is exactly name.
// The lookup is case-sensitive and spans all object types.
func (r *Registry) MetadataByName(name string) (*AttrMetadata, bool) {
	for _, m := range r.byName[xxh3.HashString(name)] {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// AttrIDByName maps an attribute name back to its id.
//
// With opt.Human set, name is the short form typed by a human, dashed or not
// ("tx-laser-freq", "TX_LASER_FREQ"); it is re-normalized to the canonical
// form with the object's attribute prefix before the by-name lookup.
// Otherwise name must be the exact canonical constant name.
func (r *Registry) AttrIDByName(ot ObjectType, name string, opt *SerializeOption) (AttrID, error) {
	m, err := r.MetadataByObjectName(ot, name, opt)
	if err != nil {
		return 0, err
	}
	return m.AttrID, nil
}

// MetadataByObjectName is AttrIDByName returning the whole descriptor.
func (r *Registry) MetadataByObjectName(ot ObjectType, name string, opt *SerializeOption) (*AttrMetadata, error) {
	table, ok := r.objects[ot]
	if !ok {
		return nil, invalidParameter("unknown object type %d", ot)
	}
	if name == "" {
		return nil, invalidParameter("empty attribute name")
	}
	canonical := name
	if optionOf(opt).Human {
		canonical = table.info.AttrPrefix + CanonicalizeName(name)
	}
	if m, ok := r.MetadataByName(canonical); ok && m.ObjectType == ot {
		return m, nil
	}
	return nil, fmt.Errorf("%w: attribute %q of %s", ErrNotFound, name, table.info.Name)
}

// Object returns the declaration of object type ot. Attributes are sorted by id.
func (r *Registry) Object(ot ObjectType) (ObjectInfo, bool) {
	table, ok := r.objects[ot]
	if !ok {
		return ObjectInfo{}, false
	}
	return table.info.clone(), true
}

// Objects returns all object declarations in registration order.
func (r *Registry) Objects() []ObjectInfo {
	infos := make([]ObjectInfo, 0, len(r.order))
	for _, ot := range r.order {
		infos = append(infos, r.objects[ot].info.clone())
	}
	return infos
}

// ObjectByName returns the object type whose canonical name is name, or whose
// name with the common "TAI_OBJECT_TYPE_" style prefix stripped and humanized is name.
func (r *Registry) ObjectByName(name string) (ObjectInfo, bool) {
	for _, ot := range r.order {
		info := r.objects[ot].info
		if info.Name == name || objectShortName(info.Name) == name {
			return info.clone(), true
		}
	}
	return ObjectInfo{}, false
}

// Attributes returns the metadata of every attribute of ot, sorted by id.
func (r *Registry) Attributes(ot ObjectType) []*AttrMetadata {
	table, ok := r.objects[ot]
	if !ok {
		return nil
	}
	return append([]*AttrMetadata(nil), table.info.Attributes...)
}

// clone copies the attribute slice so callers cannot reach the registry's
// table through it.
func (info ObjectInfo) clone() ObjectInfo {
	info.Attributes = append([]*AttrMetadata(nil), info.Attributes...)
	return info
}

const objectTypeMarker = "_OBJECT_TYPE_"

func objectShortName(name string) string {
	if i := strings.Index(name, objectTypeMarker); i >= 0 {
		name = name[i+len(objectTypeMarker):]
	}
	return HumanizeName(name)
}
