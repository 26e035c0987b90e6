// Package tai holds the metadata tables of the Transponder Abstraction
// Interface objects: the module, its host interfaces and its network
// interfaces.
//
// The tables are plain data consumed by the taimeta codec. Registry returns
// the shared registry built from them; NewRegistry builds another one, for
// example with vendor attributes:
//
//	custom, err := taimeta.LoadAttributesYAML("vendor.yaml", tai.Objects())
//	if err != nil {
//		return err
//	}
//	reg, err := tai.NewRegistry(taimeta.WithCustomAttributes(custom...))
package tai

import (
	"sync"

	"github.com/oopt-tai/taimeta"
)

// Object types
const (
	ObjectTypeNull             taimeta.ObjectType = 0
	ObjectTypeModule           taimeta.ObjectType = 1
	ObjectTypeHostInterface    taimeta.ObjectType = 2
	ObjectTypeNetworkInterface taimeta.ObjectType = 3
)

// Objects returns the declarations of every TAI object type. The result is a
// fresh copy and may be modified by the caller.
func Objects() []taimeta.ObjectInfo {
	return []taimeta.ObjectInfo{
		moduleObject(),
		hostInterfaceObject(),
		networkInterfaceObject(),
	}
}

// NewRegistry builds a registry over the TAI objects.
func NewRegistry(opts ...taimeta.RegistryOption) (*taimeta.Registry, error) {
	return taimeta.NewRegistry(Objects(), opts...)
}

var registry = sync.OnceValue(func() *taimeta.Registry {
	r, err := NewRegistry()
	if err != nil {
		panic("tai: invalid metadata table: " + err.Error())
	}
	return r
})

// Registry returns the registry of the standard TAI attributes. It is built
// on first use and shared by all callers.
func Registry() *taimeta.Registry {
	return registry()
}

// Metadata looks up a standard attribute; see taimeta.Registry.Metadata.
func Metadata(ot taimeta.ObjectType, id taimeta.AttrID) (*taimeta.AttrMetadata, error) {
	return Registry().Metadata(ot, id)
}

// MetadataByName looks up a standard attribute by its canonical name.
func MetadataByName(name string) (*taimeta.AttrMetadata, bool) {
	return Registry().MetadataByName(name)
}

func attr(id taimeta.AttrID, name string, vt taimeta.ValueType, flags taimeta.AttrFlags, brief string) *taimeta.AttrMetadata {
	return &taimeta.AttrMetadata{
		AttrID:    id,
		Name:      name,
		ValueType: vt,
		Flags:     flags,
		Brief:     brief,
	}
}

func enumAttr(id taimeta.AttrID, name string, vt taimeta.ValueType, enum *taimeta.EnumMetadata, flags taimeta.AttrFlags, brief string) *taimeta.AttrMetadata {
	m := attr(id, name, vt, flags, brief)
	m.Enum = enum
	return m
}

func serializeEnum(enum *taimeta.EnumMetadata, v int32, opt *taimeta.SerializeOption) (string, error) {
	return taimeta.SerializeEnum(enum, v, opt)
}

func deserializeEnum(enum *taimeta.EnumMetadata, text string) (int32, error) {
	return taimeta.DeserializeEnum(text, enum)
}
