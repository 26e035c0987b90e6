package taimeta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// attributeFile is the YAML layout of a vendor attribute table:
//
//	attributes:
//	  - object: networkif
//	    id: 0x10000001
//	    name: TAI_NETWORK_INTERFACE_ATTR_CUSTOM_LOOPBACK
//	    type: s32
//	    flags: [create_only]
//	    default: none
//	    enum:
//	      name: vendor_loopback_t
//	      prefix: VENDOR_LOOPBACK_
//	      values:
//	        - {value: 0, name: VENDOR_LOOPBACK_NONE}
//	        - {value: 1, name: VENDOR_LOOPBACK_SHALLOW}
type attributeFile struct {
	Attributes []attributeEntry `yaml:"attributes"`
}

type attributeEntry struct {
	Object      string    `yaml:"object"`
	ID          int64     `yaml:"id"`
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`
	ElementType string    `yaml:"element_type,omitempty"`
	Flags       []string  `yaml:"flags,omitempty"`
	Brief       string    `yaml:"brief,omitempty"`
	Default     *string   `yaml:"default,omitempty"`
	ListSize    int       `yaml:"list_size,omitempty"`
	Enum        *enumYAML `yaml:"enum,omitempty"`
}

type enumYAML struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Flags  bool   `yaml:"flags,omitempty"`
	Values []struct {
		Value int32  `yaml:"value"`
		Name  string `yaml:"name"`
	} `yaml:"values"`
}

// ParseAttributesYAML reads attribute descriptors from a YAML table, for use
// with WithCustomAttributes.
//
// The object of each entry is resolved against objects by number, canonical
// name or short name ("networkif"). Defaults are given in the value
// text form and parsed with DeserializeValue.
func ParseAttributesYAML(data []byte, objects []ObjectInfo) ([]*AttrMetadata, error) {
	var file attributeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Message: "invalid attribute table", Err: err}
	}

	attrs := make([]*AttrMetadata, 0, len(file.Attributes))
	for i, e := range file.Attributes {
		m, err := e.metadata(objects)
		if err != nil {
			return nil, fmt.Errorf("attribute %d (%s): %w", i, e.Name, err)
		}
		attrs = append(attrs, m)
	}
	return attrs, nil
}

// LoadAttributesYAML reads the YAML table at path; see ParseAttributesYAML.
func LoadAttributesYAML(path string, objects []ObjectInfo) ([]*AttrMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	attrs, err := ParseAttributesYAML(data, objects)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return attrs, nil
}

func (e *attributeEntry) metadata(objects []ObjectInfo) (*AttrMetadata, error) {
	ot, err := resolveObject(e.Object, objects)
	if err != nil {
		return nil, err
	}
	if e.ID < 0 || e.ID >= int64(CustomRangeEnd) {
		return nil, invalidParameter("id %d out of range", e.ID)
	}
	vt, err := ParseValueType(e.Type)
	if err != nil {
		return nil, err
	}
	m := &AttrMetadata{
		AttrID:          AttrID(e.ID),
		ObjectType:      ot,
		Name:            e.Name,
		ValueType:       vt,
		Brief:           e.Brief,
		DefaultListSize: e.ListSize,
	}
	if e.ElementType != "" {
		if m.ElemValueType, err = ParseValueType(e.ElementType); err != nil {
			return nil, err
		}
	}
	for _, f := range e.Flags {
		flag, err := ParseAttrFlag(f)
		if err != nil {
			return nil, err
		}
		m.Flags |= flag
	}
	if e.Enum != nil {
		enum := &EnumMetadata{
			Name:   e.Enum.Name,
			Prefix: e.Enum.Prefix,
			Flags:  e.Enum.Flags,
		}
		for _, v := range e.Enum.Values {
			enum.Values = append(enum.Values, EnumValue{Value: v.Value, Name: v.Name})
		}
		m.Enum = enum
	}
	if e.Default != nil {
		v, err := DeserializeValue(*e.Default, m, nil, &SerializeOption{ValueOnly: true})
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		m.Default = v
	}
	return m, nil
}

func resolveObject(s string, objects []ObjectInfo) (ObjectType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		for _, info := range objects {
			if info.Type == ObjectType(n) {
				return info.Type, nil
			}
		}
		return 0, invalidParameter("unknown object type %d", n)
	}
	for _, info := range objects {
		if info.Name == s || objectShortName(info.Name) == s {
			return info.Type, nil
		}
	}
	return 0, invalidParameter("unknown object type %q", s)
}
