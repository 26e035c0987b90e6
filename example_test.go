package taimeta_test

import (
	"fmt"
	"log"

	"github.com/oopt-tai/taimeta"
	"github.com/oopt-tai/taimeta/tai"
)

func ExampleFormatAttribute() {
	meta, err := tai.Metadata(tai.ObjectTypeModule, tai.ModuleAttrOperStatus)
	if err != nil {
		log.Fatal(err)
	}

	attr := &taimeta.Attribute{ID: tai.ModuleAttrOperStatus, Value: taimeta.S32(tai.ModuleOperStatusReady)}

	s, err := taimeta.FormatAttribute(meta, attr, &taimeta.SerializeOption{Human: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)

	s, err = taimeta.FormatAttribute(meta, attr, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)

	// Output:
	// oper-status | ready
	// TAI_MODULE_ATTR_OPER_STATUS = TAI_MODULE_OPER_STATUS_READY
}

func ExampleDeserializeAttribute() {
	meta, ok := tai.MetadataByName("TAI_NETWORK_INTERFACE_ATTR_TX_ALIGN_STATUS")
	if !ok {
		log.Fatal("unknown attribute")
	}

	var attr taimeta.Attribute
	if err := taimeta.Alloc(meta, &attr, nil); err != nil {
		log.Fatal(err)
	}
	defer taimeta.Free(meta, &attr)

	opt := &taimeta.SerializeOption{Human: true}
	if err := taimeta.DeserializeAttribute("tx-align-status | loss|timing", meta, &attr, opt); err != nil {
		log.Fatal(err)
	}
	fmt.Println(attr.Value)

	// Output:
	// [1 16]
}

func ExampleSerializeAttribute() {
	meta, err := tai.Metadata(tai.ObjectTypeModule, tai.ModuleAttrTemp)
	if err != nil {
		log.Fatal(err)
	}
	attr := &taimeta.Attribute{ID: tai.ModuleAttrTemp, Value: taimeta.Float(36.5)}
	opt := &taimeta.SerializeOption{ValueOnly: true}

	// A nil buffer reports the size needed.
	n, _ := taimeta.SerializeAttribute(nil, meta, attr, opt)
	buf := make([]byte, n)
	if _, err := taimeta.SerializeAttribute(buf, meta, attr, opt); err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(buf))

	// Output:
	// 36.500000
}

func ExampleUnmarshalValue() {
	meta, err := tai.Metadata(tai.ObjectTypeHostInterface, tai.HostInterfaceAttrLaneFault)
	if err != nil {
		log.Fatal(err)
	}
	v := taimeta.AttrList{
		taimeta.S32List{tai.HostInterfaceLaneFaultLossOfLock},
		taimeta.S32List{},
	}

	data, err := taimeta.MarshalValue(meta, v)
	if err != nil {
		log.Fatal(err)
	}
	got, err := taimeta.UnmarshalValue(data, meta, nil)
	if err != nil {
		log.Fatal(err)
	}
	s, err := taimeta.FormatValue(meta, got, &taimeta.SerializeOption{Human: true, JSON: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)

	// Output:
	// [["loss-of-lock"],[]]
}
