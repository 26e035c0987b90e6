package tai

import "github.com/oopt-tai/taimeta"

// Host interface attribute ids
const (
	HostInterfaceAttrIndex taimeta.AttrID = iota
	HostInterfaceAttrLaneFault
	HostInterfaceAttrTxAlignStatus
	HostInterfaceAttrFECType
	hostInterfaceAttrEnd
)

// Host interface lane faults (bit flags)
const (
	HostInterfaceLaneFaultLossOfLock int32 = 0x01
	HostInterfaceLaneFaultTxFIFOErr  int32 = 0x02
)

// Host interface transmit alignment status (bit flags)
const (
	HostInterfaceTxAlignStatusCDRLockFault int32 = 0x01
	HostInterfaceTxAlignStatusLoss         int32 = 0x02
	HostInterfaceTxAlignStatusOut          int32 = 0x04
	HostInterfaceTxAlignStatusDeskewLock   int32 = 0x08
)

// Host interface FEC types
const (
	HostInterfaceFECTypeNone int32 = iota
	HostInterfaceFECTypeRS
	HostInterfaceFECTypeFC
)

var HostInterfaceLaneFault = &taimeta.EnumMetadata{
	Name:   "tai_host_interface_lane_fault_t",
	Prefix: "TAI_HOST_INTERFACE_LANE_FAULT_",
	Flags:  true,
	Values: []taimeta.EnumValue{
		{Value: HostInterfaceLaneFaultLossOfLock, Name: "TAI_HOST_INTERFACE_LANE_FAULT_LOSS_OF_LOCK"},
		{Value: HostInterfaceLaneFaultTxFIFOErr, Name: "TAI_HOST_INTERFACE_LANE_FAULT_TX_FIFO_ERR"},
	},
}

var HostInterfaceTxAlignStatus = &taimeta.EnumMetadata{
	Name:   "tai_host_interface_tx_align_status_t",
	Prefix: "TAI_HOST_INTERFACE_TX_ALIGN_STATUS_",
	Flags:  true,
	Values: []taimeta.EnumValue{
		{Value: HostInterfaceTxAlignStatusCDRLockFault, Name: "TAI_HOST_INTERFACE_TX_ALIGN_STATUS_CDR_LOCK_FAULT"},
		{Value: HostInterfaceTxAlignStatusLoss, Name: "TAI_HOST_INTERFACE_TX_ALIGN_STATUS_LOSS"},
		{Value: HostInterfaceTxAlignStatusOut, Name: "TAI_HOST_INTERFACE_TX_ALIGN_STATUS_OUT"},
		{Value: HostInterfaceTxAlignStatusDeskewLock, Name: "TAI_HOST_INTERFACE_TX_ALIGN_STATUS_DESKEW_LOCK"},
	},
}

var HostInterfaceFECType = &taimeta.EnumMetadata{
	Name:   "tai_host_interface_fec_type_t",
	Prefix: "TAI_HOST_INTERFACE_FEC_TYPE_",
	Values: []taimeta.EnumValue{
		{Value: HostInterfaceFECTypeNone, Name: "TAI_HOST_INTERFACE_FEC_TYPE_NONE"},
		{Value: HostInterfaceFECTypeRS, Name: "TAI_HOST_INTERFACE_FEC_TYPE_RS"},
		{Value: HostInterfaceFECTypeFC, Name: "TAI_HOST_INTERFACE_FEC_TYPE_FC"},
	},
}

func hostInterfaceObject() taimeta.ObjectInfo {
	laneFault := enumAttr(HostInterfaceAttrLaneFault, "TAI_HOST_INTERFACE_ATTR_LANE_FAULT", taimeta.ValueTypeAttrList,
		HostInterfaceLaneFault, taimeta.FlagReadOnly, "The faults of each lane")
	laneFault.ElemValueType = taimeta.ValueTypeS32List
	laneFault.DefaultListSize = 8

	fecType := enumAttr(HostInterfaceAttrFECType, "TAI_HOST_INTERFACE_ATTR_FEC_TYPE", taimeta.ValueTypeS32,
		HostInterfaceFECType, 0, "The FEC type")
	fecType.Default = taimeta.S32(HostInterfaceFECTypeNone)

	return taimeta.ObjectInfo{
		Type:       ObjectTypeHostInterface,
		Name:       "TAI_OBJECT_TYPE_HOSTIF",
		AttrPrefix: "TAI_HOST_INTERFACE_ATTR_",
		AttrStart:  HostInterfaceAttrIndex,
		AttrEnd:    hostInterfaceAttrEnd,
		Attributes: []*taimeta.AttrMetadata{
			attr(HostInterfaceAttrIndex, "TAI_HOST_INTERFACE_ATTR_INDEX", taimeta.ValueTypeU32,
				taimeta.FlagMandatoryOnCreate|taimeta.FlagCreateOnly|taimeta.FlagKey,
				"The location of the host interface"),
			laneFault,
			enumAttr(HostInterfaceAttrTxAlignStatus, "TAI_HOST_INTERFACE_ATTR_TX_ALIGN_STATUS", taimeta.ValueTypeS32List,
				HostInterfaceTxAlignStatus, taimeta.FlagReadOnly, "The transmit alignment status"),
			fecType,
		},
	}
}

// DeserializeHostInterfaceAttr maps a host interface attribute name,
// dashed in human mode and canonical otherwise, to its id.
func DeserializeHostInterfaceAttr(name string, opt *taimeta.SerializeOption) (taimeta.AttrID, error) {
	return Registry().AttrIDByName(ObjectTypeHostInterface, name, opt)
}

func SerializeHostInterfaceLaneFault(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(HostInterfaceLaneFault, v, opt)
}

func DeserializeHostInterfaceLaneFault(text string) (int32, error) {
	return deserializeEnum(HostInterfaceLaneFault, text)
}

func SerializeHostInterfaceTxAlignStatus(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(HostInterfaceTxAlignStatus, v, opt)
}

func DeserializeHostInterfaceTxAlignStatus(text string) (int32, error) {
	return deserializeEnum(HostInterfaceTxAlignStatus, text)
}

func SerializeHostInterfaceFECType(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(HostInterfaceFECType, v, opt)
}

func DeserializeHostInterfaceFECType(text string) (int32, error) {
	return deserializeEnum(HostInterfaceFECType, text)
}
