package tai

import "github.com/oopt-tai/taimeta"

// Network interface attribute ids
const (
	NetworkInterfaceAttrIndex taimeta.AttrID = iota
	NetworkInterfaceAttrTxAlignStatus
	NetworkInterfaceAttrRxAlignStatus
	NetworkInterfaceAttrTxEnable
	NetworkInterfaceAttrTxGridSpacing
	NetworkInterfaceAttrTxChannel
	NetworkInterfaceAttrOutputPower
	NetworkInterfaceAttrCurrentOutputPower
	NetworkInterfaceAttrTxLaserFreq
	NetworkInterfaceAttrTxFineTuneLaserFreq
	networkInterfaceAttrEnd
)

// Network interface transmit alignment status (bit flags)
const (
	NetworkInterfaceTxAlignStatusLoss     int32 = 0x01
	NetworkInterfaceTxAlignStatusOut      int32 = 0x02
	NetworkInterfaceTxAlignStatusCMULock  int32 = 0x04
	NetworkInterfaceTxAlignStatusRefClock int32 = 0x08
	NetworkInterfaceTxAlignStatusTiming   int32 = 0x10
)

// Network interface receive alignment status (bit flags)
const (
	NetworkInterfaceRxAlignStatusModemSync int32 = 0x01
	NetworkInterfaceRxAlignStatusModemLock int32 = 0x02
	NetworkInterfaceRxAlignStatusLoss      int32 = 0x04
	NetworkInterfaceRxAlignStatusOut       int32 = 0x08
	NetworkInterfaceRxAlignStatusTiming    int32 = 0x10
)

// Network interface transmit channel grid spacing
const (
	NetworkInterfaceTxGridSpacingUnknown int32 = iota
	NetworkInterfaceTxGridSpacing100GHz
	NetworkInterfaceTxGridSpacing50GHz
	NetworkInterfaceTxGridSpacing33GHz
	NetworkInterfaceTxGridSpacing25GHz
	NetworkInterfaceTxGridSpacing12_5GHz
	NetworkInterfaceTxGridSpacing6_25GHz
)

var NetworkInterfaceTxAlignStatus = &taimeta.EnumMetadata{
	Name:   "tai_network_interface_tx_align_status_t",
	Prefix: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_",
	Flags:  true,
	Values: []taimeta.EnumValue{
		{Value: NetworkInterfaceTxAlignStatusLoss, Name: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_LOSS"},
		{Value: NetworkInterfaceTxAlignStatusOut, Name: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_OUT"},
		{Value: NetworkInterfaceTxAlignStatusCMULock, Name: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_CMU_LOCK"},
		{Value: NetworkInterfaceTxAlignStatusRefClock, Name: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_REF_CLOCK"},
		{Value: NetworkInterfaceTxAlignStatusTiming, Name: "TAI_NETWORK_INTERFACE_TX_ALIGN_STATUS_TIMING"},
	},
}

var NetworkInterfaceRxAlignStatus = &taimeta.EnumMetadata{
	Name:   "tai_network_interface_rx_align_status_t",
	Prefix: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_",
	Flags:  true,
	Values: []taimeta.EnumValue{
		{Value: NetworkInterfaceRxAlignStatusModemSync, Name: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_MODEM_SYNC"},
		{Value: NetworkInterfaceRxAlignStatusModemLock, Name: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_MODEM_LOCK"},
		{Value: NetworkInterfaceRxAlignStatusLoss, Name: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_LOSS"},
		{Value: NetworkInterfaceRxAlignStatusOut, Name: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_OUT"},
		{Value: NetworkInterfaceRxAlignStatusTiming, Name: "TAI_NETWORK_INTERFACE_RX_ALIGN_STATUS_TIMING"},
	},
}

var NetworkInterfaceTxGridSpacing = &taimeta.EnumMetadata{
	Name:   "tai_network_interface_tx_grid_spacing_t",
	Prefix: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_",
	Values: []taimeta.EnumValue{
		{Value: NetworkInterfaceTxGridSpacingUnknown, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_UNKNOWN"},
		{Value: NetworkInterfaceTxGridSpacing100GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_100_GHZ"},
		{Value: NetworkInterfaceTxGridSpacing50GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_50_GHZ"},
		{Value: NetworkInterfaceTxGridSpacing33GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_33_GHZ"},
		{Value: NetworkInterfaceTxGridSpacing25GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_25_GHZ"},
		{Value: NetworkInterfaceTxGridSpacing12_5GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_12_5_GHZ"},
		{Value: NetworkInterfaceTxGridSpacing6_25GHz, Name: "TAI_NETWORK_INTERFACE_TX_GRID_SPACING_6_25_GHZ"},
	},
}

func networkInterfaceObject() taimeta.ObjectInfo {
	const ro = taimeta.FlagReadOnly

	txEnable := attr(NetworkInterfaceAttrTxEnable, "TAI_NETWORK_INTERFACE_ATTR_TX_ENABLE", taimeta.ValueTypeBool, 0,
		"TX Enable")
	txEnable.Default = taimeta.Bool(true)

	return taimeta.ObjectInfo{
		Type:       ObjectTypeNetworkInterface,
		Name:       "TAI_OBJECT_TYPE_NETWORKIF",
		AttrPrefix: "TAI_NETWORK_INTERFACE_ATTR_",
		AttrStart:  NetworkInterfaceAttrIndex,
		AttrEnd:    networkInterfaceAttrEnd,
		Attributes: []*taimeta.AttrMetadata{
			attr(NetworkInterfaceAttrIndex, "TAI_NETWORK_INTERFACE_ATTR_INDEX", taimeta.ValueTypeU32,
				taimeta.FlagMandatoryOnCreate|taimeta.FlagCreateOnly|taimeta.FlagKey,
				"The location of the network interface"),
			enumAttr(NetworkInterfaceAttrTxAlignStatus, "TAI_NETWORK_INTERFACE_ATTR_TX_ALIGN_STATUS", taimeta.ValueTypeS32List,
				NetworkInterfaceTxAlignStatus, ro, "The transmit alignment status"),
			enumAttr(NetworkInterfaceAttrRxAlignStatus, "TAI_NETWORK_INTERFACE_ATTR_RX_ALIGN_STATUS", taimeta.ValueTypeS32List,
				NetworkInterfaceRxAlignStatus, ro, "The receive alignment status"),
			txEnable,
			enumAttr(NetworkInterfaceAttrTxGridSpacing, "TAI_NETWORK_INTERFACE_ATTR_TX_GRID_SPACING", taimeta.ValueTypeS32,
				NetworkInterfaceTxGridSpacing, 0, "TX Grid Spacing"),
			attr(NetworkInterfaceAttrTxChannel, "TAI_NETWORK_INTERFACE_ATTR_TX_CHANNEL", taimeta.ValueTypeU16, 0,
				"TX Channel Number"),
			attr(NetworkInterfaceAttrOutputPower, "TAI_NETWORK_INTERFACE_ATTR_OUTPUT_POWER", taimeta.ValueTypeFloat, 0,
				"The TX output power in dBm"),
			attr(NetworkInterfaceAttrCurrentOutputPower, "TAI_NETWORK_INTERFACE_ATTR_CURRENT_OUTPUT_POWER", taimeta.ValueTypeFloat, ro,
				"The current measured TX output power in dBm"),
			attr(NetworkInterfaceAttrTxLaserFreq, "TAI_NETWORK_INTERFACE_ATTR_TX_LASER_FREQ", taimeta.ValueTypeU64, ro,
				"The TX laser frequency in Hz"),
			attr(NetworkInterfaceAttrTxFineTuneLaserFreq, "TAI_NETWORK_INTERFACE_ATTR_TX_FINE_TUNE_LASER_FREQ", taimeta.ValueTypeU64, 0,
				"The TX laser fine tune frequency in Hz"),
		},
	}
}

// DeserializeNetworkInterfaceAttr maps a network interface attribute name,
// dashed in human mode ("tx-laser-freq") and canonical otherwise, to its id.
func DeserializeNetworkInterfaceAttr(name string, opt *taimeta.SerializeOption) (taimeta.AttrID, error) {
	return Registry().AttrIDByName(ObjectTypeNetworkInterface, name, opt)
}

func SerializeNetworkInterfaceTxAlignStatus(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(NetworkInterfaceTxAlignStatus, v, opt)
}

func DeserializeNetworkInterfaceTxAlignStatus(text string) (int32, error) {
	return deserializeEnum(NetworkInterfaceTxAlignStatus, text)
}

func SerializeNetworkInterfaceRxAlignStatus(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(NetworkInterfaceRxAlignStatus, v, opt)
}

func DeserializeNetworkInterfaceRxAlignStatus(text string) (int32, error) {
	return deserializeEnum(NetworkInterfaceRxAlignStatus, text)
}

func SerializeNetworkInterfaceTxGridSpacing(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(NetworkInterfaceTxGridSpacing, v, opt)
}

func DeserializeNetworkInterfaceTxGridSpacing(text string) (int32, error) {
	return deserializeEnum(NetworkInterfaceTxGridSpacing, text)
}
