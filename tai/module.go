package tai

import "github.com/oopt-tai/taimeta"

// Module attribute ids
const (
	ModuleAttrLocation taimeta.AttrID = iota
	ModuleAttrVendorName
	ModuleAttrVendorPartNumber
	ModuleAttrVendorSerialNumber
	ModuleAttrFirmwareVersions
	ModuleAttrOperStatus
	ModuleAttrTemp
	ModuleAttrPower
	ModuleAttrNumHostInterfaces
	ModuleAttrNumNetworkInterfaces
	ModuleAttrAdminStatus
	moduleAttrEnd
)

// Module operational status
const (
	ModuleOperStatusUnknown int32 = iota
	ModuleOperStatusInitialize
	ModuleOperStatusReady
)

// Module administrative status
const (
	ModuleAdminStatusUnknown int32 = iota
	ModuleAdminStatusDown
	ModuleAdminStatusUp
)

var ModuleOperStatus = &taimeta.EnumMetadata{
	Name:   "tai_module_oper_status_t",
	Prefix: "TAI_MODULE_OPER_STATUS_",
	Values: []taimeta.EnumValue{
		{Value: ModuleOperStatusUnknown, Name: "TAI_MODULE_OPER_STATUS_UNKNOWN"},
		{Value: ModuleOperStatusInitialize, Name: "TAI_MODULE_OPER_STATUS_INITIALIZE"},
		{Value: ModuleOperStatusReady, Name: "TAI_MODULE_OPER_STATUS_READY"},
	},
}

var ModuleAdminStatus = &taimeta.EnumMetadata{
	Name:   "tai_module_admin_status_t",
	Prefix: "TAI_MODULE_ADMIN_STATUS_",
	Values: []taimeta.EnumValue{
		{Value: ModuleAdminStatusUnknown, Name: "TAI_MODULE_ADMIN_STATUS_UNKNOWN"},
		{Value: ModuleAdminStatusDown, Name: "TAI_MODULE_ADMIN_STATUS_DOWN"},
		{Value: ModuleAdminStatusUp, Name: "TAI_MODULE_ADMIN_STATUS_UP"},
	},
}

func moduleObject() taimeta.ObjectInfo {
	const ro = taimeta.FlagReadOnly

	adminStatus := enumAttr(ModuleAttrAdminStatus, "TAI_MODULE_ATTR_ADMIN_STATUS", taimeta.ValueTypeS32, ModuleAdminStatus, 0,
		"The administrative status of the module")
	adminStatus.Default = taimeta.S32(ModuleAdminStatusUp)

	return taimeta.ObjectInfo{
		Type:       ObjectTypeModule,
		Name:       "TAI_OBJECT_TYPE_MODULE",
		AttrPrefix: "TAI_MODULE_ATTR_",
		AttrStart:  ModuleAttrLocation,
		AttrEnd:    moduleAttrEnd,
		Attributes: []*taimeta.AttrMetadata{
			attr(ModuleAttrLocation, "TAI_MODULE_ATTR_LOCATION", taimeta.ValueTypeCharData,
				taimeta.FlagMandatoryOnCreate|taimeta.FlagCreateOnly|taimeta.FlagKey,
				"The location of the module"),
			attr(ModuleAttrVendorName, "TAI_MODULE_ATTR_VENDOR_NAME", taimeta.ValueTypeCharData, ro,
				"The module vendor's name"),
			attr(ModuleAttrVendorPartNumber, "TAI_MODULE_ATTR_VENDOR_PART_NUMBER", taimeta.ValueTypeCharData, ro,
				"The module vendor's part number"),
			attr(ModuleAttrVendorSerialNumber, "TAI_MODULE_ATTR_VENDOR_SERIAL_NUMBER", taimeta.ValueTypeCharData, ro,
				"The module vendor's serial number"),
			attr(ModuleAttrFirmwareVersions, "TAI_MODULE_ATTR_FIRMWARE_VERSIONS", taimeta.ValueTypeFloatList, ro,
				"The firmware versions"),
			enumAttr(ModuleAttrOperStatus, "TAI_MODULE_ATTR_OPER_STATUS", taimeta.ValueTypeS32, ModuleOperStatus, ro,
				"The operational status of the module"),
			attr(ModuleAttrTemp, "TAI_MODULE_ATTR_TEMP", taimeta.ValueTypeFloat, ro,
				"The internal temperature of the module in degrees Celsius"),
			attr(ModuleAttrPower, "TAI_MODULE_ATTR_POWER", taimeta.ValueTypeFloat, ro,
				"The power supply voltage"),
			attr(ModuleAttrNumHostInterfaces, "TAI_MODULE_ATTR_NUM_HOST_INTERFACES", taimeta.ValueTypeU32, ro,
				"The number of host interfaces on the module"),
			attr(ModuleAttrNumNetworkInterfaces, "TAI_MODULE_ATTR_NUM_NETWORK_INTERFACES", taimeta.ValueTypeU32, ro,
				"The number of network interfaces on the module"),
			adminStatus,
		},
	}
}

// DeserializeModuleAttr maps a module attribute name, dashed in human mode
// and canonical otherwise, to its id.
func DeserializeModuleAttr(name string, opt *taimeta.SerializeOption) (taimeta.AttrID, error) {
	return Registry().AttrIDByName(ObjectTypeModule, name, opt)
}

func SerializeModuleOperStatus(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(ModuleOperStatus, v, opt)
}

func DeserializeModuleOperStatus(text string) (int32, error) {
	return deserializeEnum(ModuleOperStatus, text)
}

func SerializeModuleAdminStatus(v int32, opt *taimeta.SerializeOption) (string, error) {
	return serializeEnum(ModuleAdminStatus, v, opt)
}

func DeserializeModuleAdminStatus(text string) (int32, error) {
	return deserializeEnum(ModuleAdminStatus, text)
}
