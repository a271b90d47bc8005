package dive

// matchID backfills serial and firmware on dc from a known device, but only
// when the record matches on both device id and model string, and only into
// fields that are still empty.
func matchID(dc *Computer, dev Device) {
	if dc.DeviceID != dev.DeviceID {
		return
	}
	if dev.Model == "" || dc.Model == "" || dev.Model != dc.Model {
		return
	}
	if dev.Serial != "" && dc.Serial == "" {
		dc.Serial = dev.Serial
	}
	if dev.Firmware != "" && dc.Firmware == "" {
		dc.Firmware = dev.Firmware
	}
}

// SetDeviceID stores id on dc and then walks every computer record of the
// dive, filling in serial number and firmware version from any known device
// that matches on (id, model). Existing values are never overwritten. A zero
// id means the device is unidentified and the call is a no-op.
func (d *Dive) SetDeviceID(dc *Computer, id uint32, known []Device) {
	if id == 0 {
		return
	}
	dc.DeviceID = id
	for i := range d.Computers {
		for _, dev := range known {
			matchID(&d.Computers[i], dev)
		}
	}
}
