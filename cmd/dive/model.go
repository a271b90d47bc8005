package dive

// Reading is an optional instrument value. The zero value means the field was
// never recorded, which is the case for every sample we synthesize ourselves.
type Reading struct {
	Value int  `json:"value"`
	Valid bool `json:"valid"`
}

// Sample is a single point of a depth profile.
type Sample struct {
	Time    int     `json:"time"`  // seconds since dive start
	Depth   int     `json:"depth"` // millimeters
	Bearing Reading `json:"bearing,omitempty"`
	NDL     Reading `json:"ndl,omitempty"` // no-decompression limit, seconds
}

// Computer is one dive computer's record of a dive. Duration is in seconds,
// depths in millimeters. Samples may be empty when the computer (or a manual
// entry) only recorded summary statistics; Synthesize fills it in that case.
type Computer struct {
	Model          string   `json:"model,omitempty"`
	DeviceID       uint32   `json:"deviceid,omitempty"`
	Serial         string   `json:"serial,omitempty"`
	Firmware       string   `json:"firmware,omitempty"`
	Duration       int      `json:"duration"`
	MaxDepth       int      `json:"maxdepth"`
	MeanDepth      int      `json:"meandepth"`
	Samples        []Sample `json:"samples,omitempty"`
	LastManualTime int      `json:"last_manual_time,omitempty"`
}

// Dive groups the records of every computer that logged the same dive.
type Dive struct {
	Computers []Computer `json:"computers"`
}

// Device identifies a physical dive computer by id and model, together with
// the serial number and firmware it last reported. Known devices are listed
// in the config file under "devices".
type Device struct {
	Model    string `json:"model" mapstructure:"model"`
	DeviceID uint32 `json:"deviceid" mapstructure:"deviceid"`
	Serial   string `json:"serial" mapstructure:"serial"`
	Firmware string `json:"firmware" mapstructure:"firmware"`
}
