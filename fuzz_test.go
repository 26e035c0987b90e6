package taimeta

import (
	"testing"
)

func FuzzDeserializeValue(f *testing.F) {
	f.Add("1,2,3", uint8(widgetBytes), false)
	f.Add("red|light-blue", uint8(widgetColors), false)
	f.Add("1,2, 3", uint8(widgetLanes), false)
	f.Add("[[1,2],[3]]", uint8(widgetLanes), true)
	f.Add("-100,-1000", uint8(widgetRange), false)
	f.Add(`["0x10", 255]`, uint8(widgetPeers), true)
	f.Add("1.100000", uint8(widgetPower), false)
	f.Add("", uint8(widgetLabel), false)

	r := testRegistry(f)
	attrs := r.Attributes(widgetType)

	f.Fuzz(func(t *testing.T, text string, idx uint8, json bool) {
		meta := attrs[int(idx)%len(attrs)]
		opt := &SerializeOption{ValueOnly: true, JSON: json}

		// Must not panic
		v, err := DeserializeValue(text, meta, nil, opt)
		if err != nil {
			return
		}

		// Anything that parses must render
		if _, err := FormatValue(meta, v, opt); err != nil {
			t.Errorf("FormatValue(%q) after successful parse: %v", text, err)
		}
	})
}
