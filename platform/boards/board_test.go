package boards

import "testing"

func TestVariantsShareBusAndDisplay(t *testing.T) {
	a, b := PicoPanel, PicoPanelAHT20
	if a.I2CSDA != b.I2CSDA || a.I2CSCL != b.I2CSCL || a.DisplayW != b.DisplayW {
		t.Fatalf("variants diverge on shared wiring: %+v vs %+v", a, b)
	}
	if a.EnvSensor != "dht22" || b.EnvSensor != "aht20" {
		t.Fatalf("sensor selection = %q/%q", a.EnvSensor, b.EnvSensor)
	}
	if PicoPanel.Name != "pico_panel" {
		t.Fatalf("deriving the AHT20 variant modified the base wiring")
	}
	if Selected.Name == "" {
		t.Fatalf("no board selected")
	}
}
