package boards

// Wiring is the fixed pin and bus assignment of one panel build.
// Pins are plain GPIO numbers; mapping to machine.Pin happens in the platform.
type Wiring struct {
	Name string

	// Shared I2C bus for the display (and the AHT20 variant).
	I2CSDA, I2CSCL int
	I2CHz          uint32

	DisplayW, DisplayH int16

	// EnvSensor selects the humidity driver: "dht22" or "aht20".
	EnvSensor string
	DHTPin    int

	LEDPin int

	// Diagnostic console.
	UARTTX, UARTRX int
	UARTBaud       uint32
}

// DisplayAddr is the SH1106 I2C address on every supported board.
const DisplayAddr = 0x3C

// PicoPanel is the reference build: Pico, SH1106 128x64 on I2C0, DHT22 on GP22.
var PicoPanel = Wiring{
	Name:      "pico_panel",
	I2CSDA:    20,
	I2CSCL:    21,
	I2CHz:     400_000,
	DisplayW:  128,
	DisplayH:  64,
	EnvSensor: "dht22",
	DHTPin:    22,
	LEDPin:    25,
	UARTTX:    0,
	UARTRX:    1,
	UARTBaud:  115_200,
}

// PicoPanelAHT20 swaps the DHT22 for an AHT20 sharing the display's I2C bus.
var PicoPanelAHT20 = func() Wiring {
	w := PicoPanel
	w.Name = "pico_panel_aht20"
	w.EnvSensor = "aht20"
	w.DHTPin = -1
	return w
}()
