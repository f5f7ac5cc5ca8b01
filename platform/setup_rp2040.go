//go:build rp2040

package platform

import (
	"device/rp"
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/sh1106"
	"tinygo.org/x/tinyfont/proggy"

	"statuspanel-go/drivers/aht20"
	"statuspanel-go/drivers/thermal"
	"statuspanel-go/errcode"
	"statuspanel-go/platform/boards"
	"statuspanel-go/services/panel"
	"statuspanel-go/services/sensors"
	"statuspanel-go/x/logx"
	"statuspanel-go/x/timex"
)

// Console configures UART0 for diagnostics.
func Console(w boards.Wiring) (io.Writer, error) {
	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: w.UARTBaud,
		TX:       machine.Pin(w.UARTTX),
		RX:       machine.Pin(w.UARTRX),
	}); err != nil {
		return nil, errcode.Wrap("uart0.configure", err)
	}
	return u, nil
}

// Setup brings up the bus, display and sensors described by w.
func Setup(w boards.Wiring, diag io.Writer) (panel.SystemContext, *sensors.Environmental, error) {
	var sys panel.SystemContext

	bus := machine.I2C0
	sda, scl := machine.Pin(w.I2CSDA), machine.Pin(w.I2CSCL)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := bus.Configure(machine.I2CConfig{SDA: sda, SCL: scl, Frequency: w.I2CHz}); err != nil {
		return sys, nil, errcode.Wrap("i2c0.configure", err)
	}
	logx.Line(diag, "setup", "i2c0 ready")
	logx.Line(diag, "setup", append([]string{"i2c0 scan"}, ScanLine(ScanI2C(bus))...)...)

	oled := sh1106.NewI2C(bus)
	oled.Configure(sh1106.Config{Width: w.DisplayW, Height: w.DisplayH, Address: boards.DisplayAddr})
	disp, ok := displayer(oled, &oled)
	if !ok {
		return sys, nil, &errcode.E{C: errcode.DisplayFault, Op: "sh1106.open", Msg: "no displayer"}
	}
	sys.Display = panel.NewSurface(disp, &proggy.TinySZ8pt7b, FontAscent)
	logx.Line(diag, "setup", "display sh1106")

	led := machine.Pin(w.LEDPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()

	var drv sensors.Driver
	switch w.EnvSensor {
	case "dht22":
		if w.DHTPin < 0 {
			return sys, nil, &errcode.E{C: errcode.UnknownPin, Op: "dht.open"}
		}
		// Manual updates: every scheduled sample is a real exchange rather
		// than being refused inside the driver's 2 s window.
		drv = sensors.NewDHT(dht.NewWithPolicy(machine.Pin(w.DHTPin), dht.DHT22,
			dht.UpdatePolicy{UpdateAutomatically: false}))
	case "aht20":
		dev := aht20.New(bus)
		dev.Configure(aht20.Config{})
		drv = sensors.NewAHT20(dev)
	default:
		return sys, nil, &errcode.E{C: errcode.Unsupported, Op: "env.open", Msg: w.EnvSensor}
	}
	env := sensors.New(drv, led)
	sys.Env = env
	logx.Line(diag, "setup", "env", w.EnvSensor)

	sys.Onboard = thermal.New(newDieADC(), thermal.DefaultCalibration())
	sys.Clock = timex.Real{}
	sys.Diag = diag
	return sys, env, nil
}

// displayer accepts the sh1106 handle by value or pointer, whichever
// carries the Displayer method set.
func displayer(cands ...any) (drivers.Displayer, bool) {
	for _, c := range cands {
		if d, ok := c.(drivers.Displayer); ok {
			return d, true
		}
	}
	return nil, false
}

// Die temperature sensor: ADC input 4.
const tempSensorInput = 4

// dieADC samples the on-die temperature sensor. machine.ADC only exposes
// the GPIO inputs, so the channel is selected directly.
type dieADC struct{}

func newDieADC() dieADC {
	machine.InitADC()
	rp.ADC.CS.SetBits(rp.ADC_CS_TS_EN)
	return dieADC{}
}

// Get returns one conversion scaled from 12 to 16 bits.
func (dieADC) Get() uint16 {
	rp.ADC.CS.ReplaceBits(tempSensorInput, 0b111, rp.ADC_CS_AINSEL_Pos)
	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)
	for !rp.ADC.CS.HasBits(rp.ADC_CS_READY) {
	}
	return uint16(rp.ADC.RESULT.Get()) << 4
}
