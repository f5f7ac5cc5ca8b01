//go:build board_aht20

package boards

// Selected is the wiring compiled into this build.
var Selected = PicoPanelAHT20
