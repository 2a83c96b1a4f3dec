package cartridge

import (
	"fmt"
	"iter"
	"maps"
)

// hardware are the memory mapped registers and regions of the Game Boy.
var hardware = map[string]uint16{
	"_VRAM":   0x8000,
	"_SCRN0":  0x9800,
	"_SCRN1":  0x9c00,
	"_SRAM":   0xa000,
	"_RAM":    0xc000,
	"_OAMRAM": 0xfe00,
	"_HRAM":   0xff80,
	"rP1":     0xff00,
	"rSB":     0xff01,
	"rSC":     0xff02,
	"rDIV":    0xff04,
	"rTIMA":   0xff05,
	"rTMA":    0xff06,
	"rTAC":    0xff07,
	"rIF":     0xff0f,
	"rNR50":   0xff24,
	"rNR51":   0xff25,
	"rNR52":   0xff26,
	"rLCDC":   0xff40,
	"rSTAT":   0xff41,
	"rSCY":    0xff42,
	"rSCX":    0xff43,
	"rLY":     0xff44,
	"rLYC":    0xff45,
	"rDMA":    0xff46,
	"rBGP":    0xff47,
	"rOBP0":   0xff48,
	"rOBP1":   0xff49,
	"rWY":     0xff4a,
	"rWX":     0xff4b,
	"rKEY1":   0xff4d,
	"rVBK":    0xff4f,
	"rSVBK":   0xff70,
	"rIE":     0xffff,
}

// equate formats an address as a suffixed hex literal. A "0x" prefix
// would misread addresses ending in 'b' or 'd' as binary or decimal.
func equate(addr int) string {
	return fmt.Sprintf("0%Xh", addr)
}

// Defines returns an iter of the hardware equates.
func Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"HEADER_SIZE": equate(HeaderSize),
	}
	for name, addr := range hardware {
		defines[name] = equate(int(addr))
	}
	return maps.All(defines)
}
