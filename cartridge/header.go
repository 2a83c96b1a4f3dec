// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cartridge assembles the fixed boot header of a Game Boy
// cartridge image.
//
// The header covers the restart and interrupt vectors (0x000-0x0FF) and the
// cartridge header proper (0x100-0x14F). Program data follows immediately.
package cartridge

const (
	HeaderSize = 0x150 // Size of the boot header.

	ENTRY_OFFSET         = 0x100 // NOP; JP entry
	LOGO_OFFSET          = 0x104
	TITLE_OFFSET         = 0x134
	TITLE_SIZE           = 11
	MANUFACTURER_OFFSET  = 0x13f
	MANUFACTURER_SIZE    = 4
	CGB_OFFSET           = 0x143
	LICENSEE_OFFSET      = 0x144
	SGB_OFFSET           = 0x146
	TYPE_OFFSET          = 0x147
	ROM_SIZE_OFFSET      = 0x148
	RAM_SIZE_OFFSET      = 0x149
	DESTINATION_OFFSET   = 0x14a
	OLD_LICENSEE_OFFSET  = 0x14b
	VERSION_OFFSET       = 0x14c
	HEADER_CHECKSUM      = 0x14d
	GLOBAL_CHECKSUM      = 0x14e
	OLD_LICENSEE_USE_NEW = 0x33 // Old licensee code deferring to the new one.
)

const (
	CGB_SUPPORTED = 0x80 // Runs on both DMG and CGB.
	CGB_ONLY      = 0xc0
	SGB_SUPPORTED = 0x03
	TYPE_ROM_ONLY = 0x00
	DEST_JAPAN    = 0x00
	DEST_OVERSEAS = 0x01
)

// logo is the bitmap the boot ROM compares before starting a cartridge.
var logo = [48]byte{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0c, 0x00, 0x0d, 0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99, 0xbb, 0xbb, 0x67, 0x63,
	0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// interruptVectors get a RETI so a stray interrupt returns.
var interruptVectors = []int{0x40, 0x48, 0x50, 0x58, 0x60}

const (
	opNOP  = 0x00
	opJP   = 0xc3
	opRETI = 0xd9
)

// Header holds the variable fields of the boot header.
type Header struct {
	Entry        uint16 // Absolute address jumped to after boot.
	Title        string // Truncated to TITLE_SIZE bytes.
	Manufacturer string // Truncated to MANUFACTURER_SIZE bytes.
	CGBFlag      byte
	Licensee     string // Two character new licensee code.
	SGBFlag      byte
	Type         byte
	ROMSize      byte
	RAMSize      byte
	Destination  byte
	Version      byte
}

// Default returns a header for a ROM-only, CGB compatible cartridge.
func Default() Header {
	return Header{
		CGBFlag:     CGB_SUPPORTED,
		Licensee:    "00",
		Type:        TYPE_ROM_ONLY,
		Destination: DEST_OVERSEAS,
	}
}

func field(out []byte, text string) {
	copy(out, text)
}

// Bytes returns the HeaderSize bytes of the header. The global checksum is
// left zero; see Stamp.
func (hdr Header) Bytes() []byte {
	out := make([]byte, HeaderSize)

	for _, vector := range interruptVectors {
		out[vector] = opRETI
	}

	out[ENTRY_OFFSET+0] = opNOP
	out[ENTRY_OFFSET+1] = opJP
	out[ENTRY_OFFSET+2] = byte(hdr.Entry)
	out[ENTRY_OFFSET+3] = byte(hdr.Entry >> 8)

	copy(out[LOGO_OFFSET:], logo[:])

	field(out[TITLE_OFFSET:TITLE_OFFSET+TITLE_SIZE], hdr.Title)
	field(out[MANUFACTURER_OFFSET:MANUFACTURER_OFFSET+MANUFACTURER_SIZE], hdr.Manufacturer)
	out[CGB_OFFSET] = hdr.CGBFlag
	field(out[LICENSEE_OFFSET:LICENSEE_OFFSET+2], hdr.Licensee)
	out[SGB_OFFSET] = hdr.SGBFlag
	out[TYPE_OFFSET] = hdr.Type
	out[ROM_SIZE_OFFSET] = hdr.ROMSize
	out[RAM_SIZE_OFFSET] = hdr.RAMSize
	out[DESTINATION_OFFSET] = hdr.Destination
	out[OLD_LICENSEE_OFFSET] = OLD_LICENSEE_USE_NEW
	out[VERSION_OFFSET] = hdr.Version

	out[HEADER_CHECKSUM] = HeaderChecksum(out)

	return out
}

// HeaderChecksum is the boot ROM checksum of bytes 0x134-0x14C.
func HeaderChecksum(image []byte) (sum byte) {
	for _, value := range image[TITLE_OFFSET:HEADER_CHECKSUM] {
		sum = sum - value - 1
	}
	return
}

// GlobalChecksum sums every byte of the image but the checksum itself.
func GlobalChecksum(image []byte) (sum uint16) {
	for n, value := range image {
		if n == GLOBAL_CHECKSUM || n == GLOBAL_CHECKSUM+1 {
			continue
		}
		sum += uint16(value)
	}
	return
}

// Stamp writes the big-endian global checksum into a complete image.
func Stamp(image []byte) {
	sum := GlobalChecksum(image)
	image[GLOBAL_CHECKSUM] = byte(sum >> 8)
	image[GLOBAL_CHECKSUM+1] = byte(sum)
}

// ROMSizeCode returns the header ROM size code of the smallest ROM holding
// size bytes: 32KiB << code.
func ROMSizeCode(size int) (code byte, ok bool) {
	for code = 0; code <= 8; code++ {
		if size <= (32*1024)<<code {
			return code, true
		}
	}
	return 0, false
}
