package instruction

import (
	"fmt"
)

// Operand shapes are written as in the opcode tables. Condition codes carry
// a '?' prefix ("?C" is the carry condition, "C" the register).

// baseDefinitions are the unprefixed opcodes outside the regular
// 0x40-0xBF register blocks.
var baseDefinitions = []Definition{
	{0x00, "NOP", "", 4, 0, "----"},
	{0x01, "LD", "BC,d16", 12, 0, "----"},
	{0x02, "LD", "(BC),A", 8, 0, "----"},
	{0x03, "INC", "BC", 8, 0, "----"},
	{0x04, "INC", "B", 4, 0, "Z0H-"},
	{0x05, "DEC", "B", 4, 0, "Z1H-"},
	{0x06, "LD", "B,d8", 8, 0, "----"},
	{0x07, "RLCA", "", 4, 0, "000C"},
	{0x08, "LD", "(a16),SP", 20, 0, "----"},
	{0x09, "ADD", "HL,BC", 8, 0, "-0HC"},
	{0x0a, "LD", "A,(BC)", 8, 0, "----"},
	{0x0b, "DEC", "BC", 8, 0, "----"},
	{0x0c, "INC", "C", 4, 0, "Z0H-"},
	{0x0d, "DEC", "C", 4, 0, "Z1H-"},
	{0x0e, "LD", "C,d8", 8, 0, "----"},
	{0x0f, "RRCA", "", 4, 0, "000C"},

	{0x1000, "STOP", "", 4, 0, "----"},
	{0x1000, "STOP", "0", 4, 0, "----"},
	{0x11, "LD", "DE,d16", 12, 0, "----"},
	{0x12, "LD", "(DE),A", 8, 0, "----"},
	{0x13, "INC", "DE", 8, 0, "----"},
	{0x14, "INC", "D", 4, 0, "Z0H-"},
	{0x15, "DEC", "D", 4, 0, "Z1H-"},
	{0x16, "LD", "D,d8", 8, 0, "----"},
	{0x17, "RLA", "", 4, 0, "000C"},
	{0x18, "JR", "r8", 12, 0, "----"},
	{0x19, "ADD", "HL,DE", 8, 0, "-0HC"},
	{0x1a, "LD", "A,(DE)", 8, 0, "----"},
	{0x1b, "DEC", "DE", 8, 0, "----"},
	{0x1c, "INC", "E", 4, 0, "Z0H-"},
	{0x1d, "DEC", "E", 4, 0, "Z1H-"},
	{0x1e, "LD", "E,d8", 8, 0, "----"},
	{0x1f, "RRA", "", 4, 0, "000C"},

	{0x20, "JR", "?NZ,r8", 12, 8, "----"},
	{0x21, "LD", "HL,d16", 12, 0, "----"},
	{0x22, "LD", "(HL+),A", 8, 0, "----"},
	{0x23, "INC", "HL", 8, 0, "----"},
	{0x24, "INC", "H", 4, 0, "Z0H-"},
	{0x25, "DEC", "H", 4, 0, "Z1H-"},
	{0x26, "LD", "H,d8", 8, 0, "----"},
	{0x27, "DAA", "", 4, 0, "Z-0C"},
	{0x28, "JR", "?Z,r8", 12, 8, "----"},
	{0x29, "ADD", "HL,HL", 8, 0, "-0HC"},
	{0x2a, "LD", "A,(HL+)", 8, 0, "----"},
	{0x2b, "DEC", "HL", 8, 0, "----"},
	{0x2c, "INC", "L", 4, 0, "Z0H-"},
	{0x2d, "DEC", "L", 4, 0, "Z1H-"},
	{0x2e, "LD", "L,d8", 8, 0, "----"},
	{0x2f, "CPL", "", 4, 0, "-11-"},

	{0x30, "JR", "?NC,r8", 12, 8, "----"},
	{0x31, "LD", "SP,d16", 12, 0, "----"},
	{0x32, "LD", "(HL-),A", 8, 0, "----"},
	{0x33, "INC", "SP", 8, 0, "----"},
	{0x34, "INC", "(HL)", 12, 0, "Z0H-"},
	{0x35, "DEC", "(HL)", 12, 0, "Z1H-"},
	{0x36, "LD", "(HL),d8", 12, 0, "----"},
	{0x37, "SCF", "", 4, 0, "-001"},
	{0x38, "JR", "?C,r8", 12, 8, "----"},
	{0x39, "ADD", "HL,SP", 8, 0, "-0HC"},
	{0x3a, "LD", "A,(HL-)", 8, 0, "----"},
	{0x3b, "DEC", "SP", 8, 0, "----"},
	{0x3c, "INC", "A", 4, 0, "Z0H-"},
	{0x3d, "DEC", "A", 4, 0, "Z1H-"},
	{0x3e, "LD", "A,d8", 8, 0, "----"},
	{0x3f, "CCF", "", 4, 0, "-00C"},

	{0x76, "HALT", "", 4, 0, "----"},

	{0xc0, "RET", "?NZ", 20, 8, "----"},
	{0xc1, "POP", "BC", 12, 0, "----"},
	{0xc2, "JP", "?NZ,a16", 16, 12, "----"},
	{0xc3, "JP", "a16", 16, 0, "----"},
	{0xc4, "CALL", "?NZ,a16", 24, 12, "----"},
	{0xc5, "PUSH", "BC", 16, 0, "----"},
	{0xc7, "RST", "00H", 16, 0, "----"},
	{0xc8, "RET", "?Z", 20, 8, "----"},
	{0xc9, "RET", "", 16, 0, "----"},
	{0xca, "JP", "?Z,a16", 16, 12, "----"},
	{0xcc, "CALL", "?Z,a16", 24, 12, "----"},
	{0xcd, "CALL", "a16", 24, 0, "----"},
	{0xcf, "RST", "08H", 16, 0, "----"},

	{0xd0, "RET", "?NC", 20, 8, "----"},
	{0xd1, "POP", "DE", 12, 0, "----"},
	{0xd2, "JP", "?NC,a16", 16, 12, "----"},
	{0xd4, "CALL", "?NC,a16", 24, 12, "----"},
	{0xd5, "PUSH", "DE", 16, 0, "----"},
	{0xd7, "RST", "10H", 16, 0, "----"},
	{0xd8, "RET", "?C", 20, 8, "----"},
	{0xd9, "RETI", "", 16, 0, "----"},
	{0xda, "JP", "?C,a16", 16, 12, "----"},
	{0xdc, "CALL", "?C,a16", 24, 12, "----"},
	{0xdf, "RST", "18H", 16, 0, "----"},

	{0xe0, "LDH", "(a8),A", 12, 0, "----"},
	{0xe1, "POP", "HL", 12, 0, "----"},
	{0xe2, "LD", "(C),A", 8, 0, "----"},
	{0xe5, "PUSH", "HL", 16, 0, "----"},
	{0xe7, "RST", "20H", 16, 0, "----"},
	{0xe8, "ADD", "SP,s8", 16, 0, "00HC"},
	{0xe9, "JP", "(HL)", 4, 0, "----"},
	{0xea, "LD", "(a16),A", 16, 0, "----"},
	{0xef, "RST", "28H", 16, 0, "----"},

	{0xf0, "LDH", "A,(a8)", 12, 0, "----"},
	{0xf1, "POP", "AF", 12, 0, "ZNHC"},
	{0xf2, "LD", "A,(C)", 8, 0, "----"},
	{0xf3, "DI", "", 4, 0, "----"},
	{0xf5, "PUSH", "AF", 16, 0, "----"},
	{0xf7, "RST", "30H", 16, 0, "----"},
	{0xf8, "LD", "HL,SP+r8", 12, 0, "00HC"},
	{0xf9, "LD", "SP,HL", 8, 0, "----"},
	{0xfa, "LD", "A,(a16)", 16, 0, "----"},
	{0xfb, "EI", "", 4, 0, "----"},
	{0xff, "RST", "38H", 16, 0, "----"},
}

// aliasDefinitions are alternate spellings accepted by common Game Boy
// assemblers. They never win a disassembly lookup.
var aliasDefinitions = []Definition{
	{0xe2, "LDH", "(C),A", 8, 0, "----"},
	{0xf2, "LDH", "A,(C)", 8, 0, "----"},
	{0x22, "LDI", "(HL),A", 8, 0, "----"},
	{0x2a, "LDI", "A,(HL)", 8, 0, "----"},
	{0x32, "LDD", "(HL),A", 8, 0, "----"},
	{0x3a, "LDD", "A,(HL)", 8, 0, "----"},
	{0xf8, "LDHL", "SP,s8", 12, 0, "00HC"},
	{0xe9, "JP", "HL", 4, 0, "----"},
}

// registerOrder is the 3-bit register field encoding.
var registerOrder = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

type aluOp struct {
	mnemonic string
	prefixA  bool // Canonical form names A as the first operand.
	flags    string
}

var aluOrder = [8]aluOp{
	{"ADD", true, "Z0HC"},
	{"ADC", true, "Z0HC"},
	{"SUB", false, "Z1HC"},
	{"SBC", true, "Z1HC"},
	{"AND", false, "Z010"},
	{"XOR", false, "Z000"},
	{"OR", false, "Z000"},
	{"CP", false, "Z1HC"},
}

var cbRotateOrder = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// Definitions returns the complete LR35902 opcode table, aliases last.
func Definitions() (defs []Definition) {
	defs = append(defs, baseDefinitions...)

	// LD r,r' (0x76 would be LD (HL),(HL) and is HALT instead).
	for dst, to := range registerOrder {
		for src, from := range registerOrder {
			code := uint16(0x40 + dst*8 + src)
			if code == 0x76 {
				continue
			}
			cycles := 4
			if to == "(HL)" || from == "(HL)" {
				cycles = 8
			}
			defs = append(defs, Definition{code, "LD", to + "," + from, cycles, 0, "----"})
		}
	}

	// ALU A,r and ALU A,d8.
	for n, alu := range aluOrder {
		prefix := ""
		if alu.prefixA {
			prefix = "A,"
		}
		for src, from := range registerOrder {
			cycles := 4
			if from == "(HL)" {
				cycles = 8
			}
			defs = append(defs, Definition{uint16(0x80 + n*8 + src), alu.mnemonic, prefix + from, cycles, 0, alu.flags})
		}
		defs = append(defs, Definition{uint16(0xc6 + n*8), alu.mnemonic, prefix + "d8", 8, 0, alu.flags})
	}

	// CB prefixed rotates, shifts and bit operations.
	for n, mnemonic := range cbRotateOrder {
		flags := "Z00C"
		if mnemonic == "SWAP" {
			flags = "Z000"
		}
		for reg, name := range registerOrder {
			cycles := 8
			if name == "(HL)" {
				cycles = 16
			}
			defs = append(defs, Definition{uint16(0xcb00 + n*8 + reg), mnemonic, name, cycles, 0, flags})
		}
	}

	for n, mnemonic := range []string{"BIT", "RES", "SET"} {
		flags := "----"
		if mnemonic == "BIT" {
			flags = "Z01-"
		}
		for bit := range 8 {
			for reg, name := range registerOrder {
				cycles := 8
				if name == "(HL)" {
					cycles = 16
					if mnemonic == "BIT" {
						cycles = 12
					}
				}
				code := uint16(0xcb40 + n*0x40 + bit*8 + reg)
				defs = append(defs, Definition{code, mnemonic, fmt.Sprintf("%d,%v", bit, name), cycles, 0, flags})
			}
		}
	}

	defs = append(defs, aliasDefinitions...)

	// Accumulator-implied ALU ops also accept an explicit A.
	for n, alu := range aluOrder {
		if alu.prefixA {
			continue
		}
		for src, from := range registerOrder {
			cycles := 4
			if from == "(HL)" {
				cycles = 8
			}
			defs = append(defs, Definition{uint16(0x80 + n*8 + src), alu.mnemonic, "A," + from, cycles, 0, alu.flags})
		}
		defs = append(defs, Definition{uint16(0xc6 + n*8), alu.mnemonic, "A,d8", 8, 0, alu.flags})
	}

	return
}

// Catalog builds the templates of every definition.
func Catalog() (templates []*Template, err error) {
	for _, def := range Definitions() {
		var tmpl *Template
		tmpl, err = NewTemplate(def)
		if err != nil {
			return
		}
		templates = append(templates, tmpl)
	}
	return
}
