package instruction

// mnemonicNames maps each mnemonic to its display name.
var mnemonicNames = map[string]string{
	"NOP":  "No operation",
	"LD":   "Load",
	"LDH":  "Load high page",
	"LDI":  "Load and increment HL",
	"LDD":  "Load and decrement HL",
	"LDHL": "Load HL with SP offset",
	"INC":  "Increase",
	"DEC":  "Decrease",
	"ADD":  "Add",
	"ADC":  "Add with carry",
	"SUB":  "Subtract",
	"SBC":  "Subtract with carry",
	"AND":  "And",
	"XOR":  "Exclusive or",
	"OR":   "Inclusive or",
	"CP":   "Compare",
	"RLCA": "Rotate A left circular",
	"RRCA": "Rotate A right circular",
	"RLA":  "Rotate A left through carry",
	"RRA":  "Rotate A right through carry",
	"JR":   "Jump relative",
	"JP":   "Jump",
	"CALL": "Call",
	"RET":  "Return",
	"RETI": "Return from interrupt",
	"RST":  "Restart",
	"STOP": "Stop",
	"HALT": "Halt",
	"DAA":  "Decimal adjust A",
	"CPL":  "Complement A",
	"CCF":  "Complement carry flag",
	"SCF":  "Set carry flag",
	"DI":   "Disable interrupts",
	"EI":   "Enable interrupts",
	"POP":  "Pop",
	"PUSH": "Push",
	"RLC":  "Rotate left circular",
	"RRC":  "Rotate right circular",
	"RL":   "Rotate left through carry",
	"RR":   "Rotate right through carry",
	"SLA":  "Shift left arithmetic",
	"SRA":  "Shift right arithmetic",
	"SWAP": "Swap nibbles",
	"SRL":  "Shift right logical",
	"BIT":  "Test bit",
	"RES":  "Reset bit",
	"SET":  "Set bit",
}

// Name returns the display name of a mnemonic.
func Name(mnemonic string) (name string, ok bool) {
	name, ok = mnemonicNames[mnemonic]
	return
}
