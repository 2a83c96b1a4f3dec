package instruction

import (
	"fmt"
)

// Flag is a CPU status flag.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_ZERO       = Flag(0) // Z
	FLAG_NEGATIVE   = Flag(1) // N
	FLAG_HALF_CARRY = Flag(2) // H
	FLAG_CARRY      = Flag(3) // C
)

const flagLetters = "ZNHC"

// Effect is what an instruction does to a flag.
// EFFECT_RESULT means the flag depends on the result.
type Effect int

//go:generate go tool stringer -linecomment -type=Effect
const (
	EFFECT_UNAFFECTED = Effect(0) // -
	EFFECT_RESET      = Effect(1) // 0
	EFFECT_SET        = Effect(2) // 1
	EFFECT_RESULT     = Effect(3) // *
)

// parseEffects parses the "Z0H-" notation of the opcode tables: one
// character per flag in ZNHC order.
func parseEffects(text string) (effects [4]Effect, err error) {
	if len(text) != len(flagLetters) {
		err = fmt.Errorf("%w: '%v'", ErrFlagSyntax, text)
		return
	}

	for n := range len(flagLetters) {
		switch text[n] {
		case '-':
			effects[n] = EFFECT_UNAFFECTED
		case '0':
			effects[n] = EFFECT_RESET
		case '1':
			effects[n] = EFFECT_SET
		case flagLetters[n]:
			effects[n] = EFFECT_RESULT
		default:
			err = fmt.Errorf("%w: '%v'", ErrFlagSyntax, text)
			return
		}
	}

	return
}

func formatEffects(effects [4]Effect) string {
	out := []byte("----")
	for n, effect := range effects {
		switch effect {
		case EFFECT_RESET:
			out[n] = '0'
		case EFFECT_SET:
			out[n] = '1'
		case EFFECT_RESULT:
			out[n] = flagLetters[n]
		}
	}
	return string(out)
}
