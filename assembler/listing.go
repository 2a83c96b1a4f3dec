package assembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/gbasm/instruction"
)

// Record is the listing of one assembled instruction.
type Record struct {
	LineNo   int      // Source line, or zero when not parsed from source.
	Offset   int      // Code segment offset.
	Address  int      // Absolute image address.
	Words    []string // Mnemonic and operands as written.
	Code     []byte   // Encoding, with symbols resolved.
	Template *instruction.Template
}

func (rec Record) String() string {
	hex := make([]string, len(rec.Code))
	for n, value := range rec.Code {
		hex[n] = fmt.Sprintf("%02X", value)
	}

	text := rec.Words[0]
	if len(rec.Words) > 1 {
		text += " " + strings.Join(rec.Words[1:], ",")
	}

	return fmt.Sprintf("%04X  %-9s %5d  %-20s ; %v", rec.Address, strings.Join(hex, " "), rec.LineNo, text, rec.Template.Name)
}

// Listing is the instruction listing of an object file.
type Listing []Record

// WriteTo writes one line per record.
func (listing Listing) WriteTo(w io.Writer) (total int64, err error) {
	for _, rec := range listing {
		var n int
		n, err = fmt.Fprintln(w, rec.String())
		total += int64(n)
		if err != nil {
			return
		}
	}
	return
}
