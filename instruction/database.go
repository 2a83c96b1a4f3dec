// Package instruction holds the LR35902 instruction templates and the
// matcher that picks the template encoding a command.
package instruction

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/gbasm/operand"
)

// Database indexes templates by mnemonic and by opcode.
type Database struct {
	templates  []*Template
	byMnemonic map[string][]*Template
	byCode     map[uint16]*Template
	prefixes   map[byte]bool
}

// Default is the database of the complete LR35902 instruction set.
var Default = mustDatabase()

func mustDatabase() *Database {
	templates, err := Catalog()
	if err != nil {
		panic(err)
	}
	return NewDatabase(templates...)
}

// NewDatabase indexes templates. For disassembly, the first template of
// an opcode wins.
func NewDatabase(templates ...*Template) (db *Database) {
	db = &Database{
		templates:  templates,
		byMnemonic: make(map[string][]*Template),
		byCode:     make(map[uint16]*Template),
		prefixes:   make(map[byte]bool),
	}

	for _, tmpl := range templates {
		key := strings.ToUpper(tmpl.Mnemonic)
		db.byMnemonic[key] = append(db.byMnemonic[key], tmpl)
		if _, ok := db.byCode[tmpl.Code]; !ok {
			db.byCode[tmpl.Code] = tmpl
		}
		if tmpl.Code > 0xff {
			db.prefixes[byte(tmpl.Code>>8)] = true
		}
	}

	return
}

// All iterates over every template in catalog order.
func (db *Database) All() iter.Seq[*Template] {
	return slices.Values(db.templates)
}

// Len returns the number of templates.
func (db *Database) Len() int {
	return len(db.templates)
}

// Templates returns the templates of a mnemonic, compared case-insensitively.
func (db *Database) Templates(mnemonic string) []*Template {
	return db.byMnemonic[strings.ToUpper(mnemonic)]
}

// better orders matching templates: smaller encoding first, then the more
// specific operand shapes.
func better(a, b *Template) int {
	if a.Size != b.Size {
		return a.Size - b.Size
	}
	return b.Specificity() - a.Specificity()
}

// Find returns the single template that encodes the command.
func (db *Database) Find(mnemonic string, operands []string) (tmpl *Template, err error) {
	if len(mnemonic) == 0 {
		err = ErrInstructionEmpty
		return
	}

	candidates := db.Templates(mnemonic)

	var matches []*Template
	for _, candidate := range candidates {
		if candidate.Match(mnemonic, operands) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		err = db.diagnose(mnemonic, operands, candidates)
		return
	case 1:
		tmpl = matches[0]
		return
	}

	slices.SortStableFunc(matches, better)
	if better(matches[0], matches[1]) == 0 {
		tied := slices.DeleteFunc(slices.Clone(matches), func(other *Template) bool {
			return better(matches[0], other) != 0
		})
		err = &ErrInstructionAmbiguous{Mnemonic: mnemonic, Operands: operands, Candidates: tied}
		return
	}

	tmpl = matches[0]
	return
}

// diagnose explains a failed match. A candidate whose only failing operands
// parse as numbers out of range is reported as a range error.
func (db *Database) diagnose(mnemonic string, operands []string, candidates []*Template) error {
	for _, candidate := range candidates {
		if len(candidate.Operands) != len(operands) {
			continue
		}

		var rangeErr error
		for n, op := range candidate.Operands {
			if op.Match(operands[n]) {
				continue
			}
			var bad *operand.ErrOperandRange
			checker, ok := op.(operand.Checker)
			if ok && errors.As(checker.Check(operands[n]), &bad) {
				rangeErr = bad
				continue
			}
			rangeErr = nil
			break
		}

		if rangeErr != nil {
			return &ErrInstructionRange{Mnemonic: mnemonic, Err: rangeErr}
		}
	}

	return &ErrInstructionUnrecognized{Mnemonic: mnemonic, Operands: operands}
}

// Assemble finds the template of a command and encodes it.
func (db *Database) Assemble(mnemonic string, operands []string) (tmpl *Template, code []byte, err error) {
	tmpl, err = db.Find(mnemonic, operands)
	if err != nil {
		return
	}

	code = tmpl.Encode(operands)
	return
}

// Decode disassembles the instruction at the start of code.
func (db *Database) Decode(code []byte) (tmpl *Template, operands []string, err error) {
	if len(code) == 0 {
		err = ErrOpcodeTruncated
		return
	}

	var ok bool
	if len(code) >= 2 && code[0] != 0 {
		tmpl, ok = db.byCode[uint16(code[0])<<8|uint16(code[1])]
	}
	if !ok {
		tmpl, ok = db.byCode[uint16(code[0])]
	}
	if !ok && len(code) == 1 && db.prefixes[code[0]] {
		err = ErrOpcodeTruncated
		return
	}
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	if len(code) < tmpl.Size {
		tmpl = nil
		err = ErrOpcodeTruncated
		return
	}

	offset := len(tmpl.Opcode())
	for _, op := range tmpl.Operands {
		operands = append(operands, op.Format(code[offset:offset+op.Size()]))
		offset += op.Size()
	}

	return
}
