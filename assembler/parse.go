package assembler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/internal"
	"github.com/ezrec/gbasm/object"
	"github.com/ezrec/gbasm/operand"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	reCharacter = regexp.MustCompile(`'\\?[^']'`)
	reString    = regexp.MustCompile(`^\.string\s+(\S+)\s+(".*")$`)
)

// Predefine defines an equate for every following Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// stripComment removes a ';' comment that is not inside a string or a
// character literal.
func stripComment(text string) string {
	quoted := false
	for n := 0; n < len(text); n++ {
		switch text[n] {
		case '\\':
			if quoted {
				n++
			}
		case '"':
			quoted = !quoted
		case '\'':
			if loc := reCharacter.FindStringIndex(text[n:]); !quoted && loc != nil && loc[0] == 0 {
				n += loc[1] - 1
			}
		case ';':
			if !quoted {
				return text[:n]
			}
		}
	}
	return text
}

// splitValues splits directive arguments on commas and spaces.
func splitValues(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		equate, err := operand.ParseValue(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(equate)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	stRc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	stInt, ok := stRc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	stInt64, ok := stInt.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(stInt64)
	return
}

// expandExpr replaces every $(...) of a line with its decimal value.
func (asm *Assembler) expandExpr(line string) (out string, err error) {
	var sb strings.Builder
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			sb.WriteString(line)
			break
		}
		sb.WriteString(line[:start])

		depth := 0
		end := -1
		for n := start + 1; n < len(line) && end < 0; n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = ErrExpressionOpen
			return
		}

		var value int
		value, err = asm.parenEval(line[start+2 : end])
		if err != nil {
			return
		}
		fmt.Fprintf(&sb, "%d", value)
		line = line[end+1:]
	}

	out = sb.String()
	return
}

// substitute replaces an equate name, bare or in parentheses, by its value.
func (asm *Assembler) substitute(word string) string {
	if equate, ok := asm.Equate[word]; ok {
		return equate
	}
	if inner, ok := strings.CutPrefix(word, "("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			if equate, ok := asm.Equate[inner]; ok {
				return "(" + equate + ")"
			}
		}
	}
	return word
}

// parseLine parses a single line into a mnemonic and its operands.
// Equates, labels and strings are handled here.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)
	asm.lineno = lineno

	// Labels mark code; data and equate directives name their own symbol.
	if fields := strings.Fields(line); len(fields) > 1 && strings.HasSuffix(fields[0], ":") {
		for _, field := range fields[1:] {
			if strings.HasSuffix(field, ":") {
				continue
			}
			if strings.HasPrefix(field, ".") {
				err = fmt.Errorf("%w: %v", ErrLabelDirective, field)
				return
			}
			break
		}
	}

	// .string NAME "text" is taken verbatim.
	if match := reString.FindStringSubmatch(line); match != nil {
		var text string
		text, err = strconv.Unquote(match[2])
		if err != nil {
			err = ErrStringSyntax
			return
		}
		err = asm.String(match[1], text)
		return
	}

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "0":
				str = "\x00"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line, err = asm.expandExpr(line)
	if err != nil {
		return
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case ".string":
		err = ErrStringSyntax
		return
	case ".equ":
		// .equ CONST VALUE
		if len(fields) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[fields[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[fields[1]] = asm.substitute(fields[2])
		return
	}

	for len(fields) > 0 && strings.HasSuffix(fields[0], ":") {
		err = asm.Label(strings.TrimSuffix(fields[0], ":"))
		if err != nil {
			return
		}
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return
	}

	rest := strings.Join(fields[1:], " ")
	words = []string{fields[0]}
	first := 1
	if strings.HasPrefix(fields[0], ".") {
		words = append(words, splitValues(rest)...)
		// The variable name is not an equate.
		first = 2
	} else if len(rest) > 0 {
		for _, word := range strings.Split(rest, ",") {
			words = append(words, strings.Join(strings.Fields(word), ""))
		}
	}

	for n := first; n < len(words); n++ {
		words[n] = asm.substitute(words[n])
	}

	return
}

// parseWords assembles a parsed line.
func (asm *Assembler) parseWords(words []string) (err error) {
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".db":
		err = asm.dataDirective(words, 1)
		return
	case ".dw":
		err = asm.dataDirective(words, 2)
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = fmt.Errorf("%w: %v", ErrDirective, words[0])
		return
	}

	err = asm.Instruction(words[0], words[1:]...)
	return
}

// dataDirective appends a numeric variable of width byte little-endian
// values: .db NAME v... or .dw NAME v...
func (asm *Assembler) dataDirective(words []string, width int) (err error) {
	if len(words) < 3 {
		err = ErrDataSyntax
		return
	}

	min := -(1 << (8*width - 1))
	max := (1 << (8 * width)) - 1

	data := make([]byte, 0, width*(len(words)-2))
	for _, word := range words[2:] {
		var value int
		value, err = operand.ParseValue(word)
		if err != nil {
			return
		}
		if value < min || value > max {
			err = &operand.ErrOperandRange{Token: word, Min: min, Max: max}
			return
		}
		data = append(data, byte(value))
		if width == 2 {
			data = append(data, byte(value>>8))
		}
	}

	err = asm.Data(words[1], object.VARIABLE_NUMBER, data)
	return
}

// Parse assembles a source stream into an object file.
func (asm *Assembler) Parse(input io.Reader) (obj *object.File, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var source []string

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.obj = nil
	asm.file()
	asm.Equate = maps.Collect(internal.IterSeq2Concat(
		maps.All(sysEquate),
		cartridge.Defines(),
		maps.All(asm.predefine),
	))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1
		source = append(source, text)

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	obj, err = asm.Finish()
	if err != nil {
		// Locate the unresolved reference.
		var fix *ErrFixup
		if errors.As(err, &fix) && fix.LineNo > 0 && fix.LineNo <= len(source) {
			lineno = fix.LineNo
			line = strings.TrimSpace(stripComment(source[lineno-1]))
		}
	}

	return
}
