package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/gbasm/assembler"
	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/linker"
)

var build = struct {
	output   string
	listing  string
	symbols  bool
	verbose  bool
	defines  []string
	cgbOnly  bool
	sgb      bool
	version  uint8
	licensee string
}{}

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build source.asm",
	Short: "Assemble and link a source file into a cartridge image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := args[0]

		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()

		asm := &assembler.Assembler{Verbose: build.verbose}
		for _, define := range build.defines {
			name, value, ok := strings.Cut(define, "=")
			if !ok {
				value = "1"
			}
			asm.Predefine(name, value)
		}

		obj, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}

		hdr := cartridge.Default()
		if build.cgbOnly {
			hdr.CGBFlag = cartridge.CGB_ONLY
		}
		if build.sgb {
			hdr.SGBFlag = cartridge.SGB_SUPPORTED
		}
		hdr.Version = build.version
		hdr.Licensee = build.licensee

		ln := &linker.Linker{Verbose: build.verbose, Header: &hdr}
		ln.Attach(obj)

		// Write to memory first, so a failed link leaves no output file.
		var image bytes.Buffer
		err = ln.Emit(&image)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}

		output := build.output
		if len(output) == 0 {
			output = strings.TrimSuffix(source, filepath.Ext(source)) + ".gb"
		}
		err = os.WriteFile(output, image.Bytes(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}

		if len(build.listing) != 0 {
			ouf, err := os.Create(build.listing)
			if err != nil {
				log.Fatalf("%v: %v", build.listing, err)
			}
			defer ouf.Close()
			_, err = asm.Listing().WriteTo(ouf)
			if err != nil {
				log.Fatalf("%v: %v", build.listing, err)
			}
		}

		if build.symbols {
			for name, addr := range ln.Symbols() {
				fmt.Printf("%04X %v\n", addr, name)
			}
		}
	},
}

func init() {
	flags := buildCmd.Flags()
	flags.StringVarP(&build.output, "output", "o", "", "Cartridge image (default: source with .gb extension)")
	flags.StringVarP(&build.listing, "listing", "l", "", "Write an instruction listing")
	flags.BoolVarP(&build.symbols, "symbols", "m", false, "Print the symbol map")
	flags.BoolVarP(&build.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringArrayVarP(&build.defines, "define", "D", nil, "Predefine an equate, NAME=VALUE")
	flags.BoolVar(&build.cgbOnly, "cgb-only", false, "Mark the cartridge as Game Boy Color only")
	flags.BoolVar(&build.sgb, "sgb", false, "Mark the cartridge as Super Game Boy capable")
	flags.Uint8Var(&build.version, "version", 0, "Mask ROM version number")
	flags.StringVar(&build.licensee, "licensee", "00", "Two character licensee code")

	rootCmd.AddCommand(buildCmd)
}
