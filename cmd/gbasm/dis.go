package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/gbasm/cartridge"
	"github.com/ezrec/gbasm/instruction"
)

var dis = struct {
	start int
	end   int
}{}

// disCmd represents the dis command
var disCmd = &cobra.Command{
	Use:   "dis image.gb",
	Short: "Disassemble a cartridge image",
	Long: `Dis disassembles a cartridge image, by default from the entry point
in its header to the end of the image.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}
		if len(image) < cartridge.HeaderSize {
			log.Fatalf("%v: not a cartridge image", args[0])
		}

		pc := dis.start
		if pc < 0 {
			pc = int(image[cartridge.ENTRY_OFFSET+2]) | int(image[cartridge.ENTRY_OFFSET+3])<<8
		}
		end := dis.end
		if end < 0 || end > len(image) {
			end = len(image)
		}

		for pc < end {
			tmpl, operands, err := instruction.Default.Decode(image[pc:end])
			if err != nil {
				fmt.Printf("%04X  %02X        .db 0x%02X\n", pc, image[pc], image[pc])
				pc++
				continue
			}

			code := make([]string, tmpl.Size)
			for n := range tmpl.Size {
				code[n] = fmt.Sprintf("%02X", image[pc+n])
			}
			text := tmpl.Mnemonic
			if len(operands) != 0 {
				text += " " + strings.Join(operands, ",")
			}
			fmt.Printf("%04X  %-9s %-20s ; %v\n", pc, strings.Join(code, " "), text, tmpl.Name)
			pc += tmpl.Size
		}
	},
}

func init() {
	flags := disCmd.Flags()
	flags.IntVarP(&dis.start, "start", "s", -1, "First address (default: the entry point)")
	flags.IntVarP(&dis.end, "end", "e", -1, "Address after the last (default: end of image)")

	rootCmd.AddCommand(disCmd)
}
