// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/gbasm/translate"
)

var lang string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gbasm",
	Short: "Game Boy assembler and linker",
	Long: `Gbasm assembles LR35902 source into a Game Boy cartridge image.

The image is the cartridge boot header, followed by the data segment and
then the code segment. The program starts at the label 'main'; the string
variables '__program_name' and '__manufacturer_code' fill in the header.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if len(lang) != 0 {
			err := translate.Use(lang)
			if err != nil {
				log.Fatalf("--lang %v: %v", lang, err)
			}
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Language of messages (default from the environment)")
}

func main() {
	log.SetFlags(0)

	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
