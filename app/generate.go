package app

import (
	"github.com/spf13/cobra"

	"github.com/joengan/passforge/internal/charset"
	"github.com/joengan/passforge/internal/generator"
	"github.com/joengan/passforge/internal/random"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().IntVarP(&genOpts.Length, "length", "l", charset.DefaultLength, "Password length")
	generateCmd.Flags().BoolVar(&genOpts.Upper, "upper", true, "Include uppercase letters")
	generateCmd.Flags().BoolVar(&genOpts.Lower, "lower", true, "Include lowercase letters")
	generateCmd.Flags().BoolVar(&genOpts.Digits, "nums", true, "Include digits")
	generateCmd.Flags().BoolVar(&genOpts.Symbols, "symbols", true, "Include symbols")
	generateCmd.Flags().BoolVar(&genOpts.ForceEach, "force-each", true,
		"Require at least one character from each enabled class")
	generateCmd.Flags().BoolVar(&genOpts.ExcludeAmbiguous, "exclude-ambiguous", false,
		"Drop characters that are easily confused (e.g. l, 1, O, 0)")
	generateCmd.Flags().BoolVar(&genOpts.ExcludeCodeUnsafe, "exclude-code-unsafe", false,
		"Drop symbols that tend to break shells and config files")
	generateCmd.Flags().IntVarP(&genCount, "count", "c", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false,
		"Print entropy and sampling method alongside each password")

	rootCmd.AddCommand(generateCmd)
}

var (
	genOpts    = charset.DefaultOptions()
	genCount   int
	genVerbose bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords and exit",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return random.Probe()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i := 0; i < genCount; i++ {
				res, err := generator.Generate(genOpts)
				if err != nil {
					return err
				}

				if genVerbose {
					cmd.Printf("%s\t%.2f bits\t%s\n", res.Password, res.EntropyBits, res.Method)
					continue
				}

				cmd.Println(res.Password)
			}

			return nil
		},
	}
)
