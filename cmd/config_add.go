package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/questgraph/internal/config"

	"github.com/spf13/cobra"
)

var flagFromFile string

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new config, from defaults or from --from <file>",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Enter label for new config: ")
			label, _ = reader.ReadString('\n')
		}
		label = strings.TrimSpace(label)

		if flagFromFile != "" {
			if err := config.AddConfig(label, flagFromFile); err != nil {
				return err
			}
			path, _ := config.ConfigPathByLabel(label)
			fmt.Printf("Imported %s as config %q (%s)\n", flagFromFile, label, path)
			return nil
		}

		path, err := config.CreateEmptyConfig(label)
		if err != nil {
			return err
		}

		fmt.Printf("Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&flagFromFile, "from", "", "import an existing YAML config file")
	configCmd.AddCommand(configAddCmd)
}
