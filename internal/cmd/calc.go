package cmd

import (
	"fmt"
	"strings"

	"github.com/spendwise/cli/pkg/calc"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc <expression>",
	Short: "Evaluate a quick arithmetic expression",
	Long:  `Evaluate arithmetic like "2+3*4", "120×2÷3", or "1500-10%".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calc.Evaluate(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(calc.Format(result))
		return nil
	},
}
