package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List all distinct item names",
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	a, closer, err := loadApp()
	if err != nil {
		return err
	}
	defer closer()

	for _, name := range a.Items() {
		fmt.Println(name)
	}
	return nil
}
