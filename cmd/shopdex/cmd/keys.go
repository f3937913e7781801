package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage shopkeeper passkeys",
	Long:  "Registers and removes the 16-character passkeys shopkeepers log in with.",
}

var keysAddCmd = &cobra.Command{
	Use:   "add <shop> <passkey>",
	Short: "Register a passkey for a shop",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeysAdd,
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove <shop>",
	Short: "Remove every passkey for a shop",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeysRemove,
}

func init() {
	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysRemoveCmd)
}

func runKeysAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore(effectiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetPasskey(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("passkey registered for %s\n", args[0])
	return nil
}

func runKeysRemove(cmd *cobra.Command, args []string) error {
	store, err := openStore(effectiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.RemovePasskeys(args[0]); err != nil {
		return err
	}
	fmt.Printf("passkeys removed for %s\n", args[0])
	return nil
}
