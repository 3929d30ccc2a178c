package cmd

import (
	"fmt"

	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List and select logged in accounts",
}

func init() {
	list := commands.New(&cobra.Command{
		Use:     "list",
		Short:   "Lists all accounts",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
	}, &accountsListRunner{})

	sel := commands.New(&cobra.Command{
		Use:   "select <username or uuid>",
		Short: "Selects the account used for launching",
		Args:  cobra.ExactArgs(1),
	}, &accountsSelectRunner{})

	accountsCmd.AddCommand(list.Command, sel.Command)
	rootCmd.AddCommand(accountsCmd)
}

type accountsListRunner struct{}

func (a *accountsListRunner) RunE(cmd *cobra.Command, args []string) error {
	store := globals.Accounts
	if len(store.Accounts) == 0 {
		fmt.Println(gchalk.Gray("No accounts. Instances launch in demo mode."))
		return nil
	}

	for _, account := range store.Accounts {
		marker := " "
		if account.UUID == store.Default {
			marker = gchalk.Green("*")
		}
		fmt.Printf("%s %s %s\n", marker, account.Username, gchalk.Gray(account.UUID))
	}
	return nil
}

type accountsSelectRunner struct{}

func (a *accountsSelectRunner) RunE(cmd *cobra.Command, args []string) error {
	store := globals.Accounts
	account, err := store.Get(args[0])
	if err != nil {
		return &commands.CliError{
			Err:         err,
			Text:        err.Error(),
			Suggestions: []string{"Run `helix accounts list` to see all accounts"},
		}
	}

	store.Default = account.UUID
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Printf("Selected %s\n", gchalk.Bold(account.Username))
	return nil
}
