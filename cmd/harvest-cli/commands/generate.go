package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestchain/harvest-go/wallet"
)

var GenerateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a new account",
		Run:   generate,
	}
	return cmd
}

func generate(cmd *cobra.Command, args []string) {
	account, err := wallet.NewAccount()
	if err != nil {
		fmt.Println("Generate Account Error:", err)
		return
	}
	printAccount(account)
}
