package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/harvestchain/harvest-go/prototype"
	"github.com/harvestchain/harvest-go/wallet"
)

var importRemoteKey string

var ImportCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <private-key-wif>",
		Short: "build an account from an existing private key",
		Args:  cobra.ExactArgs(1),
		Run:   importKey,
	}
	cmd.Flags().StringVar(&importRemoteKey, "remote-key", "", "raw remote harvesting key (decimal integer)")
	return cmd
}

func importKey(cmd *cobra.Command, args []string) {
	privKey, err := prototype.PrivateKeyFromWIF(args[0])
	if err != nil {
		fmt.Println("Import Key Error:", err)
		return
	}
	var rawRemote *big.Int
	if importRemoteKey != "" {
		raw, ok := new(big.Int).SetString(importRemoteKey, 10)
		if !ok {
			fmt.Println("Import Key Error: remote key is not a decimal integer")
			return
		}
		rawRemote = raw
	}
	account, err := wallet.NewAccountFromKey(privKey, rawRemote)
	if err != nil {
		fmt.Println("Import Key Error:", err)
		return
	}
	printAccount(account)
}
