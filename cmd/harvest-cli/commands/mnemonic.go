package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestchain/harvest-go/wallet"
)

var (
	mnemonicPhrase string
	mnemonicPath   string
)

var MnemonicCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "derive an account from a mnemonic, generating one when absent",
		Run:   mnemonic,
	}
	cmd.Flags().StringVar(&mnemonicPhrase, "mnemonic", "", "existing mnemonic to derive from")
	cmd.Flags().StringVar(&mnemonicPath, "path", wallet.DefaultHDPath, "derivation path")
	return cmd
}

func mnemonic(cmd *cobra.Command, args []string) {
	phrase := mnemonicPhrase
	if phrase == "" {
		generated, err := wallet.GenerateMnemonic()
		if err != nil {
			fmt.Println("Generate Mnemonic Error:", err)
			return
		}
		phrase = generated
	}
	account, err := wallet.NewAccountFromMnemonicPath(phrase, mnemonicPath)
	if err != nil {
		fmt.Println("Derive Account Error:", err)
		return
	}
	fmt.Println("Mnemonic:", phrase)
	printAccount(account)
}
