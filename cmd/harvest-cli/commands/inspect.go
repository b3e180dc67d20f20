package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/harvestchain/harvest-go/serialization"
	"github.com/harvestchain/harvest-go/wallet"
)

var InspectCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <record-file>",
		Short: "decode a serialized account record, '-' reads stdin",
		Args:  cobra.ExactArgs(1),
		Run:   inspect,
	}
	return cmd
}

func readRecord(path string) ([]byte, error) {
	if path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func inspect(cmd *cobra.Command, args []string) {
	data, err := readRecord(args[0])
	if err != nil {
		fmt.Println("Inspect Error:", err)
		return
	}
	account, err := wallet.DeserializeAccount(serialization.NewDeserializer(data))
	if err != nil {
		fmt.Println("Inspect Error:", err)
		return
	}
	fmt.Println("Address:", account.Address().String())
	if remote := account.RemoteKey(); remote != nil {
		fmt.Println("Remote Harvesting Key: present")
	} else {
		fmt.Println("Remote Harvesting Key: absent")
	}
	if endpoint := account.RemoteEndpoint(); endpoint != nil {
		fmt.Println("Remote Harvesting Endpoint:", endpoint.String())
	} else {
		fmt.Println("Remote Harvesting Endpoint: absent")
	}
}
