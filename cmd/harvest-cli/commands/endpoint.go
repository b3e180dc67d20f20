package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harvestchain/harvest-go/node"
	"github.com/harvestchain/harvest-go/serialization"
	"github.com/harvestchain/harvest-go/wallet"
)

var EndpointCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoint <record-file> <protocol> <host> <port>",
		Short: "attach a remote harvesting endpoint and re-emit the record",
		Args:  cobra.ExactArgs(4),
		Run:   endpoint,
	}
	return cmd
}

func endpoint(cmd *cobra.Command, args []string) {
	data, err := readRecord(args[0])
	if err != nil {
		fmt.Println("Endpoint Error:", err)
		return
	}
	account, err := wallet.DeserializeAccount(serialization.NewDeserializer(data))
	if err != nil {
		fmt.Println("Endpoint Error:", err)
		return
	}
	port, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Println("Endpoint Error: port must be an integer")
		return
	}
	account.SetRemoteEndpoint(node.NewEndpoint(args[1], args[2], port))
	out, err := encodeAccount(account)
	if err != nil {
		fmt.Println("Endpoint Error:", err)
		return
	}
	fmt.Println(string(out))
}
