package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/harvestchain/harvest-go/serialization"
	"github.com/harvestchain/harvest-go/wallet"
)

// Log is the shared logger, set by main before command execution.
var Log = logrus.New()

func encodeAccount(account *wallet.Account) ([]byte, error) {
	s := serialization.NewSerializer()
	account.Serialize(s)
	return s.Bytes()
}

func printAccount(account *wallet.Account) {
	fmt.Println("Address:     ", account.Address().String())
	fmt.Println("Private Key: ", account.PrimaryKey().ToWIF())
	data, err := encodeAccount(account)
	if err != nil {
		Log.Error("encode account: ", err)
		return
	}
	fmt.Println("Record:      ", string(data))
}
