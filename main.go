/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log"

	launchpad "github.com/p2eengineering/gini-launchpad-contract/launchpad"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: false}
	contract.Logger = kalpsdk.NewLogger()
	launchpadChaincode, err := kalpsdk.NewChaincode(&launchpad.SmartContract{Contract: contract})
	if err != nil {
		log.Panicf("Error creating launchpad chaincode: %v", err)
	}

	if err := launchpadChaincode.Start(); err != nil {
		log.Panicf("Error starting launchpad chaincode: %v", err)
	}
}
