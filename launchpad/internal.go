package launchpad

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// Collaborator contracts (tokens, score sources, the allocation-right
// registry) are reached through InvokeChaincode on the same channel. Every
// state update of the calling operation must be written before any of the
// transfer helpers below runs.

func invokeCollaborator(ctx kalpsdk.TransactionContextInterface, contract string, args ...string) ([]byte, error) {
	invokeArgs := make([][]byte, len(args))
	for i, arg := range args {
		invokeArgs[i] = []byte(arg)
	}

	resp := ctx.InvokeChaincode(contract, invokeArgs, "")
	if resp.Response.Status != http.StatusOK {
		return nil, fmt.Errorf("contract %s returned status %d: %s", contract, resp.Response.Status, resp.Response.Message)
	}

	return resp.Response.Payload, nil
}

func transferToken(ctx kalpsdk.TransactionContextInterface, token, recipient string, amount *big.Int) error {
	payload, err := invokeCollaborator(ctx, token, tokenTransferFn, recipient, amount.String())
	if err != nil {
		return ErrTransferFailed(token, err.Error())
	}
	if string(payload) != "true" {
		return ErrTransferFailed(token, string(payload))
	}

	return nil
}

func transferTokenFrom(ctx kalpsdk.TransactionContextInterface, token, sender, recipient string, amount *big.Int) error {
	payload, err := invokeCollaborator(ctx, token, tokenTransferFromFn, sender, recipient, amount.String())
	if err != nil {
		return ErrTransferFailed(token, err.Error())
	}
	if string(payload) != "true" {
		return ErrTransferFailed(token, string(payload))
	}

	return nil
}

func tokenBalanceOf(ctx kalpsdk.TransactionContextInterface, token, account string) (*big.Int, error) {
	payload, err := invokeCollaborator(ctx, token, tokenBalanceOfFn, account)
	if err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return nil, fmt.Errorf("failed to parse balance %q from token %s", string(payload), token)
	}

	return balance, nil
}

func sourceUserScore(ctx kalpsdk.TransactionContextInterface, source, account string) (*big.Int, error) {
	payload, err := invokeCollaborator(ctx, source, scoreGetUserScoreFn, account)
	if err != nil {
		return nil, err
	}

	score, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return nil, fmt.Errorf("failed to parse score %q from source %s", string(payload), source)
	}

	return score, nil
}

func allocationRightOwner(ctx kalpsdk.TransactionContextInterface, registry, rightID string) (string, error) {
	payload, err := invokeCollaborator(ctx, registry, rightOwnerOfFn, rightID)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}

func allocationRightAvailable(ctx kalpsdk.TransactionContextInterface, registry, rightID string) (*big.Int, error) {
	payload, err := invokeCollaborator(ctx, registry, rightAvailableFn, rightID)
	if err != nil {
		return nil, err
	}

	available, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return nil, fmt.Errorf("failed to parse available allocation %q for right %s", string(payload), rightID)
	}

	return available, nil
}

func spendAllocationRight(ctx kalpsdk.TransactionContextInterface, registry, rightID string, amount *big.Int) error {
	_, err := invokeCollaborator(ctx, registry, rightSpendFn, rightID, amount.String())
	return err
}

// getConfigAddress reads a configuration address written at setup time.
func getConfigAddress(ctx kalpsdk.TransactionContextInterface, key string) (string, error) {
	addressAsBytes, err := ctx.GetState(key)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get config address with Key %s", key), err)
	}
	if addressAsBytes == nil || string(addressAsBytes) == "" {
		return "", NewCustomError(http.StatusConflict, fmt.Sprintf("config address %s is not set", key), nil)
	}

	return string(addressAsBytes), nil
}

// raisingToken resolves the token contract that carries a pool's raising
// asset; native pools settle through the platform token configured at setup.
func raisingToken(ctx kalpsdk.TransactionContextInterface, pool *Pool) (string, error) {
	if pool.RaisingAsset == zeroAddress {
		return getConfigAddress(ctx, NativeTokenKey)
	}
	return pool.RaisingAsset, nil
}
