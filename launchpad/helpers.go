package launchpad

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func GetUserId(ctx kalpsdk.TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeId := string(decodeID)
	userId := completeId[(strings.Index(completeId, "x509::CN=") + 9):strings.Index(completeId, ",")]

	if !IsUserAddressValid(userId) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUserAddress, userId)
	}

	return userId, nil
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func Decimals() uint64 {
	return 18
}

func scaleFactor() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(Decimals())), nil)
}

// parseAmount parses a non-negative decimal string amount.
func parseAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, ErrInvalidAmount(entity, value)
	}
	return amount, nil
}

func minBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// txTimestamp returns the transaction's wall-clock seconds. All timing gates
// are evaluated against this clock.
func txTimestamp(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "Failed to get transaction timestamp", err)
	}

	return uint64(ts.Seconds), nil
}

func roleKey(role, account string) string {
	return fmt.Sprintf("role_%s_%s", role, account)
}

func HasRole(ctx kalpsdk.TransactionContextInterface, role, account string) (bool, error) {
	roleAsBytes, err := ctx.GetState(roleKey(role, account))
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get role with Key %s", roleKey(role, account)), err)
	}

	return roleAsBytes != nil, nil
}

func grantRole(ctx kalpsdk.TransactionContextInterface, role, account string) error {
	err := ctx.PutStateWithoutKYC(roleKey(role, account), []byte("true"))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to grant role %s to %s", role, account), err)
	}

	return nil
}

func revokeRole(ctx kalpsdk.TransactionContextInterface, role, account string) error {
	err := ctx.DelStateWithoutKYC(roleKey(role, account))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to revoke role %s from %s", role, account), err)
	}

	return nil
}

// requireAdmin resolves the signer and checks the admin role. The foundation
// address is always an admin so the contract cannot lock itself out.
func requireAdmin(ctx kalpsdk.TransactionContextInterface) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer == kalpFoundation {
		return signer, nil
	}

	isAdmin, err := HasRole(ctx, AdminRole, signer)
	if err != nil {
		return "", err
	}
	if !isAdmin {
		return "", fmt.Errorf("%w: %s is not an admin", ErrUnauthorized, signer)
	}

	return signer, nil
}

// requireRootManager admits root managers and admins.
func requireRootManager(ctx kalpsdk.TransactionContextInterface) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer == kalpFoundation {
		return signer, nil
	}

	isRootManager, err := HasRole(ctx, RootManagerRole, signer)
	if err != nil {
		return "", err
	}
	if isRootManager {
		return signer, nil
	}

	isAdmin, err := HasRole(ctx, AdminRole, signer)
	if err != nil {
		return "", err
	}
	if !isAdmin {
		return "", fmt.Errorf("%w: %s is not a root manager", ErrUnauthorized, signer)
	}

	return signer, nil
}
