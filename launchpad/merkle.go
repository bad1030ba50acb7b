package launchpad

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// The allowlist is a Merkle tree over (index, account) leaves. A leaf is
// keccak256 of the 32-byte big-endian index followed by the 20-byte account,
// and sibling pairs are hashed in sorted order, so a proof carries no
// left/right flags.

func allowlistLeaf(index uint64, account string) ([]byte, error) {
	accountBytes, err := hex.DecodeString(strings.TrimPrefix(account, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to hex decode account %s: %v", account, err)
	}

	indexBytes := make([]byte, 32)
	new(big.Int).SetUint64(index).FillBytes(indexBytes)

	return crypto.Keccak256(indexBytes, accountBytes), nil
}

func decodeProofNode(node string) ([]byte, error) {
	nodeBytes, err := hex.DecodeString(strings.TrimPrefix(node, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to hex decode proof node %s: %v", node, err)
	}
	if len(nodeBytes) != 32 {
		return nil, fmt.Errorf("proof node %s is not 32 bytes", node)
	}
	return nodeBytes, nil
}

// VerifyAllowlistProof checks a Merkle membership proof for (index, account)
// against the given root.
func VerifyAllowlistProof(proof []string, root string, index uint64, account string) (bool, error) {
	rootBytes, err := hex.DecodeString(strings.TrimPrefix(root, "0x"))
	if err != nil {
		return false, fmt.Errorf("failed to hex decode root %s: %v", root, err)
	}

	computed, err := allowlistLeaf(index, account)
	if err != nil {
		return false, err
	}

	for _, node := range proof {
		nodeBytes, err := decodeProofNode(node)
		if err != nil {
			return false, err
		}

		if bytes.Compare(computed, nodeBytes) <= 0 {
			computed = crypto.Keccak256(computed, nodeBytes)
		} else {
			computed = crypto.Keccak256(nodeBytes, computed)
		}
	}

	return bytes.Equal(computed, rootBytes), nil
}

// verifyAllowlisted resolves the stored root and rejects with InvalidProof
// when the membership check fails.
func verifyAllowlisted(ctx kalpsdk.TransactionContextInterface, proof []string, index uint64, account string) error {
	rootAsBytes, err := ctx.GetState(AllowlistRootKey)
	if err != nil {
		return fmt.Errorf("failed to get allowlist root: %v", err)
	}
	if rootAsBytes == nil {
		return fmt.Errorf("%w: allowlist root not set", ErrInvalidProof)
	}

	ok, err := VerifyAllowlistProof(proof, string(rootAsBytes), index, account)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	if !ok {
		return fmt.Errorf("%w: account %s is not allowlisted", ErrInvalidProof, account)
	}

	return nil
}
