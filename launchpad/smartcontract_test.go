package launchpad_test

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyperledger/fabric-protos-go/peer"
	launchpad "github.com/p2eengineering/gini-launchpad-contract/launchpad"
	"github.com/p2eengineering/gini-launchpad-contract/launchpad/mocks"
	"github.com/p2eengineering/kalp-sdk-public/response"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	KalpFoundation = "0b87970433b22494faff1cc7a819e71bddc7880c"
	UserOne        = "1111111111111111111111111111111111111111"
	UserTwo        = "2222222222222222222222222222222222222222"
	Recipient      = "3333333333333333333333333333333333333333"

	ContractAddress = "klp-6b616c70636861696e-cc"
	RewardToken     = "klp-72657761726431-cc"
	RaisingToken    = "klp-726169736531-cc"
	NativeToken     = "klp-6e6174697665-cc"
	ScoreSource     = "klp-73636f726531-cc"
	ScoreSourceTwo  = "klp-73636f726532-cc"
	RightRegistry   = "klp-72696768747331-cc"

	ZeroAddress = "0x0000000000000000000000000000000000000000"
)

//go:generate counterfeiter -o mocks/transactioncontext.go -fake-name TransactionContext . transactionContext

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)

	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

func SetTxTime(transactionContext *mocks.TransactionContext, seconds int64) {
	transactionContext.GetTxTimestampReturns(timestamppb.New(time.Unix(seconds, 0)), nil)
}

func NewMockContext() (*mocks.TransactionContext, map[string][]byte) {
	transactionContext := &mocks.TransactionContext{}
	worldState := map[string][]byte{}

	transactionContext.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	transactionContext.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	transactionContext.DelStateWithoutKYCStub = func(key string) error {
		delete(worldState, key)
		return nil
	}
	transactionContext.SetEventStub = func(name string, payload []byte) error {
		return nil
	}

	return transactionContext, worldState
}

func emittedEvents(transactionContext *mocks.TransactionContext) []string {
	names := make([]string, 0, transactionContext.SetEventCallCount())
	for i := 0; i < transactionContext.SetEventCallCount(); i++ {
		name, _ := transactionContext.SetEventArgsForCall(i)
		names = append(names, name)
	}
	return names
}

func okResponse(payload string) response.Response {
	return response.Response{
		Response: peer.Response{
			Status:  200,
			Payload: []byte(payload),
		},
	}
}

// collaborators wires InvokeChaincode to an in-memory token/score/right
// model shared by the funding and claiming tests.
type collaborators struct {
	scores     map[string]string
	balances   map[string]map[string]*big.Int
	rightOwner map[string]string
	rightAvail map[string]*big.Int
	// transferDelta overrides the custody credit of the next TransferFrom,
	// used to simulate a mismatched native transfer.
	transferDelta *big.Int
}

func newCollaborators() *collaborators {
	return &collaborators{
		scores:     map[string]string{},
		balances:   map[string]map[string]*big.Int{},
		rightOwner: map[string]string{},
		rightAvail: map[string]*big.Int{},
	}
}

func (c *collaborators) balanceOf(token, account string) *big.Int {
	if c.balances[token] == nil {
		c.balances[token] = map[string]*big.Int{}
	}
	if c.balances[token][account] == nil {
		c.balances[token][account] = big.NewInt(0)
	}
	return c.balances[token][account]
}

func (c *collaborators) install(transactionContext *mocks.TransactionContext) {
	transactionContext.InvokeChaincodeStub = func(contract string, args [][]byte, channel string) response.Response {
		fn := string(args[0])
		switch fn {
		case "GetUserScore":
			score, ok := c.scores[contract+"_"+string(args[1])]
			if !ok {
				score = "0"
			}
			return okResponse(score)
		case "BalanceOf":
			return okResponse(c.balanceOf(contract, string(args[1])).String())
		case "Transfer":
			amount, _ := new(big.Int).SetString(string(args[2]), 10)
			c.balanceOf(contract, string(args[1])).Add(c.balanceOf(contract, string(args[1])), amount)
			return okResponse("true")
		case "TransferFrom":
			amount, _ := new(big.Int).SetString(string(args[3]), 10)
			credit := amount
			if c.transferDelta != nil {
				credit = c.transferDelta
				c.transferDelta = nil
			}
			c.balanceOf(contract, string(args[2])).Add(c.balanceOf(contract, string(args[2])), credit)
			return okResponse("true")
		case "OwnerOf":
			return okResponse(c.rightOwner[string(args[1])])
		case "GetAvailableAllocation":
			avail := c.rightAvail[string(args[1])]
			if avail == nil {
				avail = big.NewInt(0)
			}
			return okResponse(avail.String())
		case "SpendAllocation":
			amount, _ := new(big.Int).SetString(string(args[2]), 10)
			c.rightAvail[string(args[1])].Sub(c.rightAvail[string(args[1])], amount)
			return okResponse("")
		}
		return response.Response{Response: peer.Response{Status: 500, Message: "unknown function " + fn}}
	}
}

// allowlistLeaf mirrors the contract's leaf encoding so tests can build
// single-leaf trees where the root is the leaf itself.
func allowlistLeaf(t *testing.T, index uint64, account string) []byte {
	t.Helper()

	accountBytes, err := hex.DecodeString(account)
	require.NoError(t, err)

	indexBytes := make([]byte, 32)
	new(big.Int).SetUint64(index).FillBytes(indexBytes)

	return crypto.Keccak256(indexBytes, accountBytes)
}

func setAllowlistRootFor(t *testing.T, worldState map[string][]byte, index uint64, account string) {
	t.Helper()
	worldState[launchpad.AllowlistRootKey] = []byte(hex.EncodeToString(allowlistLeaf(t, index, account)))
}

func initializedContract(t *testing.T, scanMode string) (*launchpad.SmartContract, *mocks.TransactionContext, map[string][]byte) {
	t.Helper()

	transactionContext, worldState := NewMockContext()
	launchpadContract := &launchpad.SmartContract{}

	SetUserID(transactionContext, KalpFoundation)
	SetTxTime(transactionContext, 1_000_000)

	err := launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"100", "500", "1000"}, []uint64{100, 200, 300}, scanMode)
	require.NoError(t, err)

	return launchpadContract, transactionContext, worldState
}

// addDefaultPool registers a token pool with subscription window
// [2000, 3000], funding end 4000, target raise 1000 and price 2e18.
func addDefaultPool(t *testing.T, launchpadContract *launchpad.SmartContract, transactionContext *mocks.TransactionContext) {
	t.Helper()

	err := launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000", "2000000000000000000", "500", "300")
	require.NoError(t, err)
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	transactionContext, _ := NewMockContext()
	launchpadContract := &launchpad.SmartContract{}

	SetUserID(transactionContext, UserOne)
	err := launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"100"}, []uint64{100}, launchpad.TierScanLegacy)
	require.Error(t, err)
	require.Contains(t, err.Error(), "only kalp foundation")

	SetUserID(transactionContext, KalpFoundation)

	err = launchpadContract.Initialize(transactionContext, "not-a-contract",
		[]string{"100"}, []uint64{100}, launchpad.TierScanLegacy)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidContractAddress")

	err = launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"100", "500"}, []uint64{100}, launchpad.TierScanLegacy)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ArraysLengthMismatch")

	err = launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"500", "100"}, []uint64{100, 200}, launchpad.TierScanLegacy)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TiersNotAscending")

	err = launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"100", "500"}, []uint64{100, 200}, launchpad.TierScanLegacy)
	require.NoError(t, err)

	err = launchpadContract.Initialize(transactionContext, ContractAddress,
		[]string{"100", "500"}, []uint64{100, 200}, launchpad.TierScanLegacy)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already initialized")
}

func TestAddPool(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, UserOne)
	err := launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000", "2000000000000000000", "500", "300")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(transactionContext, KalpFoundation)

	err = launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		3000, 2000, 4000, "1000", "2000000000000000000", "500", "300")
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidTimestamps")

	err = launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "0", "2000000000000000000", "500", "300")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CannotBeZero")

	err = launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000", "0", "500", "300")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CannotBeZero")

	addDefaultPool(t, launchpadContract, transactionContext)

	count, err := launchpadContract.GetPoolCount(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	pool, err := launchpadContract.GetPool(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, RewardToken, pool.RewardToken)
	require.Equal(t, uint64(0), pool.RewardsStart)

	_, err = launchpadContract.GetPool(transactionContext, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidPool")
}

func TestSetPoolTimestamps(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	err := launchpadContract.SetPoolTimestamps(transactionContext, 0, 2500, 3500, 4500)
	require.NoError(t, err)

	pool, err := launchpadContract.GetPool(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2500), pool.SubscriptionStart)
	require.Equal(t, uint64(4500), pool.FundingEnd)

	err = launchpadContract.SetPoolTimestamps(transactionContext, 0, 3500, 2500, 4500)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidTimestamps")
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "250"
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 7, UserOne)
	SetUserID(transactionContext, UserOne)

	// Before the subscription window.
	SetTxTime(transactionContext, 1500)
	err := launchpadContract.Subscribe(transactionContext, 0, 7, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "WindowNotOpen")

	// After the subscription window.
	SetTxTime(transactionContext, 3500)
	err = launchpadContract.Subscribe(transactionContext, 0, 7, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "WindowClosed")

	// Wrong leaf index fails the proof.
	SetTxTime(transactionContext, 2500)
	err = launchpadContract.Subscribe(transactionContext, 0, 8, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidProof")

	err = launchpadContract.Subscribe(transactionContext, 0, 7, nil)
	require.NoError(t, err)

	user, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, uint64(100), user.Multiplier)

	stats, err := launchpadContract.GetPoolStats(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "100", stats.TotalMultiplierWeight)

	err = launchpadContract.Subscribe(transactionContext, 0, 7, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "AlreadySubscribed")
}

func TestSubscribeNotEligible(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "50"
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)

	err := launchpadContract.Subscribe(transactionContext, 0, 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NotEligible")
}

func TestSubscribeAggregatesScoreAcrossSources(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanFull)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSourceTwo))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "400"
	collab.scores[ScoreSourceTwo+"_"+UserOne] = "700"
	collab.install(transactionContext)

	score, err := launchpadContract.GetAggregateScore(transactionContext, UserOne)
	require.NoError(t, err)
	require.Equal(t, "1100", score)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)

	// 1100 crosses the highest threshold under the full scan.
	err = launchpadContract.Subscribe(transactionContext, 0, 0, nil)
	require.NoError(t, err)

	user, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, uint64(300), user.Multiplier)
}

func TestSubscribeWithAllocationRight(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.SetAllocationRightRegistry(transactionContext, RightRegistry))

	collab := newCollaborators()
	collab.rightOwner["right-1"] = UserOne
	collab.rightAvail["right-1"] = big.NewInt(800)
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)

	// Not the owner of the referenced right.
	collab.rightOwner["right-1"] = UserTwo
	err := launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-1", 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NotAllocationRightOwner")

	collab.rightOwner["right-1"] = UserOne
	err = launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-1", 0, nil)
	require.NoError(t, err)

	// Granted value is min(right capacity 800, per-user cap 500, headroom 300).
	user, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "300", user.GuaranteedAllocationValue)
	require.Equal(t, "right-1", user.AllocationRightID)

	stats, err := launchpadContract.GetPoolStats(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "300", stats.TotalGuaranteedSubscribed)

	// Pool headroom is exhausted for the next participant.
	setAllowlistRootFor(t, worldState, 1, UserTwo)
	collab.rightOwner["right-2"] = UserTwo
	collab.rightAvail["right-2"] = big.NewInt(100)
	SetUserID(transactionContext, UserTwo)
	err = launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-2", 1, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CapacityExceeded")
}

func TestSubscribeWithAllocationRightZeroGrant(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)

	// A per-user staking cap of zero leaves nothing to grant.
	SetUserID(transactionContext, KalpFoundation)
	err := launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000", "2000000000000000000", "0", "300")
	require.NoError(t, err)
	require.NoError(t, launchpadContract.SetAllocationRightRegistry(transactionContext, RightRegistry))

	collab := newCollaborators()
	collab.rightOwner["right-1"] = UserOne
	collab.rightAvail["right-1"] = big.NewInt(800)
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)

	err = launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-1", 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CapacityExceeded")

	// No participant record is left behind.
	user, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "", user.AllocationRightID)
	require.Equal(t, "0", user.GuaranteedAllocationValue)
	require.False(t, user.IsSubscribed())

	stats, err := launchpadContract.GetPoolStats(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "0", stats.TotalGuaranteedSubscribed)
}

func TestSubscribeWithAllocationRightNativePool(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, KalpFoundation)
	err := launchpadContract.AddPool(transactionContext, RewardToken, ZeroAddress,
		2000, 3000, 4000, "1000", "2000000000000000000", "500", "300")
	require.NoError(t, err)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)

	err = launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-1", 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "GuaranteedAllocationNotSupported")
}

func TestFund(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanFull)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "150"
	collab.scores[ScoreSource+"_"+UserTwo] = "600"
	collab.install(transactionContext)

	SetTxTime(transactionContext, 2500)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	require.NoError(t, launchpadContract.Subscribe(transactionContext, 0, 0, nil))

	setAllowlistRootFor(t, worldState, 1, UserTwo)
	SetUserID(transactionContext, UserTwo)
	require.NoError(t, launchpadContract.Subscribe(transactionContext, 0, 1, nil))

	// Weights 100 and 200 over target raise 1000: caps 1000*100/(100*300)=3
	// and 1000*200/(100*300)=6, both rounded down.
	capOne, err := launchpadContract.GetMaximumAllocation(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "3", capOne)

	capTwo, err := launchpadContract.GetMaximumAllocation(transactionContext, 0, UserTwo)
	require.NoError(t, err)
	require.Equal(t, "6", capTwo)

	SetUserID(transactionContext, UserOne)

	// Funding is closed during the subscription window.
	err = launchpadContract.Fund(transactionContext, 0, "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "WindowNotOpen")

	// And after the funding window.
	SetTxTime(transactionContext, 4500)
	err = launchpadContract.Fund(transactionContext, 0, "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "WindowClosed")

	SetTxTime(transactionContext, 3500)

	err = launchpadContract.Fund(transactionContext, 0, "4")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CapacityExceeded")

	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "2"))
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "1"))

	// The cap applies to the cumulative amount.
	err = launchpadContract.Fund(transactionContext, 0, "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CapacityExceeded")

	SetUserID(transactionContext, UserTwo)
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "6"))

	stats, err := launchpadContract.GetPoolStats(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "9", stats.TotalRaised)

	userOne, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	userTwo, err := launchpadContract.GetUserInfo(transactionContext, 0, UserTwo)
	require.NoError(t, err)

	fundedSum := new(big.Int)
	for _, funded := range []string{userOne.FundedAmount, userTwo.FundedAmount} {
		amount, ok := new(big.Int).SetString(funded, 10)
		require.True(t, ok)
		fundedSum.Add(fundedSum, amount)
	}
	require.Equal(t, stats.TotalRaised, fundedSum.String())

	require.Equal(t, "9", collab.balanceOf(RaisingToken, ContractAddress).String())
}

func TestFundUnsubscribed(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	collab := newCollaborators()
	collab.install(transactionContext)

	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 3500)

	err := launchpadContract.Fund(transactionContext, 0, "100")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NotEligible")
}

func TestFundGuaranteedSpendsRight(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.SetAllocationRightRegistry(transactionContext, RightRegistry))

	collab := newCollaborators()
	collab.rightOwner["right-1"] = UserOne
	collab.rightAvail["right-1"] = big.NewInt(250)
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)
	require.NoError(t, launchpadContract.SubscribeWithAllocationRight(transactionContext, 0, "right-1", 0, nil))

	// Granted min(250, 500, 300) = 250; cap for the guaranteed path is the
	// granted value itself.
	maxAllocation, err := launchpadContract.GetMaximumAllocation(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "250", maxAllocation)

	SetTxTime(transactionContext, 3500)
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "100"))

	require.Equal(t, "150", collab.rightAvail["right-1"].String())

	stats, err := launchpadContract.GetPoolStats(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "100", stats.TotalGuaranteedRaised)
}

func TestFundNativeAmountMismatch(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, KalpFoundation)
	err := launchpadContract.AddPool(transactionContext, RewardToken, ZeroAddress,
		2000, 3000, 4000, "2000", "2000000000000000000", "500", "0")
	require.NoError(t, err)
	require.NoError(t, launchpadContract.SetNativeToken(transactionContext, NativeToken))
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "150"
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)
	require.NoError(t, launchpadContract.Subscribe(transactionContext, 0, 0, nil))

	SetTxTime(transactionContext, 3500)

	// Custody is credited 9 for a declared 10.
	collab.transferDelta = big.NewInt(9)
	err = launchpadContract.Fund(transactionContext, 0, "10")
	require.Error(t, err)
	require.Contains(t, err.Error(), "AmountMismatch")

	// The mock ledger keeps the failed attempt's writes, so 10 of the
	// 20 cap is already consumed.
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "10"))
}

func TestClaimFundRaising(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanFull)
	addDefaultPool(t, launchpadContract, transactionContext)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "150"
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)
	require.NoError(t, launchpadContract.Subscribe(transactionContext, 0, 0, nil))
	SetTxTime(transactionContext, 3500)
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "10"))

	SetUserID(transactionContext, KalpFoundation)

	// The sweep is gated on vesting being configured.
	err := launchpadContract.ClaimFundRaising(transactionContext, 0, Recipient)
	require.Error(t, err)
	require.Contains(t, err.Error(), "VestingNotConfigured")

	SetTxTime(transactionContext, 4100)
	collab.balanceOf(RewardToken, KalpFoundation).SetInt64(1000)
	require.NoError(t, launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 6000, 10000))

	require.NoError(t, launchpadContract.ClaimFundRaising(transactionContext, 0, Recipient))
	require.Equal(t, "10", collab.balanceOf(RaisingToken, Recipient).String())

	// One shot per pool.
	err = launchpadContract.ClaimFundRaising(transactionContext, 0, Recipient)
	require.Error(t, err)
	require.Contains(t, err.Error(), "FundsAlreadyClaimed")

	require.Equal(t, "10", collab.balanceOf(RaisingToken, Recipient).String())
}

func TestRolesAndAllowlistRoot(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanLegacy)

	root := make([]byte, 32)
	root[31] = 1
	rootHex := hex.EncodeToString(root)

	SetUserID(transactionContext, UserOne)
	err := launchpadContract.SetAllowlistRoot(transactionContext, rootHex)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.SetRootManager(transactionContext, UserOne))

	SetUserID(transactionContext, UserOne)
	require.NoError(t, launchpadContract.SetAllowlistRoot(transactionContext, rootHex))
	require.Equal(t, rootHex, string(worldState[launchpad.AllowlistRootKey]))

	// Root managers cannot add pools.
	err = launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000", "2000000000000000000", "500", "300")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.RemoveRootManager(transactionContext, UserOne))

	SetUserID(transactionContext, UserOne)
	err = launchpadContract.SetAllowlistRoot(transactionContext, rootHex)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")
}

func TestScoreSourceManagement(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	err := launchpadContract.AddScoreSource(transactionContext, ScoreSource)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")

	require.NoError(t, launchpadContract.RemoveScoreSource(transactionContext, ScoreSource))

	err = launchpadContract.RemoveScoreSource(transactionContext, ScoreSource)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not registered")
}

func TestSetNativeTokenOnce(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.SetNativeToken(transactionContext, NativeToken))
	require.Contains(t, emittedEvents(transactionContext), "NativeTokenSet")

	err := launchpadContract.SetNativeToken(transactionContext, NativeToken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TokenAlreadySet")
}

func TestSetAllocationRightRegistryEmitsEvent(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := initializedContract(t, launchpad.TierScanLegacy)

	SetUserID(transactionContext, KalpFoundation)
	require.NoError(t, launchpadContract.SetAllocationRightRegistry(transactionContext, RightRegistry))
	require.Contains(t, emittedEvents(transactionContext), "AllocationRightRegistrySet")
}

func marshalForState(t *testing.T, value interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return data
}
