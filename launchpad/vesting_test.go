package launchpad_test

import (
	"math/big"
	"testing"

	launchpad "github.com/p2eengineering/gini-launchpad-contract/launchpad"
	"github.com/p2eengineering/gini-launchpad-contract/launchpad/mocks"
	"github.com/stretchr/testify/require"
)

// fundedPool sets up a pool raising 1000e18 at price 2e18 with a single
// subscriber holding the full multiplier weight, funded with 10e18 during the
// funding window. The subscriber's reward entitlement is 5e18.
func fundedPool(t *testing.T) (*launchpad.SmartContract, *mocks.TransactionContext, *collaborators) {
	t.Helper()

	launchpadContract, transactionContext, worldState := initializedContract(t, launchpad.TierScanFull)

	SetUserID(transactionContext, KalpFoundation)
	err := launchpadContract.AddPool(transactionContext, RewardToken, RaisingToken,
		2000, 3000, 4000, "1000000000000000000000", "2000000000000000000",
		"100000000000000000000", "0")
	require.NoError(t, err)
	require.NoError(t, launchpadContract.AddScoreSource(transactionContext, ScoreSource))

	collab := newCollaborators()
	collab.scores[ScoreSource+"_"+UserOne] = "150"
	collab.install(transactionContext)

	setAllowlistRootFor(t, worldState, 0, UserOne)
	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 2500)
	require.NoError(t, launchpadContract.Subscribe(transactionContext, 0, 0, nil))

	SetTxTime(transactionContext, 3500)
	require.NoError(t, launchpadContract.Fund(transactionContext, 0, "10000000000000000000"))

	return launchpadContract, transactionContext, collab
}

func TestConfigureVesting(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, collab := fundedPool(t)

	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 4100)
	err := launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")

	SetUserID(transactionContext, KalpFoundation)

	// Funding must have closed.
	SetTxTime(transactionContext, 3900)
	err = launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TooEarly")

	SetTxTime(transactionContext, 4100)

	err = launchpadContract.ConfigureVesting(transactionContext, 0, 4000, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not in the future")

	err = launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 4900, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidTimestamps")

	err = launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 7000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "InvalidTimestamps")

	require.NoError(t, launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000))

	// The deposit is totalRaised scaled into reward units: 10e18 * 1e18 / 2e18.
	require.Equal(t, "5000000000000000000", collab.balanceOf(RewardToken, ContractAddress).String())

	err = launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "VestingAlreadyConfigured")
}

func TestSetVestingTimestamps(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := fundedPool(t)

	SetUserID(transactionContext, KalpFoundation)
	SetTxTime(transactionContext, 4100)

	err := launchpadContract.SetVestingTimestamps(transactionContext, 0, 5000, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "VestingNotConfigured")

	require.NoError(t, launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000))

	err = launchpadContract.SetVestingTimestamps(transactionContext, 0, 0, 7000, 10000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CannotBeZero")

	require.NoError(t, launchpadContract.SetVestingTimestamps(transactionContext, 0, 6000, 8000, 11000))

	pool, err := launchpadContract.GetPool(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(6000), pool.RewardsStart)
	require.Equal(t, uint64(8000), pool.RewardsCliffEnd)
	require.Equal(t, uint64(11000), pool.RewardsEnd)
}

func TestPendingRewardsAccrual(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := fundedPool(t)

	SetUserID(transactionContext, KalpFoundation)
	SetTxTime(transactionContext, 4100)
	require.NoError(t, launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000))

	total, err := launchpadContract.GetTotalRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "5000000000000000000", total)

	// Nothing accrues before the vesting start.
	SetTxTime(transactionContext, 4500)
	pending, err := launchpadContract.GetPendingRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "0", pending)

	// The cliff does not gate accrual: 1000 of 5000 seconds elapsed.
	SetTxTime(transactionContext, 6000)
	pending, err = launchpadContract.GetPendingRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", pending)

	// The full entitlement is unlocked from rewardsEnd onward.
	SetTxTime(transactionContext, 10000)
	pending, err = launchpadContract.GetPendingRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "5000000000000000000", pending)

	SetTxTime(transactionContext, 50000)
	pending, err = launchpadContract.GetPendingRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "5000000000000000000", pending)

	// Accounts that never funded have no entitlement.
	pending, err = launchpadContract.GetPendingRewards(transactionContext, 0, UserTwo)
	require.NoError(t, err)
	require.Equal(t, "0", pending)
}

func TestClaimRewards(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, collab := fundedPool(t)

	SetUserID(transactionContext, UserOne)
	SetTxTime(transactionContext, 6000)
	err := launchpadContract.ClaimRewards(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "VestingNotConfigured")

	SetUserID(transactionContext, KalpFoundation)
	SetTxTime(transactionContext, 4100)
	require.NoError(t, launchpadContract.ConfigureVesting(transactionContext, 0, 5000, 7000, 10000))

	SetUserID(transactionContext, UserOne)

	// Claims are gated until the cliff even though rewards accrue.
	SetTxTime(transactionContext, 6000)
	err = launchpadContract.ClaimRewards(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TooEarly")

	// At the cliff 2000 of 5000 seconds have vested.
	SetTxTime(transactionContext, 7000)
	require.NoError(t, launchpadContract.ClaimRewards(transactionContext, 0))
	require.Equal(t, "2000000000000000000", collab.balanceOf(RewardToken, UserOne).String())

	user, err := launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "2000000000000000000", user.CollectedRewards)

	// The same instant has nothing further to claim.
	err = launchpadContract.ClaimRewards(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	// A custody shortfall pays out what the custody holds.
	SetTxTime(transactionContext, 10000)
	collab.balanceOf(RewardToken, ContractAddress).SetInt64(1_000_000_000_000_000_000)
	require.NoError(t, launchpadContract.ClaimRewards(transactionContext, 0))
	require.Equal(t, "3000000000000000000", collab.balanceOf(RewardToken, UserOne).String())

	// Topping the custody back up releases the remainder.
	collab.balanceOf(RewardToken, ContractAddress).SetInt64(2_000_000_000_000_000_000)
	require.NoError(t, launchpadContract.ClaimRewards(transactionContext, 0))
	require.Equal(t, "5000000000000000000", collab.balanceOf(RewardToken, UserOne).String())

	user, err = launchpadContract.GetUserInfo(transactionContext, 0, UserOne)
	require.NoError(t, err)
	require.Equal(t, "5000000000000000000", user.CollectedRewards)

	// The entitlement is exhausted.
	err = launchpadContract.ClaimRewards(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NothingToClaim")

	// And an account that never funded cannot claim at all.
	SetUserID(transactionContext, UserTwo)
	err = launchpadContract.ClaimRewards(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NotFunded")
}

func TestTotalRewardsScaling(t *testing.T) {
	t.Parallel()

	launchpadContract, transactionContext, _ := fundedPool(t)

	// funded * 1e18 / price with price above 1e18 rounds down.
	total, err := launchpadContract.GetTotalRewards(transactionContext, 0, UserOne)
	require.NoError(t, err)

	expected := new(big.Int).Mul(big.NewInt(10), big.NewInt(1_000_000_000_000_000_000))
	expected.Mul(expected, big.NewInt(1_000_000_000_000_000_000))
	expected.Div(expected, new(big.Int).Mul(big.NewInt(2), big.NewInt(1_000_000_000_000_000_000)))
	require.Equal(t, expected.String(), total)
}
