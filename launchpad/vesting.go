package launchpad

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// totalRewards is the participant's fixed entitlement:
//
//	fundedAmount * 10^18 / price
//
// Multiplication happens before the division so entitlements below one whole
// reward unit do not truncate to zero.
func totalRewards(fundedAmount, price string) (*big.Int, error) {
	funded, ok := new(big.Int).SetString(fundedAmount, 10)
	if !ok {
		return nil, ErrInvalidAmount("funded amount", fundedAmount)
	}

	priceInt, ok := new(big.Int).SetString(price, 10)
	if !ok || priceInt.Sign() <= 0 {
		return nil, ErrInvalidAmount("price", price)
	}

	reward := new(big.Int).Mul(funded, scaleFactor())
	reward.Div(reward, priceInt)

	return reward, nil
}

// pendingRewards returns the entitlement unlocked at the given time net of
// what was already collected. The accrual is linear from rewardsStart to
// rewardsEnd; the cliff gates claiming, not the accrual itself.
func pendingRewards(pool *Pool, user *UserInfo, now uint64) (*big.Int, error) {
	funded, ok := new(big.Int).SetString(user.FundedAmount, 10)
	if !ok {
		return nil, ErrInvalidAmount("funded amount", user.FundedAmount)
	}

	if funded.Sign() == 0 || pool.RewardsStart == 0 || now < pool.RewardsStart {
		return big.NewInt(0), nil
	}

	total, err := totalRewards(user.FundedAmount, pool.Price)
	if err != nil {
		return nil, err
	}

	var totalUnlocked *big.Int
	if now >= pool.RewardsEnd {
		totalUnlocked = total
	} else {
		vestingLength := new(big.Int).SetUint64(pool.RewardsEnd - pool.RewardsStart)
		rewardPerSecond := new(big.Int).Div(total, vestingLength)
		elapsed := new(big.Int).SetUint64(now - pool.RewardsStart)
		totalUnlocked = new(big.Int).Mul(elapsed, rewardPerSecond)
	}

	collected, ok := new(big.Int).SetString(user.CollectedRewards, 10)
	if !ok {
		return nil, ErrInvalidAmount("collected rewards", user.CollectedRewards)
	}

	pending := new(big.Int).Sub(totalUnlocked, collected)
	if pending.Sign() < 0 {
		pending.SetInt64(0)
	}

	return pending, nil
}

// ConfigureVesting fixes the vesting window and deposits the reward tokens.
// It may run at most once per pool: the required deposit is recomputed live
// from totalRaised, and a second invocation trips the already-configured
// check.
func (s *SmartContract) ConfigureVesting(ctx kalpsdk.TransactionContextInterface, poolID, rewardsStart, rewardsCliffEnd, rewardsEnd uint64) error {
	signer, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RewardsStart != 0 {
		return fmt.Errorf("%w: pool %d", ErrVestingAlreadyConfigured, poolID)
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	if now <= pool.FundingEnd {
		return fmt.Errorf("%w: funding has not closed for pool %d", ErrTooEarly, poolID)
	}
	if rewardsStart <= now {
		return fmt.Errorf("rewards start %d is not in the future (current time %d)", rewardsStart, now)
	}
	if rewardsCliffEnd < rewardsStart {
		return ErrInvalidTimestamps(rewardsStart, rewardsCliffEnd)
	}
	if rewardsEnd <= rewardsCliffEnd {
		return ErrInvalidTimestamps(rewardsCliffEnd, rewardsEnd)
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return err
	}

	requiredReward, err := totalRewards(stats.TotalRaised, pool.Price)
	if err != nil {
		return err
	}

	pool.RewardsStart = rewardsStart
	pool.RewardsCliffEnd = rewardsCliffEnd
	pool.RewardsEnd = rewardsEnd
	if err := SetPool(ctx, poolID, pool); err != nil {
		return err
	}

	contractAddress, err := getConfigAddress(ctx, ContractAddressKey)
	if err != nil {
		return err
	}

	if err := transferTokenFrom(ctx, pool.RewardToken, signer, contractAddress, requiredReward); err != nil {
		return err
	}

	return EmitVestingConfigured(ctx, poolID, pool, requiredReward.String())
}

// SetVestingTimestamps is the administrative edit of an already configured
// vesting window.
func (s *SmartContract) SetVestingTimestamps(ctx kalpsdk.TransactionContextInterface, poolID, rewardsStart, rewardsCliffEnd, rewardsEnd uint64) error {
	_, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RewardsStart == 0 {
		return fmt.Errorf("%w: pool %d", ErrVestingNotConfigured, poolID)
	}
	if rewardsStart == 0 {
		return ErrCannotBeZero
	}
	if rewardsCliffEnd < rewardsStart {
		return ErrInvalidTimestamps(rewardsStart, rewardsCliffEnd)
	}
	if rewardsEnd <= rewardsCliffEnd {
		return ErrInvalidTimestamps(rewardsCliffEnd, rewardsEnd)
	}

	pool.RewardsStart = rewardsStart
	pool.RewardsCliffEnd = rewardsCliffEnd
	pool.RewardsEnd = rewardsEnd
	if err := SetPool(ctx, poolID, pool); err != nil {
		return err
	}

	return EmitVestingConfigured(ctx, poolID, pool, "0")
}

// GetTotalRewards returns the account's fixed reward entitlement.
func (s *SmartContract) GetTotalRewards(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string) (string, error) {
	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return "0", err
	}

	user, err := GetUserInfo(ctx, poolID, account)
	if err != nil {
		return "0", err
	}

	total, err := totalRewards(user.FundedAmount, pool.Price)
	if err != nil {
		return "0", err
	}

	return total.String(), nil
}

// GetPendingRewards returns the unlocked, not yet collected entitlement at
// the transaction time.
func (s *SmartContract) GetPendingRewards(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string) (string, error) {
	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return "0", err
	}

	user, err := GetUserInfo(ctx, poolID, account)
	if err != nil {
		return "0", err
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return "0", err
	}

	pending, err := pendingRewards(pool, user, now)
	if err != nil {
		return "0", err
	}

	return pending.String(), nil
}

// ClaimRewards pays out the signer's pending entitlement. Claims open at the
// cliff; the payout is capped by the custody's actual reward balance so a
// rounding shortfall pays the remainder instead of failing.
func (s *SmartContract) ClaimRewards(ctx kalpsdk.TransactionContextInterface, poolID uint64) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RewardsStart == 0 {
		return fmt.Errorf("%w: pool %d", ErrVestingNotConfigured, poolID)
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	if now < pool.RewardsCliffEnd {
		return fmt.Errorf("%w: claims open at %d (current time %d)", ErrTooEarly, pool.RewardsCliffEnd, now)
	}

	user, err := GetUserInfo(ctx, poolID, signer)
	if err != nil {
		return err
	}

	funded, ok := new(big.Int).SetString(user.FundedAmount, 10)
	if !ok {
		return ErrInvalidAmount("funded amount", user.FundedAmount)
	}
	if funded.Sign() == 0 {
		return fmt.Errorf("%w: %s has not funded pool %d", ErrNotFunded, signer, poolID)
	}

	pending, err := pendingRewards(pool, user, now)
	if err != nil {
		return err
	}
	if pending.Sign() == 0 {
		return ErrNothingToClaim
	}

	contractAddress, err := getConfigAddress(ctx, ContractAddressKey)
	if err != nil {
		return err
	}

	custodyBalance, err := tokenBalanceOf(ctx, pool.RewardToken, contractAddress)
	if err != nil {
		return err
	}

	payout := minBig(pending, custodyBalance)
	if payout.Sign() == 0 {
		return ErrNothingToClaim
	}

	collected, ok := new(big.Int).SetString(user.CollectedRewards, 10)
	if !ok {
		return ErrInvalidAmount("collected rewards", user.CollectedRewards)
	}
	collected.Add(collected, payout)
	user.CollectedRewards = collected.String()

	// State is written before the external transfer.
	if err := SetUserInfo(ctx, poolID, signer, user); err != nil {
		return err
	}

	if err := transferToken(ctx, pool.RewardToken, signer, payout); err != nil {
		return err
	}

	return EmitRewardsClaimed(ctx, poolID, signer, payout.String())
}
