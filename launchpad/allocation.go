package launchpad

import (
	"fmt"
	"math/big"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// MultiplierForScore maps an aggregate score to a tier weight. Tiers are
// ordered ascending by threshold.
//
// The legacy scan walks tiers from the lowest threshold upward, returns the
// first tier whose threshold does not exceed the score, and never inspects
// the last configured tier. That matching order is kept bit-for-bit for
// compatibility with existing deployments; TierScanFull checks every tier
// and keeps the highest qualifying weight.
func MultiplierForScore(score *big.Int, tiers []MultiplierTier, scanMode string) (uint64, error) {
	if scanMode == TierScanLegacy {
		for i := 0; i < len(tiers)-1; i++ {
			threshold, ok := new(big.Int).SetString(tiers[i].ScoreThreshold, 10)
			if !ok {
				return 0, ErrInvalidAmount("tier threshold", tiers[i].ScoreThreshold)
			}
			if threshold.Cmp(score) <= 0 {
				return tiers[i].Weight, nil
			}
		}
		return 0, nil
	}

	var weight uint64
	for i := 0; i < len(tiers); i++ {
		threshold, ok := new(big.Int).SetString(tiers[i].ScoreThreshold, 10)
		if !ok {
			return 0, ErrInvalidAmount("tier threshold", tiers[i].ScoreThreshold)
		}
		if threshold.Cmp(score) <= 0 {
			weight = tiers[i].Weight
		}
	}

	return weight, nil
}

func getTierScanMode(ctx kalpsdk.TransactionContextInterface) (string, error) {
	modeAsBytes, err := ctx.GetState(TierScanModeKey)
	if err != nil {
		return "", fmt.Errorf("failed to get tier scan mode: %v", err)
	}
	if modeAsBytes == nil {
		return TierScanLegacy, nil
	}

	return string(modeAsBytes), nil
}

// aggregateScore sums the account's reputation score across every registered
// score source.
func aggregateScore(ctx kalpsdk.TransactionContextInterface, account string) (*big.Int, error) {
	sources, err := GetScoreSources(ctx)
	if err != nil {
		return nil, err
	}

	total := big.NewInt(0)
	for _, source := range sources {
		score, err := sourceUserScore(ctx, source, account)
		if err != nil {
			return nil, fmt.Errorf("failed to get score from source %s: %v", source, err)
		}
		total.Add(total, score)
	}

	return total, nil
}

// maximumAllocation computes the participant's contribution cap.
//
// Guaranteed-allocation participants are capped at their granted value and do
// not share in the pro-rata pool. Score participants split the raise capacity
// left after the guaranteed reservation proportionally to their multiplier:
//
//	(targetRaise - totalGuaranteedSubscribed) * multiplier / (100 * totalMultiplierWeight)
//
// Both totals can only grow during the subscription window and are frozen
// once funding opens, so the cap is stable for the whole funding window.
func maximumAllocation(pool *Pool, stats *PoolStats, user *UserInfo) (*big.Int, error) {
	guaranteedValue, ok := new(big.Int).SetString(user.GuaranteedAllocationValue, 10)
	if !ok {
		return nil, ErrInvalidAmount("guaranteed allocation value", user.GuaranteedAllocationValue)
	}

	if guaranteedValue.Sign() > 0 {
		return guaranteedValue, nil
	}

	targetRaise, ok := new(big.Int).SetString(pool.TargetRaise, 10)
	if !ok {
		return nil, ErrInvalidAmount("target raise", pool.TargetRaise)
	}

	totalGuaranteed, ok := new(big.Int).SetString(stats.TotalGuaranteedSubscribed, 10)
	if !ok {
		return nil, ErrInvalidAmount("total guaranteed subscribed", stats.TotalGuaranteedSubscribed)
	}

	totalWeight, ok := new(big.Int).SetString(stats.TotalMultiplierWeight, 10)
	if !ok {
		return nil, ErrInvalidAmount("total multiplier weight", stats.TotalMultiplierWeight)
	}

	if totalWeight.Sign() == 0 {
		return nil, fmt.Errorf("%w: total multiplier weight is zero", ErrNoEligibleParticipants)
	}

	remaining := new(big.Int).Sub(targetRaise, totalGuaranteed)
	if remaining.Sign() < 0 {
		remaining.SetInt64(0)
	}

	maxAmount := new(big.Int).Mul(remaining, new(big.Int).SetUint64(user.Multiplier))
	maxAmount.Div(maxAmount, new(big.Int).Mul(totalWeight, big.NewInt(multiplierDenominator)))

	return maxAmount, nil
}

// GetMaximumAllocation returns the maximum cumulative amount the account may
// contribute to the pool, recomputed live from the pool totals.
func (s *SmartContract) GetMaximumAllocation(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string) (string, error) {
	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return "0", err
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return "0", err
	}

	user, err := GetUserInfo(ctx, poolID, account)
	if err != nil {
		return "0", err
	}

	maxAmount, err := maximumAllocation(pool, stats, user)
	if err != nil {
		return "0", err
	}

	return maxAmount.String(), nil
}

// GetAggregateScore returns the account's score summed across all sources.
func (s *SmartContract) GetAggregateScore(ctx kalpsdk.TransactionContextInterface, account string) (string, error) {
	score, err := aggregateScore(ctx, account)
	if err != nil {
		return "0", err
	}

	return score.String(), nil
}
