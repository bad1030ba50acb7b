package launchpad

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// Pool holds the static parameters of one fundraising round. Amounts and the
// price are decimal strings in 10^18 fixed point. The rewards timestamps stay
// zero until vesting is configured.
type Pool struct {
	RewardToken                  string `json:"rewardToken"`
	RaisingAsset                 string `json:"raisingAsset"`
	SubscriptionStart            uint64 `json:"subscriptionStart"`
	SubscriptionEnd              uint64 `json:"subscriptionEnd"`
	FundingEnd                   uint64 `json:"fundingEnd"`
	TargetRaise                  string `json:"targetRaise"`
	Price                        string `json:"price"`
	MaxStakingAmountPerUser      string `json:"maxStakingAmountPerUser"`
	MaxGuaranteedAllocationValue string `json:"maxGuaranteedAllocationValue"`
	RewardsStart                 uint64 `json:"rewardsStart"`
	RewardsCliffEnd              uint64 `json:"rewardsCliffEnd"`
	RewardsEnd                   uint64 `json:"rewardsEnd"`
}

// PoolStats carries the running totals for a pool.
type PoolStats struct {
	TotalRaised               string `json:"totalRaised"`
	TotalGuaranteedSubscribed string `json:"totalGuaranteedSubscribed"`
	TotalGuaranteedRaised     string `json:"totalGuaranteedRaised"`
	TotalMultiplierWeight     string `json:"totalMultiplierWeight"`
	FundsClaimed              bool   `json:"fundsClaimed"`
}

// UserInfo is the per-pool participant record. A participant subscribes
// either with a score-derived multiplier or with a guaranteed allocation,
// never both.
type UserInfo struct {
	FundedAmount              string `json:"fundedAmount"`
	Multiplier                uint64 `json:"multiplier"`
	GuaranteedAllocationValue string `json:"guaranteedAllocationValue"`
	AllocationRightID         string `json:"allocationRightId"`
	CollectedRewards          string `json:"collectedRewards"`
}

type MultiplierTier struct {
	ScoreThreshold string `json:"scoreThreshold"`
	Weight         uint64 `json:"weight"`
}

func (u *UserInfo) IsSubscribed() bool {
	if u.Multiplier > 0 {
		return true
	}
	value, ok := new(big.Int).SetString(u.GuaranteedAllocationValue, 10)
	return ok && value.Sign() > 0
}

func GetPool(ctx kalpsdk.TransactionContextInterface, poolID uint64) (*Pool, error) {
	poolKey := fmt.Sprintf("pool_%d", poolID)
	poolAsBytes, err := ctx.GetState(poolKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get pool with Key %s", poolKey), err)
	}
	if poolAsBytes == nil {
		return nil, ErrInvalidPool(poolID)
	}

	var pool Pool
	err = json.Unmarshal(poolAsBytes, &pool)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal pool", err)
	}

	return &pool, nil
}

func SetPool(ctx kalpsdk.TransactionContextInterface, poolID uint64, pool *Pool) error {
	poolKey := fmt.Sprintf("pool_%d", poolID)
	poolAsBytes, err := json.Marshal(pool)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal pool", err)
	}

	err = ctx.PutStateWithoutKYC(poolKey, poolAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set pool", err)
	}

	return nil
}

func GetPoolStats(ctx kalpsdk.TransactionContextInterface, poolID uint64) (*PoolStats, error) {
	statsKey := fmt.Sprintf("poolstats_%d", poolID)
	statsAsBytes, err := ctx.GetState(statsKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get pool stats with Key %s", statsKey), err)
	}

	if statsAsBytes == nil {
		return &PoolStats{
			TotalRaised:               "0",
			TotalGuaranteedSubscribed: "0",
			TotalGuaranteedRaised:     "0",
			TotalMultiplierWeight:     "0",
		}, nil
	}

	var stats PoolStats
	err = json.Unmarshal(statsAsBytes, &stats)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal pool stats", err)
	}

	return &stats, nil
}

func SetPoolStats(ctx kalpsdk.TransactionContextInterface, poolID uint64, stats *PoolStats) error {
	statsKey := fmt.Sprintf("poolstats_%d", poolID)
	statsAsBytes, err := json.Marshal(stats)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal pool stats", err)
	}

	err = ctx.PutStateWithoutKYC(statsKey, statsAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set pool stats", err)
	}

	return nil
}

// GetUserInfo returns a zero-valued record when the participant has never
// touched the pool; records are created lazily on first subscription.
func GetUserInfo(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string) (*UserInfo, error) {
	userKey := fmt.Sprintf("userinfo_%d_%s", poolID, account)
	userAsBytes, err := ctx.GetState(userKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get user info with Key %s", userKey), err)
	}

	if userAsBytes == nil {
		return &UserInfo{
			FundedAmount:              "0",
			GuaranteedAllocationValue: "0",
			CollectedRewards:          "0",
		}, nil
	}

	var user UserInfo
	err = json.Unmarshal(userAsBytes, &user)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal user info", err)
	}

	return &user, nil
}

func SetUserInfo(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string, user *UserInfo) error {
	userKey := fmt.Sprintf("userinfo_%d_%s", poolID, account)
	userAsBytes, err := json.Marshal(user)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal user info", err)
	}

	err = ctx.PutStateWithoutKYC(userKey, userAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set user info for %s", account), err)
	}

	return nil
}

func GetPoolCount(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	countAsBytes, err := ctx.GetState(PoolCountKey)
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get pool count with Key %s", PoolCountKey), err)
	}

	count := big.NewInt(0)
	if countAsBytes != nil {
		_, success := count.SetString(string(countAsBytes), 10)
		if !success {
			return 0, NewCustomError(http.StatusInternalServerError, "failed to parse pool count", nil)
		}
	}

	return count.Uint64(), nil
}

func SetPoolCount(ctx kalpsdk.TransactionContextInterface, count uint64) error {
	countAsBytes := []byte(new(big.Int).SetUint64(count).String())

	err := ctx.PutStateWithoutKYC(PoolCountKey, countAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set pool count", err)
	}

	return nil
}

func GetMultiplierTiers(ctx kalpsdk.TransactionContextInterface) ([]MultiplierTier, error) {
	tiersAsBytes, err := ctx.GetState(MultiplierTiersKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get multiplier tiers with Key %s", MultiplierTiersKey), err)
	}
	if tiersAsBytes == nil {
		return []MultiplierTier{}, nil
	}

	var tiers []MultiplierTier
	err = json.Unmarshal(tiersAsBytes, &tiers)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal multiplier tiers", err)
	}

	return tiers, nil
}

func SetMultiplierTiers(ctx kalpsdk.TransactionContextInterface, tiers []MultiplierTier) error {
	tiersAsBytes, err := json.Marshal(tiers)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal multiplier tiers", err)
	}

	err = ctx.PutStateWithoutKYC(MultiplierTiersKey, tiersAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set multiplier tiers", err)
	}

	return nil
}

func GetScoreSources(ctx kalpsdk.TransactionContextInterface) ([]string, error) {
	sourcesAsBytes, err := ctx.GetState(ScoreSourcesKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get score sources with Key %s", ScoreSourcesKey), err)
	}
	if sourcesAsBytes == nil {
		return []string{}, nil
	}

	var sources []string
	err = json.Unmarshal(sourcesAsBytes, &sources)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal score sources", err)
	}

	return sources, nil
}

func SetScoreSources(ctx kalpsdk.TransactionContextInterface, sources []string) error {
	sourcesAsBytes, err := json.Marshal(sources)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal score sources", err)
	}

	err = ctx.PutStateWithoutKYC(ScoreSourcesKey, sourcesAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set score sources", err)
	}

	return nil
}
