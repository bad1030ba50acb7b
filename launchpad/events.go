package launchpad

import (
	"encoding/json"
	"fmt"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type PoolAddedEvent struct {
	PoolID       uint64 `json:"poolId"`
	RewardToken  string `json:"rewardToken"`
	RaisingAsset string `json:"raisingAsset"`
	TargetRaise  string `json:"targetRaise"`
	Price        string `json:"price"`
}

type PoolTimestampsUpdatedEvent struct {
	PoolID            uint64 `json:"poolId"`
	SubscriptionStart uint64 `json:"subscriptionStart"`
	SubscriptionEnd   uint64 `json:"subscriptionEnd"`
	FundingEnd        uint64 `json:"fundingEnd"`
}

type SubscribedEvent struct {
	PoolID     uint64 `json:"poolId"`
	Account    string `json:"account"`
	Multiplier uint64 `json:"multiplier"`
}

type SubscribedWithAllocationEvent struct {
	PoolID       uint64 `json:"poolId"`
	Account      string `json:"account"`
	RightID      string `json:"rightId"`
	GrantedValue string `json:"grantedValue"`
}

type FundedEvent struct {
	PoolID  uint64 `json:"poolId"`
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

type VestingConfiguredEvent struct {
	PoolID          uint64 `json:"poolId"`
	RewardsStart    uint64 `json:"rewardsStart"`
	RewardsCliffEnd uint64 `json:"rewardsCliffEnd"`
	RewardsEnd      uint64 `json:"rewardsEnd"`
	RewardAmount    string `json:"rewardAmount"`
}

type RewardsClaimedEvent struct {
	PoolID  uint64 `json:"poolId"`
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

type FundRaisingClaimedEvent struct {
	PoolID    uint64 `json:"poolId"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type AllowlistRootUpdatedEvent struct {
	Root string `json:"root"`
}

type ScoreSourceEvent struct {
	Source string `json:"source"`
}

type RoleEvent struct {
	Role    string `json:"role"`
	Account string `json:"account"`
}

type ConfigAddressSetEvent struct {
	Address string `json:"address"`
}

func emitEvent(ctx kalpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitPoolAdded(ctx kalpsdk.TransactionContextInterface, poolID uint64, pool *Pool) error {
	return emitEvent(ctx, "PoolAdded", PoolAddedEvent{
		PoolID:       poolID,
		RewardToken:  pool.RewardToken,
		RaisingAsset: pool.RaisingAsset,
		TargetRaise:  pool.TargetRaise,
		Price:        pool.Price,
	})
}

func EmitPoolTimestampsUpdated(ctx kalpsdk.TransactionContextInterface, poolID uint64, pool *Pool) error {
	return emitEvent(ctx, "PoolTimestampsUpdated", PoolTimestampsUpdatedEvent{
		PoolID:            poolID,
		SubscriptionStart: pool.SubscriptionStart,
		SubscriptionEnd:   pool.SubscriptionEnd,
		FundingEnd:        pool.FundingEnd,
	})
}

func EmitSubscribed(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string, multiplier uint64) error {
	return emitEvent(ctx, "Subscribed", SubscribedEvent{
		PoolID:     poolID,
		Account:    account,
		Multiplier: multiplier,
	})
}

func EmitSubscribedWithAllocation(ctx kalpsdk.TransactionContextInterface, poolID uint64, account, rightID, grantedValue string) error {
	return emitEvent(ctx, "SubscribedWithAllocationRight", SubscribedWithAllocationEvent{
		PoolID:       poolID,
		Account:      account,
		RightID:      rightID,
		GrantedValue: grantedValue,
	})
}

func EmitFunded(ctx kalpsdk.TransactionContextInterface, poolID uint64, account, amount string) error {
	return emitEvent(ctx, "Funded", FundedEvent{
		PoolID:  poolID,
		Account: account,
		Amount:  amount,
	})
}

func EmitVestingConfigured(ctx kalpsdk.TransactionContextInterface, poolID uint64, pool *Pool, rewardAmount string) error {
	return emitEvent(ctx, "VestingConfigured", VestingConfiguredEvent{
		PoolID:          poolID,
		RewardsStart:    pool.RewardsStart,
		RewardsCliffEnd: pool.RewardsCliffEnd,
		RewardsEnd:      pool.RewardsEnd,
		RewardAmount:    rewardAmount,
	})
}

func EmitRewardsClaimed(ctx kalpsdk.TransactionContextInterface, poolID uint64, account, amount string) error {
	return emitEvent(ctx, "RewardsClaimed", RewardsClaimedEvent{
		PoolID:  poolID,
		Account: account,
		Amount:  amount,
	})
}

func EmitFundRaisingClaimed(ctx kalpsdk.TransactionContextInterface, poolID uint64, recipient, amount string) error {
	return emitEvent(ctx, "FundRaisingClaimed", FundRaisingClaimedEvent{
		PoolID:    poolID,
		Recipient: recipient,
		Amount:    amount,
	})
}

func EmitAllowlistRootUpdated(ctx kalpsdk.TransactionContextInterface, root string) error {
	return emitEvent(ctx, "AllowlistRootUpdated", AllowlistRootUpdatedEvent{Root: root})
}

func EmitScoreSourceAdded(ctx kalpsdk.TransactionContextInterface, source string) error {
	return emitEvent(ctx, "ScoreSourceAdded", ScoreSourceEvent{Source: source})
}

func EmitScoreSourceRemoved(ctx kalpsdk.TransactionContextInterface, source string) error {
	return emitEvent(ctx, "ScoreSourceRemoved", ScoreSourceEvent{Source: source})
}

func EmitNativeTokenSet(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	return emitEvent(ctx, "NativeTokenSet", ConfigAddressSetEvent{Address: tokenAddress})
}

func EmitAllocationRightRegistrySet(ctx kalpsdk.TransactionContextInterface, registryAddress string) error {
	return emitEvent(ctx, "AllocationRightRegistrySet", ConfigAddressSetEvent{Address: registryAddress})
}

func EmitRoleGranted(ctx kalpsdk.TransactionContextInterface, role, account string) error {
	return emitEvent(ctx, "RoleGranted", RoleEvent{Role: role, Account: account})
}

func EmitRoleRevoked(ctx kalpsdk.TransactionContextInterface, role, account string) error {
	return emitEvent(ctx, "RoleRevoked", RoleEvent{Role: role, Account: account})
}
