package launchpad

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type SmartContract struct {
	kalpsdk.Contract
}

// Initialize configures the multiplier table and the contract's own custody
// address. It can run once, by the foundation, before any pool exists.
func (s *SmartContract) Initialize(ctx kalpsdk.TransactionContextInterface, contractAddress string, tierThresholds []string, tierWeights []uint64, tierScanMode string) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer != kalpFoundation {
		return NewCustomError(http.StatusBadRequest, "only kalp foundation can initialize the contract", nil)
	}

	existingTiers, err := ctx.GetState(MultiplierTiersKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get multiplier tiers", err)
	}
	if existingTiers != nil {
		return NewCustomError(http.StatusConflict, "contract is already initialized", nil)
	}

	if !IsContractAddressValid(contractAddress) {
		return fmt.Errorf("InvalidContractAddress for address %s", contractAddress)
	}

	if len(tierThresholds) == 0 {
		return ErrCannotBeZero
	}
	if len(tierThresholds) != len(tierWeights) {
		return NewCustomError(http.StatusBadRequest, ErrArraysLengthMismatch(len(tierThresholds), len(tierWeights)).Error(), nil)
	}
	if tierScanMode != TierScanLegacy && tierScanMode != TierScanFull {
		return fmt.Errorf("InvalidTierScanMode: %s", tierScanMode)
	}

	tiers := make([]MultiplierTier, len(tierThresholds))
	previous := big.NewInt(-1)
	for i := range tierThresholds {
		threshold, err := parseAmount("tier threshold", tierThresholds[i])
		if err != nil {
			return err
		}
		if threshold.Cmp(previous) <= 0 {
			return fmt.Errorf("TiersNotAscending at index %d", i)
		}
		previous = threshold
		tiers[i] = MultiplierTier{ScoreThreshold: tierThresholds[i], Weight: tierWeights[i]}
	}

	if err := SetMultiplierTiers(ctx, tiers); err != nil {
		return err
	}
	if err := ctx.PutStateWithoutKYC(TierScanModeKey, []byte(tierScanMode)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set tier scan mode", err)
	}
	if err := ctx.PutStateWithoutKYC(ContractAddressKey, []byte(contractAddress)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set contract address", err)
	}

	if err := grantRole(ctx, AdminRole, signer); err != nil {
		return err
	}
	if err := grantRole(ctx, RootManagerRole, signer); err != nil {
		return err
	}

	return nil
}

func (s *SmartContract) SetAdmin(ctx kalpsdk.TransactionContextInterface, account string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !IsUserAddressValid(account) {
		return fmt.Errorf("%w: %s", ErrInvalidUserAddress, account)
	}

	if err := grantRole(ctx, AdminRole, account); err != nil {
		return err
	}

	return EmitRoleGranted(ctx, AdminRole, account)
}

func (s *SmartContract) RemoveAdmin(ctx kalpsdk.TransactionContextInterface, account string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := revokeRole(ctx, AdminRole, account); err != nil {
		return err
	}

	return EmitRoleRevoked(ctx, AdminRole, account)
}

func (s *SmartContract) SetRootManager(ctx kalpsdk.TransactionContextInterface, account string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !IsUserAddressValid(account) {
		return fmt.Errorf("%w: %s", ErrInvalidUserAddress, account)
	}

	if err := grantRole(ctx, RootManagerRole, account); err != nil {
		return err
	}

	return EmitRoleGranted(ctx, RootManagerRole, account)
}

func (s *SmartContract) RemoveRootManager(ctx kalpsdk.TransactionContextInterface, account string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := revokeRole(ctx, RootManagerRole, account); err != nil {
		return err
	}

	return EmitRoleRevoked(ctx, RootManagerRole, account)
}

func (s *SmartContract) SetAllowlistRoot(ctx kalpsdk.TransactionContextInterface, root string) error {
	if _, err := requireRootManager(ctx); err != nil {
		return err
	}

	rootBytes, err := hex.DecodeString(strings.TrimPrefix(root, "0x"))
	if err != nil || len(rootBytes) != 32 {
		return fmt.Errorf("InvalidRoot: %s", root)
	}

	if err := ctx.PutStateWithoutKYC(AllowlistRootKey, []byte(root)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set allowlist root", err)
	}

	return EmitAllowlistRootUpdated(ctx, root)
}

func (s *SmartContract) AddScoreSource(ctx kalpsdk.TransactionContextInterface, source string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !IsContractAddressValid(source) {
		return fmt.Errorf("InvalidContractAddress for address %s", source)
	}

	sources, err := GetScoreSources(ctx)
	if err != nil {
		return err
	}

	for _, existing := range sources {
		if existing == source {
			return NewCustomError(http.StatusConflict, fmt.Sprintf("score source %s already registered", source), nil)
		}
	}

	sources = append(sources, source)
	if err := SetScoreSources(ctx, sources); err != nil {
		return err
	}

	return EmitScoreSourceAdded(ctx, source)
}

func (s *SmartContract) RemoveScoreSource(ctx kalpsdk.TransactionContextInterface, source string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	sources, err := GetScoreSources(ctx)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(sources))
	for _, existing := range sources {
		if existing != source {
			remaining = append(remaining, existing)
		}
	}
	if len(remaining) == len(sources) {
		return NewCustomError(http.StatusNotFound, fmt.Sprintf("score source %s is not registered", source), nil)
	}

	if err := SetScoreSources(ctx, remaining); err != nil {
		return err
	}

	return EmitScoreSourceRemoved(ctx, source)
}

// SetNativeToken fixes the token contract that settles native-asset pools.
func (s *SmartContract) SetNativeToken(ctx kalpsdk.TransactionContextInterface, tokenAddress string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !IsContractAddressValid(tokenAddress) {
		return fmt.Errorf("InvalidContractAddress for address %s", tokenAddress)
	}

	existingAddress, err := ctx.GetState(NativeTokenKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get native token address with Key %s", NativeTokenKey), err)
	}
	if existingAddress != nil && string(existingAddress) != "" {
		return ErrTokenAlreadySet
	}

	if err := ctx.PutStateWithoutKYC(NativeTokenKey, []byte(tokenAddress)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set native token address", err)
	}

	return EmitNativeTokenSet(ctx, tokenAddress)
}

func (s *SmartContract) SetAllocationRightRegistry(ctx kalpsdk.TransactionContextInterface, registryAddress string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !IsContractAddressValid(registryAddress) {
		return fmt.Errorf("InvalidContractAddress for address %s", registryAddress)
	}

	if err := ctx.PutStateWithoutKYC(AllocationRightRegistryKey, []byte(registryAddress)); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set allocation right registry", err)
	}

	return EmitAllocationRightRegistrySet(ctx, registryAddress)
}

// AddPool appends a fundraising round. The raising asset is either a token
// contract address or the zero address for the platform's native asset.
func (s *SmartContract) AddPool(ctx kalpsdk.TransactionContextInterface, rewardToken, raisingAsset string, subscriptionStart, subscriptionEnd, fundingEnd uint64, targetRaise, price, maxStakingAmountPerUser, maxGuaranteedAllocationValue string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if !IsContractAddressValid(rewardToken) {
		return fmt.Errorf("InvalidContractAddress for address %s", rewardToken)
	}
	if raisingAsset != zeroAddress && !IsContractAddressValid(raisingAsset) {
		return fmt.Errorf("InvalidContractAddress for address %s", raisingAsset)
	}

	if subscriptionStart >= subscriptionEnd {
		return ErrInvalidTimestamps(subscriptionStart, subscriptionEnd)
	}
	if subscriptionEnd >= fundingEnd {
		return ErrInvalidTimestamps(subscriptionEnd, fundingEnd)
	}

	targetRaiseInt, err := parseAmount("target raise", targetRaise)
	if err != nil {
		return err
	}
	if targetRaiseInt.Sign() == 0 {
		return ErrCannotBeZero
	}

	priceInt, err := parseAmount("price", price)
	if err != nil {
		return err
	}
	if priceInt.Sign() == 0 {
		return ErrCannotBeZero
	}

	if _, err := parseAmount("max staking amount per user", maxStakingAmountPerUser); err != nil {
		return err
	}
	if _, err := parseAmount("max guaranteed allocation value", maxGuaranteedAllocationValue); err != nil {
		return err
	}

	poolCount, err := GetPoolCount(ctx)
	if err != nil {
		return err
	}

	pool := &Pool{
		RewardToken:                  rewardToken,
		RaisingAsset:                 raisingAsset,
		SubscriptionStart:            subscriptionStart,
		SubscriptionEnd:              subscriptionEnd,
		FundingEnd:                   fundingEnd,
		TargetRaise:                  targetRaise,
		Price:                        price,
		MaxStakingAmountPerUser:      maxStakingAmountPerUser,
		MaxGuaranteedAllocationValue: maxGuaranteedAllocationValue,
	}

	if err := SetPool(ctx, poolCount, pool); err != nil {
		return err
	}
	if err := SetPoolCount(ctx, poolCount+1); err != nil {
		return err
	}

	return EmitPoolAdded(ctx, poolCount, pool)
}

// SetPoolTimestamps is the administrative edit of a pool's timing windows.
func (s *SmartContract) SetPoolTimestamps(ctx kalpsdk.TransactionContextInterface, poolID, subscriptionStart, subscriptionEnd, fundingEnd uint64) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if subscriptionStart >= subscriptionEnd {
		return ErrInvalidTimestamps(subscriptionStart, subscriptionEnd)
	}
	if subscriptionEnd >= fundingEnd {
		return ErrInvalidTimestamps(subscriptionEnd, fundingEnd)
	}

	pool.SubscriptionStart = subscriptionStart
	pool.SubscriptionEnd = subscriptionEnd
	pool.FundingEnd = fundingEnd
	if err := SetPool(ctx, poolID, pool); err != nil {
		return err
	}

	return EmitPoolTimestampsUpdated(ctx, poolID, pool)
}

// Subscribe registers the signer on the score path: allowlist proof, score
// aggregated across all sources, multiplier resolved through the tier table.
func (s *SmartContract) Subscribe(ctx kalpsdk.TransactionContextInterface, poolID, index uint64, proof []string) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	if now < pool.SubscriptionStart {
		return fmt.Errorf("%w: subscription opens at %d (current time %d)", ErrWindowNotOpen, pool.SubscriptionStart, now)
	}
	if now > pool.SubscriptionEnd {
		return fmt.Errorf("%w: subscription closed at %d (current time %d)", ErrWindowClosed, pool.SubscriptionEnd, now)
	}

	if err := verifyAllowlisted(ctx, proof, index, signer); err != nil {
		return err
	}

	user, err := GetUserInfo(ctx, poolID, signer)
	if err != nil {
		return err
	}
	if user.IsSubscribed() {
		return fmt.Errorf("%w: %s in pool %d", ErrAlreadySubscribed, signer, poolID)
	}

	score, err := aggregateScore(ctx, signer)
	if err != nil {
		return err
	}

	tiers, err := GetMultiplierTiers(ctx)
	if err != nil {
		return err
	}
	scanMode, err := getTierScanMode(ctx)
	if err != nil {
		return err
	}

	multiplier, err := MultiplierForScore(score, tiers, scanMode)
	if err != nil {
		return err
	}
	if multiplier == 0 {
		return fmt.Errorf("%w: score %s resolves to zero multiplier", ErrNotEligible, score.String())
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return err
	}

	totalWeight, ok := new(big.Int).SetString(stats.TotalMultiplierWeight, 10)
	if !ok {
		return ErrInvalidAmount("total multiplier weight", stats.TotalMultiplierWeight)
	}
	totalWeight.Add(totalWeight, new(big.Int).SetUint64(multiplier))
	stats.TotalMultiplierWeight = totalWeight.String()

	user.Multiplier = multiplier

	if err := SetUserInfo(ctx, poolID, signer, user); err != nil {
		return err
	}
	if err := SetPoolStats(ctx, poolID, stats); err != nil {
		return err
	}

	return EmitSubscribed(ctx, poolID, signer, multiplier)
}

// SubscribeWithAllocationRight registers the signer against a guaranteed
// allocation slot backed by an external allocation right. Guaranteed slots
// are not offered on native-asset pools.
func (s *SmartContract) SubscribeWithAllocationRight(ctx kalpsdk.TransactionContextInterface, poolID uint64, rightID string, index uint64, proof []string) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RaisingAsset == zeroAddress {
		return fmt.Errorf("%w: pool %d raises the native asset", ErrGuaranteedAllocationUnsupported, poolID)
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	if now < pool.SubscriptionStart {
		return fmt.Errorf("%w: subscription opens at %d (current time %d)", ErrWindowNotOpen, pool.SubscriptionStart, now)
	}
	if now > pool.SubscriptionEnd {
		return fmt.Errorf("%w: subscription closed at %d (current time %d)", ErrWindowClosed, pool.SubscriptionEnd, now)
	}

	if err := verifyAllowlisted(ctx, proof, index, signer); err != nil {
		return err
	}

	user, err := GetUserInfo(ctx, poolID, signer)
	if err != nil {
		return err
	}
	if user.IsSubscribed() {
		return fmt.Errorf("%w: %s in pool %d", ErrAlreadySubscribed, signer, poolID)
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return err
	}

	maxGuaranteed, ok := new(big.Int).SetString(pool.MaxGuaranteedAllocationValue, 10)
	if !ok {
		return ErrInvalidAmount("max guaranteed allocation value", pool.MaxGuaranteedAllocationValue)
	}
	totalGuaranteed, ok := new(big.Int).SetString(stats.TotalGuaranteedSubscribed, 10)
	if !ok {
		return ErrInvalidAmount("total guaranteed subscribed", stats.TotalGuaranteedSubscribed)
	}

	headroom := new(big.Int).Sub(maxGuaranteed, totalGuaranteed)
	if headroom.Sign() <= 0 {
		return fmt.Errorf("%w: guaranteed allocation is fully subscribed for pool %d", ErrCapacityExceeded, poolID)
	}

	registry, err := getConfigAddress(ctx, AllocationRightRegistryKey)
	if err != nil {
		return err
	}

	owner, err := allocationRightOwner(ctx, registry, rightID)
	if err != nil {
		return err
	}
	if owner != signer {
		return ErrNotRightOwner(rightID, signer)
	}

	available, err := allocationRightAvailable(ctx, registry, rightID)
	if err != nil {
		return err
	}
	if available.Sign() == 0 {
		return fmt.Errorf("%w: right %s has no remaining capacity", ErrCapacityExceeded, rightID)
	}

	maxPerUser, ok := new(big.Int).SetString(pool.MaxStakingAmountPerUser, 10)
	if !ok {
		return ErrInvalidAmount("max staking amount per user", pool.MaxStakingAmountPerUser)
	}

	granted := minBig(minBig(available, maxPerUser), headroom)
	if granted.Sign() == 0 {
		return fmt.Errorf("%w: granted allocation resolves to zero for right %s", ErrCapacityExceeded, rightID)
	}

	totalGuaranteed.Add(totalGuaranteed, granted)
	stats.TotalGuaranteedSubscribed = totalGuaranteed.String()

	user.GuaranteedAllocationValue = granted.String()
	user.AllocationRightID = rightID

	if err := SetUserInfo(ctx, poolID, signer, user); err != nil {
		return err
	}
	if err := SetPoolStats(ctx, poolID, stats); err != nil {
		return err
	}

	return EmitSubscribedWithAllocation(ctx, poolID, signer, rightID, granted.String())
}

// Fund accepts a capital contribution during the funding window. Funding may
// arrive in increments; every increment is re-validated against the live cap.
func (s *SmartContract) Fund(ctx kalpsdk.TransactionContextInterface, poolID uint64, amount string) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	now, err := txTimestamp(ctx)
	if err != nil {
		return err
	}

	if now <= pool.SubscriptionEnd {
		return fmt.Errorf("%w: funding opens at %d (current time %d)", ErrWindowNotOpen, pool.SubscriptionEnd+1, now)
	}
	if now > pool.FundingEnd {
		return fmt.Errorf("%w: funding closed at %d (current time %d)", ErrWindowClosed, pool.FundingEnd, now)
	}

	amountInt, err := parseAmount("funding amount", amount)
	if err != nil {
		return err
	}
	if amountInt.Sign() == 0 {
		return ErrCannotBeZero
	}

	user, err := GetUserInfo(ctx, poolID, signer)
	if err != nil {
		return err
	}
	if !user.IsSubscribed() {
		return fmt.Errorf("%w: %s is not subscribed to pool %d", ErrNotEligible, signer, poolID)
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return err
	}

	maxAllocation, err := maximumAllocation(pool, stats, user)
	if err != nil {
		return err
	}

	funded, ok := new(big.Int).SetString(user.FundedAmount, 10)
	if !ok {
		return ErrInvalidAmount("funded amount", user.FundedAmount)
	}

	newFunded := new(big.Int).Add(funded, amountInt)
	if newFunded.Cmp(maxAllocation) > 0 {
		return fmt.Errorf("%w: %s exceeds maximum allocation %s for pool %d", ErrCapacityExceeded, newFunded.String(), maxAllocation.String(), poolID)
	}

	user.FundedAmount = newFunded.String()

	totalRaised, ok := new(big.Int).SetString(stats.TotalRaised, 10)
	if !ok {
		return ErrInvalidAmount("total raised", stats.TotalRaised)
	}
	totalRaised.Add(totalRaised, amountInt)
	stats.TotalRaised = totalRaised.String()

	guaranteedValue, ok := new(big.Int).SetString(user.GuaranteedAllocationValue, 10)
	if !ok {
		return ErrInvalidAmount("guaranteed allocation value", user.GuaranteedAllocationValue)
	}
	usesGuaranteed := guaranteedValue.Sign() > 0
	if usesGuaranteed {
		guaranteedRaised, ok := new(big.Int).SetString(stats.TotalGuaranteedRaised, 10)
		if !ok {
			return ErrInvalidAmount("total guaranteed raised", stats.TotalGuaranteedRaised)
		}
		guaranteedRaised.Add(guaranteedRaised, amountInt)
		stats.TotalGuaranteedRaised = guaranteedRaised.String()
	}

	// All internal balances and totals are written before any collaborator
	// contract runs.
	if err := SetUserInfo(ctx, poolID, signer, user); err != nil {
		return err
	}
	if err := SetPoolStats(ctx, poolID, stats); err != nil {
		return err
	}

	if usesGuaranteed {
		registry, err := getConfigAddress(ctx, AllocationRightRegistryKey)
		if err != nil {
			return err
		}
		if err := spendAllocationRight(ctx, registry, user.AllocationRightID, amountInt); err != nil {
			return err
		}
	}

	token, err := raisingToken(ctx, pool)
	if err != nil {
		return err
	}

	contractAddress, err := getConfigAddress(ctx, ContractAddressKey)
	if err != nil {
		return err
	}

	if pool.RaisingAsset == zeroAddress {
		// Native pools settle in the platform token; the custody delta must
		// match the declared amount exactly.
		balanceBefore, err := tokenBalanceOf(ctx, token, contractAddress)
		if err != nil {
			return err
		}
		if err := transferTokenFrom(ctx, token, signer, contractAddress, amountInt); err != nil {
			return err
		}
		balanceAfter, err := tokenBalanceOf(ctx, token, contractAddress)
		if err != nil {
			return err
		}

		delta := new(big.Int).Sub(balanceAfter, balanceBefore)
		if delta.Cmp(amountInt) != 0 {
			return fmt.Errorf("%w: transferred %s, declared %s", ErrAmountMismatch, delta.String(), amount)
		}
	} else {
		if err := transferTokenFrom(ctx, token, signer, contractAddress, amountInt); err != nil {
			return err
		}
	}

	return EmitFunded(ctx, poolID, signer, amount)
}

// ClaimFundRaising sweeps the pool's raised capital to the designated
// recipient. One shot per pool, and only once vesting is configured.
func (s *SmartContract) ClaimFundRaising(ctx kalpsdk.TransactionContextInterface, poolID uint64, recipient string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	if !IsUserAddressValid(recipient) {
		return fmt.Errorf("%w: %s", ErrInvalidUserAddress, recipient)
	}

	pool, err := GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if pool.RewardsStart == 0 {
		return fmt.Errorf("%w: pool %d", ErrVestingNotConfigured, poolID)
	}

	stats, err := GetPoolStats(ctx, poolID)
	if err != nil {
		return err
	}
	if stats.FundsClaimed {
		return fmt.Errorf("%w: pool %d", ErrFundsAlreadyClaimed, poolID)
	}

	totalRaised, ok := new(big.Int).SetString(stats.TotalRaised, 10)
	if !ok {
		return ErrInvalidAmount("total raised", stats.TotalRaised)
	}

	// The one-shot flag is written before the transfer.
	stats.FundsClaimed = true
	if err := SetPoolStats(ctx, poolID, stats); err != nil {
		return err
	}

	token, err := raisingToken(ctx, pool)
	if err != nil {
		return err
	}

	if err := transferToken(ctx, token, recipient, totalRaised); err != nil {
		return err
	}

	return EmitFundRaisingClaimed(ctx, poolID, recipient, totalRaised.String())
}

// GetPool returns the pool definition.
func (s *SmartContract) GetPool(ctx kalpsdk.TransactionContextInterface, poolID uint64) (*Pool, error) {
	return GetPool(ctx, poolID)
}

// GetPoolStats returns the pool's running totals.
func (s *SmartContract) GetPoolStats(ctx kalpsdk.TransactionContextInterface, poolID uint64) (*PoolStats, error) {
	return GetPoolStats(ctx, poolID)
}

// GetPoolCount returns the number of registered pools.
func (s *SmartContract) GetPoolCount(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	return GetPoolCount(ctx)
}

// GetUserInfo returns the participant record for an account.
func (s *SmartContract) GetUserInfo(ctx kalpsdk.TransactionContextInterface, poolID uint64, account string) (*UserInfo, error) {
	return GetUserInfo(ctx, poolID, account)
}
