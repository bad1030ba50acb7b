package launchpad

const (
	kalpFoundation = "0b87970433b22494faff1cc7a819e71bddc7880c"

	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`

	// Zero address marks a pool as raising the platform's native asset.
	zeroAddress = "0x0000000000000000000000000000000000000000"

	// Role classes. Admins manage pools, score sources and vesting;
	// root managers may only rotate the allowlist root.
	AdminRole       = "ADMIN"
	RootManagerRole = "ROOT_MANAGER"

	// Tier scan modes for the multiplier table lookup.
	TierScanLegacy = "legacy"
	TierScanFull   = "full"

	// Multipliers are stored scaled by 100, e.g. 150 means 1.5x.
	multiplierDenominator = 100

	// World state keys.
	PoolCountKey              = "poolcount"
	MultiplierTiersKey        = "multipliertiers"
	TierScanModeKey           = "tierscanmode"
	ScoreSourcesKey           = "scoresources"
	AllowlistRootKey          = "allowlistroot"
	NativeTokenKey            = "nativetoken"
	AllocationRightRegistryKey = "allocationrightregistry"
	ContractAddressKey        = "contractaddress"

	// Collaborator contract function names.
	tokenTransferFn      = "Transfer"
	tokenTransferFromFn  = "TransferFrom"
	tokenBalanceOfFn     = "BalanceOf"
	scoreGetUserScoreFn  = "GetUserScore"
	rightOwnerOfFn       = "OwnerOf"
	rightAvailableFn     = "GetAvailableAllocation"
	rightSpendFn         = "SpendAllocation"
)
