// Package marketconst contains constants shared by the SkillMarket contract
// and its off-chain clients.
package marketconst

// Stable numeric failure codes. Clients rely on them, never renumber.
const (
	CodeOwnerOnly           = 200
	CodeInsufficientBalance = 201
	CodeInvalidSkill        = 202
	CodeInvalidRate         = 203
	CodeReserveLimitReached = 204
	CodeUnauthorizedUser    = 205
	CodeArithmeticUnderflow = 206
)

// Exception messages thrown by the contract. Every message starts with its
// numeric code followed by ": ".
const (
	ErrOwnerOnly           = "200: owner only"
	ErrInsufficientBalance = "201: insufficient balance"
	ErrInvalidSkill        = "202: invalid skill amount"
	ErrInvalidRate         = "203: invalid rate"
	ErrReserveLimitReached = "204: reserve limit reached"
	ErrUnauthorizedUser    = "205: unauthorized user"
	ErrArithmeticUnderflow = "206: arithmetic underflow"
)

// Defaults applied by deployment when no configuration is provided.
const (
	DefaultSkillRate        = 1
	DefaultServiceFee       = 0
	DefaultMaxSkillsPerUser = 100
	DefaultReserveLimit     = 1_000_000

	// MaxServiceFee is the upper bound of the service fee percentage.
	MaxServiceFee = 100
)

// Storage keys of the configuration scalars.
const (
	AdminKey            = "admin"
	SkillRateKey        = "skillRate"
	ServiceFeeKey       = "serviceFee"
	MaxSkillsPerUserKey = "maxSkillsPerUser"
	ReserveLimitKey     = "reserveLimit"
	TotalReserveKey     = "totalReserve"
)

// Prefixes of per-participant storage records. The participant script hash
// (20 bytes) follows the prefix.
const (
	SkillBalancePrefix    = 's'
	CurrencyBalancePrefix = 'c'
	OfferPrefix           = 'o'
)
