package skillmarket

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// SetSkillRate sets informational exchange rate of a skill-hour. Rate must be
// positive. It can be invoked only by the administrator.
//
// Produces ConfigurationUpdated notification.
func SetSkillRate(rate int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if rate <= 0 {
		panic(marketconst.ErrInvalidRate)
	}

	setConfig(ctx, marketconst.SkillRateKey, rate)
}

// SetServiceFee sets service fee percentage charged on top of each exchange.
// Fee must be in [0, 100] range. It can be invoked only by the administrator.
//
// Produces ConfigurationUpdated notification.
func SetServiceFee(feePercent int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if feePercent < 0 || feePercent > marketconst.MaxServiceFee {
		panic(marketconst.ErrInvalidRate)
	}

	setConfig(ctx, marketconst.ServiceFeeKey, feePercent)
}

// SetReserveLimit sets the upper bound of the total amount of listed
// skill-hours. The limit can't be lower than the current reserve. It can be
// invoked only by the administrator.
//
// Produces ConfigurationUpdated notification.
func SetReserveLimit(limit int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if limit < common.GetInt(ctx, marketconst.TotalReserveKey) {
		panic(marketconst.ErrReserveLimitReached)
	}

	setConfig(ctx, marketconst.ReserveLimitKey, limit)
}

// SetMaxSkillsPerUser sets per-participant offer cap. Limit must be positive.
// It can be invoked only by the administrator.
//
// Produces ConfigurationUpdated notification.
func SetMaxSkillsPerUser(limit int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if limit <= 0 {
		panic(marketconst.ErrInvalidSkill)
	}

	setConfig(ctx, marketconst.MaxSkillsPerUserKey, limit)
}

// ApplyServiceFeeDiscount lowers the global service fee by discount
// percentage points. The first argument names the participant asking for the
// discount, it is not stored: the discount applies to everyone. A discount exceeding the current fee fails
// the call instead of being clamped. It can be invoked only by the
// administrator.
//
// Produces ConfigurationUpdated notification.
func ApplyServiceFeeDiscount(participant interop.Hash160, discount int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if discount < 0 {
		panic(marketconst.ErrInvalidRate)
	}

	fee := common.GetInt(ctx, marketconst.ServiceFeeKey)
	if discount > fee {
		panic(marketconst.ErrArithmeticUnderflow)
	}

	setConfig(ctx, marketconst.ServiceFeeKey, fee-discount)
}

// GetSkillRate returns informational exchange rate of a skill-hour.
func GetSkillRate() int {
	return common.GetInt(storage.GetReadOnlyContext(), marketconst.SkillRateKey)
}

// GetServiceFee returns service fee percentage.
func GetServiceFee() int {
	return common.GetInt(storage.GetReadOnlyContext(), marketconst.ServiceFeeKey)
}

// GetMaxSkillsPerUser returns per-participant offer cap.
func GetMaxSkillsPerUser() int {
	return common.GetInt(storage.GetReadOnlyContext(), marketconst.MaxSkillsPerUserKey)
}

// GetSkillReserveLimit returns the upper bound of the total reserve.
func GetSkillReserveLimit() int {
	return common.GetInt(storage.GetReadOnlyContext(), marketconst.ReserveLimitKey)
}

// GetTotalSkillReserve returns total amount of skill-hours accounted as
// listed. Exchanges don't lower it, so it may exceed the sum of active
// offers.
func GetTotalSkillReserve() int {
	return common.GetInt(storage.GetReadOnlyContext(), marketconst.TotalReserveKey)
}

// GetAdministrator returns script hash of the account allowed to change
// configuration and update the contract.
func GetAdministrator() interop.Hash160 {
	return getAdmin(storage.GetReadOnlyContext())
}

func getAdmin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, marketconst.AdminKey).(interop.Hash160)
}

func checkOwner(ctx storage.Context) {
	admin := getAdmin(ctx)
	if !common.Caller().Equals(admin) || !runtime.CheckWitness(admin) {
		panic(marketconst.ErrOwnerOnly)
	}
}

// witnessedCaller returns the transaction sender if it witnesses the current
// call. With CalledByEntry scope calls relayed through other contracts are
// rejected.
func witnessedCaller() interop.Hash160 {
	sender := common.Caller()
	if !runtime.CheckWitness(sender) {
		panic(marketconst.ErrUnauthorizedUser)
	}
	return sender
}

func setConfig(ctx storage.Context, key string, value int) {
	storage.Put(ctx, key, value)
	runtime.Notify("ConfigurationUpdated", key, value)
}
