package skillmarket

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// ExchangeSkills buys hours from the provider's offer. The caller pays the
// offer price for every hour plus the service fee, the price goes to the
// provider and the fee goes to the administrator. The provider's skill
// balance and offer are lowered, the caller's skill balance is raised.
//
// The total reserve is not lowered by an exchange.
//
// Produces SkillsExchanged notification.
func ExchangeSkills(provider interop.Hash160, hours int) {
	ctx := storage.GetContext()
	caller := witnessedCaller()

	if caller.Equals(provider) {
		panic(marketconst.ErrUnauthorizedUser)
	}
	if hours <= 0 {
		panic(marketconst.ErrInvalidSkill)
	}

	offer := getOffer(ctx, provider)
	if offer.HoursOffered < hours {
		panic(marketconst.ErrInsufficientBalance)
	}
	// offer bookkeeping may lag behind the balance after transferSkills
	if getSkillBalance(ctx, provider) < hours {
		panic(marketconst.ErrInsufficientBalance)
	}

	cost := hours * offer.PricePerHour
	fee := cost * common.GetInt(ctx, marketconst.ServiceFeeKey) / 100
	total := cost + fee

	if getCurrencyBalance(ctx, caller) < total {
		panic(marketconst.ErrInsufficientBalance)
	}

	debitSkills(ctx, provider, hours)
	offer.HoursOffered -= hours
	putOffer(ctx, provider, offer)

	debitCurrency(ctx, caller, total)
	creditSkills(ctx, caller, hours)
	creditCurrency(ctx, provider, cost)
	creditCurrency(ctx, getAdmin(ctx), fee)

	runtime.Notify("SkillsExchanged", caller, provider, hours, cost, fee)
}

// TransferSkills moves hours from the provider's skill balance to the
// caller's one. Provider's consent is not checked, offers, reserve and
// currency balances are not touched.
//
// Produces SkillsTransferred notification.
func TransferSkills(provider interop.Hash160, hours int) {
	ctx := storage.GetContext()
	caller := witnessedCaller()

	if hours < 0 {
		panic(marketconst.ErrInvalidSkill)
	}

	debitSkills(ctx, provider, hours)
	creditSkills(ctx, caller, hours)

	runtime.Notify("SkillsTransferred", provider, caller, hours)
}

// ViewActivityPage succeeds only when invoked by the participant itself.
func ViewActivityPage(participant interop.Hash160) {
	if !witnessedCaller().Equals(participant) {
		panic(marketconst.ErrUnauthorizedUser)
	}
}
