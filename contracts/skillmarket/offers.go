package skillmarket

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// OfferSkills lists hours of the caller's skill balance for sale at the given
// price per hour. Hours are added to the existing offer and the price replaces
// the previous one. The balance is checked, not deducted: it must cover all
// listed hours. Listed hours are added to the total reserve which must stay
// within the reserve limit.
//
// Produces SkillsOffered notification.
func OfferSkills(hours, rate int) {
	ctx := storage.GetContext()
	caller := witnessedCaller()

	if hours <= 0 {
		panic(marketconst.ErrInvalidSkill)
	}
	if rate <= 0 {
		panic(marketconst.ErrInvalidRate)
	}

	offer := getOffer(ctx, caller)
	listed := offer.HoursOffered + hours
	if getSkillBalance(ctx, caller) < listed {
		panic(marketconst.ErrInsufficientBalance)
	}

	reserve := common.GetInt(ctx, marketconst.TotalReserveKey) + hours
	if reserve > common.GetInt(ctx, marketconst.ReserveLimitKey) {
		panic(marketconst.ErrReserveLimitReached)
	}
	storage.Put(ctx, marketconst.TotalReserveKey, reserve)

	offer.HoursOffered = listed
	offer.PricePerHour = rate
	putOffer(ctx, caller, offer)

	runtime.Notify("SkillsOffered", caller, hours, rate)
}

// RemoveSkills withdraws hours from the caller's offer keeping its price.
// The total reserve is lowered by the same amount but never below zero.
//
// Produces SkillsRemoved notification.
func RemoveSkills(hours int) {
	ctx := storage.GetContext()
	caller := witnessedCaller()

	if hours < 0 {
		panic(marketconst.ErrInvalidSkill)
	}

	offer := getOffer(ctx, caller)
	if offer.HoursOffered < hours {
		panic(marketconst.ErrInsufficientBalance)
	}

	reserve := common.GetInt(ctx, marketconst.TotalReserveKey) - hours
	if reserve < 0 {
		reserve = 0
	}
	storage.Put(ctx, marketconst.TotalReserveKey, reserve)

	offer.HoursOffered -= hours
	putOffer(ctx, caller, offer)

	runtime.Notify("SkillsRemoved", caller, hours)
}

// CancelSkillOffer resets the caller's offer to zero hours and zero price.
// The offer must have been created before. The total reserve is left as is,
// so hours should be removed via RemoveSkills first.
//
// Produces SkillOfferCancelled notification.
func CancelSkillOffer() {
	ctx := storage.GetContext()
	caller := witnessedCaller()

	if storage.Get(ctx, offerKey(caller)) == nil {
		panic(marketconst.ErrUnauthorizedUser)
	}

	putOffer(ctx, caller, Offer{})

	runtime.Notify("SkillOfferCancelled", caller)
}

// GetSkillsForExchange returns the participant's offer. Zero offer is
// returned for participants that never listed anything.
func GetSkillsForExchange(participant interop.Hash160) Offer {
	return getOffer(storage.GetReadOnlyContext(), participant)
}

// ListOffers returns iterator over all offers ever created. Iteration is
// through key-value pair, where key is participant script hash and value is
// Offer structure.
func ListOffers() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{marketconst.OfferPrefix},
		storage.RemovePrefix|storage.DeserializeValues)
}

func offerKey(participant interop.Hash160) []byte {
	return append([]byte{marketconst.OfferPrefix}, participant...)
}

func getOffer(ctx storage.Context, participant interop.Hash160) Offer {
	data := storage.Get(ctx, offerKey(participant))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Offer)
	}

	return Offer{}
}

// putOffer never deletes the record: an existing zero offer can still be
// cancelled.
func putOffer(ctx storage.Context, participant interop.Hash160, offer Offer) {
	common.SetSerialized(ctx, offerKey(participant), offer)
}
