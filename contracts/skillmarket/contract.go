package skillmarket

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

type (
	// Offer is a participant's listing of skill-hours for sale. A missing
	// offer is equivalent to the zero Offer.
	Offer struct {
		// Hours currently listed for sale.
		HoursOffered int
		// Price of a single hour in currency units.
		PricePerHour int
	}

	// allocation is an initial balance seeded at deployment.
	allocation struct {
		account  interop.Hash160
		skills   int
		currency int
	}
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	var (
		admin            = common.Caller()
		skillRate        = marketconst.DefaultSkillRate
		serviceFee       = marketconst.DefaultServiceFee
		maxSkillsPerUser = marketconst.DefaultMaxSkillsPerUser
		reserveLimit     = marketconst.DefaultReserveLimit
		allocations      []allocation
	)

	if data != nil {
		args := data.(struct {
			admin            interop.Hash160
			skillRate        int
			serviceFee       int
			maxSkillsPerUser int
			reserveLimit     int
			allocations      []allocation
		})

		if args.admin != nil {
			if len(args.admin) != interop.Hash160Len {
				panic("invalid administrator")
			}
			admin = args.admin
		}

		skillRate = args.skillRate
		serviceFee = args.serviceFee
		maxSkillsPerUser = args.maxSkillsPerUser
		reserveLimit = args.reserveLimit
		allocations = args.allocations
	}

	if skillRate <= 0 {
		panic(marketconst.ErrInvalidRate)
	}
	if serviceFee < 0 || serviceFee > marketconst.MaxServiceFee {
		panic(marketconst.ErrInvalidRate)
	}
	if maxSkillsPerUser <= 0 {
		panic(marketconst.ErrInvalidSkill)
	}
	if reserveLimit < 0 {
		panic(marketconst.ErrReserveLimitReached)
	}

	storage.Put(ctx, marketconst.AdminKey, admin)
	storage.Put(ctx, marketconst.SkillRateKey, skillRate)
	storage.Put(ctx, marketconst.ServiceFeeKey, serviceFee)
	storage.Put(ctx, marketconst.MaxSkillsPerUserKey, maxSkillsPerUser)
	storage.Put(ctx, marketconst.ReserveLimitKey, reserveLimit)
	storage.Put(ctx, marketconst.TotalReserveKey, 0)

	for i := range allocations {
		a := allocations[i]
		if len(a.account) != interop.Hash160Len {
			panic("invalid allocation account")
		}
		if a.skills < 0 || a.currency < 0 {
			panic("negative allocation")
		}

		creditSkills(ctx, a.account, a.skills)
		creditCurrency(ctx, a.account, a.currency)
	}

	runtime.Log("skillmarket contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the administrator.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(getAdmin(ctx)) {
		panic("only administrator can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("skillmarket contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
