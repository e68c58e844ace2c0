package skillmarket

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// GetSkillBalance returns amount of skill-hours owned by the participant.
func GetSkillBalance(participant interop.Hash160) int {
	return getSkillBalance(storage.GetReadOnlyContext(), participant)
}

// GetStxBalance returns spendable currency balance of the participant.
func GetStxBalance(participant interop.Hash160) int {
	return getCurrencyBalance(storage.GetReadOnlyContext(), participant)
}

func skillKey(participant interop.Hash160) []byte {
	return append([]byte{marketconst.SkillBalancePrefix}, participant...)
}

func currencyKey(participant interop.Hash160) []byte {
	return append([]byte{marketconst.CurrencyBalancePrefix}, participant...)
}

func getSkillBalance(ctx storage.Context, participant interop.Hash160) int {
	return common.GetInt(ctx, skillKey(participant))
}

func getCurrencyBalance(ctx storage.Context, participant interop.Hash160) int {
	return common.GetInt(ctx, currencyKey(participant))
}

func creditSkills(ctx storage.Context, participant interop.Hash160, amount int) {
	key := skillKey(participant)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
}

func creditCurrency(ctx storage.Context, participant interop.Hash160, amount int) {
	key := currencyKey(participant)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
}

// debitSkills is the only way to lower a skill balance.
func debitSkills(ctx storage.Context, participant interop.Hash160, amount int) {
	debit(ctx, skillKey(participant), amount)
}

// debitCurrency is the only way to lower a currency balance.
func debitCurrency(ctx storage.Context, participant interop.Hash160, amount int) {
	debit(ctx, currencyKey(participant), amount)
}

func debit(ctx storage.Context, key []byte, amount int) {
	balance := common.GetInt(ctx, key)
	if balance < amount {
		panic(marketconst.ErrInsufficientBalance)
	}

	common.PutInt(ctx, key, balance-amount)
}
