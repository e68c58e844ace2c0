package skillmarket

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// Ledger is a decoded state of SkillMarket contract storage.
type Ledger struct {
	Administrator    util.Uint160
	SkillRate        *big.Int
	ServiceFee       *big.Int
	MaxSkillsPerUser *big.Int
	ReserveLimit     *big.Int
	TotalReserve     *big.Int

	SkillBalances    map[util.Uint160]*big.Int
	CurrencyBalances map[util.Uint160]*big.Int
	Offers           map[util.Uint160]Offer
}

// NewLedger returns empty Ledger with zero configuration values.
func NewLedger() *Ledger {
	return &Ledger{
		SkillRate:        new(big.Int),
		ServiceFee:       new(big.Int),
		MaxSkillsPerUser: new(big.Int),
		ReserveLimit:     new(big.Int),
		TotalReserve:     new(big.Int),
		SkillBalances:    make(map[util.Uint160]*big.Int),
		CurrencyBalances: make(map[util.Uint160]*big.Int),
		Offers:           make(map[util.Uint160]Offer),
	}
}

// Participants returns sorted list of accounts having any balance or offer.
func (l *Ledger) Participants() []util.Uint160 {
	seen := make(map[util.Uint160]struct{})
	for acc := range l.SkillBalances {
		seen[acc] = struct{}{}
	}
	for acc := range l.CurrencyBalances {
		seen[acc] = struct{}{}
	}
	for acc := range l.Offers {
		seen[acc] = struct{}{}
	}

	res := make([]util.Uint160, 0, len(seen))
	for acc := range seen {
		res = append(res, acc)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})

	return res
}

// Put decodes single contract storage item into the Ledger. Items with
// unknown keys are rejected.
func (l *Ledger) Put(key, value []byte) error {
	switch string(key) {
	case marketconst.AdminKey:
		u, err := util.Uint160DecodeBytesBE(value)
		if err != nil {
			return fmt.Errorf("administrator: %w", err)
		}
		l.Administrator = u
		return nil
	case marketconst.SkillRateKey:
		l.SkillRate = bigint.FromBytes(value)
		return nil
	case marketconst.ServiceFeeKey:
		l.ServiceFee = bigint.FromBytes(value)
		return nil
	case marketconst.MaxSkillsPerUserKey:
		l.MaxSkillsPerUser = bigint.FromBytes(value)
		return nil
	case marketconst.ReserveLimitKey:
		l.ReserveLimit = bigint.FromBytes(value)
		return nil
	case marketconst.TotalReserveKey:
		l.TotalReserve = bigint.FromBytes(value)
		return nil
	}

	if len(key) != 1+util.Uint160Size {
		return fmt.Errorf("unexpected storage key %x", key)
	}

	acc, err := util.Uint160DecodeBytesBE(key[1:])
	if err != nil {
		return fmt.Errorf("account of key %x: %w", key, err)
	}

	switch key[0] {
	case marketconst.SkillBalancePrefix:
		l.SkillBalances[acc] = bigint.FromBytes(value)
	case marketconst.CurrencyBalancePrefix:
		l.CurrencyBalances[acc] = bigint.FromBytes(value)
	case marketconst.OfferPrefix:
		item, err := stackitem.Deserialize(value)
		if err != nil {
			return fmt.Errorf("offer of %s: %w", acc.StringLE(), err)
		}
		var o Offer
		if err = o.FromStackItem(item); err != nil {
			return fmt.Errorf("offer of %s: %w", acc.StringLE(), err)
		}
		l.Offers[acc] = o
	default:
		return fmt.Errorf("unexpected storage key %x", key)
	}

	return nil
}

// DecodeLedger reads storage items via iterate and collects them into the
// Ledger. iterate is expected to pass every key-value pair of the contract
// storage into the provided callback.
func DecodeLedger(iterate func(f func(key, value []byte) error) error) (*Ledger, error) {
	l := NewLedger()

	err := iterate(l.Put)
	if err != nil {
		return nil, err
	}

	if l.Administrator.Equals(util.Uint160{}) {
		return nil, errors.New("missing administrator, contract is not initialized")
	}

	return l, nil
}

// SkillBalance returns skill balance of the account, zero for unknown ones.
func (l *Ledger) SkillBalance(acc util.Uint160) *big.Int {
	return balanceOf(l.SkillBalances, acc)
}

// CurrencyBalance returns currency balance of the account, zero for unknown
// ones.
func (l *Ledger) CurrencyBalance(acc util.Uint160) *big.Int {
	return balanceOf(l.CurrencyBalances, acc)
}

func balanceOf(m map[util.Uint160]*big.Int, acc util.Uint160) *big.Int {
	if v, ok := m[acc]; ok {
		return v
	}
	return new(big.Int)
}

// OfferKey returns storage key of the participant's offer.
func OfferKey(acc util.Uint160) []byte {
	return prefixedKey(marketconst.OfferPrefix, acc)
}

// SkillBalanceKey returns storage key of the participant's skill balance.
func SkillBalanceKey(acc util.Uint160) []byte {
	return prefixedKey(marketconst.SkillBalancePrefix, acc)
}

// CurrencyBalanceKey returns storage key of the participant's currency
// balance.
func CurrencyBalanceKey(acc util.Uint160) []byte {
	return prefixedKey(marketconst.CurrencyBalancePrefix, acc)
}

func prefixedKey(prefix byte, acc util.Uint160) []byte {
	return bytes.Join([][]byte{{prefix}, acc.BytesBE()}, nil)
}
