package deploy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// Allocation is an initial balance of the marketplace participant credited at
// deployment.
type Allocation struct {
	Account  util.Uint160
	Skills   int64
	Currency int64
}

// Configuration groups initial settings of the SkillMarket contract.
type Configuration struct {
	// Administrator allowed to change configuration and update the contract.
	// Zero value means the deploying account.
	Administrator util.Uint160

	SkillRate        int64
	ServiceFee       int64
	MaxSkillsPerUser int64
	ReserveLimit     int64

	Allocations []Allocation
}

// DefaultConfiguration returns Configuration the contract falls back to when
// deployed without data.
func DefaultConfiguration() Configuration {
	return Configuration{
		SkillRate:        marketconst.DefaultSkillRate,
		ServiceFee:       marketconst.DefaultServiceFee,
		MaxSkillsPerUser: marketconst.DefaultMaxSkillsPerUser,
		ReserveLimit:     marketconst.DefaultReserveLimit,
	}
}

// Validate checks the Configuration against the rules enforced by the
// contract, so that an invalid deployment is rejected before paying for it.
func (x Configuration) Validate() error {
	switch {
	case x.SkillRate <= 0:
		return fmt.Errorf("skill rate must be positive, got %d", x.SkillRate)
	case x.ServiceFee < 0 || x.ServiceFee > marketconst.MaxServiceFee:
		return fmt.Errorf("service fee must be in [0, %d] range, got %d", marketconst.MaxServiceFee, x.ServiceFee)
	case x.MaxSkillsPerUser <= 0:
		return fmt.Errorf("max skills per user must be positive, got %d", x.MaxSkillsPerUser)
	case x.ReserveLimit < 0:
		return fmt.Errorf("reserve limit must be non-negative, got %d", x.ReserveLimit)
	}

	for i := range x.Allocations {
		if x.Allocations[i].Skills < 0 || x.Allocations[i].Currency < 0 {
			return fmt.Errorf("negative allocation #%d", i)
		}
	}

	return nil
}

// deployData builds data parameter of the contract deployment.
func (x Configuration) deployData() []any {
	var admin any
	if !x.Administrator.Equals(util.Uint160{}) {
		admin = x.Administrator
	}

	allocs := make([]any, len(x.Allocations))
	for i := range x.Allocations {
		allocs[i] = []any{
			x.Allocations[i].Account,
			x.Allocations[i].Skills,
			x.Allocations[i].Currency,
		}
	}

	return []any{
		admin,
		x.SkillRate,
		x.ServiceFee,
		x.MaxSkillsPerUser,
		x.ReserveLimit,
		allocs,
	}
}

// ParseAllocation decodes Allocation from 'address:skills:currency' string
// where address is Neo address of the participant.
func ParseAllocation(s string) (Allocation, error) {
	var res Allocation

	ss := strings.Split(s, ":")
	if len(ss) != 3 {
		return res, errors.New("expected 'address:skills:currency' format")
	}

	var err error

	res.Account, err = address.StringToUint160(ss[0])
	if err != nil {
		return res, fmt.Errorf("decode account address: %w", err)
	}

	res.Skills, err = strconv.ParseInt(ss[1], 10, 64)
	if err != nil {
		return res, fmt.Errorf("decode skills: %w", err)
	}

	res.Currency, err = strconv.ParseInt(ss[2], 10, 64)
	if err != nil {
		return res, fmt.Errorf("decode currency: %w", err)
	}

	if res.Skills < 0 || res.Currency < 0 {
		return res, errors.New("negative allocation")
	}

	return res, nil
}
