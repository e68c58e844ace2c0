package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/skillhours/skillmarket-contract/contracts"
	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testBlockchain serves contract states only, any other RPC panics.
type testBlockchain struct {
	actor.RPCActor

	state *state.Contract
	err   error
}

func (x *testBlockchain) GetContractStateByHash(util.Uint160) (*state.Contract, error) {
	return x.state, x.err
}

func (x *testBlockchain) GetVersion() (*result.Version, error) {
	return nil, errors.New("offline")
}

func testPrm(t *testing.T, b Blockchain) Prm {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	_nef, err := nef.NewFile([]byte{0x40})
	require.NoError(t, err)

	return Prm{
		Logger:       zaptest.NewLogger(t),
		Blockchain:   b,
		LocalAccount: acc,
		Contract: contracts.Contract{
			NEF:      *_nef,
			Manifest: *manifest.NewManifest("SkillMarket"),
		},
		Config: DefaultConfiguration(),
	}
}

func TestDeploy(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid configuration", func(t *testing.T) {
		prm := testPrm(t, new(testBlockchain))
		prm.Config.ServiceFee = 101

		_, err := Deploy(ctx, prm)
		require.Error(t, err)
	})

	t.Run("up-to-date", func(t *testing.T) {
		b := new(testBlockchain)
		prm := testPrm(t, b)
		b.state = &state.Contract{ContractBase: state.ContractBase{NEF: prm.Contract.NEF}}

		addr, err := Deploy(ctx, prm)
		require.NoError(t, err)
		require.Equal(t, state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.Contract.NEF.Checksum, "SkillMarket"), addr)

		prm.Address = util.Uint160{1, 2, 3}
		addr, err = Deploy(ctx, prm)
		require.NoError(t, err)
		require.Equal(t, prm.Address, addr)
	})

	t.Run("state failure", func(t *testing.T) {
		b := &testBlockchain{err: errors.New("connection refused")}
		_, err := Deploy(ctx, testPrm(t, b))
		require.ErrorIs(t, err, b.err)
	})

	t.Run("missing at explicit address", func(t *testing.T) {
		b := &testBlockchain{err: errors.New("Unknown contract")}
		prm := testPrm(t, b)
		prm.Address = util.Uint160{1}

		_, err := Deploy(ctx, prm)
		require.ErrorContains(t, err, "missing on the chain")
	})

	t.Run("cancelled", func(t *testing.T) {
		b := &testBlockchain{err: errors.New("Unknown contract")}
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Deploy(cctx, testPrm(t, b))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("offline", func(t *testing.T) {
		b := &testBlockchain{err: errors.New("Unknown contract")}

		_, err := Deploy(ctx, testPrm(t, b))
		require.ErrorContains(t, err, "offline")
	})
}

func TestConfiguration(t *testing.T) {
	require.NoError(t, DefaultConfiguration().Validate())

	for _, tc := range []struct {
		name   string
		modify func(*Configuration)
	}{
		{"zero rate", func(c *Configuration) { c.SkillRate = 0 }},
		{"negative fee", func(c *Configuration) { c.ServiceFee = -1 }},
		{"fee above 100", func(c *Configuration) { c.ServiceFee = 101 }},
		{"zero skills per user", func(c *Configuration) { c.MaxSkillsPerUser = 0 }},
		{"negative reserve limit", func(c *Configuration) { c.ReserveLimit = -1 }},
		{"negative allocation", func(c *Configuration) {
			c.Allocations = []Allocation{{Account: util.Uint160{1}, Skills: -1}}
		}},
	} {
		c := DefaultConfiguration()
		tc.modify(&c)
		require.Error(t, c.Validate(), tc.name)
	}

	c := DefaultConfiguration()
	data := c.deployData()
	require.Len(t, data, 6)
	require.Nil(t, data[0])
	require.Empty(t, data[5])

	c.Administrator = util.Uint160{1}
	c.Allocations = []Allocation{{Account: util.Uint160{2}, Skills: 5, Currency: 7}}
	data = c.deployData()
	require.Equal(t, util.Uint160{1}, data[0])
	require.Equal(t, []any{[]any{util.Uint160{2}, int64(5), int64(7)}}, data[5])
}

func TestParseAllocation(t *testing.T) {
	acc := util.Uint160{1, 2, 3}
	addr := address.Uint160ToString(acc)

	a, err := ParseAllocation(addr + ":50:1000")
	require.NoError(t, err)
	require.Equal(t, Allocation{Account: acc, Skills: 50, Currency: 1000}, a)

	for _, s := range []string{
		"",
		addr,
		addr + ":1",
		"not an address:1:1",
		addr + ":x:1",
		addr + ":1:x",
		addr + ":-1:1",
	} {
		_, err = ParseAllocation(s)
		require.Error(t, err, s)
	}
}

func TestFaultError(t *testing.T) {
	err := faultError(`at instruction 5 (THROW): unhandled exception: "200: owner only"`)
	require.ErrorIs(t, err, skillmarket.ErrOwnerOnly)

	err = faultError("some VM failure")
	require.EqualError(t, err, "some VM failure")
}
