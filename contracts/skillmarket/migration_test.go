package skillmarket_test

import (
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/skillhours/skillmarket-contract/common"
	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	"github.com/skillhours/skillmarket-contract/tests/dump"
	"github.com/skillhours/skillmarket-contract/tests/migration"
	"github.com/stretchr/testify/require"
)

func TestMigration(t *testing.T) {
	err := dump.IterateDumps("../../testdata", func(id dump.ID, r *dump.Reader) {
		t.Run(id.String(), func(t *testing.T) {
			testMigrationFromDump(t, r)
		})
	})
	require.NoError(t, err)

	t.Run("generated", func(t *testing.T) {
		testMigrationFromDump(t, makeDump(t))
	})
}

// makeDump deploys the contract on a fresh chain, trades a bit and dumps the
// resulting state.
func makeDump(t *testing.T) *dump.Reader {
	bc, committee := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, committee, committee)

	alice, bob := e.NewAccount(t), e.NewAccount(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, ".", filepath.Join(".", "config.yml"))
	e.DeployContract(t, ctr, []any{
		nil, int64(2), int64(10), int64(100), int64(1000), []any{
			[]any{alice.ScriptHash(), int64(30), int64(0)},
			[]any{bob.ScriptHash(), int64(0), int64(500)},
		},
	})

	c := e.CommitteeInvoker(ctr.Hash)
	c.WithSigners(alice).Invoke(t, stackitem.Null{}, "offerSkills", 20, 3)
	c.WithSigners(bob).Invoke(t, stackitem.Null{}, "exchangeSkills", alice.ScriptHash(), 5)
	c.Invoke(t, stackitem.Null{}, "setServiceFee", 0)

	st := bc.GetContractState(ctr.Hash)
	require.NotNil(t, st)

	dir := t.TempDir()
	id := dump.ID{Label: "generated", Block: bc.BlockHeight()}

	d, err := dump.NewCreator(dir, id)
	require.NoError(t, err)

	d.SetContract(*st)

	keys := [][]byte{
		[]byte(marketconst.AdminKey),
		[]byte(marketconst.SkillRateKey),
		[]byte(marketconst.ServiceFeeKey),
		[]byte(marketconst.MaxSkillsPerUserKey),
		[]byte(marketconst.ReserveLimitKey),
		[]byte(marketconst.TotalReserveKey),
	}
	for _, acc := range []util.Uint160{alice.ScriptHash(), bob.ScriptHash(), e.CommitteeHash} {
		keys = append(keys,
			skillmarket.SkillBalanceKey(acc),
			skillmarket.CurrencyBalanceKey(acc),
			skillmarket.OfferKey(acc))
	}

	for i := range keys {
		if v := bc.GetStorageItem(st.ID, keys[i]); v != nil {
			require.NoError(t, d.Write(keys[i], v))
		}
	}

	require.NoError(t, d.Flush())
	d.Close()

	r, err := dump.Open(dir, id)
	require.NoError(t, err)

	return r
}

func testMigrationFromDump(t *testing.T, d *dump.Reader) {
	ledger := skillmarket.NewLedger()

	// init test contract shell
	c := migration.NewContract(t, d, migration.ContractOptions{
		StorageDumpHandler: func(key, value []byte) {
			require.NoError(t, ledger.Put(key, value))
		},
	})

	readInt := func(method string, args ...any) int64 {
		n, err := c.Call(t, method, args...).TryInteger()
		require.NoError(t, err)
		return n.Int64()
	}

	checkState := func() {
		require.Equal(t, ledger.SkillRate.Int64(), readInt("getSkillRate"))
		require.Equal(t, ledger.ServiceFee.Int64(), readInt("getServiceFee"))
		require.Equal(t, ledger.MaxSkillsPerUser.Int64(), readInt("getMaxSkillsPerUser"))
		require.Equal(t, ledger.ReserveLimit.Int64(), readInt("getSkillReserveLimit"))
		require.Equal(t, ledger.TotalReserve.Int64(), readInt("getTotalSkillReserve"))

		for _, acc := range ledger.Participants() {
			require.Equal(t, ledger.SkillBalance(acc).Int64(), readInt("getSkillBalance", acc))
			require.Equal(t, ledger.CurrencyBalance(acc).Int64(), readInt("getStxBalance", acc))

			var o skillmarket.Offer
			require.NoError(t, o.FromStackItem(c.Call(t, "getSkillsForExchange", acc)))
			if exp, ok := ledger.Offers[acc]; ok {
				require.Equal(t, exp.HoursOffered.Int64(), o.HoursOffered.Int64())
				require.Equal(t, exp.PricePerHour.Int64(), o.PricePerHour.Int64())
			} else {
				require.Zero(t, o.HoursOffered.Sign())
			}
		}
	}

	checkState()

	switch {
	case !ledger.Administrator.Equals(c.Committee()):
		c.CheckUpdateFail(t, "only administrator can update contract")
	case readInt("version") == common.Version:
		c.CheckUpdateFail(t, common.ErrAlreadyUpdated)
	default:
		c.CheckUpdateSuccess(t)
	}

	// check that data survived the update
	checkState()
}
