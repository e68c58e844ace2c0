package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// newSingleNode starts a single-node chain where the only validator is also
// the committee.
func newSingleNode(t *testing.T) *neotest.Executor {
	bc, validator := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, validator, validator)
}

// popIterator pops iterator from the test invocation stack and reads all its
// items.
func popIterator(t *testing.T, s *vm.Stack) []stackitem.Item {
	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok, "iterator expected on the stack")

	var res []stackitem.Item
	for iter.Next() {
		res = append(res, iter.Value())
	}

	return res
}

// invokeCalledByEntry adds a block with the transaction calling the method
// and signed by s with CalledByEntry witness scope. neotest invokers sign
// with Global scope, which is valid in any nested call.
func invokeCalledByEntry(t *testing.T, e *neotest.Executor, s neotest.Signer, contract util.Uint160, method string, args ...any) util.Uint256 {
	script, err := smartcontract.CreateCallScript(contract, method, args...)
	require.NoError(t, err)

	tx := transaction.New(script, 10_0000_0000)
	tx.Nonce = neotest.Nonce()
	tx.ValidUntilBlock = e.Chain.BlockHeight() + 1
	tx.NetworkFee = 1_0000_0000
	tx.Signers = []transaction.Signer{{
		Account: s.ScriptHash(),
		Scopes:  transaction.CalledByEntry,
	}}
	require.NoError(t, s.SignTx(e.Chain.GetConfig().Magic, tx))

	e.AddNewBlock(t, tx)

	return tx.Hash()
}
