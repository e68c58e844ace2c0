package dump

import (
	"os"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func testContractState(t *testing.T) state.Contract {
	_nef, err := nef.NewFile([]byte{0x40})
	require.NoError(t, err)

	return state.Contract{
		ContractBase: state.ContractBase{
			ID:       1,
			Hash:     util.Uint160{1, 2, 3},
			NEF:      *_nef,
			Manifest: *manifest.NewManifest("SkillMarket"),
		},
	}
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "local-net", Block: 42}
	st := testContractState(t)

	items := []kv{
		{[]byte("admin"), util.Uint160{9}.BytesBE()},
		{[]byte("skillRate"), []byte{20}},
		{append([]byte{'s'}, util.Uint160{7}.BytesBE()...), []byte{50}},
		{[]byte("serviceFee"), []byte{}},
	}

	c, err := NewCreator(dir, id)
	require.NoError(t, err)

	require.Error(t, c.Flush(), "contract state must be set")

	c.SetContract(st)
	for i := range items {
		require.NoError(t, c.Write(items[i].k, items[i].v))
	}
	require.NoError(t, c.Flush())
	c.Close()

	_, err = NewCreator(dir, id)
	require.ErrorIs(t, err, os.ErrExist)

	ids, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, []ID{id}, ids)

	r, err := Open(dir, id)
	require.NoError(t, err)

	res := r.ContractState()
	require.Equal(t, st.ID, res.ID)
	require.Equal(t, st.Hash, res.Hash)
	require.Equal(t, st.NEF.Checksum, res.NEF.Checksum)
	require.Equal(t, st.Manifest.Name, res.Manifest.Name)

	var read []kv
	require.NoError(t, r.IterateStorage(func(key, value []byte) error {
		read = append(read, kv{key, value})
		return nil
	}))
	require.Len(t, read, len(items))
	for i := range items {
		require.Equal(t, items[i].k, read[i].k)
		require.Equal(t, len(items[i].v), len(read[i].v))
		if len(items[i].v) > 0 {
			require.Equal(t, items[i].v, read[i].v)
		}
	}

	var n int
	require.NoError(t, IterateDumps(dir, func(_id ID, _r *Reader) {
		require.Equal(t, id, _id)
		n++
	}))
	require.Equal(t, 1, n)
}

func TestList(t *testing.T) {
	ids, err := List(t.TempDir() + "/missing")
	require.NoError(t, err)
	require.Empty(t, ids)

	dir := t.TempDir()
	for _, id := range []ID{{"testnet", 20}, {"mainnet", 5}, {"testnet", 3}} {
		c, err := NewCreator(dir, id)
		require.NoError(t, err)
		c.SetContract(testContractState(t))
		require.NoError(t, c.Flush())
		c.Close()
	}

	ids, err = List(dir)
	require.NoError(t, err)
	require.Equal(t, []ID{{"mainnet", 5}, {"testnet", 3}, {"testnet", 20}}, ids)
}

func TestOpenCorrupted(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "broken", Block: 1}

	_, err := Open(dir, id)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(statePath(dir, id), []byte(`{"version":"0"}`), 0600))
	require.NoError(t, os.WriteFile(storagePath(dir, id), nil, 0600))
	_, err = Open(dir, id)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(statePath(dir, id), []byte(`{"version":"1","state":{}}`), 0600))
	require.NoError(t, os.WriteFile(storagePath(dir, id), []byte("a,b,c\n"), 0600))
	_, err = Open(dir, id)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(storagePath(dir, id), []byte("!!!,AA==\n"), 0600))
	_, err = Open(dir, id)
	require.Error(t, err)
}
