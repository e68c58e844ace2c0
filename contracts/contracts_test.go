package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestGetSkillMarket(t *testing.T) {
	_nef, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "SkillMarket")

	_fs := fstest.MapFS{
		SkillMarketDir + "/" + nefName:      &fstest.MapFile{Data: validNEF},
		SkillMarketDir + "/" + manifestName: &fstest.MapFile{Data: validManifest},
	}

	c, err := GetSkillMarket(_fs)
	require.NoError(t, err)
	require.Equal(t, _nef.Checksum, c.NEF.Checksum)
	require.Equal(t, "SkillMarket", c.Manifest.Name)

	cs, err := Read(_fs, SkillMarketDir, SkillMarketDir)
	require.NoError(t, err)
	require.Len(t, cs, 2)
}

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := GetSkillMarket(_fs)
	require.Error(t, err)

	// Missing manifest.
	_, validNEF := anyValidNEF(t)
	_fs[SkillMarketDir+"/"+nefName] = &fstest.MapFile{Data: validNEF}
	_, err = GetSkillMarket(_fs)
	require.Error(t, err)

	_, err = Read(_fs, "unknown")
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = SkillMarketDir + "/" + nefName
		manifestPath = SkillMarketDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := GetSkillMarket(_fs)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = GetSkillMarket(_fs)
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
