/*
Package contracts provides access to compiled SkillMarket contract.

Compiled contract is a pair of NEF and manifest files produced by the NeoGo
compiler from the contract source code (see skillmarket directory):

	neo-go contract compile -i skillmarket -c skillmarket/config.yml \
		-o <dir>/skillmarket/contract.nef -m <dir>/skillmarket/manifest.json

Files are read from any fs.FS, so they can be embedded into the application
or taken from the file system at runtime.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// SkillMarketDir is a directory with compiled SkillMarket contract.
	SkillMarketDir = "skillmarket"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// GetSkillMarket reads compiled SkillMarket contract from SkillMarketDir of
// the given file system.
func GetSkillMarket(fsys fs.FS) (Contract, error) {
	c, err := readContractFromDir(fsys, SkillMarketDir)
	if err != nil {
		return c, fmt.Errorf("read contract %s: %w", SkillMarketDir, err)
	}

	return c, nil
}

// Read reads compiled contracts from the listed directories of the given file
// system. Contracts are returned in the same order.
func Read(fsys fs.FS, dirs ...string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(fsys, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are slash-separated on every OS, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
