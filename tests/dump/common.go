package dump

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID is a unique identifier of the dump prepared according to the model
// described in the current package.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

// decodes ID fields from the dump file name. Label may contain separators
// itself, so block number is the last but one word.
func (x *ID) decodeFileName(s string) error {
	ss := strings.Split(s, sep)
	if len(ss) < 3 {
		return fmt.Errorf("expected '%s'-separated string with at least 3 items", sep)
	}

	n, err := strconv.ParseUint(ss[len(ss)-2], 10, 32)
	if err != nil {
		return fmt.Errorf("decode block number from '%s': %w", ss[len(ss)-2], err)
	}

	x.Label = strings.Join(ss[:len(ss)-2], sep)
	x.Block = uint32(n)

	return nil
}

// global encoding of binary values.
var _encoding = base64.StdEncoding

// dumpContractState is a JSON-encoded information about the dumped contract.
type dumpContractState struct {
	Version string         `json:"version"`
	State   state.Contract `json:"state"`
}

const (
	// word separator used in dump file naming
	sep = "-"
	// suffix of file with contract state
	stateFileSuffix = "skillmarket.json"
	// suffix of file with contract storage
	storageFileSuffix = "skillmarket.csv"
	// current dump format
	formatVersion = "1"
)

func statePath(dir string, id ID) string {
	return filepath.Join(dir, id.String()+sep+stateFileSuffix)
}

func storagePath(dir string, id ID) string {
	return filepath.Join(dir, id.String()+sep+storageFileSuffix)
}

// checkFileNotExists checks that there is no file at the specified path.
func checkFileNotExists(p string) error {
	_, err := os.Stat(p)
	if !os.IsNotExist(err) {
		if err == nil {
			err = os.ErrExist
		}
		return fmt.Errorf("file '%s' absence check failed: %w", p, err)
	}
	return nil
}
