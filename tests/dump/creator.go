package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator dumps state of the SkillMarket contract. Output file format:
//
//	'<label>-<block>-skillmarket.json': JSON object with contract state
//	'<label>-<block>-skillmarket.csv': CSV of contract storage
//
// Storage CSV are 'key,value' where binary key-value are base64-encoded.
//
// Use Open or IterateDumps to access existing dumps.
type Creator struct {
	contract *state.Contract

	fState, fStorage *os.File

	storageCSV *csv.Writer
}

// NewCreator returns Creator which dumps the contract into given directory.
// The dump is identified by specified ID. Resulting Creator should be closed
// when finished working with it.
//
// NewCreator fails if dump with provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	pState, pStorage := statePath(dir, id), storagePath(dir, id)

	for _, p := range []string{pState, pStorage} {
		if err := checkFileNotExists(p); err != nil {
			return nil, err
		}
	}

	const flag, perm = os.O_CREATE | os.O_WRONLY, 0600

	fStorage, err := os.OpenFile(pStorage, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}

	fState, err := os.OpenFile(pState, flag, perm)
	if err != nil {
		_ = fStorage.Close()
		return nil, fmt.Errorf("open file with contract state: %w", err)
	}

	return &Creator{
		fState:     fState,
		fStorage:   fStorage,
		storageCSV: csv.NewWriter(fStorage),
	}, nil
}

// SetContract sets state of the dumped contract. It must be called before
// Flush.
func (x *Creator) SetContract(st state.Contract) {
	x.contract = &st
}

// Write saves given binary key-value into the dump as storage item.
func (x *Creator) Write(key, value []byte) error {
	err := x.storageCSV.Write([]string{
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}

// Flush flushes accumulated dump to the file system.
func (x *Creator) Flush() error {
	if x.contract == nil {
		return errors.New("missing contract state")
	}

	jEnc := json.NewEncoder(x.fState)
	jEnc.SetIndent("", " ")

	err := jEnc.Encode(dumpContractState{
		Version: formatVersion,
		State:   *x.contract,
	})
	if err != nil {
		return fmt.Errorf("encode contract state to JSON: %w", err)
	}

	x.storageCSV.Flush()

	err = x.storageCSV.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	_ = x.fStorage.Close()
	_ = x.fState.Close()
}
