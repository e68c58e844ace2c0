package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// List returns IDs of all dumps in the specified directory sorted by label
// and block. Missing directory is treated as empty.
func List(dir string) ([]ID, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dump directory: %w", err)
	}

	var res []ID

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, sep+stateFileSuffix) {
			continue
		}

		var id ID

		err = id.decodeFileName(name)
		if err != nil {
			return nil, fmt.Errorf("decode dump ID from file name '%s': %w", name, err)
		}

		res = append(res, id)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Label != res[j].Label {
			return res[i].Label < res[j].Label
		}
		return res[i].Block < res[j].Block
	})

	return res, nil
}

// IterateDumps iterates over all dumps collected by the Creator model in the
// specified directory, and passes ID and Reader of each dump into f.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	ids, err := List(dir)
	if err != nil {
		return err
	}

	for i := range ids {
		r, err := Open(dir, ids[i])
		if err != nil {
			return fmt.Errorf("open dump '%s': %w", ids[i], err)
		}

		f(ids[i], r)
	}

	return nil
}

type kv struct{ k, v []byte }

// Reader reads contract collected in the dump.
type Reader struct {
	state   state.Contract
	storage []kv
}

// Open reads the dump with given ID from the specified directory.
func Open(dir string, id ID) (*Reader, error) {
	fState, err := os.Open(statePath(dir, id))
	if err != nil {
		return nil, fmt.Errorf("open file with contract state: %w", err)
	}
	defer fState.Close()

	fStorage, err := os.Open(storagePath(dir, id))
	if err != nil {
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}
	defer fStorage.Close()

	var r Reader

	err = r.fromStreams(fState, fStorage)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (x *Reader) fromStreams(rState, rStorage io.Reader) error {
	var st dumpContractState

	err := json.NewDecoder(rState).Decode(&st)
	if err != nil {
		return fmt.Errorf("decode contract state from JSON: %w", err)
	}

	if st.Version != formatVersion {
		return fmt.Errorf("unsupported dump format version '%s'", st.Version)
	}

	x.state = st.State

	_csv := csv.NewReader(rStorage)
	_csv.FieldsPerRecord = 2

	for {
		rec, err := _csv.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		var _kv kv

		// out-of-range safety guaranteed by csv settings
		_kv.k, err = _encoding.DecodeString(rec[0])
		if err != nil {
			return fmt.Errorf("decode storage item key: %w", err)
		}

		_kv.v, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode storage item value: %w", err)
		}

		x.storage = append(x.storage, _kv)
	}
}

// ContractState returns state of the dumped contract.
func (x *Reader) ContractState() state.Contract {
	return x.state
}

// IterateStorage passes all storage items of the dumped contract into f in
// the order they were written. IterateStorage breaks on any f's error and
// returns it.
func (x *Reader) IterateStorage(f func(key, value []byte) error) error {
	for i := range x.storage {
		if err := f(x.storage[i].k, x.storage[i].v); err != nil {
			return err
		}
	}
	return nil
}
