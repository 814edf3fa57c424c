package consul

import (
	"encoding/json"
	"fmt"
	"sync"

	capi "github.com/hashicorp/consul/api"
	"github.com/scripledger/scrip/pkg/api"
)

const defaultKey = "scrip/ranges"

// Persister stores the whole partition as a single JSON document in the
// Consul KV store. Ranges have no identity which survives splits and merges,
// so per-range keys would churn constantly; the ledger replaces the full set
// on every mutation anyway.
type Persister struct {
	kv  *capi.KV
	key string

	// modifyIndex of the snapshot as last read or written, for CAS. Zero
	// means we expect the key to not exist yet.
	modifyIndex uint64

	// guards modifyIndex
	sync.Mutex
}

func New(client *capi.Client, key string) *Persister {
	if key == "" {
		key = defaultKey
	}

	return &Persister{
		kv:  client.KV(),
		key: key,
	}
}

func (cp *Persister) GetRanges() ([]*api.Range, error) {
	cp.Lock()
	defer cp.Unlock()

	pair, _, err := cp.kv.Get(cp.key, nil)
	if err != nil {
		return nil, err
	}

	if pair == nil {
		cp.modifyIndex = 0
		return []*api.Range{}, nil
	}

	out := []*api.Range{}
	if err := json.Unmarshal(pair.Value, &out); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", cp.key, err)
	}

	cp.modifyIndex = pair.ModifyIndex
	return out, nil
}

func (cp *Persister) PutRanges(ranges []*api.Range) error {
	cp.Lock()
	defer cp.Unlock()

	v, err := json.Marshal(ranges)
	if err != nil {
		return err
	}

	// CAS against the index we last saw. An index of zero requires that the
	// key doesn't exist, which is exactly right for a fresh ledger.
	ops := capi.KVTxnOps{{
		Verb:  capi.KVCAS,
		Key:   cp.key,
		Value: v,
		Index: cp.modifyIndex,
	}}

	ok, res, _, err := cp.kv.Txn(ops, nil)
	if err != nil {
		return err
	}
	if !ok {
		// The key moved underneath us. Some other ledger is writing to the
		// same store, which there is no recovering from here.
		return fmt.Errorf("compare-and-swap of %s failed (index=%d)", cp.key, cp.modifyIndex)
	}
	if len(res.Results) != 1 {
		panic(fmt.Sprintf("expected 1 result from Txn, got %d", len(res.Results)))
	}

	cp.modifyIndex = res.Results[0].ModifyIndex
	return nil
}
