package latinga

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// scanState holds the buffers of a single run of Transliterate or Validate.
// Runs are short-lived and frequent, so states are pooled.
type scanState struct {
	out    strings.Builder
	tokens []token
	pooled bool // created by the pool, as opposed to a fallback
}

// Clears the scan state, keeping the token buffer.
func (st *scanState) reset() {
	st.out.Reset()
	st.tokens = st.tokens[:0]
}

type scanStatePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScanStatePool *scanStatePool

func init() {
	globalScanStatePool = &scanStatePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			st := &scanState{pooled: true}
			return st, nil
		})
	globalScanStatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScanStatePool.opool = pool.NewObjectPool(globalScanStatePool.ctx, factory, config)
}

// borrowScanState returns a cleared scan state from the pool.
func borrowScanState() *scanState {
	o, err := globalScanStatePool.opool.BorrowObject(globalScanStatePool.ctx)
	if err != nil {
		CT().Errorf("scan state pool: %v", err)
		return &scanState{}
	}
	st := o.(*scanState)
	st.reset()
	return st
}

// Clears the scan state and puts it back into the pool. States not created
// by the pool are left to the garbage collector.
func (st *scanState) releaseIntoPool() {
	st.reset()
	if !st.pooled {
		return
	}
	if err := globalScanStatePool.opool.ReturnObject(globalScanStatePool.ctx, st); err != nil {
		CT().Errorf("scan state pool: %v", err)
	}
}
