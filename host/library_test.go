//go:build !wasip1

package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/aifw-dev/regex-shim/config"
)

// emptyModule is the smallest valid wasm binary: magic and version, no
// sections. It instantiates cleanly but exports nothing.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestOpen_RejectsCorruptBinary(t *testing.T) {
	ctx := context.Background()

	lib, err := Open(ctx, []byte("not a wasm module"))
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.Contains(t, err.Error(), "instantiate guest")
}

func TestOpen_RejectsModuleWithoutExports(t *testing.T) {
	ctx := context.Background()

	lib, err := Open(ctx, emptyModule,
		WithRuntimeConfig(wazero.NewRuntimeConfigInterpreter()))
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.Contains(t, err.Error(), "aifw_regex_compile")
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	ctx := context.Background()

	// Validation runs before the binary is even looked at.
	lib, err := Open(ctx, emptyModule,
		WithConfig(config.Config{ArenaCapacity: -1, MaxPatternSize: 4}))
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLibrary_CompileRejectsPatternOverCap(t *testing.T) {
	ctx := context.Background()

	// The cap is enforced before any guest call, so no instantiated guest
	// is needed to observe the rejection.
	lib := &Library{cfg: libraryConfig{limits: config.Config{ArenaCapacity: 1024, MaxPatternSize: 4}}}

	_, err := lib.Compile(ctx, "abcde")
	assert.ErrorIs(t, err, ErrCompile)
}

func TestStageBuf_Fits(t *testing.T) {
	var zero stageBuf
	assert.False(t, zero.fits(1), "unallocated buffer never fits")

	buf := stageBuf{ptr: 64, cap: 16}
	assert.True(t, buf.fits(16))
	assert.True(t, buf.fits(1))
	assert.False(t, buf.fits(17), "larger haystack forces a fresh allocation")
}

func TestLibrary_ClosedCallsFail(t *testing.T) {
	ctx := context.Background()

	lib := &Library{closed: true}

	_, err := lib.Compile(ctx, "a")
	assert.ErrorIs(t, err, ErrClosed)

	_, _, err = lib.Find(ctx, 1, []byte("a"), 0)
	assert.ErrorIs(t, err, ErrClosed)

	assert.ErrorIs(t, lib.Free(ctx, 1), ErrClosed)
	assert.NoError(t, lib.Close(ctx), "closing twice is a no-op")
}
