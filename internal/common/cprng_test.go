package common

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownStream is the first 256 bytes of the AES-256-CTR stream under the key
// 00 01 02 ... 1f with a little-endian counter starting at zero.
const knownStream = "f29000b62a499fd0a9f39a6add2e7780c7b519846a11411cd6ac07cb03f801a84ef4b88bebd54953c37ffaf66efaca7b80c3017e8f89ab315ede32b11e48ab50d5786900334bbaad31a868ca3c29221b99ebccc0117949cd663c44c06a1c58b05daad7132f80983dae88ecf9ce714a1b600411a4cb4d0da02e107f8d0bcfdab864009471a3394f76374e38bfdc9fe26c62ac2e4b9ec5049108dccdb6488f325cf3297d5a71a5d1734dd46661023ea39f7402facdf1802b42d88a715615324bd502bddc6de19403882a27cdf934adffc9483c475aeb20edf61bfa6a18777a7ada695ebda390508948b1fc69971a26a169c0de48d769b197cd5cf9bb5f798f49d0"

func knownSeed() *[32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	return &seed
}

func TestCPRNGKnownAnswer(t *testing.T) {
	want, err := hex.DecodeString(knownStream)
	require.NoError(t, err)

	rng, err := NewCPRNG(knownSeed())
	require.NoError(t, err)

	got := make([]byte, len(want))
	n, err := rng.Read(got)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)
	assert.Equal(t, want, got)
}

func TestCPRNGReadChunksPreserveTheStream(t *testing.T) {
	want, err := hex.DecodeString(knownStream)
	require.NoError(t, err)

	for _, chunk := range []int{16, 32, 64} {
		rng, err := NewCPRNG(knownSeed())
		require.NoError(t, err)

		got := make([]byte, len(want))
		for off := 0; off < len(got); off += chunk {
			_, err := rng.Read(got[off : off+chunk])
			require.NoError(t, err)
		}
		assert.Equal(t, want, got, "chunk size %d", chunk)
	}
}

func TestCPRNGShortReadConsumesWholeBlocks(t *testing.T) {
	want, err := hex.DecodeString(knownStream)
	require.NoError(t, err)

	// A read claims whole blocks: reading 5 bytes discards the tail of the
	// block, so the next read starts at the following block boundary.
	rng, err := NewCPRNG(knownSeed())
	require.NoError(t, err)
	var short [5]byte
	for i := 0; i < 8; i++ {
		_, err := rng.Read(short[:])
		require.NoError(t, err)
		assert.Equal(t, want[16*i:16*i+5], short[:], "read %d", i)
	}

	// A read spanning two blocks claims both.
	rng, err = NewCPRNG(knownSeed())
	require.NoError(t, err)
	var wide [20]byte
	for i := 0; i < 4; i++ {
		_, err := rng.Read(wide[:])
		require.NoError(t, err)
		assert.Equal(t, want[32*i:32*i+20], wide[:], "read %d", i)
	}
}

func TestCPRNGEmptyRead(t *testing.T) {
	want, err := hex.DecodeString(knownStream)
	require.NoError(t, err)

	rng, err := NewCPRNG(knownSeed())
	require.NoError(t, err)

	n, err := rng.Read(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// An empty read must not advance the stream.
	var buf [16]byte
	_, err = rng.Read(buf[:])
	require.NoError(t, err)
	assert.Equal(t, want[:16], buf[:])
}

func TestCPRNGConcurrentReadersNeverOverlap(t *testing.T) {
	rng, err := NewCPRNG(knownSeed())
	require.NoError(t, err)

	// Every 16-byte read claims a distinct counter value, and AES maps
	// distinct counters to distinct blocks, so duplicates mean a race.
	const workers = 8
	const reads = 64

	var mu sync.Mutex
	seen := make(map[[16]byte]bool, workers*reads)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf [16]byte
			for i := 0; i < reads; i++ {
				rng.Read(buf[:])
				mu.Lock()
				seen[buf] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*reads)
}
