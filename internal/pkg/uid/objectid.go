package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrStableNodeIdentityUnavailable indicates no stable node identity is available.
var ErrStableNodeIdentityUnavailable = errors.New("uid: cannot determine stable node identity (machine-id/hostname unavailable)")

// ObjectIDGenerator generates 24-byte distributed-safe reference tokens
// (hex output). Payment references use it so they stay opaque but sortable
// by creation time.
type ObjectIDGenerator struct {
	nodeID  [6]byte
	counter uint32
}

// NewObjectIDGenerator creates a generator with a stable node identity.
func NewObjectIDGenerator() (*ObjectIDGenerator, error) {
	g := &ObjectIDGenerator{}

	src, err := machineIDOrHostname()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(src))
	copy(g.nodeID[:], sum[:6])

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}
	g.counter = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	return g, nil
}

func machineIDOrHostname() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}

	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}

	return "", ErrStableNodeIdentityUnavailable
}

// Generate returns a 48-char hex string representing 24 bytes.
func (g *ObjectIDGenerator) Generate() string {
	var raw [24]byte

	// 6-byte millisecond timestamp, big-endian
	ts := uint64(time.Now().UnixMilli())
	raw[0] = byte(ts >> 40)
	raw[1] = byte(ts >> 32)
	raw[2] = byte(ts >> 24)
	raw[3] = byte(ts >> 16)
	raw[4] = byte(ts >> 8)
	raw[5] = byte(ts)

	copy(raw[6:12], g.nodeID[:])

	c := atomic.AddUint32(&g.counter, 1)
	raw[12] = byte(c >> 24)
	raw[13] = byte(c >> 16)
	raw[14] = byte(c >> 8)
	raw[15] = byte(c)

	// 8 random bytes, deterministic fallback if the source fails
	if _, err := rand.Read(raw[16:]); err != nil {
		sum := sha256.Sum256(raw[:16])
		copy(raw[16:], sum[:8])
	}

	var hexBuf [48]byte
	hex.Encode(hexBuf[:], raw[:])
	return string(hexBuf[:])
}
