// Package features derives deterministic latent feature vectors from space
// descriptions. The vector is seeded by a digest of the description text, so
// the same text always maps to the same point in latent space.
package features

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/ports"
)

type HashExtractor struct {
	latentDim int
}

func New(cfg domain.Config) (*HashExtractor, error) {
	dim := cfg.ModelParams.LatentDim
	if dim <= 0 {
		return nil, &domain.OpError{
			Op:   "features.init",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}
	return &HashExtractor{latentDim: dim}, nil
}

var _ ports.FeatureExtractor = (*HashExtractor)(nil)

// Extract maps a description to a latent vector of standard normal samples.
// The stream is seeded by the digest reduced modulo 2^32, which keeps the
// last four digest bytes.
func (e *HashExtractor) Extract(description string) []float64 {
	rng := rand.New(rand.NewSource(int64(seedFor(description))))
	vec := make([]float64, e.latentDim)
	for i := range vec {
		vec[i] = rng.NormFloat64()
	}
	return vec
}

func seedFor(description string) uint32 {
	sum := md5.Sum([]byte(description))
	return binary.BigEndian.Uint32(sum[12:16])
}
