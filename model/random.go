package model

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource supplies one unbiased boolean draw per call
type RandomSource interface {
	Bool() bool
}

type randSource struct {
	r *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed, or with the
// current time when seed is 0
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Bool() bool {
	return s.r.Intn(2) == 1
}
