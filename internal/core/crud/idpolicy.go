package crud

import "fmt"

type IDPolicy string

const (
	// IDPolicySequential hands out a strictly increasing id per store; ids are
	// never reused after a delete.
	IDPolicySequential IDPolicy = "sequential"
	// IDPolicyLength assigns len(collection)+1. After a delete this can repeat
	// an id that is still in use.
	IDPolicyLength IDPolicy = "length"
)

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch IDPolicy(s) {
	case IDPolicySequential, "":
		return IDPolicySequential, nil
	case IDPolicyLength:
		return IDPolicyLength, nil
	}
	return "", fmt.Errorf("unknown id policy %q", s)
}

type idAllocator interface {
	next(size int) int64
}

type sequentialIDs struct {
	last int64
}

func (s *sequentialIDs) next(int) int64 {
	s.last++
	return s.last
}

type lengthIDs struct{}

func (lengthIDs) next(size int) int64 {
	return int64(size) + 1
}

func newAllocator(p IDPolicy) idAllocator {
	if p == IDPolicyLength {
		return lengthIDs{}
	}
	return &sequentialIDs{}
}
