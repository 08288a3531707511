package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSerializesSameKey() {
	kl := New()
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock("auction:1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	ts.Equal(64, counter)
}

func (ts *testsuite) TestDifferentKeysDoNotBlock() {
	kl := New()
	unlockA := kl.Lock("auction:1")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := kl.Lock("auction:2")
		unlockB()
		close(done)
	}()
	<-done
}

func (ts *testsuite) TestReleasedKeyIsCollected() {
	kl := New()
	unlock := kl.Lock("auction:1")
	unlock()
	kl.mu.Lock()
	defer kl.mu.Unlock()
	ts.Empty(kl.locks)
}
