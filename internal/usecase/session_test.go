package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/greenapi-console/internal/entity"
)

func TestSessionReplaceAndClear(t *testing.T) {
	s := NewSession()

	_, ok := s.Current()
	assert.False(t, ok)

	s.Replace(testCreds)
	got, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, testCreds, got)

	next := entity.Credentials{APIURL: "https://b", IDInstance: "2", APITokenInstance: "t2"}
	s.Replace(next)
	got, _ = s.Current()
	assert.Equal(t, next, got)

	s.Clear()
	assert.False(t, s.Connected())
}

func TestSessionReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Replace(testCreds)

	got, _ := s.Current()
	got.APITokenInstance = "mutated"

	again, _ := s.Current()
	assert.Equal(t, "tok", again.APITokenInstance)
}

func TestInFlightAcquireRelease(t *testing.T) {
	f := NewInFlight()

	release, ok := f.Acquire("getSettings")
	assert.True(t, ok)
	assert.True(t, f.Active("getSettings"))
	assert.Equal(t, []string{"getSettings"}, f.Snapshot())

	_, again := f.Acquire("getSettings")
	assert.False(t, again)

	otherRelease, other := f.Acquire("sendMessage")
	assert.True(t, other)
	otherRelease()

	release()
	release()
	assert.False(t, f.Active("getSettings"))
	assert.Empty(t, f.Snapshot())
}

func TestInFlightConcurrentAcquire(t *testing.T) {
	f := NewInFlight()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := f.Acquire("sendFileByUrl"); ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}
