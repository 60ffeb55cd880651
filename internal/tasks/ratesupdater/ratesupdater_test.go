package ratesupdater

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeHolder struct {
	err   error
	calls chan struct{}
}

func (h *fakeHolder) UpdateFromSource() error {
	h.calls <- struct{}{}
	return h.err
}

type fakeCache struct {
	clears chan struct{}
}

func (c *fakeCache) Clear() {
	c.clears <- struct{}{}
}

func Test_Run_ShouldClearReplyCacheAfterUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	holder := &fakeHolder{calls: make(chan struct{}, 100)}
	replyCache := &fakeCache{clears: make(chan struct{}, 100)}

	Run(ctx, holder, replyCache, 5*time.Millisecond)

	// После успешного обновления курса кэш ответов сбрасывается.
	select {
	case <-replyCache.clears:
	case <-time.After(2 * time.Second):
		t.Fatal("кэш не был сброшен после обновления курса")
	}
}

func Test_Run_ShouldKeepCacheWhenUpdateFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	holder := &fakeHolder{err: errors.New("источник недоступен"), calls: make(chan struct{}, 100)}
	replyCache := &fakeCache{clears: make(chan struct{}, 100)}

	Run(ctx, holder, replyCache, 5*time.Millisecond)

	// Обновление выполнялось.
	select {
	case <-holder.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("обновление курса не запускалось")
	}
	// Сброса кэша при ошибке обновления нет: действует прежний курс.
	select {
	case <-replyCache.clears:
		t.Fatal("кэш сброшен при неудачном обновлении курса")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Equal(t, 0, len(replyCache.clears))
}
