package newsroom

import (
	"context"

	"github.com/dshills/newsbus/bus"
	"github.com/dshills/newsbus/news"
	"github.com/dshills/newsbus/topic"
)

// Reader is a consuming actor: a thin pass-through registrar that also
// emits Read events when it reads an article.
type Reader struct {
	channel *bus.Channel
}

// NewReader creates a reader on the given channel.
func NewReader(channel *bus.Channel) *Reader {
	return &Reader{channel: channel}
}

// Subscribe registers a subscriber for events matching t.
func (r *Reader) Subscribe(t topic.Topic, subscriber bus.Subscriber) error {
	return r.channel.Register(t, subscriber)
}

// SubscribeFunc registers a plain function for events matching t.
func (r *Reader) SubscribeFunc(t topic.Topic, fn func(ctx context.Context, ev news.Event) error) error {
	return r.channel.RegisterFunc(t, fn)
}

// Read emits a Read event for the article.
func (r *Reader) Read(ctx context.Context, article *news.Article) error {
	return r.channel.Dispatch(ctx, news.NewEvent(news.KindRead, article))
}
