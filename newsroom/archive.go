package newsroom

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/newsbus/bus"
	"github.com/dshills/newsbus/news"
	"github.com/dshills/newsbus/topic"
)

// Archive tracks the currently published articles by observing Published
// and Deleted events. It is a subscriber like any other, not a storage
// layer owned by the bus.
//
// Articles are keyed by their unique ID, so two distinct articles sharing a
// title are tracked independently.
type Archive struct {
	mu       sync.Mutex
	articles map[uuid.UUID]*news.Article
	logger   *zap.Logger
}

// NewArchive creates an archive and registers it on the channel for
// Published and Deleted events. A nil logger disables logging.
func NewArchive(channel *bus.Channel, logger *zap.Logger) (*Archive, error) {
	if channel == nil {
		return nil, bus.ErrInvalidArgument.New("nil channel")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Archive{
		articles: make(map[uuid.UUID]*news.Article),
		logger:   logger,
	}

	if err := channel.Register(topic.Published(), bus.SubscriberFunc(a.onPublished)); err != nil {
		return nil, err
	}
	if err := channel.Register(topic.Deleted(), bus.SubscriberFunc(a.onDeleted)); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Archive) onPublished(ctx context.Context, ev news.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.articles[ev.Article.ID()] = ev.Article
	a.logger.Info("article archived",
		zap.String("title", ev.Article.Title()),
		zap.String("article_id", ev.Article.ID().String()),
	)
	return nil
}

func (a *Archive) onDeleted(ctx context.Context, ev news.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.articles, ev.Article.ID())
	a.logger.Info("article removed from archive",
		zap.String("title", ev.Article.Title()),
		zap.String("article_id", ev.Article.ID().String()),
	)
	return nil
}

// Contains reports whether the article with the given ID is currently
// published.
func (a *Archive) Contains(id uuid.UUID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.articles[id]
	return ok
}

// Published returns a snapshot of the currently published articles.
func (a *Archive) Published() []*news.Article {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([]*news.Article, 0, len(a.articles))
	for _, article := range a.articles {
		result = append(result, article)
	}
	return result
}

// Len returns the number of currently published articles.
func (a *Archive) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.articles)
}
