package newsroom

import (
	"context"

	"go.uber.org/zap"

	"github.com/dshills/newsbus/bus"
	"github.com/dshills/newsbus/news"
	"github.com/dshills/newsbus/topic"
)

// Editor is an authoring actor. On creation it registers interest in Read
// events for its own articles; the editor itself is the subscriber, so an
// editor watching several of its own topics still counts as one recipient
// per event.
type Editor struct {
	name    string
	channel *bus.Channel
	logger  *zap.Logger
}

// NewEditor creates an editor and registers it on the channel for Read
// events about its own articles. A nil logger disables logging.
func NewEditor(name string, channel *bus.Channel, logger *zap.Logger) (*Editor, error) {
	if channel == nil {
		return nil, bus.ErrInvalidArgument.New("nil channel")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Editor{
		name:    name,
		channel: channel,
		logger:  logger,
	}

	ownReads := topic.All(topic.ForAuthor(name), topic.Read())
	if err := channel.Register(ownReads, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Name returns the editor's name.
func (e *Editor) Name() string {
	return e.name
}

// Notify implements bus.Subscriber. It is invoked when one of the editor's
// own articles is read.
func (e *Editor) Notify(ctx context.Context, ev news.Event) error {
	e.logger.Info("own article was read",
		zap.String("editor", e.name),
		zap.String("title", ev.Article.Title()),
	)
	return nil
}

// Publish emits a Published event for the article.
func (e *Editor) Publish(ctx context.Context, article *news.Article) error {
	return e.channel.Dispatch(ctx, news.NewEvent(news.KindPublished, article).WithSource(e.name))
}

// Amend emits a Modified event for the article. The caller mutates the
// article first; setters never emit events on their own.
func (e *Editor) Amend(ctx context.Context, article *news.Article) error {
	return e.channel.Dispatch(ctx, news.NewEvent(news.KindModified, article).WithSource(e.name))
}

// Retract emits a Deleted event for the article.
func (e *Editor) Retract(ctx context.Context, article *news.Article) error {
	return e.channel.Dispatch(ctx, news.NewEvent(news.KindDeleted, article).WithSource(e.name))
}
