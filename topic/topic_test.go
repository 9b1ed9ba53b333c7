package topic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/newsbus/news"
	"github.com/dshills/newsbus/topic"
)

var (
	football = news.NewSubdomain("football", news.DomainSports)
	gadgets  = news.NewSubdomain("gadgets", news.DomainTech)
)

func readEvent(article *news.Article) news.Event {
	return news.NewEvent(news.KindRead, article)
}

func TestForDomain(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.True(t, topic.ForDomain(news.DomainSports).Matches(ev))
	assert.False(t, topic.ForDomain(news.DomainTech).Matches(ev))
}

func TestForSubdomain(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.True(t, topic.ForSubdomain(football).Matches(ev))
	assert.False(t, topic.ForSubdomain(gadgets).Matches(ev))

	// Subdomains compare by name only; the domain is ignored
	sameNameOtherDomain := news.NewSubdomain("football", news.DomainEntertainment)
	assert.True(t, topic.ForSubdomain(sameNameOtherDomain).Matches(ev))
}

func TestForTitle(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.True(t, topic.ForTitle("Match Report").Matches(ev))
	assert.False(t, topic.ForTitle("Budget Primer").Matches(ev))
}

func TestForAuthor(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.True(t, topic.ForAuthor("alice").Matches(ev))
	assert.False(t, topic.ForAuthor("bob").Matches(ev))
}

func TestKindTopics(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")

	tests := []struct {
		name  string
		topic topic.Topic
		kind  news.Kind
	}{
		{"published", topic.Published(), news.KindPublished},
		{"deleted", topic.Deleted(), news.KindDeleted},
		{"read", topic.Read(), news.KindRead},
		{"modified", topic.ForKind(news.KindModified), news.KindModified},
	}

	kinds := []news.Kind{news.KindPublished, news.KindModified, news.KindDeleted, news.KindRead}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range kinds {
				ev := news.NewEvent(kind, article)
				assert.Equal(t, kind == tt.kind, tt.topic.Matches(ev), "kind %s", kind)
			}
		})
	}
}

func TestAll(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.True(t, topic.All().Matches(ev), "empty All is vacuously true")
	assert.True(t, topic.All(topic.ForAuthor("alice"), topic.Read()).Matches(ev))
	assert.False(t, topic.All(topic.ForAuthor("alice"), topic.Published()).Matches(ev))
	assert.False(t, topic.All(topic.ForAuthor("bob"), topic.Read()).Matches(ev))
}

func TestAny(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.False(t, topic.Any().Matches(ev), "empty Any matches nothing")
	assert.True(t, topic.Any(topic.ForAuthor("bob"), topic.Read()).Matches(ev))
	assert.False(t, topic.Any(topic.ForAuthor("bob"), topic.Published()).Matches(ev))
}

func TestNot(t *testing.T) {
	article := news.NewArticle("Match Report", football, "alice")
	ev := readEvent(article)

	assert.False(t, topic.Not(topic.Read()).Matches(ev))
	assert.True(t, topic.Not(topic.Published()).Matches(ev))
}

func TestCompositeNesting(t *testing.T) {
	sports := news.NewArticle("Match Report", football, "alice")
	tech := news.NewArticle("Gadget Roundup", gadgets, "bob")

	// (sports OR tech-by-bob) AND read
	nested := topic.All(
		topic.Any(
			topic.ForDomain(news.DomainSports),
			topic.All(topic.ForDomain(news.DomainTech), topic.ForAuthor("bob")),
		),
		topic.Read(),
	)

	assert.True(t, nested.Matches(news.NewEvent(news.KindRead, sports)))
	assert.True(t, nested.Matches(news.NewEvent(news.KindRead, tech)))
	assert.False(t, nested.Matches(news.NewEvent(news.KindPublished, sports)))

	health := news.NewArticle("Flu Season", news.NewSubdomain("colds", news.DomainHealth), "carol")
	assert.False(t, nested.Matches(news.NewEvent(news.KindRead, health)))
}

func TestAtomicKeysAreValueEqual(t *testing.T) {
	require.Equal(t, topic.ForAuthor("alice").Key(), topic.ForAuthor("alice").Key())
	require.Equal(t, topic.ForTitle("Match Report").Key(), topic.ForTitle("Match Report").Key())
	require.Equal(t, topic.ForDomain(news.DomainTech).Key(), topic.ForDomain(news.DomainTech).Key())
	require.Equal(t, topic.ForSubdomain(football).Key(), topic.ForSubdomain(football).Key())
	require.Equal(t, topic.Read().Key(), topic.Read().Key())

	assert.NotEqual(t, topic.ForAuthor("alice").Key(), topic.ForAuthor("bob").Key())
	assert.NotEqual(t, topic.ForAuthor("alice").Key(), topic.ForTitle("alice").Key())
	assert.NotEqual(t, topic.Published().Key(), topic.Deleted().Key())
}

func TestCompositeKeysAreUnique(t *testing.T) {
	a := topic.All(topic.ForAuthor("alice"), topic.Read())
	b := topic.All(topic.ForAuthor("alice"), topic.Read())
	assert.NotEqual(t, a.Key(), b.Key(), "composites have no structural equality")

	x := topic.Any(topic.Read())
	y := topic.Any(topic.Read())
	assert.NotEqual(t, x.Key(), y.Key())
}

func TestNotKeyFollowsChild(t *testing.T) {
	assert.Equal(t, topic.Not(topic.Read()).Key(), topic.Not(topic.Read()).Key())
	assert.NotEqual(t, topic.Not(topic.Read()).Key(), topic.Read().Key())
}
