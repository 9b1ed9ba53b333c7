package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Timestamps(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	current := base
	timeNow = func() time.Time { return current }
	defer func() { timeNow = time.Now }()

	a := NewArticle("Match Report", NewSubdomain("football", DomainSports), "alice")
	require.Equal(t, base, a.PublishedAt())
	require.Equal(t, base, a.ModifiedAt())

	current = base.Add(time.Minute)
	a.SetTitle("Match Report, Revised")
	assert.Equal(t, "Match Report, Revised", a.Title())
	assert.Equal(t, base.Add(time.Minute), a.ModifiedAt())
	assert.Equal(t, base, a.PublishedAt(), "publish time never changes")

	current = base.Add(2 * time.Minute)
	a.SetSubdomain(NewSubdomain("rugby", DomainSports))
	assert.Equal(t, "rugby", a.Subdomain().Name())
	assert.Equal(t, base.Add(2*time.Minute), a.ModifiedAt())
	assert.Equal(t, base, a.PublishedAt())
}

func TestArticle_UniqueIDs(t *testing.T) {
	sub := NewSubdomain("football", DomainSports)

	a := NewArticle("Match Report", sub, "alice")
	b := NewArticle("Match Report", sub, "alice")

	// Same title, distinct articles
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSubdomain_Equal(t *testing.T) {
	a := NewSubdomain("football", DomainSports)
	b := NewSubdomain("football", DomainEntertainment)
	c := NewSubdomain("rugby", DomainSports)

	assert.True(t, a.Equal(b), "equality is by name, domain is ignored")
	assert.False(t, a.Equal(c))
}

func TestSubdomain_Accessors(t *testing.T) {
	s := NewSubdomain("gadgets", DomainTech)

	assert.Equal(t, "gadgets", s.Name())
	assert.Equal(t, DomainTech, s.Domain())
	assert.Equal(t, "tech/gadgets", s.String())
}

func TestDomain_String(t *testing.T) {
	tests := []struct {
		domain Domain
		want   string
	}{
		{DomainPolitics, "politics"},
		{DomainSports, "sports"},
		{DomainEntertainment, "entertainment"},
		{DomainHealth, "health"},
		{DomainTech, "tech"},
		{DomainEconomy, "economy"},
		{Domain(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.domain.String())
	}
}
