package news

// Domain is the closed set of top-level news domains.
type Domain int

const (
	DomainPolitics Domain = iota
	DomainSports
	DomainEntertainment
	DomainHealth
	DomainTech
	DomainEconomy
)

// String returns a human-readable domain name.
func (d Domain) String() string {
	switch d {
	case DomainPolitics:
		return "politics"
	case DomainSports:
		return "sports"
	case DomainEntertainment:
		return "entertainment"
	case DomainHealth:
		return "health"
	case DomainTech:
		return "tech"
	case DomainEconomy:
		return "economy"
	default:
		return "unknown"
	}
}

// Subdomain is a named subdivision of a Domain. A subdomain belongs to
// exactly one domain, fixed at construction. Two subdomains are considered
// equal when their names are equal.
type Subdomain struct {
	name   string
	domain Domain
}

// NewSubdomain creates a subdomain with the given name under the given domain.
func NewSubdomain(name string, domain Domain) Subdomain {
	return Subdomain{
		name:   name,
		domain: domain,
	}
}

// Name returns the subdomain name.
func (s Subdomain) Name() string {
	return s.name
}

// Domain returns the domain this subdomain belongs to.
func (s Subdomain) Domain() Domain {
	return s.domain
}

// Equal reports whether two subdomains have the same name.
// The domain is deliberately not part of the comparison.
func (s Subdomain) Equal(other Subdomain) bool {
	return s.name == other.name
}

// String returns the subdomain formatted as "domain/name".
func (s Subdomain) String() string {
	return s.domain.String() + "/" + s.name
}
