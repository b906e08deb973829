// Package fake supplies plausible values for fixed semantic categories:
// names, addresses, network identifiers, company jargon, filesystem
// paths. Every call is stateless and independent; a generated city and
// a generated state are not correlated.
//
// Most categories delegate to gofakeit. Categories gofakeit has no
// direct equivalent for (city prefixes, buzzword tiers, secondary
// addresses, and so on) are composed from small word tables.
package fake
