package fake

import (
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Provider generates one plausible value per category. The zero value
// is not usable; construct with NewProvider or NewSeededProvider.
type Provider struct {
	f *gofakeit.Faker
}

// NewProvider creates a provider with a randomly seeded, locked source.
// It is safe for concurrent use.
func NewProvider() *Provider {
	return &Provider{f: gofakeit.New(0)}
}

// NewSeededProvider creates a provider with a fixed seed for
// deterministic output. The seed must be non-zero, otherwise a random
// seed is chosen.
func NewSeededProvider(seed int64) *Provider {
	return &Provider{f: gofakeit.New(seed)}
}

// Generate returns a plausible value for the category. Unknown
// categories yield an empty string.
func (p *Provider) Generate(c Category) string {
	switch c {
	// Numbers
	case Digit:
		return p.f.Digit()

	// Internet
	case Username:
		return p.f.Username()
	case DomainSuffix:
		return p.f.DomainSuffix()
	case IPv4:
		return p.f.IPv4Address()
	case IPv6:
		return p.f.IPv6Address()
	case IP:
		if p.f.Bool() {
			return p.f.IPv4Address()
		}
		return p.f.IPv6Address()
	case MACAddress:
		return p.f.MacAddress()
	case FreeEmail:
		return strings.ToLower(p.f.Username()) + "@" + p.f.RandomString(freeEmailProviders)
	case SafeEmail:
		return strings.ToLower(p.f.Username()) + "@" + p.f.RandomString(safeEmailDomains)
	case FreeEmailProvider:
		return p.f.RandomString(freeEmailProviders)

	// Lorem
	case Word:
		return p.f.Word()

	// Person names
	case FirstName:
		return p.f.FirstName()
	case LastName:
		return p.f.LastName()
	case Title:
		return p.f.NamePrefix()
	case Suffix:
		return p.f.NameSuffix()
	case Name:
		return p.f.Name()
	case NameWithTitle:
		return p.f.NamePrefix() + " " + p.f.Name()

	// Filesystem
	case FileExtension:
		return p.f.FileExtension()
	case FileName:
		return p.f.Word() + "." + p.f.FileExtension()
	case DirPath:
		return p.dirPath()
	case FilePath:
		return p.dirPath() + "/" + p.f.Word() + "." + p.f.FileExtension()

	// Company
	case CompanySuffix:
		return p.f.CompanySuffix()
	case CompanyName:
		return p.f.Company()
	case Buzzword:
		return p.f.BuzzWord()
	case BuzzwordMiddle:
		return p.f.RandomString(buzzwordMiddles)
	case BuzzwordTail:
		return p.f.RandomString(buzzwordTails)
	case CatchPhase:
		return p.f.RandomString(buzzwordHeads) + " " +
			p.f.RandomString(buzzwordMiddles) + " " +
			p.f.RandomString(buzzwordTails)
	case BsVerb:
		return p.f.RandomString(bsVerbs)
	case BsAdj:
		return p.f.RandomString(bsAdjectives)
	case BsNoun:
		return p.f.RandomString(bsNouns)
	case Bs:
		return p.f.RandomString(bsVerbs) + " " +
			p.f.RandomString(bsAdjectives) + " " +
			p.f.RandomString(bsNouns)
	case Profession:
		return p.f.JobTitle()
	case Industry:
		return p.f.RandomString(industries)

	// Address
	case CityPrefix:
		return p.f.RandomString(cityPrefixes)
	case CitySuffix:
		return p.f.RandomString(citySuffixes)
	case CityName:
		return p.f.City()
	case CountryName:
		return p.f.Country()
	case CountryCode:
		return p.f.CountryAbr()
	case StreetSuffix:
		return p.f.StreetSuffix()
	case StreetName:
		return p.f.StreetName()
	case TimeZone:
		return p.f.TimeZoneRegion()
	case StateName:
		return p.f.State()
	case StateAbbr:
		return p.f.StateAbr()
	case SecondaryAddressType:
		return p.f.RandomString(secondaryAddressTypes)
	case SecondaryAddress:
		return p.f.RandomString(secondaryAddressTypes) + " " + strconv.Itoa(p.f.Number(1, 999))
	case ZipCode, PostCode:
		return p.f.Zip()
	case BuildingNumber:
		return p.f.StreetNumber()
	case Latitude:
		return strconv.FormatFloat(p.f.Latitude(), 'f', 6, 64)
	case Longitude:
		return strconv.FormatFloat(p.f.Longitude(), 'f', 6, 64)
	}

	return ""
}

// dirPath builds an absolute path of 2-4 lorem words.
func (p *Provider) dirPath() string {
	depth := p.f.Number(2, 4)
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = p.f.Word()
	}
	return "/" + strings.Join(parts, "/")
}
