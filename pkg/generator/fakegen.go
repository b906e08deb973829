package generator

import (
	"github.com/fauxdoc/fauxdoc/pkg/fake"
	"github.com/fauxdoc/fauxdoc/pkg/template"
)

// fakeGenerator declares one fake-data generator: its template-callable
// name, listing description, and provider category. Adding a category
// means adding a row here; the adapter below handles the rest.
type fakeGenerator struct {
	name        string
	description string
	category    fake.Category
}

var fakeGenerators = []fakeGenerator{
	// Numbers
	{"digit", "Random numeric digit", fake.Digit},

	// Internet
	{"username", "Random username", fake.Username},
	{"domainsuffix", "Random domain suffix", fake.DomainSuffix},
	{"ipv4", "Random IPv4 address", fake.IPv4},
	{"ipv6", "Random IPv6 address", fake.IPv6},
	{"ip", "Random IPv4 or IPv6 address", fake.IP},
	{"macaddress", "Random MAC address", fake.MACAddress},
	{"freeemail", "Random free email address", fake.FreeEmail},
	{"safeemail", "Random example-domain email address", fake.SafeEmail},
	{"freeemailprovider", "Random free email provider domain", fake.FreeEmailProvider},

	// Lorem ipsum
	{"word", "Random lorem word", fake.Word},

	// Name
	{"firstname", "Random first name", fake.FirstName},
	{"lastname", "Random last name", fake.LastName},
	{"title", "Random personal title", fake.Title},
	{"suffix", "Random name suffix", fake.Suffix},
	{"name", "Random full name", fake.Name},
	{"namewithtitle", "Random full name with title", fake.NameWithTitle},

	// Filesystem
	{"filepath", "Random file path", fake.FilePath},
	{"filename", "Random file name", fake.FileName},
	{"fileextension", "Random file extension", fake.FileExtension},
	{"dirpath", "Random directory path", fake.DirPath},

	// Company
	{"companysuffix", "Random company suffix", fake.CompanySuffix},
	{"companyname", "Random company name", fake.CompanyName},
	{"buzzword", "Random buzzword", fake.Buzzword},
	{"buzzwordmiddle", "Random middle-tier buzzword", fake.BuzzwordMiddle},
	{"buzzwordtail", "Random tail-tier buzzword", fake.BuzzwordTail},
	{"catchphase", "Random corporate catch phrase", fake.CatchPhase},
	{"bsverb", "Random BS verb", fake.BsVerb},
	{"bsadj", "Random BS adjective", fake.BsAdj},
	{"bsnoun", "Random BS noun", fake.BsNoun},
	{"bs", "Random BS phrase", fake.Bs},
	{"profession", "Random profession", fake.Profession},
	{"industry", "Random industry", fake.Industry},

	// Address
	{"cityprefix", "Random city-name prefix", fake.CityPrefix},
	{"citysuffix", "Random city-name suffix", fake.CitySuffix},
	{"cityname", "Random city name", fake.CityName},
	{"countryname", "Random country name", fake.CountryName},
	{"countrycode", "Random country code", fake.CountryCode},
	{"streetsuffix", "Random street suffix", fake.StreetSuffix},
	{"streetname", "Random street name", fake.StreetName},
	{"timezone", "Random time zone", fake.TimeZone},
	{"statename", "Random state name", fake.StateName},
	{"stateabbr", "Random state abbreviation", fake.StateAbbr},
	{"secondaryaddresstype", "Random secondary-address designator", fake.SecondaryAddressType},
	{"secondaryaddress", "Random secondary-address line", fake.SecondaryAddress},
	{"zipcode", "Random zip code", fake.ZipCode},
	{"postcode", "Random postal code", fake.PostCode},
	{"buildingnumber", "Random building number", fake.BuildingNumber},
	{"latitude", "Random latitude", fake.Latitude},
	{"longitude", "Random longitude", fake.Longitude},
}

// RegisterFakeGenerators adds every declared fake-data generator to the
// registry. All of them ignore call-site arguments and draw one value
// from the provider per invocation.
func RegisterFakeGenerators(reg *Registry, provider *fake.Provider) {
	for _, g := range fakeGenerators {
		category := g.category
		reg.Register(g.name, g.description, func(template.Args) (string, error) {
			return provider.Generate(category), nil
		})
	}
}
