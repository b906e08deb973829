package fake

// Category identifies one kind of fake value a Provider can generate.
type Category string

// Number categories.
const (
	Digit Category = "digit"
)

// Internet categories.
const (
	Username          Category = "username"
	DomainSuffix      Category = "domainsuffix"
	IPv4              Category = "ipv4"
	IPv6              Category = "ipv6"
	IP                Category = "ip"
	MACAddress        Category = "macaddress"
	FreeEmail         Category = "freeemail"
	SafeEmail         Category = "safeemail"
	FreeEmailProvider Category = "freeemailprovider"
)

// Lorem categories.
const (
	Word Category = "word"
)

// Person-name categories.
const (
	FirstName     Category = "firstname"
	LastName      Category = "lastname"
	Title         Category = "title"
	Suffix        Category = "suffix"
	Name          Category = "name"
	NameWithTitle Category = "namewithtitle"
)

// Filesystem categories.
const (
	FilePath      Category = "filepath"
	FileName      Category = "filename"
	FileExtension Category = "fileextension"
	DirPath       Category = "dirpath"
)

// Company categories.
const (
	CompanySuffix  Category = "companysuffix"
	CompanyName    Category = "companyname"
	Buzzword       Category = "buzzword"
	BuzzwordMiddle Category = "buzzwordmiddle"
	BuzzwordTail   Category = "buzzwordtail"
	CatchPhase     Category = "catchphase"
	BsVerb         Category = "bsverb"
	BsAdj          Category = "bsadj"
	BsNoun         Category = "bsnoun"
	Bs             Category = "bs"
	Profession     Category = "profession"
	Industry       Category = "industry"
)

// Address categories.
const (
	CityPrefix           Category = "cityprefix"
	CitySuffix           Category = "citysuffix"
	CityName             Category = "cityname"
	CountryName          Category = "countryname"
	CountryCode          Category = "countrycode"
	StreetSuffix         Category = "streetsuffix"
	StreetName           Category = "streetname"
	TimeZone             Category = "timezone"
	StateName            Category = "statename"
	StateAbbr            Category = "stateabbr"
	SecondaryAddressType Category = "secondaryaddresstype"
	SecondaryAddress     Category = "secondaryaddress"
	ZipCode              Category = "zipcode"
	PostCode             Category = "postcode"
	BuildingNumber       Category = "buildingnumber"
	Latitude             Category = "latitude"
	Longitude            Category = "longitude"
)
