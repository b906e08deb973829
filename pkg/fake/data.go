package fake

// Word tables for categories gofakeit has no direct equivalent for.

// freeEmailProviders contains well-known free email domains.
var freeEmailProviders = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"aol.com", "icloud.com", "proton.me", "gmx.com",
}

// safeEmailDomains contains RFC 2606 reserved example domains.
var safeEmailDomains = []string{
	"example.com", "example.net", "example.org",
}

// cityPrefixes and citySuffixes are the classic faker city-name parts.
var cityPrefixes = []string{
	"North", "East", "West", "South", "New", "Lake", "Port",
}

var citySuffixes = []string{
	"town", "ton", "land", "ville", "berg", "burgh", "borough",
	"bury", "view", "port", "mouth", "stad", "furt", "chester",
	"fort", "field", "haven", "side", "shire",
}

// secondaryAddressTypes contains unit designators for secondary
// address lines.
var secondaryAddressTypes = []string{
	"Apt.", "Suite",
}

// Buzzword tiers for catch-phrase generation: a phrase is one word
// from each tier, in order.
var buzzwordHeads = []string{
	"Adaptive", "Advanced", "Automated", "Balanced", "Business-focused",
	"Configurable", "Cross-platform", "Decentralized", "Distributed",
	"Enhanced", "Extended", "Integrated", "Intuitive", "Managed",
	"Optimized", "Proactive", "Robust", "Seamless", "Streamlined",
	"Universal",
}

var buzzwordMiddles = []string{
	"24hour", "analyzing", "asynchronous", "bandwidth-monitored",
	"bi-directional", "client-driven", "composite", "content-based",
	"dedicated", "dynamic", "encompassing", "fault-tolerant",
	"full-range", "global", "high-level", "modular", "multi-tasking",
	"real-time", "scalable", "zero-defect",
}

var buzzwordTails = []string{
	"ability", "access", "algorithm", "architecture", "attitude",
	"capability", "circuit", "concept", "framework", "hierarchy",
	"infrastructure", "interface", "middleware", "paradigm",
	"protocol", "solution", "throughput", "toolset", "utilization",
	"workforce",
}

// BS phrase parts: a phrase is verb + adjective + noun.
var bsVerbs = []string{
	"aggregate", "architect", "benchmark", "brand", "cultivate",
	"deliver", "deploy", "disintermediate", "drive", "empower",
	"enable", "engineer", "evolve", "harness", "incentivize",
	"integrate", "leverage", "optimize", "streamline", "synergize",
}

var bsAdjectives = []string{
	"24/7", "B2B", "back-end", "best-of-breed", "bleeding-edge",
	"cross-platform", "customized", "distributed", "dynamic",
	"end-to-end", "frictionless", "holistic", "mission-critical",
	"next-generation", "out-of-the-box", "plug-and-play", "scalable",
	"seamless", "turn-key", "value-added",
}

var bsNouns = []string{
	"action-items", "applications", "architectures", "bandwidth",
	"channels", "communities", "deliverables", "e-business",
	"e-markets", "experiences", "functionalities", "infrastructures",
	"markets", "methodologies", "networks", "paradigms", "platforms",
	"solutions", "synergies", "systems",
}

// industries contains industry sector names.
var industries = []string{
	"Aerospace", "Agriculture", "Automotive", "Banking",
	"Biotechnology", "Construction", "Consumer Goods", "Education",
	"Energy", "Entertainment", "Healthcare", "Hospitality",
	"Insurance", "Logistics", "Manufacturing", "Media",
	"Pharmaceuticals", "Real Estate", "Telecommunications", "Retail",
}
