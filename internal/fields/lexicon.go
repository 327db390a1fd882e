package fields

// vendorLexicon is the fixed, ordered list of known vendors and business
// names. Declaration order is match priority. Entries are lowercase; matching
// is a case-insensitive substring test, with a single-word fallback for
// multi-word entries so one OCR-garbled word does not lose the whole match.
//
// Grouped by category; the generic business words sit last so concrete
// chains always win first.
var vendorLexicon = []string{
	// retail
	"walmart",
	"target",
	"costco",
	"tesco",
	"aldi",
	"ikea",
	"7-eleven",
	"big bazaar",
	"reliance fresh",
	"reliance smart",
	"dmart",
	"spencer's",
	"vishal mega mart",

	// food / restaurant chains
	"mcdonald's",
	"mcdonalds",
	"burger king",
	"kfc",
	"subway",
	"domino's",
	"dominos",
	"pizza hut",
	"taco bell",
	"wendy's",
	"nando's",
	"haldiram's",
	"haldirams",
	"wow momo",
	"behrouz biryani",

	// cafes
	"starbucks",
	"cafe coffee day",
	"costa coffee",
	"barista",
	"chaayos",
	"blue tokai",

	// indian regional brands
	"saravana bhavan",
	"adyar ananda bhavan",
	"sagar ratna",
	"bikanervala",
	"udupi",
	"amul",
	"mother dairy",
	"sangeetha",

	// generic business words
	"restaurant",
	"cafe",
	"hotel",
	"bakery",
	"sweets",
	"supermarket",
	"grocery",
	"pharmacy",
	"dhaba",
}
