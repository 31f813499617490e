// Package gen defines the canonical word and name tables shared by the
// text and persona generators, plus alphabet constants for token/password
// synthesis. Tables are package-private: the public contract is the
// generator behavior, not the exact vocabulary.
package gen

//-----------------------------------------------------------------------------
// Lorem vocabulary (Word, Sentence)
//-----------------------------------------------------------------------------

// loremWords is the canonical lowercase vocabulary for Word and Sentence.
var loremWords = []string{
	"amber", "anchor", "basil", "beacon", "breeze", "canyon", "cedar",
	"cinder", "cobalt", "coral", "crest", "dapple", "delta", "drift",
	"ember", "fathom", "fern", "flint", "gale", "glade", "grove",
	"harbor", "hazel", "heath", "inlet", "ivory", "juniper", "keel",
	"lagoon", "larch", "lumen", "maple", "meadow", "mesa", "mist",
	"north", "oasis", "ochre", "onyx", "opal", "pebble", "pine",
	"quarry", "quill", "reef", "ridge", "river", "saffron", "sage",
	"shale", "slate", "sorrel", "spruce", "summit", "tarn", "thicket",
	"tide", "timber", "umber", "vale", "willow", "wren", "yarrow", "zephyr",
}

//-----------------------------------------------------------------------------
// Persona tables (Username, Email, FirstName, LastName, FullName)
//-----------------------------------------------------------------------------

// usernameAdjectives and usernameNouns combine into handles like "brisk_otter42".
var usernameAdjectives = []string{
	"amber", "bold", "brisk", "calm", "clever", "eager", "fleet",
	"gentle", "keen", "lucid", "merry", "nimble", "quiet", "rapid",
	"sly", "stout", "swift", "vivid", "wary", "witty",
}

var usernameNouns = []string{
	"badger", "bison", "crane", "falcon", "fox", "heron", "ibex",
	"lynx", "marten", "otter", "owl", "pike", "raven", "seal",
	"stoat", "swan", "tern", "vole", "wolf", "wren",
}

// firstNames and lastNames feed FirstName/LastName/FullName/Email.
var firstNames = []string{
	"Ada", "Alan", "Barbara", "Claude", "Donald", "Edsger", "Frances",
	"Grace", "Hedy", "John", "Katherine", "Ken", "Leslie", "Margaret",
	"Niklaus", "Radia", "Rob", "Sophie", "Tim", "Vint",
}

var lastNames = []string{
	"Allen", "Backus", "Cerf", "Dijkstra", "Hamilton", "Hopper",
	"Johnson", "Kernighan", "Knuth", "Lamarr", "Lamport", "Liskov",
	"Lovelace", "McCarthy", "Perlman", "Pike", "Ritchie", "Shannon",
	"Thompson", "Wirth",
}

// emailDomains are deliberately reserved/example domains (RFC 2606),
// so generated addresses can never route anywhere real.
var emailDomains = []string{
	"example.com", "example.org", "example.net", "test.example",
}

//-----------------------------------------------------------------------------
// Alphabets (Password, HexToken)
//-----------------------------------------------------------------------------

// passwordAlphabet mixes cases, digits and symbols; no lookalike pairs
// (0/O, 1/l) so generated passwords stay screenshot-friendly in docs.
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyz" +
	"ABCDEFGHJKLMNPQRSTUVWXYZ" +
	"23456789" +
	"!#%&*+-=?@_"

// hexDigits is the lowercase hexadecimal alphabet for HexToken.
const hexDigits = "0123456789abcdef"

// usernameSuffixBound bounds the numeric suffix of Username: [0, 100) → "0".."99".
const usernameSuffixBound = 100
