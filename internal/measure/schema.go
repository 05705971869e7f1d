package measure

// Kind classifies a measurement field.
type Kind int

const (
	// Number fields are body measurements in inches.
	Number Kind = iota
	// Text fields are free-form description notes.
	Text
)

// Schema maps measurement field names to their kind. Adding a field is a data
// change here, not a code change in the normalizer.
type Schema map[string]Kind

// Default lists every measurement field the customer form collects.
var Default = Schema{
	// Shirt measurements.
	"length":     Number,
	"nehru":      Number,
	"chest":      Number,
	"stomach":    Number,
	"seat":       Number,
	"front":      Number,
	"frontWidth": Number,
	"frontDepth": Number,
	"shoulder":   Number,
	"biceps":     Number,
	"handLength": Number,
	"cuff":       Number,
	"cuffLength": Number,
	"collar":     Number,
	"stand":      Number,

	// Pant measurements.
	"pantLength": Number,
	"pantSeat":   Number,
	"kadda":      Number,
	"pantWaist":  Number,
	"thies":      Number,
	"knees":      Number,
	"cafs":       Number,
	"bottom":     Number,

	// Free-text notes.
	"shirtDescription": Text,
	"pantDescription":  Text,
}
