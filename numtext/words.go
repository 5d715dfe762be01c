// Word tables for Vietnamese number-to-text conversion.
package numtext

const (
	groupBase     = 1000
	scalePeriod   = 3
	maxTripletVal = 999

	wordNegative = "âm"
	wordZero     = "không"
	wordHundred  = "trăm"
	wordTen      = "mười"
	wordTens     = "mươi"
	wordLink     = "lẻ"
	wordBillion  = "tỷ"
	wordOrdinal  = "thứ"
)

// ones is the units lexicon indexed by digit.
var ones = [10]string{
	"không",
	"một",
	"hai",
	"ba",
	"bốn",
	"năm",
	"sáu",
	"bảy",
	"tám",
	"chín",
}

// unitsAfterTens overrides ones[u] when the tens digit is 2–9.
// Empty entries fall back to ones.
var unitsAfterTens = [10]string{
	1: "mốt",
	4: "tư",
	5: "lăm",
}

// unitsAfterTen overrides ones[u] when the tens digit is 1.
var unitsAfterTen = [10]string{
	5: "lăm",
}

// scaleBases is indexed by magnitude index mod 3.
// Index 0 has no base word; its magnitude is carried entirely by "tỷ".
var scaleBases = [scalePeriod]string{"", "nghìn", "triệu"}

// ordinalIrregular maps the values whose ordinal is not "thứ" + cardinal.
var ordinalIrregular = map[int64]string{
	1: "nhất",
	4: "tư",
}
