package quad

// Palette is the set of fills a region can be assigned at creation.
// Neutrals appear several times so most regions stay quiet and the primary
// colors read as accents, in the spirit of De Stijl compositions.
var Palette = []string{
	"#d40920", // red
	"#1356a2", // blue
	"#f7d842", // yellow
	"#f2f5f1", // off-white
	"#f2f5f1",
	"#f2f5f1",
	"#e8e8e0", // warm gray
	"#e8e8e0",
	"#1d1d1b", // near-black
}
