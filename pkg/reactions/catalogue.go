package reactions

// Reaction emoji shared by several games.
const (
	EmojiSolved     = "🧠"
	EmojiFailed     = "🐌"
	EmojiFirstTry   = "1\uFE0F\u20E3"
	EmojiSecondTry  = "2\uFE0F\u20E3"
	EmojiZeroSecond = "0\uFE0F\u20E3"
)

// Variation selector 16 (\x{FE0F}) appears after some squares depending on
// the sharing platform, so grid character classes list it explicitly.
var defaultCatalogue = []Rule{
	// Wordle: "Wordle 942 3/6"
	MustRule("wordle_solved", `wordle \d+ [1-6]/6`, EmojiSolved),
	MustRule("wordle_first_try", `wordle \d+ 1/6`, EmojiFirstTry),
	MustRule("wordle_second_try", `wordle \d+ 2/6`, EmojiSecondTry),
	MustRule("wordle_failed", `wordle \d+ X/6`, EmojiFailed),

	// Duotrigordle reports the guess count on the line after the header.
	MustRule("duotrigordle_solved", `daily duotrigordle #\d+\nguesses: \d+/37`, EmojiSolved),
	MustRule("duotrigordle_failed", `daily duotrigordle #\d+\nguesses: X/37`, EmojiFailed),

	MustRule("scholardle_solved", `scholardle \d+ [1-6]/6`, "🎓"),
	MustRule("scholardle_first_try", `scholardle \d+ 1/6`, EmojiFirstTry),
	MustRule("scholardle_second_try", `scholardle \d+ 2/6`, EmojiSecondTry),
	MustRule("scholardle_failed", `scholardle \d+ X/6`, EmojiFailed),

	// Worldle only earns a reaction for a 100% guess.
	MustRule("worldle_perfect", `worldle #\d+ [1-6]/6 \(100%\)`, "🗺\uFE0F"),
	MustRule("worldle_failed", `worldle #\d+ X/6 \(\d+%\)`, EmojiFailed),

	// Waffle counts remaining swaps as stars, 0 to 5.
	MustRule("waffle_solved", `waffle\d+ [0-5]/5`, "🧇"),
	MustRule("waffle_perfect", `waffle\d+ 5/5`, "⭐"),
	MustRule("waffle_failed", `waffle\d+ X/5`, EmojiFailed),
	MustRule("waffle_silver_team", `#wafflesilverteam`, "🥈"),
	MustRule("waffle_gold_team", `#wafflegoldteam`, "🥇"),

	MustRule("flowdle_solved", `flowdle \d+ \[\d+ moves\]`, "🚰"),
	MustRule("flowdle_failed", `flowdle \d+ \[failed\]`, EmojiFailed),

	MustRule("jurassic_wordle_solved", `jurassic wordle \(game #\d+\) - [1-8] / 8`, "🦕"),
	MustRule("jurassic_wordle_failed", `jurassic wordle \(game #\d+\) - X / 8`, EmojiFailed),
	MustRule("jungdle_solved", `jungdle \(game #\d+\) - [1-8] / 8`, "🦁"),
	MustRule("jungdle_failed", `jungdle \(game #\d+\) - X / 8`, EmojiFailed),
	MustRule("dogsdle_solved", `dogsdle \(game #\d+\) - [1-8] / 8`, "🐶"),
	MustRule("dogsdle_failed", `dogsdle \(game #\d+\) - X / 8`, EmojiFailed),

	// Framed and Moviedle: a green square anywhere in the grid is a win,
	// a grid of only red and black squares is a loss.
	MustRule("framed_solved", `framed #\d+.*\n+.*🎥 [🟥⬛ ]*🟩`, "🎬"),
	MustRule("framed_failed", `framed #\d+.*\n+.*🎥 [🟥⬛ ]+$`, EmojiFailed),
	MustRule("moviedle_solved", `moviedle #[\d-]+.*\n+.*🎥[🟥⬜⬛\x{FE0F} ]*🟩`, "🎬"),
	MustRule("moviedle_failed", `moviedle #[\d-]+.*\n+.*🎥[🟥⬜⬛\x{FE0F} ]+$`, EmojiFailed),

	MustRule("posterdle_solved", `posterdle #[\d-]+.*\n+ ⌛ .*\n 🍿.+🟩`, "📯"),
	MustRule("posterdle_zero_seconds", `posterdle #[\d-]+.*\n+ ⌛ 0\x{FE0F}\x{20E3} .*\n 🍿.+🟩`, EmojiZeroSecond),
	MustRule("posterdle_failed", `posterdle #[\d-]+.*\n+ ⌛ .*\n 🍿 [⬜🟥⬛\x{FE0F} ]+$`, EmojiFailed),
	MustRule("namethatride_solved", `namethatride #[\d-]+.*\n+ ⌛ .*\n 🚗.+🟩`, "🚙"),
	MustRule("namethatride_failed", `namethatride #[\d-]+.*\n+ ⌛ .*\n 🚗 [⬜🟥⬛\x{FE0F} ]+$`, EmojiFailed),

	MustRule("heardle_solved", `heardle #\d+.*\n+.*🟩`, "👂"),
	MustRule("heardle_failed", `heardle #\d+.*\n+🔇`, EmojiFailed),

	MustRule("flaggle_solved", `flaggle .*\n+.*\d+ pts`, "⛳"),
	MustRule("flaggle_failed", `flaggle .*\n+.*gave up`, EmojiFailed),
}

// DefaultCatalogue returns a copy of the built-in rules in evaluation order.
func DefaultCatalogue() []Rule {
	out := make([]Rule, len(defaultCatalogue))
	copy(out, defaultCatalogue)
	return out
}
