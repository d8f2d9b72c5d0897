package reactions_test

import (
	"testing"

	"github.com/casper7/wordle-reactions/pkg/reactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChannel = "wordle-channel"

// vs16 is the emoji variation selector that some platforms append to squares.
const vs16 = "\uFE0F"

func keycap(d string) string { return d + vs16 + "\u20E3" }

func emojis(events []reactions.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Emoji)
	}
	return out
}

func TestDefaultCatalogue_Games(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		// Wordle
		{"wordle solved", "Wordle 942 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩", []string{"🧠"}},
		{"wordle first try", "Wordle 942 1/6\n\n🟩🟩🟩🟩🟩", []string{"🧠", reactions.EmojiFirstTry}},
		{"wordle second try", "wordle 123 2/6", []string{"🧠", reactions.EmojiSecondTry}},
		{"wordle failed", "Wordle 942 X/6", []string{"🐌"}},

		// Duotrigordle
		{"duotrigordle solved", "Daily Duotrigordle #512\nGuesses: 35/37", []string{"🧠"}},
		{"duotrigordle failed", "Daily Duotrigordle #512\nGuesses: X/37", []string{"🐌"}},

		// Scholardle
		{"scholardle first try", "Scholardle 300 1/6", []string{"🎓", reactions.EmojiFirstTry}},
		{"scholardle second try", "Scholardle 300 2/6", []string{"🎓", reactions.EmojiSecondTry}},
		{"scholardle failed", "Scholardle 300 X/6", []string{"🐌"}},

		// Worldle
		{"worldle perfect", "#Worldle #400 3/6 (100%)", []string{"🗺" + vs16}},
		{"worldle partial", "#Worldle #400 4/6 (80%)", []string{}},
		{"worldle failed", "#Worldle #400 X/6 (87%)", []string{"🐌"}},

		// Waffle
		{"waffle perfect gold", "#waffle629 5/5\n\n#wafflegoldteam", []string{"🧇", "⭐", "🥇"}},
		{"waffle silver", "#waffle629 3/5\n\n#wafflesilverteam", []string{"🧇", "🥈"}},
		{"waffle failed", "#waffle629 X/5", []string{"🐌"}},

		// Flowdle
		{"flowdle solved", "Flowdle 300 [12 moves]", []string{"🚰"}},
		{"flowdle failed", "Flowdle 300 [failed]", []string{"🐌"}},

		// Guess-the-picture games scored out of 8
		{"jurassic wordle solved", "Jurassic Wordle (Game #120) - 4 / 8", []string{"🦕"}},
		{"jurassic wordle failed", "Jurassic Wordle (Game #120) - X / 8", []string{"🐌"}},
		{"jungdle solved", "Jungdle (Game #120) - 3 / 8", []string{"🦁"}},
		{"jungdle failed", "Jungdle (Game #120) - X / 8", []string{"🐌"}},
		{"dogsdle solved", "Dogsdle (Game #55) - 2 / 8", []string{"\U0001F436"}},
		{"dogsdle failed", "Dogsdle (Game #55) - X / 8", []string{"🐌"}},

		// Movie games with a result grid on a following line
		{"framed solved", "Framed #500\n🎥 🟥 🟥 🟩 ⬛ ⬛ ⬛\n\nhttps://framed.wtf", []string{"🎬"}},
		{"framed failed", "Framed #500\n🎥 🟥 🟥 🟥 🟥 🟥 🟥\n\nhttps://framed.wtf", []string{"🐌"}},
		{
			"moviedle solved",
			"#Moviedle #2023-05-01 \n\n 🎥 🟥 ⬛" + vs16 + " 🟩 ⬜" + vs16 + " ⬜" + vs16 + " \n\n https://moviedle.app",
			[]string{"🎬"},
		},
		{"moviedle failed", "#Moviedle #2023-05-01 \n\n 🎥 🟥 🟥 🟥 🟥 🟥 🟥", []string{"🐌"}},
		{
			"posterdle solved",
			"#Posterdle #2023-05-01\n\n ⌛ " + keycap("1") + " " + keycap("5") + " \n 🍿 🟥 🟩 ⬜" + vs16 + " ⬜" + vs16,
			[]string{"📯"},
		},
		{
			"posterdle under ten seconds",
			"#Posterdle #2023-05-01\n\n ⌛ " + keycap("0") + " " + keycap("5") + " \n 🍿 🟩 ⬜" + vs16 + " ⬜" + vs16,
			[]string{"📯", reactions.EmojiZeroSecond},
		},
		{
			"posterdle failed",
			"#Posterdle #2023-05-01\n\n ⌛ " + keycap("5") + " " + keycap("0") + " \n 🍿 🟥 🟥 🟥 🟥 🟥 🟥",
			[]string{"🐌"},
		},
		{
			"namethatride solved",
			"#NameThatRide #2023-05-01\n\n ⌛ " + keycap("1") + " " + keycap("2") + " \n 🚗 🟥 🟩 ⬜" + vs16,
			[]string{"🚙"},
		},
		{
			"namethatride failed",
			"#NameThatRide #2023-05-01\n\n ⌛ " + keycap("4") + " " + keycap("1") + " \n 🚗 🟥 🟥 🟥 🟥 🟥",
			[]string{"🐌"},
		},

		// Heardle
		{"heardle solved", "#Heardle #400\n\n🔉🟥🟩⬜" + vs16 + "⬜" + vs16, []string{"👂"}},
		{"heardle failed", "#Heardle #400\n\n🔇⬛" + vs16 + "⬛" + vs16 + "⬛" + vs16, []string{"🐌"}},

		// Flaggle
		{"flaggle solved", "Flaggle 2023-05-01\nScore: 120 pts\n🇫🇷 🇩🇪", []string{"⛳"}},
		{"flaggle gave up", "Flaggle 2023-05-01\ngave up", []string{"🐌"}},

		// Unrelated chatter
		{"plain chat", "anyone up for lunch?", []string{}},
	}

	m := reactions.NewMatcher(reactions.NewChannelSet(testChannel))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Evaluate(tt.message, testChannel, "msg-1")
			assert.Equal(t, tt.want, emojis(got))
		})
	}
}

func TestDefaultCatalogue_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range reactions.DefaultCatalogue() {
		require.NotEmpty(t, r.ID)
		require.NotEmpty(t, r.Emoji, "rule %s", r.ID)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 38)
}

func TestDefaultCatalogue_ReturnsCopy(t *testing.T) {
	first := reactions.DefaultCatalogue()
	first[0] = reactions.MustRule("hijack", "anything", "💥")

	second := reactions.DefaultCatalogue()
	assert.Equal(t, "wordle_solved", second[0].ID)
}

func TestDefaultCatalogue_FailureNeverCelebrates(t *testing.T) {
	m := reactions.NewMatcher(reactions.NewChannelSet(testChannel))

	got := emojis(m.Evaluate("wordle 123 X/6", testChannel, "msg-1"))
	assert.Equal(t, []string{reactions.EmojiFailed}, got)
	assert.NotContains(t, got, reactions.EmojiSolved)
}

func TestDefaultCatalogue_SolvedEmojiCodepoints(t *testing.T) {
	// Pinned by code point so look-alike animals cannot slip in.
	want := map[string]rune{
		"jurassic_wordle_solved": 0x1F995, // sauropod
		"jungdle_solved":         0x1F981, // lion face
		"dogsdle_solved":         0x1F436, // dog face
		"heardle_solved":         0x1F442, // ear
	}

	for _, r := range reactions.DefaultCatalogue() {
		cp, ok := want[r.ID]
		if !ok {
			continue
		}
		assert.Equal(t, []rune{cp}, []rune(r.Emoji), "rule %s", r.ID)
		delete(want, r.ID)
	}
	assert.Empty(t, want, "rules missing from catalogue")
}
