package icon

// Icon names a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Search
	Link
	Mark
	Play
	Pause
	Mute
	Star
	Movie
	Show
	Video
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(ง'̀-'́)ง",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(>‿◠)",
		squares: "🟫",
	},
	Mark: {
		emoji:   "📌",
		nerd:    "",
		plain:   "*",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟧",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(☞ﾟ∀ﾟ)☞",
		squares: "🟩",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－_－)",
		squares: "🟨",
	},
	Mute: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "x",
		kaomoji: "(¬_¬)",
		squares: "⬛",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "🟨",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "M",
		kaomoji: "(⌐■_■)",
		squares: "🟥",
	},
	Show: {
		emoji:   "📺",
		nerd:    "",
		plain:   "T",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟦",
	},
	Video: {
		emoji:   "📹",
		nerd:    "",
		plain:   "V",
		kaomoji: "(o_o)",
		squares: "🟪",
	},
}
