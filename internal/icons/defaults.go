package icons

const (
	// DefaultFileIcon is used when no file name or extension matches.
	DefaultFileIcon = "📄"
	// DefaultFolderIcon is used when no folder name matches.
	DefaultFolderIcon = "📁"
)

var defaultFileIcons = map[string]string{
	// languages
	".go":     "🐹",
	".py":     "🐍",
	".pyi":    "🐍",
	".ipynb":  "📓",
	".js":     "🟨",
	".mjs":    "🟨",
	".cjs":    "🟨",
	".jsx":    "⚛️",
	".ts":     "🔷",
	".tsx":    "⚛️",
	".rs":     "🦀",
	".rb":     "💎",
	".java":   "☕",
	".kt":     "🟣",
	".swift":  "🐦",
	".c":      "🇨",
	".h":      "🇨",
	".cpp":    "➕",
	".hpp":    "➕",
	".cs":     "#️⃣",
	".php":    "🐘",
	".lua":    "🌙",
	".dart":   "🎯",
	".sh":     "🐚",
	".bash":   "🐚",
	".zsh":    "🐚",
	".fish":   "🐟",
	".ps1":    "🐚",
	".sql":    "🗃️",
	".r":      "📊",
	".ex":     "💧",
	".exs":    "💧",
	".hs":     "λ",
	".vue":    "💚",
	".svelte": "🔥",

	// markup and styles
	".html": "🌐",
	".htm":  "🌐",
	".css":  "🎨",
	".scss": "🎨",
	".sass": "🎨",
	".less": "🎨",
	".md":   "📝",
	".mdx":  "📝",
	".rst":  "📝",
	".txt":  "📃",
	".pdf":  "📕",

	// data and configuration
	".json": "🔧",
	".yaml": "⚙️",
	".yml":  "⚙️",
	".toml": "⚙️",
	".ini":  "⚙️",
	".cfg":  "⚙️",
	".conf": "⚙️",
	".env":  "🔐",
	".xml":  "📰",
	".csv":  "📊",
	".lock": "🔒",
	".mod":  "🐹",
	".sum":  "🔒",

	// media and archives
	".png":  "🖼️",
	".jpg":  "🖼️",
	".jpeg": "🖼️",
	".gif":  "🖼️",
	".svg":  "🖌️",
	".ico":  "🖼️",
	".webp": "🖼️",
	".mp3":  "🎵",
	".wav":  "🎵",
	".mp4":  "🎬",
	".mov":  "🎬",
	".zip":  "📦",
	".tar":  "📦",
	".gz":   "📦",
	".ttf":  "🔤",
	".woff": "🔤",

	// well-known file names
	"Dockerfile":         "🐳",
	"docker-compose.yml": "🐳",
	"Makefile":           "🛠️",
	"LICENSE":            "📜",
	"README.md":          "📖",
	"CHANGELOG.md":       "📋",
	".gitignore":         "🙈",
	".gitattributes":     "🙈",
	".gitmodules":        "🙈",
	".dockerignore":      "🐳",
	".editorconfig":      "⚙️",
	"package.json":       "📦",
	"go.mod":             "🐹",
	"Cargo.toml":         "🦀",
	"requirements.txt":   "🐍",
	"pyproject.toml":     "🐍",
}

var defaultFolderIcons = map[string]string{
	".git":         "🔀",
	".github":      "🐙",
	".vscode":      "🧩",
	"src":          "📂",
	"lib":          "📚",
	"bin":          "⚙️",
	"cmd":          "⌨️",
	"internal":     "🔒",
	"pkg":          "📦",
	"docs":         "📚",
	"doc":          "📚",
	"test":         "🧪",
	"tests":        "🧪",
	"assets":       "🎨",
	"images":       "🖼️",
	"public":       "🌐",
	"config":       "⚙️",
	"scripts":      "📜",
	"build":        "🏗️",
	"dist":         "📦",
	"node_modules": "📦",
	"vendor":       "📦",
}
