package scaffold

import "embed"

// scaffoldFS carries the config file set and the application skeleton.
// Dotfile destinations (.eslintrc.js and friends) are stored without the
// leading dot because embed directory patterns skip dot-prefixed names;
// configFiles maps them back.
//
//go:embed templates
var scaffoldFS embed.FS
