// ABOUTME: Standard filesystem path for the iterm2 CLI configuration file
// ABOUTME: Resolves $XDG_CONFIG_HOME/iterm2/config.yaml (and XDG_CONFIG_DIRS) via adrg/xdg

package config

import "github.com/adrg/xdg"

const configRelPath = "iterm2/config.yaml"

// DefaultPath returns the first existing config file in the XDG search
// path, or "" when none exists.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return ""
	}
	return path
}
