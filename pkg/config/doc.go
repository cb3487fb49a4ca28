// Package config loads configblock settings.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/configblock/config.toml
//  3. the project file in the working directory (configblock.toml,
//     .configblock.toml or configblock.yaml), or the explicit --config path
//  4. CONFIGBLOCK_* environment variables, e.g. CONFIGBLOCK_BUILD_BACKEND=latex
//  5. command line overrides
//
// Files are TOML unless they end in .yaml or .yml.
package config
