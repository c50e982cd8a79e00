// Package config holds the settings shared by the extract, split, and import
// stages. Values come from built-in defaults, an optional YAML file
// (~/.artifacts/config.yaml or --config), and ARTIFACTS_* environment
// variables, in increasing order of precedence. The resulting Config is passed
// explicitly to each stage; nothing reads global state.
package config
