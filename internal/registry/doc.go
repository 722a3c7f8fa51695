// Package registry reads and updates the dynamics registry file that binds
// content-block partials to their content types. The registry is a flat list
// of records persisted as YAML, TOML, or JSON; all three encodings carry the
// same logical content and can be used interchangeably.
package registry
