// Package updater tracks which binary version ran last and warns about
// downgrades. There is no self-update mechanism; the record only feeds the
// startup notice.
package updater
