// Package userdata manages the ~/.stencil/ directory: path resolution with
// STENCIL_HOME override, permission constants, and the preferences file that
// remembers the operator's last scaffolding answers for use as prompt defaults.
package userdata
