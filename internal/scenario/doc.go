// Package scenario provides named initial body sets and orbital placement
// helpers. Built-ins: solar-system, binary-stars, three-body, empty.
// [LoadFile] reads user-defined scenarios from YAML.
package scenario
