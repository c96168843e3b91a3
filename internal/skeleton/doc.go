// Package skeleton models the project skeleton as typed template trees. A Template
// is one directory level of File and Dir nodes; Baseline returns the mandatory
// tree and Build returns the contribution of one optional feature. File content
// is resolved from Fragments against the enabled Flags when the node is built,
// so a Template never changes once constructed.
package skeleton
