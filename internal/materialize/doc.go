// Package materialize applies skeleton templates to a filesystem. Directories are
// created only when absent and files are always written, so applying several
// templates under the same root merges same-named directories and lets the last
// writer of a file win. Every change is reported to an Observer as an Event.
package materialize
