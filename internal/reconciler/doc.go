// Package reconciler watches a dependency specification file and reports
// changes to it, so the resolve command can recompute the order whenever the
// file is edited.
//
// The watch is placed on the file's directory rather than the file itself.
// Many editors save by writing a temporary file and renaming it over the
// original, which would silently end a watch placed on the file. Events for
// other files in the directory are ignored.
//
// Bursts of events (an editor typically produces several per save) are
// debounced into a single ChangeEvent.
package reconciler
