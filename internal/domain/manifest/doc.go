// Package manifest turns declarative launch manifests into discovery
// registrations.
//
// A manifest file (YAML, TOML, or JSON by extension) lists entries of
// manufacturer, model, process, and payload. Literal entries register their
// launch key directly. Entries with doublestar patterns cannot register as
// written, because discovery matches on exact identity; instead the engine
// watches raw transport process events and registers an exact key for each
// live process a pattern covers. Derived keys persist across process
// restarts and unregister once no pattern covers them.
//
// The watcher hot-reloads the manifest directory with a debounce, keeping
// the previous rule set whenever a reload fails to parse.
package manifest
