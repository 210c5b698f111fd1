// Package input defines the input event and action types shared by the
// hook pipeline, the action handlers, and the host backends.
//
// Events are discrete host occurrences (key, mouse, paste, resize, focus).
// Focus events are classified as frame switches: lifecycle logic that expires
// on "the next input event" deliberately ignores them so that highlighting
// does not vanish merely because the user changed window focus.
package input
