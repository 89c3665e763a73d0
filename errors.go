package fixedmap

import "errors"

// ErrFull is returned when a new key is put into a map or set that already
// holds as many entries as its fixed capacity. The container offers no
// growth path, so hitting this in correct code means the capacity was chosen
// too small - it is a programming error surfaced as a value so the caller
// decides whether to drop, panic or fall back.
var ErrFull = errors.New("fixedmap: capacity exhausted")
