// Package logging provides a thin, optional structured-logging wrapper
// around zerolog for the solver. A nil *Logger is always safe to call
// methods on — it logs nothing — so the rest of the module never needs to
// branch on whether a logger was configured.
package logging
