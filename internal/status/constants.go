// internal/status/constants.go
package status

// Tracker health codes.

// HealthUnknown represents the boot state before any tick has run.
const HealthUnknown = "unknown"

// HealthOK means the last tick read the entity source successfully.
const HealthOK = "ok"

// HealthDegraded means the last tick ran with the source unavailable.
const HealthDegraded = "degraded"
