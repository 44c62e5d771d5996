// Package reminder implements the reminder scheduler: it converts user
// intents ("45 minutes before close", "at 21:30", "in 2 hours") into one
// absolute minute-rounded fire time, persists reminders per device, and
// runs a single minute-aligned evaluation loop that fires each reminder
// exactly once inside a 60-second tolerance window.
//
// The scheduler never raises user-facing errors: invalid intents degrade
// to "no reminder created", and a firing window missed while the process
// was down leaves the reminder armed forever. Both are accepted behavior.
package reminder
