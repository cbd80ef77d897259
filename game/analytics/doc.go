// Package analytics collects one-way event notifications from the turn
// driver: turn starts and ends, typed actions with key/value detail bags,
// and full table snapshots. It aggregates them into turn summaries and
// per-player statistics and exports a sectioned CSV report. The rule engine
// never reads analytics state back.
package analytics
