// Package jobs provides the scheduled background tasks of the dispatch
// system, built on github.com/robfig/cron/v3.
//
// Two jobs run on a fixed schedule:
//
//  1. PairingCodeSweepJob clears Telegram pairing codes past their expiry,
//     once a minute.
//  2. OfferReminderJob re-notifies offers a courier has left unanswered,
//     once a minute.
//
// JobManager wires both together: StartAll starts them and stops already
// running jobs if a later one fails to start, StopAll shuts them down.
package jobs
