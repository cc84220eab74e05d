// Package savings keeps a personal monthly ledger of savings snapshots.
//
// Each snapshot records, for a date, the total deposit balance, the salary
// received during the period, the part of the balance locked in fixed-term
// deposits and the period expense. The package derives the dependent values,
// checks every new snapshot against the previous one and persists the whole
// ledger to a flat comma-delimited file.
//
// The core functionalities include:
//   - Record Store: an ordered, append-only sequence of text records with
//     back-scan queries for the most recent non-blank value of a column.
//   - Ledger Engine: derivation (expense, monthly deposit, disposable amount),
//     admission that validates a snapshot before appending it, and the
//     tolerant line-oriented file format.
//   - Series export: the (date, total deposit) sequence consumed by the
//     trend chart.
//
// User interaction is injected: a Confirmer answers yes/no questions and a
// Notifier receives advisories and errors, so the engine never blocks on a
// user interface.
//
// This package serves as the foundational logic for the `sav` command-line
// tool.
package savings
