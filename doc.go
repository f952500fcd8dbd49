// Package cartera implements a single-session investment portfolio:
// a ledger of buy and sell movements, a valuation engine deriving
// totals and per-asset breakdowns from it, a polling price feed, and a
// CSV export of the current positions.
//
// All state is held in memory for the lifetime of a session. The only
// artifact a session leaves behind is the export snapshot.
package cartera
