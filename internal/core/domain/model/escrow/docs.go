// Package escrow contains the Transaction ledger entry: the record of funds
// held from a sender toward a courier for one shipment. A transaction is
// created Held and settles exactly once, to Released (paid out to the
// courier) or Refunded (returned to the sender). Settled rows are retained
// for audit; a refunded shipment gets a brand-new row on its next hold.
//
// The ledger is the unit of truth per row; no global balance is maintained.
package escrow
