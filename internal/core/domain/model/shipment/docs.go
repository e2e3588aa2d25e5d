// Package shipment contains the Shipment aggregate root and its status state
// machine. A shipment is a sender's request to move a package between two
// cities; its lifecycle runs from Open through Matched to Delivered, with
// Cancelled and reopen (refund) branches.
//
// The aggregate owns every transition: matching a courier, the
// dual-confirmation handover and delivery gates, cancellation, and reopening
// after a refund. Application handlers never mutate shipment state directly;
// they call aggregate methods and persist the result.
package shipment
