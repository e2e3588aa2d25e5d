// Package offer contains the Offer entity: a courier's bid to carry a
// specific shipment. Offers are created Pending, move to Accepted or Rejected
// exactly once, and are never deleted. The one-offer-per-courier and
// single-accepted-offer invariants are enforced by the negotiation use cases
// together with the store's uniqueness constraints; the entity enforces its
// own status monotonicity.
package offer
